package errs

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedErrType ErrType
		expectedMessage string
	}{
		{
			name:            "InternalError",
			err:             NewInternalError("failed to read file"),
			expectedErrType: INTERNAL_ERROR,
			expectedMessage: "failed to read file",
		},
		{
			name:            "BadInputError",
			err:             NewBadInputError("keyword must not be empty"),
			expectedErrType: BAD_INPUT_ERROR,
			expectedMessage: "keyword must not be empty",
		},
		{
			name:            "UnsupportedLanguageError",
			err:             NewUnsupportedLanguageError("kt"),
			expectedErrType: UNSUPPORTED_LANGUAGE_ERROR,
			expectedMessage: `no grammar available for extension "kt"`,
		},
		{
			name:            "UnknownError",
			err:             errors.New("unknown error"),
			expectedErrType: UNKNOWN_ERROR,
			expectedMessage: "unknown error",
		},
		{
			name:            "WrappedInternalError",
			err:             NewInternalError("failed to walk directory").Wrap(errors.New("permission denied")),
			expectedErrType: INTERNAL_ERROR,
			expectedMessage: "failed to walk directory: permission denied",
		},
		{
			name:            "BadInputErrorWrappedByFmt",
			err:             fmt.Errorf("outline: %w", NewBadInputError("invalid arguments")),
			expectedErrType: BAD_INPUT_ERROR,
			expectedMessage: "outline: invalid arguments",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// 標準出力を一時的に差し替え
			oldStdout := os.Stdout
			r, w, _ := os.Pipe()
			os.Stdout = w

			defer func() {
				os.Stdout = oldStdout
			}()

			HandleError(tt.err)

			w.Close()
			var buf bytes.Buffer
			if _, err := buf.ReadFrom(r); err != nil {
				t.Fatalf("failed to read from pipe: %v", err)
			}
			output := buf.String()

			if !strings.Contains(output, string(tt.expectedErrType)) {
				t.Errorf("expected error type %s in output, got %s", tt.expectedErrType, output)
			}
			if !strings.Contains(output, tt.expectedMessage) {
				t.Errorf("expected message %q in output, got %s", tt.expectedMessage, output)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := NewInternalError("failed").Wrap(cause)
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is() = false, want true")
	}
}
