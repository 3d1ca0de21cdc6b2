package repl

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestPrintBanner(t *testing.T) {
	tests := []struct {
		name         string
		root         string
		wantModule   bool
		expectedLine string
	}{
		{
			name:         "root with go.mod shows module path",
			root:         filepath.Join("testdata", "project"),
			wantModule:   true,
			expectedLine: "module: example.com/shapes",
		},
		{
			name:         "root without go.mod",
			root:         filepath.Join("testdata", "project", "a"),
			wantModule:   false,
			expectedLine: "root: " + filepath.Join("testdata", "project", "a"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			printBanner(&buf, tt.root)
			out := ansi.Strip(buf.String())
			if !strings.Contains(out, tt.expectedLine) {
				t.Errorf("expected %q in banner, got:\n%s", tt.expectedLine, out)
			}
			if got := strings.Contains(out, "module:"); got != tt.wantModule {
				t.Errorf("module line present = %v, want %v", got, tt.wantModule)
			}
		})
	}
}
