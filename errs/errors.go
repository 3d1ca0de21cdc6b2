package errs

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

type ErrType string

const (
	INTERNAL_ERROR             ErrType = "INTERNAL ERROR"
	BAD_INPUT_ERROR            ErrType = "BAD INPUT ERROR"
	UNSUPPORTED_LANGUAGE_ERROR ErrType = "UNSUPPORTED LANGUAGE ERROR"
	UNKNOWN_ERROR              ErrType = "UNKNOWN ERROR"
)

var errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

// 内部的なエラー（ファイル読み込み、構文解析器の初期化など）
type InternalError struct {
	message string
	wrapped error
}

func NewInternalError(message string) *InternalError {
	return &InternalError{
		message: message,
	}
}

func (e *InternalError) Wrap(err error) error {
	e.wrapped = err
	return e
}

func (e *InternalError) Error() string {
	return joinMessage(e.message, e.wrapped)
}

func (e *InternalError) Unwrap() error {
	return e.wrapped
}

// ユーザー起因の無効な入力エラー（不正なコマンド、正規表現など）
type BadInputError struct {
	message string
	wrapped error
}

func NewBadInputError(message string) *BadInputError {
	return &BadInputError{
		message: message,
	}
}

func (e *BadInputError) Wrap(err error) error {
	e.wrapped = err
	return e
}

func (e *BadInputError) Error() string {
	return joinMessage(e.message, e.wrapped)
}

func (e *BadInputError) Unwrap() error {
	return e.wrapped
}

// 構文解析器が用意されていない拡張子が指定された場合のエラー
type UnsupportedLanguageError struct {
	extension string
}

func NewUnsupportedLanguageError(extension string) *UnsupportedLanguageError {
	return &UnsupportedLanguageError{
		extension: extension,
	}
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("no grammar available for extension %q", e.extension)
}

func joinMessage(message string, wrapped error) string {
	if wrapped == nil {
		return message
	}
	return message + ": " + wrapped.Error()
}

// ClassifyError はエラーの種別を判定する
func ClassifyError(err error) ErrType {
	var internalErr *InternalError
	var badInputErr *BadInputError
	var unsupportedErr *UnsupportedLanguageError
	switch {
	case errors.As(err, &internalErr):
		return INTERNAL_ERROR
	case errors.As(err, &badInputErr):
		return BAD_INPUT_ERROR
	case errors.As(err, &unsupportedErr):
		return UNSUPPORTED_LANGUAGE_ERROR
	default:
		return UNKNOWN_ERROR
	}
}

// エラーを処理する関数
func HandleError(err error) {
	errType := ClassifyError(err)
	fmt.Printf("\n%s\n\n", errStyle.Render(fmt.Sprintf("[%s]\n %s", errType, err.Error())))
}
