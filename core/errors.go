package core

import (
	"errors"
	"fmt"
	"os"
)

// Error codes of layout errors. A nil error has code 0.
const (
	EMISSING  int = 122 // referenced element does not exist
	EINVALID  int = 123 // validation failed
	EMISMATCH int = 124 // coordinate frames do not match
	EINTERNAL int = 125 // internal error
)

var codeText = map[int]string{
	EMISSING:  "not found",
	EINVALID:  "invalid",
	EMISMATCH: "frame mismatch",
	EINTERNAL: "internal error",
}

// AppError is an error with an associated error code and a user-message.
type AppError interface {
	error
	ErrorCode() int
	UserMessage() string
}

type codedError struct {
	cause error
	code  int
	msg   string
}

var _ AppError = codedError{}

func (e codedError) Unwrap() error { return e.cause }

func (e codedError) Error() string {
	return fmt.Sprintf("[%d] %v: %s", e.code, e.cause, e.msg)
}

func (e codedError) ErrorCode() int      { return e.code }
func (e codedError) UserMessage() string { return e.msg }

// WrapError puts err into the chain of a coded error with a user message.
// If err is nil, the code's text is used as the cause.
func WrapError(err error, code int, format string, v ...interface{}) error {
	if err == nil {
		err = errors.New(codeText[code])
	}
	return codedError{cause: err, code: code, msg: fmt.Sprintf(format, v...)}
}

// Error creates an error with an error code and a user-message.
func Error(code int, format string, v ...interface{}) error {
	return WrapError(nil, code, format, v...)
}

// Code returns the code of the first coded error in err's chain, or
// EINTERNAL for errors without a code.
func Code(err error) int {
	if err == nil {
		return 0
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.ErrorCode()
	}
	return EINTERNAL
}

// UserMessage returns the user message of a coded error. Other errors
// yield the text of their code.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.UserMessage()
	}
	return codeText[Code(err)]
}

// UserError prints an error to stderr, preferring the user message of
// coded errors.
func UserError(err error) {
	if e := AppError(nil); errors.As(err, &e) {
		fmt.Fprintf(os.Stderr, "[%d] %s\n", e.ErrorCode(), e.UserMessage())
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
}
