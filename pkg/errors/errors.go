// Package errors defines the coded errors shared by the layout engine, the
// CLI and the HTTP API.
//
// Every failure a user can cause carries a [Code]. Codes starting with
// INVALID_ are input problems, codes ending in NOT_FOUND are missing
// resources, and the rest are transport or internal failures. The API maps
// codes to HTTP statuses and the CLI prints [UserMessage].
//
// The layout core reports structural misuse (a non-positive column, a
// negative count) by panicking with an [*Error] carrying
// [ErrCodeInvalidArgument]. [Recover] turns such a panic back into an error
// at a boundary.
//
//	err := errors.New(errors.ErrCodeInvalidConfig, "column must be positive, got %d", column)
//	if errors.Is(err, errors.ErrCodeInvalidConfig) {
//	    // reject the template
//	}
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code is a machine-readable error code. It is the "code" field of API
// error bodies.
type Code string

const (
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidArgument  Code = "INVALID_ARGUMENT"
	ErrCodeInvalidConfig    Code = "INVALID_CONFIG"
	ErrCodeInvalidLayout    Code = "INVALID_LAYOUT"
	ErrCodeInvalidFormat    Code = "INVALID_FORMAT"
	ErrCodeInvalidCharacter Code = "INVALID_CHARACTER"

	ErrCodeNotFound      Code = "NOT_FOUND"
	ErrCodePoemNotFound  Code = "POEM_NOT_FOUND"
	ErrCodeSheetNotFound Code = "SHEET_NOT_FOUND"

	// Upstream stroke data source failures.
	ErrCodeNetwork     Code = "NETWORK_ERROR"
	ErrCodeTimeout     Code = "TIMEOUT"
	ErrCodeRateLimited Code = "RATE_LIMITED"

	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED" // backend not configured
)

// Invalid reports whether c is an input validation code.
func (c Code) Invalid() bool { return strings.HasPrefix(string(c), "INVALID_") }

// NotFound reports whether c names a missing resource.
func (c Code) NotFound() bool { return strings.HasSuffix(string(c), "NOT_FOUND") }

// Error carries a code, a message fit for users, and an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to cause. The cause stays reachable
// through errors.Is and errors.As.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether the first *Error in err's chain has code.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode returns the code of the first *Error in err's chain, or "".
func GetCode(err error) Code {
	if e := asError(err); e != nil {
		return e.Code
	}
	return ""
}

// UserMessage returns the message of the first *Error in err's chain,
// without code or cause, falling back to err.Error().
func UserMessage(err error) string {
	if e := asError(err); e != nil {
		return e.Message
	}
	return err.Error()
}

func asError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// InvalidArgument panics with an [ErrCodeInvalidArgument] error.
// It marks caller bugs such as a non-positive column width.
func InvalidArgument(format string, args ...any) {
	panic(New(ErrCodeInvalidArgument, format, args...))
}

// Recover converts a panic raised with an *Error back into an error and
// stores it in *errp. Panics carrying anything else are re-raised.
//
//	func safeLayout() (g grid.Grid, err error) {
//	    defer errors.Recover(&err)
//	    return grid.FormatGridData(text, cfg, nil), nil
//	}
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	if e, ok := r.(*Error); ok {
		*errp = e
		return
	}
	panic(r)
}
