package core

import (
	"errors"
	"fmt"
)

// Code classifies an Error
type Code string

const (
	CodeConfiguration        Code = "CONFIGURATION"
	CodeInvalidDuration      Code = "INVALID_DURATION"
	CodeInvalidScale         Code = "INVALID_SCALE"
	CodeInvalidSpacing       Code = "INVALID_SPACING"
	CodeUnsupportedCharacter Code = "UNSUPPORTED_CHARACTER"
	CodeIO                   Code = "IO_FAILURE"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// Error is a classified failure carrying an optional cause and metadata
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error with the same code
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// WithMeta attaches a key/value pair and returns the receiver
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates an error with the given code and message
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an error with a formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps err under code, returns nil for a nil err
func Wrap(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, Cause: err}
}

// Sentinels for errors.Is checks
var (
	ErrConfiguration        = New(CodeConfiguration, "configuration error")
	ErrInvalidDuration      = New(CodeInvalidDuration, "invalid duration")
	ErrInvalidScale         = New(CodeInvalidScale, "invalid scale")
	ErrInvalidSpacing       = New(CodeInvalidSpacing, "invalid spacing")
	ErrUnsupportedCharacter = New(CodeUnsupportedCharacter, "unsupported character")
	ErrIO                   = New(CodeIO, "terminal i/o failure")
)

// CodeOf extracts the code from err, or "" if err is not an *Error
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsConfiguration reports whether err must be surfaced before the loop starts
func IsConfiguration(err error) bool {
	switch CodeOf(err) {
	case CodeConfiguration, CodeInvalidDuration, CodeInvalidScale, CodeInvalidSpacing:
		return true
	}
	return false
}
