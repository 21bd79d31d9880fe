// Package errors provides structured error types for adjcode.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the HTTP API
//   - Machine-readable error codes for programmatic handling
//   - Position-aware parse errors that point at the offending line and token
//
// # Error Codes
//
// Codes group failures by the stage that detected them:
//   - PARSE_ERROR, VERTEX_ORDER, INVALID_VERTEX, ASYMMETRIC_EDGE: adjacency text
//   - WIDTH_OVERFLOW: a value does not fit the record width chosen for a graph
//   - BAD_HEADER, TRUNCATED_RECORD: binary streams being decoded
//   - INVALID_*: bad options or flags
//   - INTERNAL_ERROR: unexpected failures (I/O, rendering)
//
// # Usage
//
//	err := errors.New(errors.ErrCodeWidthOverflow, "neighbour %d does not fit in one byte", v)
//	if errors.Is(err, errors.ErrCodeWidthOverflow) {
//	    // Handle overflow
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInternal, origErr, "write record %d", n)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Adjacency text errors
	ErrCodeParse         Code = "PARSE_ERROR"
	ErrCodeVertexOrder   Code = "VERTEX_ORDER"
	ErrCodeInvalidVertex Code = "INVALID_VERTEX"
	ErrCodeAsymmetric    Code = "ASYMMETRIC_EDGE"

	// Encoding errors
	ErrCodeWidthOverflow Code = "WIDTH_OVERFLOW"

	// Decoding errors
	ErrCodeBadHeader Code = "BAD_HEADER"
	ErrCodeTruncated Code = "TRUNCATED_RECORD"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// ParseError locates a failure inside adjacency text.
// Line is 1-based within the input stream; Token is the text that failed.
type ParseError struct {
	Line  int
	Token string
	Err   *Error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("line %d: %v (near %q)", e.Line, e.Err, e.Token)
	}
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Unwrap returns the coded error so Is and GetCode see through the position.
func (e *ParseError) Unwrap() error { return e.Err }

// AtLine attaches a position to err. Errors that already carry a
// position are returned unchanged; nil stays nil.
func AtLine(err error, line int, token string) error {
	if err == nil {
		return nil
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		return err
	}
	var e *Error
	if !errors.As(err, &e) {
		e = Wrap(ErrCodeParse, err, "invalid adjacency line")
	}
	return &ParseError{Line: line, Token: token, Err: e}
}
