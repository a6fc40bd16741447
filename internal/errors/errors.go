// Package errors defines the stable error codes navigation requests can fail
// with. "No symbol under the cursor" is deliberately not an error; callers
// report it as an absent result instead.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents stable error codes for all failure modes
type ErrorCode string

const (
	// IOFailure indicates the source file could not be read
	IOFailure ErrorCode = "IO_FAILURE"
	// ParseFailure indicates the grammar could not produce a tree
	ParseFailure ErrorCode = "PARSE_FAILURE"
	// QueryCompileFailure indicates a structural pattern failed to compile
	QueryCompileFailure ErrorCode = "QUERY_COMPILE_FAILURE"
	// URIInvalid indicates a result path could not be converted to a file URI
	URIInvalid ErrorCode = "URI_INVALID"
	// PositionOutOfRange indicates a cursor position outside the source text
	PositionOutOfRange ErrorCode = "POSITION_OUT_OF_RANGE"
	// InternalError indicates an unexpected error
	InternalError ErrorCode = "INTERNAL_ERROR"
)

// NavError represents a navigation failure with a stable code and cause
type NavError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	cause   error     // Underlying error (not exported to JSON)
}

// New creates a new NavError
func New(code ErrorCode, message string, cause error) *NavError {
	return &NavError{
		Code:    code,
		Message: message,
		cause:   cause,
	}
}

// Newf creates a new NavError with a formatted message and no cause
func Newf(code ErrorCode, format string, args ...interface{}) *NavError {
	return &NavError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Error implements the error interface
func (e *NavError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *NavError) Unwrap() error {
	return e.cause
}

// CodeOf extracts the error code from an error chain, or InternalError if
// the chain carries no NavError.
func CodeOf(err error) ErrorCode {
	var navErr *NavError
	if errors.As(err, &navErr) {
		return navErr.Code
	}
	return InternalError
}
