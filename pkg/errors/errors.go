// Package errors provides structured error types for the canvas engine.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library, CLI and HTTP service
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Categories
//
// Codes fall into two categories that callers usually care about:
//   - Validation errors: bad input such as duplicate ids, edges pointing at
//     missing nodes, negative sizes or malformed records. See [IsValidation].
//   - Invariant violations: the document geometry makes an operation
//     impossible, e.g. a node parented to itself or two rectangles with no
//     visible connecting sides. See [IsInvariant].
//
// Both are raised synchronously at the point of detection. Neither is
// retried: every engine operation is a deterministic function of the
// current document state.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeDuplicateID, "node %s already exists", id)
//	if errors.IsValidation(err) {
//	    // reject the input
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidFormat, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeDuplicateID     Code = "DUPLICATE_ID"
	ErrCodeUnknownNode     Code = "UNKNOWN_NODE"
	ErrCodeInvalidGeometry Code = "INVALID_GEOMETRY"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidPath     Code = "INVALID_PATH"

	// Invariant violations
	ErrCodeInvariant Code = "INVARIANT_VIOLATION"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

var validationCodes = map[Code]bool{
	ErrCodeInvalidInput:    true,
	ErrCodeDuplicateID:     true,
	ErrCodeUnknownNode:     true,
	ErrCodeInvalidGeometry: true,
	ErrCodeInvalidConfig:   true,
	ErrCodeInvalidFormat:   true,
	ErrCodeInvalidPath:     true,
}

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

// IsValidation reports whether err carries a validation-category code.
func IsValidation(err error) bool {
	return validationCodes[GetCode(err)]
}

// IsInvariant reports whether err is an invariant violation.
func IsInvariant(err error) bool {
	return Is(err, ErrCodeInvariant)
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}
