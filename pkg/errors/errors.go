// Package errors provides structured error types for the bujo-pdf application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and preview server
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Configuration errors (bad grid dimensions, unknown layout
//     names, sidebar widths exceeding the grid). These are programmer or
//     config-file errors and are never retried.
//   - DUPLICATE_* / UNKNOWN_*: Registration-time and lookup errors for named
//     verbs and layouts.
//   - OUT_OF_RANGE: Lookups outside a valid index range (weeks, rows, columns).
//   - EVENTS_*: Calendar collaborator failures. Page rendering degrades these
//     to an empty event list instead of aborting.
//   - INTERNAL_*: Unexpected internal errors.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidGrid, "box size must be positive, got %v", size)
//	if errors.Is(err, errors.ErrCodeInvalidGrid) {
//	    // Handle configuration error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeEventsSource, origErr, "query events for %s", date)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Configuration errors
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidGrid   Code = "INVALID_GRID"
	ErrCodeInvalidLayout Code = "INVALID_LAYOUT"
	ErrCodeInvalidRect   Code = "INVALID_RECT"
	ErrCodeInvalidYear   Code = "INVALID_YEAR"

	// Registration errors
	ErrCodeDuplicateVerb Code = "DUPLICATE_VERB"
	ErrCodeUnknownVerb   Code = "UNKNOWN_VERB"
	ErrCodeUnknownLayout Code = "UNKNOWN_LAYOUT"

	// Range errors
	ErrCodeOutOfRange Code = "OUT_OF_RANGE"

	// Calendar collaborator errors
	ErrCodeEventsSource Code = "EVENTS_SOURCE"

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
