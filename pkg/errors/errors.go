/*
Copyright © 2025 The argbind Authors
SPDX-License-Identifier: Apache-2.0
*/
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a structured error classification.
type ErrorCode string

const (
	// ErrCodeUnsupportedType indicates a parameter's type tag has no
	// registered converter. Raised while building a command spec, never
	// while processing argv.
	ErrCodeUnsupportedType ErrorCode = "UNSUPPORTED_TYPE"
	// ErrCodeInvalidSpec indicates a malformed command spec: a reserved
	// parameter name, a duplicate short alias, more than one capture slot,
	// or a default value that does not round-trip through its converter.
	ErrCodeInvalidSpec ErrorCode = "INVALID_SPEC"
	// ErrCodeUnknownOption indicates an option name or short alias that is
	// not declared by the command spec.
	ErrCodeUnknownOption ErrorCode = "UNKNOWN_OPTION"
	// ErrCodeMissingSeparator indicates a non-boolean option supplied
	// without an '=' or ':' separated value.
	ErrCodeMissingSeparator ErrorCode = "MISSING_SEPARATOR"
	// ErrCodeUnexpectedPositional indicates a positional token against a
	// command that declares no capture slot.
	ErrCodeUnexpectedPositional ErrorCode = "UNEXPECTED_POSITIONAL"
	// ErrCodeConversionFailure indicates an option value that the
	// registered parse function rejected.
	ErrCodeConversionFailure ErrorCode = "CONVERSION_FAILURE"
	// ErrCodeRoutineFailed indicates the invoked target routine returned
	// an error of its own. The dispatcher surfaces it without
	// reinterpretation.
	ErrCodeRoutineFailed ErrorCode = "ROUTINE_FAILED"
)

// IsSyntax reports whether the code classifies a command-line syntax error,
// the category reserved for exit code 1.
func (c ErrorCode) IsSyntax() bool {
	switch c {
	case ErrCodeUnknownOption, ErrCodeMissingSeparator,
		ErrCodeUnexpectedPositional, ErrCodeConversionFailure:
		return true
	default:
		return false
	}
}

// StructuredError provides structured error information for better observability.
// It includes an error code for programmatic handling, a human-readable message,
// the underlying cause, and optional context for debugging.
type StructuredError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// New creates a new StructuredError with the given code and message.
func New(code ErrorCode, message string) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
	}
}

// NewWithContext creates a new StructuredError with context information.
func NewWithContext(code ErrorCode, message string, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Context: context,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(code ErrorCode, message string, cause error) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WrapWithContext wraps an error with additional context information.
func WrapWithContext(code ErrorCode, message string, cause error, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// CodeOf extracts the ErrorCode from err if it is (or wraps) a
// StructuredError, returning an empty code otherwise.
func CodeOf(err error) ErrorCode {
	var se *StructuredError
	if stderrors.As(err, &se) {
		return se.Code
	}
	return ""
}
