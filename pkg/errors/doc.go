// Package errors provides structured error types for better observability
// and programmatic error handling across the library.
//
// Setup-time codes (UNSUPPORTED_TYPE, INVALID_SPEC) are raised while a
// command spec is being built and never reach an end user at runtime.
// Dispatch-time codes classify command-line syntax errors and map to exit
// code 1.
//
// Example usage:
//
//	err := errors.NewWithContext(
//	    errors.ErrCodeConversionFailure,
//	    "invalid value for --count",
//	    map[string]interface{}{
//	        "param": "count",
//	        "raw":   rawValue,
//	    },
//	)
package errors
