// Package logging provides structured logging utilities for argbind tools.
//
// # Overview
//
// This package wraps the standard library slog package with defaults and
// conventions for consistent logging across tools built on the library. It
// supports environment-based log level configuration, module/version context
// injection, and automatic source location tracking for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("repeat", "v1.0.0")
//
//	    // Use slog as normal
//	    slog.Info("dispatching", "argv", os.Args[1:])
//	    slog.Debug("bound arguments", "args", bound)
//	}
package logging
