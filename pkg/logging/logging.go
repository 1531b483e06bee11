/*
Copyright © 2025 The argbind Authors
SPDX-License-Identifier: Apache-2.0
*/
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// LevelEnvVar is the environment variable consulted for the default log level.
const LevelEnvVar = "LOG_LEVEL"

// ParseLevel converts a level string to a slog.Level. Parsing is
// case-insensitive and tolerant of surrounding whitespace. Unrecognized
// values fall back to slog.LevelInfo.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO", "":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetDefaultStructuredLogger installs a JSON slog handler writing to stderr
// as the process default logger, tagged with the module name and version.
// The log level is taken from the LOG_LEVEL environment variable, defaulting
// to INFO.
func SetDefaultStructuredLogger(module, version string) {
	SetDefaultStructuredLoggerWithLevel(module, version, os.Getenv(LevelEnvVar))
}

// SetDefaultStructuredLoggerWithLevel is like SetDefaultStructuredLogger but
// takes an explicit level string, letting a --log-level style flag override
// the environment. Source location is recorded when the level is DEBUG.
func SetDefaultStructuredLoggerWithLevel(module, version, level string) {
	lvl := ParseLevel(level)
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl == slog.LevelDebug,
	})
	logger := slog.New(handler).With(
		"module", module,
		"version", version,
	)
	slog.SetDefault(logger)
}
