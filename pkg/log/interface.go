// Package log provides a structured logging interface for gofca.
//
// This package defines a minimal, slog-compatible logging interface with two
// backends: the standard log/slog JSON handler (see SetupLogger) and zerolog
// (see NewZerologLogger). The formal concept analysis pipeline logs through
// this interface only, so callers can switch backends or silence logging
// without touching the algorithms.
//
// Example usage:
//
//	logger := log.GetLogger().With(
//	    log.AlgorithmKey, log.AlgorithmNextClosure,
//	    log.ObjectsKey, 5,
//	)
//	logger.Info("Enumeration finished",
//	    log.ConceptsKey, 13,
//	    log.DurationMsKey, 1,
//	)

package log

import (
	"context"
)

// Logger defines a structured logging interface compatible with Go's log/slog.
//
// Fields are alternating key-value pairs. The With method returns a child
// logger whose fields are attached to every subsequent record.
type Logger interface {
	// Debug logs a debug-level message, typically per-step diagnostics such
	// as individual Next-Closure transitions.
	Debug(msg string, fields ...any)

	// Info logs an info-level message.
	//
	// Example:
	//   logger.Info("Analysis finished",
	//       log.ConceptsKey, 13,
	//       log.ConsistentKey, true,
	//   )
	Info(msg string, fields ...any)

	// Warn logs a warning-level message.
	Warn(msg string, fields ...any)

	// Error logs an error-level message. Pass the error under ErrAttrKey
	// ("error") so that backends can attach a stack trace.
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits log records at the given level.
	// Use it to skip building expensive fields, e.g. label resolution of
	// every visited closed set at debug level.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, compatible with slog.Level.
type Level int

// Standard logging levels, values are compatible with slog.Level.
const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
