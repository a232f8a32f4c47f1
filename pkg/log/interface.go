// Package log provides the structured logging interface used by the
// kernel toolkit and the demo pipeline.
//
// Estimators log through the slog-shaped Logger interface with the
// ML-specific keys from attributes.go:
//
//	logger := log.GetLogger().With(log.ModelNameKey, "KernelRidgeRegression")
//	logger.Info("Training completed",
//	    log.SamplesKey, 100,
//	    log.DurationMsKey, 3,
//	)

package log

import (
	"context"
)

// Logger defines a structured logging interface compatible with log/slog.
//
// Fields are alternating key/value pairs. An error value is rendered through
// its Error method; SlogLogger additionally attaches its stack trace.
type Logger interface {
	// Debug logs detailed diagnostic information.
	Debug(msg string, fields ...any)

	// Info logs general operational information.
	Info(msg string, fields ...any)

	// Warn logs a situation that does not stop execution.
	Warn(msg string, fields ...any)

	// Error logs a failure. If the first field is an error it is logged
	// under ErrAttrKey.
	Error(msg string, fields ...any)

	// With returns a Logger that adds fields to every record.
	With(fields ...any) Logger

	// Enabled reports whether records at level would be emitted.
	Enabled(ctx context.Context, level Level) bool
}

// Level is a logging level with slog.Level compatible values.
type Level int

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

// LoggerProvider creates loggers. Tests substitute TestLoggerProvider.
type LoggerProvider interface {
	GetLogger() Logger
	GetLoggerWithName(name string) Logger
	SetLevel(level Level)
}
