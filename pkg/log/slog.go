package log

import (
	"context"
	"log/slog"
)

// SlogLogger adapts a *slog.Logger to Logger.
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger wraps l. A nil l uses slog.Default() at call time.
func NewSlogLogger(l *slog.Logger) *SlogLogger {
	return &SlogLogger{logger: l}
}

// GetLogger returns a Logger backed by the current slog default.
func GetLogger() Logger {
	return &SlogLogger{}
}

func (s *SlogLogger) base() *slog.Logger {
	if s.logger == nil {
		return slog.Default()
	}
	return s.logger
}

func (s *SlogLogger) Debug(msg string, fields ...any) {
	s.base().Debug(msg, fields...)
}

func (s *SlogLogger) Info(msg string, fields ...any) {
	s.base().Info(msg, fields...)
}

func (s *SlogLogger) Warn(msg string, fields ...any) {
	s.base().Warn(msg, fields...)
}

func (s *SlogLogger) Error(msg string, fields ...any) {
	if len(fields) > 0 {
		if err, ok := fields[0].(error); ok {
			fields = append([]any{ErrAttr(err)}, fields[1:]...)
		}
	}
	s.base().Error(msg, fields...)
}

func (s *SlogLogger) With(fields ...any) Logger {
	return &SlogLogger{logger: s.base().With(fields...)}
}

func (s *SlogLogger) Enabled(ctx context.Context, level Level) bool {
	return s.base().Enabled(ctx, slog.Level(level))
}
