package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
)

// SetupLogger installs a JSON slog logger on stdout as the slog default.
func SetupLogger(loglevel string) error {
	return SetupLoggerTo(os.Stdout, loglevel)
}

// SetupLoggerTo is SetupLogger with an explicit destination.
func SetupLoggerTo(w io.Writer, loglevel string) error {
	level, err := ParseLevel(loglevel)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(NewHandler(w, level)))
	return nil
}

// NewHandler builds the JSON handler used by SetupLogger. Level and message
// keys are renamed to "severity" and "message".
func NewHandler(w io.Writer, level slog.Level) slog.Handler {
	ops := slog.HandlerOptions{
		AddSource: true,
		Level:     level,
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			switch attr.Key {
			case slog.LevelKey:
				attr.Key = "severity"
			case slog.MessageKey:
				attr.Key = "message"
			}
			return attr
		},
	}
	return WrapByErrFmtHandler(slog.NewJSONHandler(w, &ops))
}

// ParseLevel converts "debug", "info", "warn" or "error" to a slog level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level: %s", level)
	}
}

// ErrAttr is a wrapper to pass err to slog.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}
