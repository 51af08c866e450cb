package logger

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// Logger represents application logger.
type Logger struct {
	*slog.Logger
}

// New creates new Logger instance with the specified level writing plain
// key=value lines to stdout.
func New(level int) *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.Level(level)})),
	}
}

// NewWithFormat creates a Logger for the given format. "tint" produces
// colored output meant for a terminal; anything else falls back to New.
func NewWithFormat(level int, format string) *Logger {
	if format != "tint" {
		return New(level)
	}
	return &Logger{
		Logger: slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.Level(level),
			TimeFormat: time.Kitchen,
		})),
	}
}

// With returns a Logger that includes the given attributes in each record.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...)}
}

// Fatal is equivalent to Error followed by os.Exit(1).
func (l *Logger) Fatal(msg string, args ...any) {
	l.Logger.Error(msg, args...)
	os.Exit(1)
}
