package logger

import (
	"io"
	"log/slog"
	"os"

	"go.uber.org/fx/fxevent"
)

// New creates a preconfigured JSON slog.Logger writing to stdout.
func New(level slog.Level) *slog.Logger {
	return newWithWriter(os.Stdout, level)
}

func newWithWriter(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}

// NewFxLogger routes fx container events through the application logger.
func NewFxLogger(l *slog.Logger) fxevent.Logger {
	return &fxevent.SlogLogger{Logger: l.With(slog.String("component", "fx"))}
}
