// Package logging builds the demo's slog loggers.
package logging

import (
	"io"
	"log/slog"
)

// New creates a configured application logger writing to w. The TUI owns
// the terminal, so w is normally a file, never stdout or stderr.
// Common keys are standardized ("error" -> "err").
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
