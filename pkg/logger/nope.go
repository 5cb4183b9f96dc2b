package logger

import (
	"io"
	"log/slog"
)

// NewNope returns a logger that discards everything.
// It is the default until a real logger is configured.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
