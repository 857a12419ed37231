package cli

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// newLogger returns a text logger writing to w at the named level. Every
// record carries the run_id of this invocation. Unknown levels fall back
// to warn.
func newLogger(w io.Writer, level string) *slog.Logger {
	lvl := slog.LevelWarn
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelWarn
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})
	return slog.New(handler).With("run_id", newRunID())
}

// newRunID generates a UUID v7 identifying one invocation.
func newRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
