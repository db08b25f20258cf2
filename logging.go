package main

import (
	"log/slog"
	"os"
)

// newLogger builds the process logger: info level normally, debug when the
// config asks for it.
func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
