package logger

import (
	"log/slog"
	"os"
)

// Initialize installs the pretty handler as the process-wide default.
// Diagnostics stay quiet unless debug is requested.
func Initialize(debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}

	handler := NewPrettyHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
