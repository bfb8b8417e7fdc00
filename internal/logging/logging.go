// Package logging provides structured logging setup for the tg CLI.
package logging

import (
	"log/slog"
	"os"
)

// Setup initializes the default slog logger. Logs go to stderr so they
// never mix with command output; verbose mode surfaces per-request
// debug records.
func Setup(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}
