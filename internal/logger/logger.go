// File: internal/logger/logger.go
package logger

import (
	"io"
	"log/slog"
)

// Creates the application logger. The level is read through a LevelVar so
// --debug can raise verbosity after the command line has been parsed.
// Logs go to w (stderr in the CLI) to keep stdout for command output.
func NewLogger(w io.Writer, level *slog.LevelVar) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(w, opts)

	logger := slog.New(handler)

	slog.SetDefault(logger)
	return logger
}
