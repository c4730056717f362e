package adapter

import (
	"io"
	"log/slog"
	"os"
)

// DebugEnv turns on debug logging when set to any non-empty value.
const DebugEnv = "MAKEPARSE_DEBUG"

// NewLogger returns a text logger writing to w at the level held by level.
// Timestamps are dropped to keep the output readable on a terminal.
func NewLogger(w io.Writer, level *slog.LevelVar) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	if level == nil {
		level = new(slog.LevelVar)
		level.Set(slog.LevelWarn)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}

			return a
		},
	}))
}

// LogLevel picks the level for the --debug flag, also honouring DebugEnv.
func LogLevel(debug bool) slog.Level {
	if debug || os.Getenv(DebugEnv) != "" {
		return slog.LevelDebug
	}

	return slog.LevelWarn
}
