// Package logging builds the slog logger of the [log] section.
package logging

import (
	"github.com/isunjn/snlc/config"

	"io"
	"log/slog"
	"strings"
)

func Level(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	}
	return slog.LevelWarn
}

// New returns a logger writing to w in the configured format.
func New(cfg config.LogConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: Level(cfg.Level)}
	var h slog.Handler
	if cfg.Format == config.FormatJSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h)
}

// Discard is the logger of stages that were not given one.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
