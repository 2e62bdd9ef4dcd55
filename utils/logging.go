package utils

import (
	"io"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
)

// ParseLevel converts a config level name into a slog level
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Wrapf(ErrInvalidConfig, "log level %q", name)
	}
}

// NewLogger returns a text logger writing to w at the given level
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
