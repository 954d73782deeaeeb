package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/adilsezer/lithuaningo-sub000/internal/config"
)

// NewLogger creates a *slog.Logger from cfg writing to stderr and installs
// it with slog.SetDefault.
//
// Format "json" produces structured output; "text" is human-readable and
// carries source positions at debug level.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(cfg, os.Stderr)
	slog.SetDefault(logger)
	return logger
}

func newLogger(cfg config.LogConfig, w io.Writer) *slog.Logger {
	level := parseLevel(cfg.Level)
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug && !strings.EqualFold(cfg.Format, "json"),
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
