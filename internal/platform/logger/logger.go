// Package logger provides structured logging functionality for the application.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/phrazzld/kdc-shelver/internal/config"
)

// ErrUnknownFormat is returned when the configured output format is neither
// "json" nor "text".
var ErrUnknownFormat = errors.New("unknown log format")

// Setup initializes and configures the application's logging system based on
// the provided configuration. It creates a structured logger with the
// appropriate level and format, writing to w (stderr when w is nil), and sets
// it as the default logger for the application.
func Setup(cfg config.LogConfig, w io.Writer) (*slog.Logger, error) {
	if w == nil {
		w = os.Stderr
	}

	// Parse the log level from configuration (case-insensitive)
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		// If the log level is invalid, use info level as default and log a warning
		level = slog.LevelInfo

		tmpLogger := slog.New(slog.NewTextHandler(w, nil))
		tmpLogger.Warn("invalid log level configured, using default level",
			"configured_level", cfg.Level,
			"default_level", "info")
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	case "text", "":
		handler = slog.NewTextHandler(w, opts)
	default:
		return nil, ErrUnknownFormat
	}

	logger := slog.New(handler)

	// Set this logger as the default for the application
	// This allows using the slog package functions directly (slog.Info, slog.Error, etc.)
	slog.SetDefault(logger)

	return logger, nil
}
