// Package logger provides structured logging functionality for the application.
package logger

import (
	"log/slog"
	"os"
	"strings"

	"github.com/phrazzld/arcana-api/internal/config"
)

// Setup builds the application's structured JSON logger from the configured
// log level, installs it as the process default, and returns it. An
// unrecognized level falls back to info after a warning on stderr.
func Setup(cfg config.ServerConfig) (*slog.Logger, error) {
	level, ok := parseLevel(cfg.LogLevel)
	if !ok {
		level = slog.LevelInfo

		// The JSON logger does not exist yet, so the warning goes through
		// a plain text handler on stderr
		slog.New(slog.NewTextHandler(os.Stderr, nil)).Warn(
			"invalid log level configured, using default level",
			"configured_level", cfg.LogLevel,
			"default_level", "info")
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler)

	// Installing the logger as the default lets package-level slog calls
	// (slog.Info, slog.Error, etc.) share the configured handler.
	slog.SetDefault(logger)

	return logger, nil
}

// parseLevel maps a configured level name to its slog level. Matching is
// case-insensitive; the bool reports whether the name was recognized.
func parseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
