// Package logging builds the application logger. Components receive the
// resulting *slog.Logger through their constructors; there is no package-level
// logger state.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"trafficlens/internal/config"
)

// New creates a JSON slog logger writing to stdout and a size-rotated log file.
// Rotation limits come from the config's logging settings.
func New(cfg *config.Config) *slog.Logger {
	rotator := &lumberjack.Logger{
		Filename:   filepath.Join(cfg.LogsDirectory, cfg.AppName+".log"),
		MaxSize:    cfg.LogsMaxSizeInMb,
		MaxBackups: cfg.LogsMaxBackups,
		MaxAge:     cfg.LogsMaxAgeInDays,
		Compress:   true,
	}

	var out io.Writer = io.MultiWriter(os.Stdout, rotator)
	if cfg.IsTest() {
		// Keep test output readable and avoid writing log files from test runs.
		out = io.Discard
	}

	handler := slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	})
	return slog.New(handler)
}

func parseLevel(level config.LogLevel) slog.Level {
	switch level {
	case config.LogLevelDebug:
		return slog.LevelDebug
	case config.LogLevelWarn:
		return slog.LevelWarn
	case config.LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
