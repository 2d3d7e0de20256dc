// Package logging provides file-based logging. The TUI owns the terminal,
// so log output goes to logs/taskman.log under the state directory.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New creates a logger writing to stateDir/logs/taskman.log. If stateDir is
// empty, or the log file cannot be opened, logging is disabled.
// The returned close function is a no-op for a disabled logger.
func New(stateDir string, level slog.Level) (*slog.Logger, func() error) {
	if stateDir == "" {
		return discard(level), func() error { return nil }
	}

	logsDir := filepath.Join(stateDir, "logs")
	if err := os.MkdirAll(logsDir, 0o750); err != nil {
		return discard(level), func() error { return nil }
	}

	path := filepath.Join(logsDir, "taskman.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640)
	if err != nil {
		return discard(level), func() error { return nil }
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() error {
		if err := f.Close(); err != nil {
			return fmt.Errorf("close log file: %w", err)
		}
		return nil
	}
}

func discard(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: level}))
}
