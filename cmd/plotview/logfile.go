package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dshills/plotview/internal/app"
)

// defaultLogFile returns $XDG_STATE_HOME/plotview/plotview.log, falling
// back to ~/.local/state.
func defaultLogFile() string {
	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(dir, "plotview", "plotview.log")
}

// openLogger opens the log file for appending. The terminal belongs to the
// UI, so logs never go to stderr. An empty path discards logs.
func openLogger(path, level string) (*app.Logger, func(), error) {
	lvl, err := app.ParseLogLevel(level)
	if err != nil {
		return nil, nil, err
	}
	if path == "" {
		return app.NullLogger, func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("log file: %w", err)
	}
	logger := app.NewLogger(app.LoggerConfig{Level: lvl, Output: f, NoColor: true})
	return logger, func() { _ = f.Close() }, nil
}
