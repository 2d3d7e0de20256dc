// Package config loads application configuration from config.toml under the
// user config directory, with environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// AppName is the application directory name under the config root.
const AppName = "taskman"

// Config holds application settings.
// An empty APIURL means the simulated service runs in-process.
type Config struct {
	APIURL   string `toml:"api_url"`
	StateDir string `toml:"state_dir"`
	LogLevel string `toml:"log_level"`
}

// DefaultConfigDir returns XDG_CONFIG_HOME/taskman, falling back to
// $HOME/.config/taskman.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// Load reads config.toml from dir if present and applies environment
// overrides. A missing file yields the defaults; a malformed file is an
// error so a typo is never silently ignored.
func Load(dir string) (Config, error) {
	if dir == "" {
		dir = DefaultConfigDir()
	}

	cfg := Config{
		StateDir: filepath.Join(dir, "state"),
		LogLevel: "info",
	}

	content, err := os.ReadFile(filepath.Join(dir, "config.toml"))
	switch {
	case err == nil:
		if err := toml.Unmarshal(content, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config.toml: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		// Defaults apply.
	default:
		return Config{}, fmt.Errorf("read config.toml: %w", err)
	}

	if v := os.Getenv("TASKMAN_API_URL"); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv("TASKMAN_STATE_DIR"); v != "" {
		cfg.StateDir = v
	}
	if v := os.Getenv("TASKMAN_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	return cfg, nil
}
