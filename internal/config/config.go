// Package config loads the sash CLI configuration from a YAML file under
// the user's config directory. All fields are optional; a missing file
// yields the defaults.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Display overrides the DISPLAY environment variable when non-empty.
	Display string `yaml:"display"`

	// XAuthority overrides the XAUTHORITY environment variable when
	// non-empty.
	XAuthority string `yaml:"xauthority"`

	// PollIntervalMs is how often the open command polls its window for
	// events, in milliseconds.
	PollIntervalMs int `yaml:"poll_interval_ms"`

	// LogLevel is debug, info, warn or error.
	LogLevel string `yaml:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		PollIntervalMs: 50,
		LogLevel:       "info",
	}
}

func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "sash", "config.yaml"), nil
}

// Load reads the configuration from the standard location. A missing file
// is not an error.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.PollIntervalMs <= 0 {
		return fmt.Errorf("poll_interval_ms must be positive, got %d", c.PollIntervalMs)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be debug, info, warn or error, got %q", c.LogLevel)
	}
	return nil
}

// PollInterval returns the poll cadence as a duration.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMs) * time.Millisecond
}

// SlogLevel maps the configured level name onto slog's scale.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
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

// Apply pushes the display overrides into the process environment so the
// underlying connection picks them up.
func (c *Config) Apply() {
	if c.Display != "" {
		os.Setenv("DISPLAY", c.Display)
	}
	if c.XAuthority != "" {
		os.Setenv("XAUTHORITY", c.XAuthority)
	}
}
