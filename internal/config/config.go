// Package config provides application configuration for claude-sessions.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// DefaultRefreshInterval is used when the config does not set one.
const DefaultRefreshInterval = 3 * time.Second

// Config holds the claude-sessions configuration.
type Config struct {
	ProcessName     string `json:"process_name"`               // assistant CLI executable name
	ProjectsDir     string `json:"projects_dir,omitempty"`     // storage root override (empty = ~/.claude/projects)
	RefreshInterval string `json:"refresh_interval,omitempty"` // e.g. "3s"
	Language        string `json:"language,omitempty"`         // UI language tag, e.g. "es"
}

// RefreshDuration returns the parsed refresh interval (default: 3s).
func (c Config) RefreshDuration() time.Duration {
	if c.RefreshInterval != "" {
		if d, err := time.ParseDuration(c.RefreshInterval); err == nil && d > 0 {
			return d
		}
	}
	return DefaultRefreshInterval
}

// Dir returns the path to the .claude-sessions directory.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".claude-sessions"), nil
}

// Path returns the path to the main config file.
func Path() (string, error) {
	configDir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.json"), nil
}

// Default returns a configuration with all defaults set.
func Default() Config {
	return Config{
		ProcessName:     "claude",
		RefreshInterval: "3s",
	}
}

// Load loads the configuration from ~/.claude-sessions/config.json.
// A missing file yields defaults, persisted to disk for next time.
func Load() (Config, error) {
	configPath, err := Path()
	if err != nil {
		return Default(), err
	}
	return loadFrom(configPath)
}

func loadFrom(configPath string) (Config, error) {
	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		cfg := Default()
		if saveErr := saveTo(configPath, cfg); saveErr != nil {
			return cfg, nil // defaults still usable when the write fails
		}
		return cfg, nil
	} else if err != nil {
		return Default(), err
	}

	// Start from defaults so missing keys keep their default values.
	config := Default()
	if err := json.Unmarshal(data, &config); err != nil {
		return Default(), err
	}

	if config.ProcessName == "" {
		config.ProcessName = "claude"
	}

	return config, nil
}

// Save saves the configuration to ~/.claude-sessions/config.json.
func Save(config Config) error {
	configPath, err := Path()
	if err != nil {
		return err
	}
	return saveTo(configPath, config)
}

func saveTo(configPath string, config Config) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}
