package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config holds the launcher configuration
type Config struct {
	ExtraAppDirs []string `json:"extra_app_dirs"` // Additional desktop entry directories
	IconTheme    string   `json:"icon_theme"`     // Icon theme override (empty = follow GTK settings)
	FirstRun     bool     `json:"-"`              // Is this the first run?
}

// configFileName is the name of the config file
const configFileName = "bragi.json"

// Default returns the default configuration
func Default() *Config {
	return &Config{
		ExtraAppDirs: nil,
		IconTheme:    "",
		FirstRun:     true,
	}
}

// ConfigDir returns the directory containing bragi config files
func ConfigDir() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", "bragi")
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	return filepath.Join(ConfigDir(), configFileName)
}

// EntriesPath returns the path to the custom entries file
func EntriesPath() string {
	return filepath.Join(ConfigDir(), "entries.yaml")
}

// Load loads the configuration from file. A missing file is not an error;
// defaults reproduce stock behavior exactly.
func Load() (*Config, error) {
	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.FirstRun = false
	return &cfg, nil
}

// Save saves the configuration to file
func (c *Config) Save() error {
	configPath := ConfigPath()

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}
