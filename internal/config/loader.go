package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Path returns the default configuration file location.
func Path() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "sashay", "config.yaml")
}

// Load loads configuration from ~/.config/sashay/config.yaml. A missing,
// unreadable or invalid file yields the defaults.
func Load() Config {
	path := Path()
	if path == "" {
		return DefaultConfig()
	}
	cfg, err := LoadFile(path)
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}

// LoadFile loads and validates configuration from path. Settings missing
// from the file keep their defaults.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("parsing config YAML: %w", err)
	}

	if file.Theme != "" {
		cfg.Theme = file.Theme
	}
	if file.LogFile != "" {
		cfg.LogFile = file.LogFile
	}
	cfg.Debug = file.Debug
	if file.Layout != nil {
		cfg.Layout = file.Layout
	}

	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadLayout reads a standalone layout file.
func LoadLayout(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading layout file: %w", err)
	}

	var n Node
	if err := yaml.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("parsing layout YAML: %w", err)
	}
	if err := n.Validate(); err != nil {
		return nil, err
	}
	return &n, nil
}
