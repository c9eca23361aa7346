// Package config handles the YAML configuration file and persisted
// preferences.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds defaults that CLI flags may override.
type Config struct {
	Land    string  `yaml:"land,omitempty"`
	Theme   string  `yaml:"theme,omitempty"`
	Lang    string  `yaml:"lang,omitempty"`
	Spacing float64 `yaml:"spacing,omitempty"`
	FPS     int     `yaml:"fps,omitempty"`
	Timeout string  `yaml:"timeout,omitempty"`

	Snapshot Snapshot `yaml:"snapshot,omitempty"`
}

type Snapshot struct {
	Width  int     `yaml:"width,omitempty"`
	Height int     `yaml:"height,omitempty"`
	Lambda float64 `yaml:"lambda,omitempty"`
	Phi    float64 `yaml:"phi,omitempty"`
	Zoom   float64 `yaml:"zoom,omitempty"`
}

// Load reads and parses the YAML configuration file. A missing file is not
// an error and yields an empty Config.
func Load(path string) (*Config, error) {
	var cfg Config
	if path == "" {
		return &cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Prefs are the user choices remembered between runs.
type Prefs struct {
	Lang  string `yaml:"lang,omitempty"`
	Theme string `yaml:"theme,omitempty"`
}

// PrefsPath returns the default preferences location under the user config
// directory.
func PrefsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "globeview", "prefs.yaml"), nil
}

// LoadPrefs reads stored preferences; a missing file yields zero Prefs.
func LoadPrefs(path string) (Prefs, error) {
	var p Prefs
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return p, nil
	}
	if err != nil {
		return p, err
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Prefs{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return p, nil
}

// SavePrefs writes p to path, creating parent directories.
func SavePrefs(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
