// Package config loads the dashboard configuration from YAML, applying
// defaults for anything unset. A missing config file is not an error — the
// defaults describe a working dashboard.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the dashboard configuration.
type Config struct {
	// Dataset points at the JSON building records: an http(s) URL or a
	// local file path.
	Dataset struct {
		Source string `yaml:"source"`
	} `yaml:"dataset"`

	DefaultView string `yaml:"defaultView"`

	Histogram struct {
		TargetBins    int     `yaml:"targetBins"`
		SanityCeiling float64 `yaml:"sanityCeiling"`
	} `yaml:"histogram"`

	Narrative struct {
		Model    string `yaml:"model"`
		Endpoint string `yaml:"endpoint"`
		// The API key is read from GEMINI_API_KEY, never from this file.
	} `yaml:"narrative"`

	ExportDir string `yaml:"exportDir"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.Dataset.Source = "data/buildings.json"
	cfg.DefaultView = "overview"
	cfg.Histogram.TargetBins = 12
	cfg.Histogram.SanityCeiling = 0
	cfg.ExportDir = "exports"
	return cfg
}

// Load reads path over the defaults. A missing file returns the defaults;
// a malformed file is an error.
func Load(path string, logger *slog.Logger) (*Config, error) {
	if logger == nil {
		logger = slog.Default()
	}
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug("no config file, using defaults", slog.String("path", path))
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if cfg.Histogram.TargetBins <= 0 {
		cfg.Histogram.TargetBins = 12
	}
	logger.Debug("config loaded", slog.String("path", path))
	return cfg, nil
}
