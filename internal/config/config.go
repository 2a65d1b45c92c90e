// Package config resolves wellkit's runtime configuration. Precedence,
// lowest to highest: built-in defaults, the YAML config file, then
// WELLKIT_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Backend names accepted for Storage.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config holds wellkit configuration
type Config struct {
	// DataDir is where all wellkit state lives.
	// Default: ~/.wellkit
	DataDir string `yaml:"data_dir"`

	// DatasetPath is the static drug-interaction dataset file. A
	// missing or corrupt file degrades detection to an empty index
	// with a warning; it never fails a command.
	// Default: <DataDir>/interactions.json
	DatasetPath string `yaml:"dataset_path"`

	// Storage selects the persistence backend: "json" or "sqlite".
	// Default: "json"
	Storage string `yaml:"storage"`

	// StorePath is the backend's data file.
	// Default: <DataDir>/wellkit.json or <DataDir>/wellkit.db
	StorePath string `yaml:"store_path"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return &Config{
		DataDir: filepath.Join(home, ".wellkit"),
		Storage: BackendJSON,
	}
}

// Load resolves the effective configuration: defaults, then the config
// file at <DataDir>/config.yaml (or WELLKIT_CONFIG), then environment
// variables. Derived paths are filled in last.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	// WELLKIT_DATA_DIR has to apply before the config file is located.
	if val := os.Getenv("WELLKIT_DATA_DIR"); val != "" {
		cfg.DataDir = val
	}

	path := filepath.Join(cfg.DataDir, "config.yaml")
	if val := os.Getenv("WELLKIT_CONFIG"); val != "" {
		path = val
	}
	if err := cfg.applyFile(path); err != nil {
		return nil, err
	}

	cfg.applyEnv()
	cfg.fillDerived()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFile merges settings from a YAML file. A missing file is fine;
// an unparsable one is an error worth surfacing since the user wrote it
// by hand.
func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// applyEnv overrides from WELLKIT_* environment variables.
func (c *Config) applyEnv() {
	if val := os.Getenv("WELLKIT_DATA_DIR"); val != "" {
		c.DataDir = val
	}
	if val := os.Getenv("WELLKIT_DATASET_PATH"); val != "" {
		c.DatasetPath = val
	}
	if val := os.Getenv("WELLKIT_STORAGE"); val != "" {
		c.Storage = val
	}
	if val := os.Getenv("WELLKIT_STORE_PATH"); val != "" {
		c.StorePath = val
	}
}

// fillDerived computes paths that default relative to DataDir.
func (c *Config) fillDerived() {
	if c.DatasetPath == "" {
		c.DatasetPath = filepath.Join(c.DataDir, "interactions.json")
	}
	if c.StorePath == "" {
		switch c.Storage {
		case BackendSQLite:
			c.StorePath = filepath.Join(c.DataDir, "wellkit.db")
		default:
			c.StorePath = filepath.Join(c.DataDir, "wellkit.json")
		}
	}
}

// Validate checks that the configuration has usable values
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}
	if c.Storage != BackendJSON && c.Storage != BackendSQLite {
		return fmt.Errorf("storage must be %q or %q (got %q)", BackendJSON, BackendSQLite, c.Storage)
	}
	return nil
}
