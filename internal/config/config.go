// Package config loads and saves the user configuration file.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the persisted user configuration.
type Config struct {
	// OutputDir is where downloads are written. Empty means the current
	// working directory.
	OutputDir string `yaml:"output_dir"`
	// MergeContainer is the container adaptive streams are merged into.
	MergeContainer string `yaml:"merge_container"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		OutputDir:      "",
		MergeContainer: "mp4",
	}
}

// SavePath returns the config file location, e.g. ~/.config/vidl/config.yml.
func SavePath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "vidl-config.yml")
	}
	return filepath.Join(base, "vidl", "config.yml")
}

// Exists reports whether a config file is present.
func Exists() bool {
	_, err := os.Stat(SavePath())
	return err == nil
}

// Load reads the config file. A missing file yields the defaults and a nil
// error; a malformed file yields an error.
func Load() (Config, error) {
	data, err := os.ReadFile(SavePath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Default(), err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}
	if cfg.MergeContainer == "" {
		cfg.MergeContainer = "mp4"
	}
	return cfg, nil
}

// LoadOrDefault reads the config file, falling back to defaults on any error.
func LoadOrDefault() Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Save writes cfg to the config file, creating parent directories as needed.
func Save(cfg Config) error {
	path := SavePath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
