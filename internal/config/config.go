package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const DefaultDictionaryPath = "~/.config/plover/user.md"

const (
	envDictionary = "PLOVERMD_DICTIONARY"
	envIndexDir   = "PLOVERMD_INDEX_DIR"
	envConfigFile = "PLOVERMD_CONFIG"
)

// Config is the user configuration, read from config.yaml
type Config struct {
	Dictionary string `yaml:"dictionary"`
	IndexDir   string `yaml:"index_dir"`
	LogLevel   string `yaml:"log_level"`
}

// FilePath returns the location of the config file: PLOVERMD_CONFIG, or
// $XDG_CONFIG_HOME/plovermd/config.yaml
func FilePath() string {
	if env := os.Getenv(envConfigFile); env != "" {
		return env
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "plovermd", "config.yaml")
}

// Load reads the config file if there is one, then applies environment overrides.
// A missing file is not an error.
func Load() (*Config, error) {
	cfg, err := ReadFile(FilePath())
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	if cfg == nil {
		cfg = &Config{}
	}

	if env := os.Getenv(envDictionary); env != "" {
		cfg.Dictionary = env
	}
	if env := os.Getenv(envIndexDir); env != "" {
		cfg.IndexDir = env
	}
	if cfg.Dictionary == "" {
		cfg.Dictionary = DefaultDictionaryPath
	}
	return cfg, nil
}

// ReadFile parses a YAML config file
func ReadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}
