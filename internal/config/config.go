// Package config handles kv configuration loading and defaults.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config represents the contents of kv.yaml (or kv.toml).
type Config struct {
	DataFile string `yaml:"data_file" toml:"data_file"`
	Prompt   string `yaml:"prompt" toml:"prompt"`
	LogLevel string `yaml:"log_level" toml:"log_level"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		DataFile: "data.txt",
		Prompt:   "> ",
		LogLevel: "warn",
	}
}

// Load reads the config file at path and applies defaults for missing
// fields. The file extension selects the parser: .toml for TOML, anything
// else for YAML.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	if isTOML(path) {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing TOML config %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	// A relative data file is relative to the config file, not the cwd.
	if cfg.DataFile != "" && !filepath.IsAbs(cfg.DataFile) {
		cfg.DataFile = filepath.Join(filepath.Dir(path), cfg.DataFile)
	}
	if cfg.DataFile == "" {
		cfg.DataFile = filepath.Join(filepath.Dir(path), Default().DataFile)
	}

	return cfg, nil
}

// Write writes the provided configuration to path, as TOML when path ends
// in .toml and YAML otherwise.
func Write(path string, cfg Config) error {
	var data []byte
	if isTOML(path) {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return fmt.Errorf("encoding config: %w", err)
		}
		data = buf.Bytes()
	} else {
		var err error
		data, err = yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("encoding config: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
