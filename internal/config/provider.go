package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// SearchNames are the config file names looked up in the working directory
// when no path is given explicitly.
var SearchNames = []string{"kv.yaml", "kv.yml", "kv.toml"}

// Resolve builds the effective configuration. Precedence, lowest first:
// defaults, config file, KV_* environment variables. The config file is
// path if non-empty, else $KV_CONFIG, else the first of SearchNames present
// in the working directory. An explicit path that does not exist is an
// error; a missing search-path file is not. The returned string is the
// config file actually used, or "" if none.
func Resolve(path string) (Config, string, error) {
	explicit := path != ""
	if !explicit {
		if env := os.Getenv(EnvConfig); env != "" {
			path, explicit = env, true
		}
	}
	if !explicit {
		for _, name := range SearchNames {
			if _, err := os.Stat(name); err == nil {
				path = name
				break
			}
		}
	}

	cfg := Default()
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return Config{}, "", fmt.Errorf("config file %s not found", path)
			}
			return Config{}, "", err
		}
		cfg = loaded
	}

	ApplyEnvOverrides(&cfg)
	if err := Validate(cfg); err != nil {
		return Config{}, "", err
	}
	return cfg, path, nil
}
