package config

import (
	"fmt"
	"strings"
)

// validLogLevels lists the accepted log_level values.
var validLogLevels = []string{"debug", "info", "warn", "error"}

// Validate checks every field of cfg. It returns an error describing every
// invalid value found, or nil if all values are valid.
func Validate(cfg Config) error {
	var errs []string

	if cfg.DataFile == "" {
		errs = append(errs, "data_file: must not be empty")
	}
	if strings.ContainsAny(cfg.Prompt, "\r\n") {
		errs = append(errs, fmt.Sprintf("prompt: must be a single line, got %q", cfg.Prompt))
	}
	if !contains(validLogLevels, cfg.LogLevel) {
		errs = append(errs, fmt.Sprintf(
			"log_level: invalid value %q (allowed: %s)",
			cfg.LogLevel, strings.Join(validLogLevels, ", ")))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
}

func contains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}
