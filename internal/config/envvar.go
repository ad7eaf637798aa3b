package config

import "os"

// Environment variable names for kv configuration.
const (
	EnvConfig   = "KV_CONFIG"    // Path to the config file
	EnvDataFile = "KV_DATA_FILE" // Override the data file path
	EnvPrompt   = "KV_PROMPT"    // Override the shell prompt
	EnvLogLevel = "KV_LOG_LEVEL" // Override the log level
)

// ApplyEnvOverrides overrides cfg fields from KV_* environment variables.
// Empty variables are ignored.
func ApplyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvDataFile); v != "" {
		cfg.DataFile = v
	}
	if v := os.Getenv(EnvPrompt); v != "" {
		cfg.Prompt = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
}
