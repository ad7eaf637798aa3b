package config

import (
	"os"
	"path/filepath"
	"testing"
)

// chdir switches to dir for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(orig) })
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvConfig, EnvDataFile, EnvPrompt, EnvLogLevel} {
		t.Setenv(k, "")
	}
}

func TestResolve_NoConfigFile(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	cfg, used, err := Resolve("")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if used != "" {
		t.Errorf("config file = %q, want none", used)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestResolve_SearchPath(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	chdir(t, dir)
	if err := os.WriteFile("kv.toml", []byte("log_level = \"info\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, used, err := Resolve("")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if used != "kv.toml" {
		t.Errorf("config file = %q, want kv.toml", used)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
}

func TestResolve_ExplicitMissing(t *testing.T) {
	clearEnv(t)
	_, _, err := Resolve(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Resolve with missing explicit path should fail")
	}
}

func TestResolve_EnvConfigAndOverride(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("data_file: file.txt\nlog_level: info\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvConfig, path)
	t.Setenv(EnvLogLevel, "debug")

	cfg, used, err := Resolve("")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if used != path {
		t.Errorf("config file = %q, want %q", used, path)
	}
	if want := filepath.Join(dir, "file.txt"); cfg.DataFile != want {
		t.Errorf("DataFile = %q, want %q", cfg.DataFile, want)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want env override %q", cfg.LogLevel, "debug")
	}
}

func TestResolve_InvalidValue(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())
	t.Setenv(EnvLogLevel, "chatty")

	if _, _, err := Resolve(""); err == nil {
		t.Fatal("Resolve should reject an invalid log level")
	}
}
