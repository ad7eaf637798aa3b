package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"kvdb/internal/config"
	"kvdb/internal/kvstore"
	"kvdb/internal/kvstore/filesystem"

	"go.uber.org/zap"
)

// setupTestApp creates an App over an empty store in a temp directory.
func setupTestApp(t *testing.T) (*App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	return setupTestAppWithData(t, "")
}

// setupTestAppWithData writes content to the data file before opening it.
func setupTestAppWithData(t *testing.T, content string) (*App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.txt")
	if content != "" {
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	store, err := filesystem.Open(path)
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}

	cfg := config.Default()
	cfg.DataFile = path

	var out, errOut bytes.Buffer
	app := &App{
		Store:  store,
		Config: cfg,
		Logger: zap.NewNop(),
		In:     strings.NewReader(""),
		Out:    &out,
		Err:    &errOut,
	}
	return app, &out, &errOut
}

func mustInsert(t *testing.T, app *App, key string, value kvstore.Value) {
	t.Helper()
	if err := app.Store.Insert(key, value); err != nil {
		t.Fatalf("Insert(%q): %v", key, err)
	}
}

func readDataFile(t *testing.T, app *App) string {
	t.Helper()
	data, err := os.ReadFile(app.Config.DataFile)
	if err != nil {
		t.Fatalf("reading data file: %v", err)
	}
	return string(data)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}
