package cmd

import (
	"encoding/json"
	"errors"
	"testing"

	"kvdb/internal/kvstore"
	"kvdb/internal/kvstore/filesystem"
)

func TestSetCmd_InfersType(t *testing.T) {
	tests := []struct {
		raw  string
		want kvstore.Value
	}{
		{"42", kvstore.Int(42)},
		{"true", kvstore.Bool(true)},
		{"hello", kvstore.Text("hello")},
	}
	for _, tt := range tests {
		app, out, _ := setupTestApp(t)

		cmd := newSetCmd(NewTestProvider(app))
		cmd.SetArgs([]string{"k", tt.raw})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("set k %s failed: %v", tt.raw, err)
		}
		if got := out.String(); got != "Value inserted\n" {
			t.Errorf("output = %q, want %q", got, "Value inserted\n")
		}
		got, ok := app.Store.Get("k")
		if !ok || !got.Equal(tt.want) {
			t.Errorf("set k %s stored %#v, want %#v", tt.raw, got, tt.want)
		}
		if data := readDataFile(t, app); data != "k="+tt.raw+"\n" {
			t.Errorf("data file = %q, want %q", data, "k="+tt.raw+"\n")
		}
	}
}

func TestSetCmd_TypeFlag(t *testing.T) {
	tests := []struct {
		args []string
		want kvstore.Value
	}{
		{[]string{"name", "alice", "--type", "text"}, kvstore.Text("alice")},
		{[]string{"count", "7", "--type", "int"}, kvstore.Int(7)},
		{[]string{"on", "false", "-t", "bool"}, kvstore.Bool(false)},
	}
	for _, tt := range tests {
		app, _, _ := setupTestApp(t)

		cmd := newSetCmd(NewTestProvider(app))
		cmd.SetArgs(tt.args)
		if err := cmd.Execute(); err != nil {
			t.Fatalf("set %v failed: %v", tt.args, err)
		}
		key := tt.args[0]
		got, _ := app.Store.Get(key)
		if !got.Equal(tt.want) {
			t.Errorf("set %v stored %#v, want %#v", tt.args, got, tt.want)
		}

		reopened, err := filesystem.Open(app.Config.DataFile)
		if err != nil {
			t.Fatalf("reopen: %v", err)
		}
		if got, _ := reopened.Get(key); !got.Equal(tt.want) {
			t.Errorf("set %v reloaded as %#v, want %#v", tt.args, got, tt.want)
		}
	}
}

func TestSetCmd_AmbiguousText(t *testing.T) {
	for _, raw := range []string{"02139", "true", "false"} {
		app, _, _ := setupTestApp(t)

		cmd := newSetCmd(NewTestProvider(app))
		cmd.SetArgs([]string{"k", raw, "--type", "text"})
		err := cmd.Execute()
		if !errors.Is(err, kvstore.ErrInvalidEntry) {
			t.Errorf("set k %s --type text error = %v, want ErrInvalidEntry", raw, err)
		}
		if !app.Store.IsEmpty() {
			t.Errorf("set k %s --type text stored a value despite failing", raw)
		}
	}
}

func TestSetCmd_TypeMismatch(t *testing.T) {
	for _, args := range [][]string{
		{"k", "abc", "--type", "int"},
		{"k", "-5", "--type", "int"},
		{"k", "yes", "--type", "bool"},
		{"k", "v", "--type", "float"},
	} {
		app, _, _ := setupTestApp(t)
		cmd := newSetCmd(NewTestProvider(app))
		cmd.SetArgs(args)
		if err := cmd.Execute(); err == nil {
			t.Errorf("set %v should fail", args)
		}
		if !app.Store.IsEmpty() {
			t.Errorf("set %v stored a value despite failing", args)
		}
	}
}

func TestSetCmd_InvalidEntry(t *testing.T) {
	app, _, _ := setupTestApp(t)

	cmd := newSetCmd(NewTestProvider(app))
	cmd.SetArgs([]string{"k", "a=b"})
	err := cmd.Execute()
	if !errors.Is(err, kvstore.ErrInvalidEntry) {
		t.Fatalf("error = %v, want ErrInvalidEntry", err)
	}
}

func TestSetCmd_JSON(t *testing.T) {
	app, out, _ := setupTestApp(t)
	app.JSON = true

	cmd := newSetCmd(NewTestProvider(app))
	cmd.SetArgs([]string{"flag", "false"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("set --json failed: %v", err)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if result["key"] != "flag" || result["type"] != "boolean" || result["value"] != false {
		t.Errorf("result = %v, want flag/boolean/false", result)
	}
}
