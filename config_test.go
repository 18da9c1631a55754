package advlog_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"advlog"
	"advlog/sink"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "advlog.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadSessionOptions(t *testing.T) {
	path := writeConfig(t, `
output_dir = "/var/log/app"
session_name = "nightly"
level = "warning"
style = "compact"
show_location = true
use_color = true
shared_console = true
file_mode = "append"
retention_days = 14
`)

	opts, err := advlog.LoadSessionOptions(path)
	if err != nil {
		t.Fatalf("LoadSessionOptions returned error: %v", err)
	}
	if opts.OutputDir != "/var/log/app" || opts.SessionName != "nightly" {
		t.Fatalf("paths wrong: %+v", opts)
	}
	if opts.Level != "warning" || opts.Style != "compact" {
		t.Fatalf("level/style wrong: %+v", opts)
	}
	if !opts.ShowLocation || !opts.UseColor || !opts.SharedConsole {
		t.Fatalf("flags wrong: %+v", opts)
	}
	if opts.FileMode != sink.ModeAppend || opts.RetentionDays != 14 {
		t.Fatalf("file settings wrong: %+v", opts)
	}
}

func TestLoadSessionOptionsRejectsBadLevel(t *testing.T) {
	path := writeConfig(t, `level = "shouty"`)
	if _, err := advlog.LoadSessionOptions(path); !errors.Is(err, advlog.ErrConfiguration) {
		t.Fatalf("err = %v, want ErrConfiguration", err)
	}
}

func TestLoadSessionOptionsRejectsBadFileMode(t *testing.T) {
	path := writeConfig(t, `file_mode = "overwrite"`)
	if _, err := advlog.LoadSessionOptions(path); !errors.Is(err, advlog.ErrConfiguration) {
		t.Fatalf("err = %v, want ErrConfiguration", err)
	}
}

func TestLoadSessionOptionsMissingFile(t *testing.T) {
	if _, err := advlog.LoadSessionOptions(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
