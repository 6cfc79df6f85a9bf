package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if cfg.Analysis.Top != nil || cfg.Output.Format != nil || cfg.History.Save != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestLoadConfigDecodesSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[analysis]
top = 10
wpm = 180.5
ignore-file = "/tmp/stop.txt"

[output]
format = "md"

[history]
save = false
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Analysis.Top == nil || *cfg.Analysis.Top != 10 {
		t.Fatalf("unexpected top: %v", cfg.Analysis.Top)
	}
	if cfg.Analysis.Longest != nil {
		t.Fatalf("expected longest unset")
	}
	if cfg.Analysis.WPM == nil || *cfg.Analysis.WPM != 180.5 {
		t.Fatalf("unexpected wpm: %v", cfg.Analysis.WPM)
	}
	if cfg.Analysis.IgnoreFile == nil || *cfg.Analysis.IgnoreFile != "/tmp/stop.txt" {
		t.Fatalf("unexpected ignore-file: %v", cfg.Analysis.IgnoreFile)
	}
	if cfg.Output.Format == nil || *cfg.Output.Format != "md" {
		t.Fatalf("unexpected format: %v", cfg.Output.Format)
	}
	if cfg.History.Save == nil || *cfg.History.Save {
		t.Fatalf("unexpected save: %v", cfg.History.Save)
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[analysis]\ntopp = 3\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, err := LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "analysis.topp") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestDefaultPathsFollowXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_DATA_HOME", "/data")
	if got := DefaultConfigPath(); got != filepath.Join("/cfg", "wordstat", "config.toml") {
		t.Fatalf("unexpected config path %q", got)
	}
	if got := DefaultDBPath(); got != filepath.Join("/data", "wordstat", "wordstat.db") {
		t.Fatalf("unexpected db path %q", got)
	}
}
