package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// Run from an empty directory so no config.toml is picked up.
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Theme != "dark" {
		t.Errorf("Theme = %q, want dark", cfg.Theme)
	}
	if cfg.ResetKey != "R" {
		t.Errorf("ResetKey = %q, want R", cfg.ResetKey)
	}
	if cfg.Icons != "unicode" {
		t.Errorf("Icons = %q, want unicode", cfg.Icons)
	}
	if !cfg.MotionEnabled() {
		t.Error("MotionEnabled() = false by default, want true")
	}
	if cfg.Debug.Enabled {
		t.Error("Debug.Enabled = true by default, want false")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	content := `
theme = "LIGHT"
reset_key = "0"
motion = false

[debug]
enabled = true
file = "debug.log"
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Theme != "light" {
		t.Errorf("Theme = %q, want light (normalized)", cfg.Theme)
	}
	if cfg.ResetKey != "0" {
		t.Errorf("ResetKey = %q, want 0", cfg.ResetKey)
	}
	if cfg.MotionEnabled() {
		t.Error("MotionEnabled() = true, want false")
	}
	if !cfg.Debug.Enabled || cfg.Debug.File != "debug.log" {
		t.Errorf("Debug = %+v", cfg.Debug)
	}
}

func TestLoadBadThemeFallsBack(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`theme = "solarized"`), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Theme != "dark" {
		t.Errorf("Theme = %q, want dark fallback", cfg.Theme)
	}
}
