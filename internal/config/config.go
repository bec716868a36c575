// Package config loads the cardrow configuration from TOML files.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Theme    string `koanf:"theme"`     // "dark" or "light"
	ResetKey string `koanf:"reset_key"` // key that restores natural order
	Icons    string `koanf:"icons"`     // "nerd", "unicode", or "none"
	Motion   *bool  `koanf:"motion"`    // spring animation; nil means enabled

	Debug DebugConfig `koanf:"debug"`
}

// DebugConfig controls the optional debug log. The TUI owns stdout, so debug
// output always goes to a file.
type DebugConfig struct {
	Enabled bool   `koanf:"enabled"`
	File    string `koanf:"file"` // empty means the default state-dir location
}

// MotionEnabled returns whether spring animation is on (the default).
func (c *Config) MotionEnabled() bool {
	return c.Motion == nil || *c.Motion
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		Theme:    "dark",
		ResetKey: "R",
		Icons:    "unicode",
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Theme = strings.ToLower(strings.TrimSpace(cfg.Theme))
	if cfg.Theme != "light" {
		cfg.Theme = "dark"
	}
	if cfg.ResetKey == "" {
		cfg.ResetKey = "R"
	}
	if cfg.Debug.File != "" {
		cfg.Debug.File = expandPath(cfg.Debug.File)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/cardrow/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "cardrow", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

// expandPath expands a leading ~ to the user's home directory.
func expandPath(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[1:])
}
