// Package config loads the darkpool configuration from TOML files.
// Everything has a default; a missing config file is not an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is the full application configuration.
type Config struct {
	Prompt     string `koanf:"prompt"`     // current-line marker
	TickMS     int    `koanf:"tick_ms"`    // UI frame flush interval
	Scrollback int    `koanf:"scrollback"` // transcript ring capacity in lines

	Theme Theme `koanf:"theme"`
}

// Theme holds terminal colors (ANSI-256 or hex, anything lipgloss accepts).
type Theme struct {
	Text   string `koanf:"text"`
	Prompt string `koanf:"prompt"`
	Cursor string `koanf:"cursor"`
	Muted  string `koanf:"muted"`
}

// Default returns the stock green-phosphor configuration.
func Default() *Config {
	return &Config{
		Prompt:     "> ",
		TickMS:     16,
		Scrollback: 10000,
		Theme: Theme{
			Text:   "46",
			Prompt: "46",
			Cursor: "46",
			Muted:  "241",
		},
	}
}

// Load reads config files in priority order (last wins) on top of the
// defaults. Files that don't exist are skipped.
func Load() (*Config, error) {
	k := koanf.New(".")

	for _, path := range configPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Clamp values a bad file could zero out.
	if cfg.TickMS < 1 {
		cfg.TickMS = 16
	}
	if cfg.Scrollback < 1 {
		cfg.Scrollback = 10000
	}

	return cfg, nil
}

// Dir returns the darkpool configuration directory.
// Respects XDG_CONFIG_HOME on Unix, APPDATA on Windows.
func Dir() string {
	var base string

	if runtime.GOOS == "windows" {
		base = os.Getenv("APPDATA")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	} else {
		base = os.Getenv("XDG_CONFIG_HOME")
		if base == "" {
			home, _ := os.UserHomeDir()
			base = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(base, "darkpool")
}

func configPaths() []string {
	return []string{
		filepath.Join(Dir(), "config.toml"),
		"config.toml", // pwd, highest priority
	}
}
