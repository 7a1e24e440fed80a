// Package config loads the optional TOML config file. Anything missing or
// malformed falls back to defaults; config problems are never fatal.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Grid struct {
	// MaxHistory bounds the undo stack.
	MaxHistory int `toml:"max-history"`
	// DebounceMs is the persistence quiet window in milliseconds.
	DebounceMs int `toml:"debounce-ms"`
}

type Config struct {
	Grid Grid `toml:"grid"`
	// Debug enables debug-level logging when a log file is set.
	Debug bool `toml:"debug"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Grid: Grid{
			MaxHistory: 50,
			DebounceMs: 500,
		},
	}
}

// Path returns the config file location: $UTM_CONFIG, then
// $XDG_CONFIG_HOME/utm/config.toml, then ~/.config/utm/config.toml.
func Path() string {
	if v := os.Getenv("UTM_CONFIG"); v != "" {
		return v
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "utm", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "utm", "config.toml")
}

// Load reads the config at path, layering it over defaults. A missing or
// unreadable file returns defaults; a partially valid file keeps whatever
// parsed before the error.
func Load(path string) Config {
	cfg := Default()
	if path == "" {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	_, _ = toml.Decode(string(data), &cfg)
	cfg.normalize()
	return cfg
}

func (c *Config) normalize() {
	if c.Grid.MaxHistory <= 0 {
		c.Grid.MaxHistory = 50
	}
	if c.Grid.DebounceMs <= 0 {
		c.Grid.DebounceMs = 500
	}
}
