// Package config handles exporter configuration loading and management.
package config

import (
	"fmt"
	"time"
)

// Config holds all exporter settings.
type Config struct {
	Export  ExportConfig  `yaml:"export" toml:"export"`
	Bounds  BoundsConfig  `yaml:"bounds" toml:"bounds"`
	Watch   WatchConfig   `yaml:"watch" toml:"watch"`
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
}

// ExportConfig holds defaults for model export. Destination, ItemModel and
// Textures override the project's furniture settings when set.
type ExportConfig struct {
	Destination   string         `yaml:"destination" toml:"destination"`
	Credit        string         `yaml:"credit" toml:"credit"`
	Minified      bool           `yaml:"minified" toml:"minified"`
	CubeNames     bool           `yaml:"cube_names" toml:"cube_names"`
	ResourceNames bool           `yaml:"resource_names" toml:"resource_names"` // Lowercase ASCII file names
	ItemModel     string         `yaml:"item_model" toml:"item_model"`
	Textures      *bool          `yaml:"textures,omitempty" toml:"textures,omitempty"`
	Extra         map[string]any `yaml:"extra,omitempty" toml:"extra,omitempty"` // Fields added to every document
}

// BoundsConfig holds the cube size limits used by check and fix.
type BoundsConfig struct {
	Low  float64 `yaml:"low" toml:"low"`
	High float64 `yaml:"high" toml:"high"`
	Mode string  `yaml:"mode" toml:"mode"` // move or clamp
}

// WatchConfig holds settings for the watch command.
type WatchConfig struct {
	Debounce Duration `yaml:"debounce" toml:"debounce"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// Duration is a time.Duration written as a string such as "250ms".
type Duration time.Duration

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	*d = Duration(v)
	return nil
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Export: ExportConfig{
			Credit:    "Made with Blockbench",
			Minified:  false,
			CubeNames: true,
		},
		Bounds: BoundsConfig{
			Low:  -16,
			High: 32,
			Mode: "move",
		},
		Watch: WatchConfig{
			Debounce: Duration(250 * time.Millisecond),
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
