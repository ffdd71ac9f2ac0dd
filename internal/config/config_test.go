package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Export.Credit != "Made with Blockbench" {
		t.Errorf("expected default credit, got %q", cfg.Export.Credit)
	}
	if cfg.Export.Minified {
		t.Error("expected minified to be false by default")
	}
	if !cfg.Export.CubeNames {
		t.Error("expected cube names to be enabled by default")
	}
	if cfg.Export.Textures != nil {
		t.Error("expected textures to follow the project by default")
	}

	if cfg.Bounds.Low != -16 || cfg.Bounds.High != 32 {
		t.Errorf("expected bounds -16..32, got %v..%v", cfg.Bounds.Low, cfg.Bounds.High)
	}
	if cfg.Bounds.Mode != "move" {
		t.Errorf("expected bounds mode 'move', got %s", cfg.Bounds.Mode)
	}

	if time.Duration(cfg.Watch.Debounce) != 250*time.Millisecond {
		t.Errorf("expected debounce 250ms, got %v", time.Duration(cfg.Watch.Debounce))
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()

	yamlContent := `
export:
  destination: "pack/models"
  credit: "Workshop"
  minified: true
  cube_names: false
  item_model: "lamp"
  textures: false
  extra:
    parent: "block/block"

bounds:
  low: -8
  high: 24
  mode: "clamp"

watch:
  debounce: 1s

logging:
  level: "debug"
  log_file: "carpenter.log"
`

	tomlContent := `
[export]
destination = "pack/models"
credit = "Workshop"
minified = true
cube_names = false
item_model = "lamp"
textures = false

[export.extra]
parent = "block/block"

[bounds]
low = -8.0
high = 24.0
mode = "clamp"

[watch]
debounce = "1s"

[logging]
level = "debug"
log_file = "carpenter.log"
`

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"yaml", "carpenter.yaml", yamlContent},
		{"toml", "carpenter.toml", tomlContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(tmpDir, tt.file)
			if err := os.WriteFile(configPath, []byte(tt.content), 0644); err != nil {
				t.Fatalf("failed to write test config: %v", err)
			}

			cfg := Default()
			if err := loadFromFile(cfg, configPath); err != nil {
				t.Fatalf("failed to load config: %v", err)
			}

			if cfg.Export.Destination != "pack/models" {
				t.Errorf("expected destination pack/models, got %s", cfg.Export.Destination)
			}
			if cfg.Export.Credit != "Workshop" {
				t.Errorf("expected credit Workshop, got %s", cfg.Export.Credit)
			}
			if !cfg.Export.Minified {
				t.Error("expected minified to be true")
			}
			if cfg.Export.CubeNames {
				t.Error("expected cube names to be false")
			}
			if cfg.Export.ItemModel != "lamp" {
				t.Errorf("expected item model lamp, got %s", cfg.Export.ItemModel)
			}
			if cfg.Export.Textures == nil || *cfg.Export.Textures {
				t.Error("expected textures to be false")
			}
			if cfg.Export.Extra["parent"] != "block/block" {
				t.Errorf("expected extra parent block/block, got %v", cfg.Export.Extra["parent"])
			}

			if cfg.Bounds.Low != -8 || cfg.Bounds.High != 24 {
				t.Errorf("expected bounds -8..24, got %v..%v", cfg.Bounds.Low, cfg.Bounds.High)
			}
			if cfg.Bounds.Mode != "clamp" {
				t.Errorf("expected mode clamp, got %s", cfg.Bounds.Mode)
			}
			if time.Duration(cfg.Watch.Debounce) != time.Second {
				t.Errorf("expected debounce 1s, got %v", time.Duration(cfg.Watch.Debounce))
			}

			if cfg.Logging.Level != "debug" {
				t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
			}
			if cfg.Logging.LogFile != "carpenter.log" {
				t.Errorf("expected log file 'carpenter.log', got %s", cfg.Logging.LogFile)
			}
		})
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"yaml syntax", "bad.yaml", "bounds:\n  low: not a number\n  invalid syntax here\n"},
		{"toml syntax", "bad.toml", "[bounds\nlow = 1\n"},
		{"bad duration", "duration.yaml", "watch:\n  debounce: soon\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(tmpDir, tt.file)
			if err := os.WriteFile(configPath, []byte(tt.content), 0644); err != nil {
				t.Fatalf("failed to write test config: %v", err)
			}
			if err := loadFromFile(Default(), configPath); err == nil {
				t.Error("expected error loading invalid config, got nil")
			}
		})
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/carpenter.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestLoadFromFileUnknownFormat(t *testing.T) {
	err := loadFromFile(Default(), "carpenter.ini")
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	t.Setenv("HOME", tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, "carpenter.toml"), []byte("[bounds]\nlow = 0.0\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}
	if path := findConfigFile(); path != "./carpenter.toml" {
		t.Errorf("expected ./carpenter.toml, got %q", path)
	}

	// YAML wins over TOML in the same directory.
	if err := os.WriteFile(filepath.Join(tmpDir, "carpenter.yaml"), []byte("bounds:\n  low: 0\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}
	if path := findConfigFile(); path != "./carpenter.yaml" {
		t.Errorf("expected ./carpenter.yaml, got %q", path)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
		verify  func(*testing.T, *Config)
	}{
		{
			name: "debug flag",
			args: []string{"-debug"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
		},
		{
			name: "output and item model",
			args: []string{"-o", "out", "-item-model", "lamp"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Export.Destination != "out" {
					t.Errorf("expected destination out, got %s", cfg.Export.Destination)
				}
				if cfg.Export.ItemModel != "lamp" {
					t.Errorf("expected item model lamp, got %s", cfg.Export.ItemModel)
				}
			},
		},
		{
			name: "textures false",
			args: []string{"-textures", "false"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Export.Textures == nil || *cfg.Export.Textures {
					t.Error("expected textures to be false")
				}
			},
		},
		{
			name:    "textures invalid",
			args:    []string{"-textures", "maybe"},
			wantErr: true,
		},
		{
			name: "minify",
			args: []string{"-minify"},
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Export.Minified {
					t.Error("expected minified")
				}
			},
		},
		{
			name: "empty credit",
			args: []string{"-credit", ""},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Export.Credit != "" {
					t.Errorf("expected credit to be removed, got %q", cfg.Export.Credit)
				}
			},
		},
		{
			name: "credit untouched",
			args: nil,
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Export.Credit != "Made with Blockbench" {
					t.Errorf("expected default credit, got %q", cfg.Export.Credit)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := flag.NewFlagSet("export", flag.ContinueOnError)
			flags := BindFlags(fs)
			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("failed to parse flags: %v", err)
			}

			cfg := Default()
			err := flags.apply(cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("got error=%v, wantErr=%v", err, tt.wantErr)
			}
			if tt.verify != nil {
				tt.verify(t, cfg)
			}
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "carpenter.yaml")

	yamlContent := `
export:
  destination: "from-file"
  item_model: "file-model"
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	flags := BindFlags(fs)
	if err := fs.Parse([]string{"-config", configPath, "-o", "from-flag"}); err != nil {
		t.Fatalf("failed to parse flags: %v", err)
	}

	cfg, err := Load(flags)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Export.Destination != "from-flag" {
		t.Errorf("expected destination from flag, got %s", cfg.Export.Destination)
	}
	if cfg.Export.ItemModel != "file-model" {
		t.Errorf("expected item model from file, got %s", cfg.Export.ItemModel)
	}
}

func TestLoadNilFlags(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)
	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	t.Setenv("HOME", tmpDir)

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Bounds.Mode != "move" {
		t.Errorf("expected defaults, got mode %s", cfg.Bounds.Mode)
	}
}

func TestSaveTo(t *testing.T) {
	tmpDir := t.TempDir()

	for _, name := range []string{"nested/carpenter.yaml", "nested/carpenter.toml"} {
		t.Run(filepath.Ext(name), func(t *testing.T) {
			path := filepath.Join(tmpDir, name)

			cfg := Default()
			cfg.Export.Destination = "saved"
			cfg.Watch.Debounce = Duration(2 * time.Second)
			if err := cfg.SaveTo(path); err != nil {
				t.Fatalf("failed to save config: %v", err)
			}

			loaded := Default()
			if err := loadFromFile(loaded, path); err != nil {
				t.Fatalf("failed to reload config: %v", err)
			}
			if loaded.Export.Destination != "saved" {
				t.Errorf("expected destination saved, got %s", loaded.Export.Destination)
			}
			if time.Duration(loaded.Watch.Debounce) != 2*time.Second {
				t.Errorf("expected debounce 2s, got %v", time.Duration(loaded.Watch.Debounce))
			}
		})
	}

	if err := Default().SaveTo(filepath.Join(tmpDir, "carpenter.json")); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}
