package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Geometry.StrictArity {
		t.Error("expected strict_arity to be false by default")
	}
	if cfg.Texture.Size != 64 {
		t.Errorf("expected texture size 64, got %d", cfg.Texture.Size)
	}
	if len(cfg.Texture.Images) != 0 {
		t.Errorf("expected no images, got %v", cfg.Texture.Images)
	}
	if cfg.Demo.Instances != 4 {
		t.Errorf("expected 4 instances, got %d", cfg.Demo.Instances)
	}
	if cfg.Demo.Spacing != 3 {
		t.Errorf("expected spacing 3, got %f", cfg.Demo.Spacing)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), fileName)

	yamlContent := `
geometry:
  strict_arity: true

texture:
  images: ["sky.tga", "albedo.png"]
  size: 16

demo:
  instances: 10
  spacing: 1.5
  rotate: false

logging:
  level: "debug"
  log_file: "scene.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if !cfg.Geometry.StrictArity {
		t.Error("expected strict_arity to be true")
	}
	if len(cfg.Texture.Images) != 2 || cfg.Texture.Images[0] != "sky.tga" {
		t.Errorf("expected two images starting with sky.tga, got %v", cfg.Texture.Images)
	}
	if cfg.Texture.Size != 16 {
		t.Errorf("expected texture size 16, got %d", cfg.Texture.Size)
	}
	if cfg.Demo.Instances != 10 {
		t.Errorf("expected 10 instances, got %d", cfg.Demo.Instances)
	}
	if cfg.Demo.Spacing != 1.5 {
		t.Errorf("expected spacing 1.5, got %f", cfg.Demo.Spacing)
	}
	if cfg.Demo.Rotate {
		t.Error("expected rotate to be false")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "scene.log" {
		t.Errorf("expected log file 'scene.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFilePartial(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), fileName)
	if err := os.WriteFile(configPath, []byte("demo:\n  instances: 2\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Demo.Instances != 2 {
		t.Errorf("expected 2 instances, got %d", cfg.Demo.Instances)
	}
	// Untouched keys keep their defaults.
	if cfg.Demo.Spacing != 3 || cfg.Texture.Size != 64 {
		t.Errorf("expected defaults to survive, got spacing %f size %d", cfg.Demo.Spacing, cfg.Texture.Size)
	}
}

func TestLoadFromFileEmpty(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), fileName)
	if err := os.WriteFile(configPath, nil, 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	if err := loadFromFile(Default(), configPath); err != nil {
		t.Errorf("empty file should load, got %v", err)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad type", "demo:\n  instances: not a number\n"},
		{"bad syntax", "geometry:\n  strict_arity: true\n  invalid syntax here\n"},
		{"unknown key", "geometry:\n  strict_arty: true\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), fileName)
			if err := os.WriteFile(configPath, []byte(tt.content), 0644); err != nil {
				t.Fatalf("failed to write test config: %v", err)
			}
			if err := loadFromFile(Default(), configPath); err == nil {
				t.Error("expected error loading invalid YAML, got nil")
			}
		})
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/scenecore.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative size", func(c *Config) { c.Texture.Size = -1 }},
		{"negative instances", func(c *Config) { c.Demo.Instances = -3 }},
		{"unknown level", func(c *Config) { c.Logging.Level = "verbose" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
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

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, fileName), []byte("demo:\n  instances: 1\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Errorf("expected to find %s in current directory", fileName)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "strict arity flag",
			setup: func() { *flagStrictArity = true },
			verify: func(cfg *Config) {
				if !cfg.Geometry.StrictArity {
					t.Error("expected strict arity with flag")
				}
			},
			teardown: func() { *flagStrictArity = false },
		},
		{
			name:  "image flag",
			setup: func() { *flagImage = "probe.tga" },
			verify: func(cfg *Config) {
				if len(cfg.Texture.Images) != 1 || cfg.Texture.Images[0] != "probe.tga" {
					t.Errorf("expected [probe.tga], got %v", cfg.Texture.Images)
				}
			},
			teardown: func() { *flagImage = "" },
		},
		{
			name:  "zero instances flag",
			setup: func() { *flagInstances = 0 },
			verify: func(cfg *Config) {
				if cfg.Demo.Instances != 0 {
					t.Errorf("expected 0 instances, got %d", cfg.Demo.Instances)
				}
			},
			teardown: func() { *flagInstances = -1 },
		},
		{
			name:  "texture size flag",
			setup: func() { *flagTextureSize = 8 },
			verify: func(cfg *Config) {
				if cfg.Texture.Size != 8 {
					t.Errorf("expected texture size 8, got %d", cfg.Texture.Size)
				}
			},
			teardown: func() { *flagTextureSize = 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), fileName)

	yamlContent := `
texture:
  size: 32
demo:
  instances: 7
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Set flag to override config file
	*flagConfig = configPath
	*flagTextureSize = 128
	defer func() {
		*flagConfig = ""
		*flagTextureSize = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Size should be from flag (128), not file (32)
	if cfg.Texture.Size != 128 {
		t.Errorf("expected texture size 128 from flag, got %d", cfg.Texture.Size)
	}
	// Instances from file since no flag override
	if cfg.Demo.Instances != 7 {
		t.Errorf("expected 7 instances from file, got %d", cfg.Demo.Instances)
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", fileName)

	cfg := Default()
	cfg.Demo.Instances = 12
	cfg.Texture.Images = []string{"a.png"}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if loaded.Demo.Instances != 12 || len(loaded.Texture.Images) != 1 {
		t.Errorf("reloaded config differs: %+v", loaded)
	}
}
