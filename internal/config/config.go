// Package config handles scenectl configuration loading and management.
package config

// Config holds all tool settings.
type Config struct {
	Geometry GeometryConfig `yaml:"geometry"`
	Texture  TextureConfig  `yaml:"texture"`
	Demo     DemoConfig     `yaml:"demo"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GeometryConfig holds mesh validation settings.
type GeometryConfig struct {
	StrictArity bool `yaml:"strict_arity"` // Normals/UVs must match vertex count
}

// TextureConfig holds texture settings.
type TextureConfig struct {
	Images []string `yaml:"images"` // Image files to average
	Size   int      `yaml:"size"`   // Edge length of generated test textures
}

// DemoConfig controls the generated demo scene.
type DemoConfig struct {
	Instances int     `yaml:"instances"` // Instances of the demo mesh
	Spacing   float32 `yaml:"spacing"`   // Distance between instances along X
	Rotate    bool    `yaml:"rotate"`    // Rotate each instance around Y
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Geometry: GeometryConfig{
			StrictArity: false,
		},
		Texture: TextureConfig{
			Size: 64,
		},
		Demo: DemoConfig{
			Instances: 4,
			Spacing:   3,
			Rotate:    true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
