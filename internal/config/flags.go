package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagStrictArity = flag.Bool("strict-arity", false, "Require one normal and UV per vertex")
	flagImage       = flag.String("image", "", "Image file to average (added to the configured list)")
	flagInstances   = flag.Int("instances", -1, "Number of demo instances")
	flagTextureSize = flag.Int("texture-size", 0, "Edge length of generated test textures")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagStrictArity {
		cfg.Geometry.StrictArity = true
	}
	if *flagImage != "" {
		cfg.Texture.Images = append(cfg.Texture.Images, *flagImage)
	}
	if *flagInstances >= 0 {
		cfg.Demo.Instances = *flagInstances
	}
	if *flagTextureSize > 0 {
		cfg.Texture.Size = *flagTextureSize
	}
}
