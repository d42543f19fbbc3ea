package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagScale      = flag.Int("scale", 0, "Window pixels per panel pixel")
	flagMode       = flag.String("mode", "", "Stereo display mode (side-by-side, cross-eyed, anaglyph, left, right)")
	flagSlider     = flag.Float64("slider", -1, "Initial 3D slider position (0..1)")
	flagDumpConfig = flag.String("dump-config", "", "Write the effective config to this path and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// DumpPath returns the --dump-config destination, or "" if not requested.
func DumpPath() string {
	return *flagDumpConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagScale > 0 {
		cfg.Graphics.Scale = *flagScale
	}
	if *flagMode != "" {
		cfg.Graphics.DisplayMode = *flagMode
	}
	if *flagSlider >= 0 {
		cfg.Stereo.Slider = float32(*flagSlider)
	}
}
