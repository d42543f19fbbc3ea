// Package config handles demo configuration loading and management.
package config

import (
	"fmt"

	"github.com/Faultbox/stereotri/internal/layout"
)

// Config holds all demo settings.
type Config struct {
	Graphics    GraphicsConfig   `yaml:"graphics"`
	Stereo      StereoConfig     `yaml:"stereo"`
	Input       InputConfig      `yaml:"input"`
	Screenshots ScreenshotConfig `yaml:"screenshots"`
	Logging     LoggingConfig    `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Scale         int    `yaml:"scale"` // Window pixels per panel pixel
	Fullscreen    bool   `yaml:"fullscreen"`
	VSync         bool   `yaml:"vsync"`
	FPSLimit      int    `yaml:"fps_limit"`      // Only used without vsync
	DisplayMode   string `yaml:"display_mode"`   // See layout.Modes
	BottomPreview bool   `yaml:"bottom_preview"` // Mono view on the touch panel
}

// StereoConfig holds the camera and 3D settings.
type StereoConfig struct {
	Slider      float32 `yaml:"slider"` // Initial 3D slider position, 0..1
	FovDegrees  float32 `yaml:"fov_degrees"`
	ScreenDepth float32 `yaml:"screen_depth"`
	Near        float32 `yaml:"near"`
	Far         float32 `yaml:"far"`
}

// InputConfig holds input-to-transform tuning.
type InputConfig struct {
	Deadzone       float32 `yaml:"deadzone"`
	TranslateScale float32 `yaml:"translate_scale"` // View units per frame at full deflection
	RotateScale    float32 `yaml:"rotate_scale"`    // Radians per frame at the panel edge
	SliderStep     float32 `yaml:"slider_step"`
}

// ScreenshotConfig holds screenshot output settings.
type ScreenshotConfig struct {
	Dir       string `yaml:"dir"`
	CrossEyed bool   `yaml:"cross_eyed"` // Right image on the left
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Scale:         2,
			Fullscreen:    false,
			VSync:         true,
			FPSLimit:      60,
			DisplayMode:   string(layout.SideBySide),
			BottomPreview: true,
		},
		Stereo: StereoConfig{
			Slider:      0.5,
			FovDegrees:  40,
			ScreenDepth: 2.0,
			Near:        0.01,
			Far:         100.0,
		},
		Input: InputConfig{
			Deadzone:       0.1,
			TranslateScale: 0.05,
			RotateScale:    0.05,
			SliderStep:     0.05,
		},
		Screenshots: ScreenshotConfig{
			Dir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks values that would otherwise fail later inside the renderer.
func (c *Config) Validate() error {
	if c.Graphics.Scale < 1 {
		return fmt.Errorf("graphics.scale must be at least 1, got %d", c.Graphics.Scale)
	}
	if _, err := layout.ParseMode(c.Graphics.DisplayMode); err != nil {
		return fmt.Errorf("graphics.display_mode: %w", err)
	}
	if c.Stereo.FovDegrees <= 0 || c.Stereo.FovDegrees >= 180 {
		return fmt.Errorf("stereo.fov_degrees must be in (0, 180), got %g", c.Stereo.FovDegrees)
	}
	if c.Stereo.ScreenDepth <= 0 {
		return fmt.Errorf("stereo.screen_depth must be positive, got %g", c.Stereo.ScreenDepth)
	}
	if c.Stereo.Near <= 0 || c.Stereo.Far <= c.Stereo.Near {
		return fmt.Errorf("stereo clip planes must satisfy 0 < near < far, got near=%g far=%g", c.Stereo.Near, c.Stereo.Far)
	}
	if c.Input.Deadzone < 0 || c.Input.Deadzone >= 1 {
		return fmt.Errorf("input.deadzone must be in [0, 1), got %g", c.Input.Deadzone)
	}
	return nil
}
