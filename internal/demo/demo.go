// Package demo runs the stereoscopic triangle: window, input, per-eye
// rendering and presentation, one frame per vertical blank.
package demo

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/stereotri/internal/config"
	"github.com/Faultbox/stereotri/internal/engine/debug"
	"github.com/Faultbox/stereotri/internal/engine/renderer"
	"github.com/Faultbox/stereotri/internal/engine/window"
	"github.com/Faultbox/stereotri/internal/hid"
	"github.com/Faultbox/stereotri/internal/hid/sdlinput"
	"github.com/Faultbox/stereotri/internal/layout"
	"github.com/Faultbox/stereotri/internal/logger"
	"github.com/Faultbox/stereotri/internal/scene"
	"github.com/Faultbox/stereotri/internal/stereo"
)

// Title is the window title prefix.
const Title = "stereotri"

// Demo is the running program.
type Demo struct {
	cfg  *config.Config
	log  *zap.Logger
	mode layout.Mode

	window      *window.Window
	renderer    *renderer.Renderer
	input       *sdlinput.Input
	scene       *scene.Scene
	screenshots *debug.ScreenshotCapture

	// Panel placement in drawable pixels (rendering) and window
	// coordinates (mouse).
	pixels layout.Layout
	points layout.Layout
}

// New creates the window, GL resources and input handling.
func New(cfg *config.Config) (*Demo, error) {
	mode, err := layout.ParseMode(cfg.Graphics.DisplayMode)
	if err != nil {
		return nil, err
	}

	d := &Demo{
		cfg:   cfg,
		log:   logger.Named("demo"),
		mode:  mode,
		scene: scene.New(SceneConfig(cfg)),
		screenshots: debug.NewScreenshotCapture(
			cfg.Screenshots.Dir, "stereotri", cfg.Screenshots.CrossEyed),
	}

	width, height := layout.WindowSize(mode, cfg.Graphics.Scale)
	d.log.Info("initializing demo",
		zap.String("mode", string(mode)),
		zap.Int("width", width),
		zap.Int("height", height),
	)

	// Window first: it owns the GL context the renderer needs.
	d.window, err = window.New(window.Config{
		Title:      d.title(),
		Width:      width,
		Height:     height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	d.renderer, err = renderer.New(renderer.Config{
		Scale:         cfg.Graphics.Scale,
		BottomPreview: cfg.Graphics.BottomPreview,
	})
	if err != nil {
		d.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	d.input = sdlinput.New()
	d.relayout()

	d.log.Info("demo initialized")
	return d, nil
}

// SceneConfig derives the scene tuning from the configuration.
func SceneConfig(cfg *config.Config) scene.Config {
	return scene.Config{
		Camera: stereo.Params{
			FovY:        stereo.Radians(cfg.Stereo.FovDegrees),
			ScreenDepth: cfg.Stereo.ScreenDepth,
			Clip:        stereo.ClipPlanes{Near: cfg.Stereo.Near, Far: cfg.Stereo.Far},
		},
		Slider:         cfg.Stereo.Slider,
		SliderStep:     cfg.Input.SliderStep,
		Deadzone:       cfg.Input.Deadzone,
		TranslateScale: cfg.Input.TranslateScale,
		RotateScale:    cfg.Input.RotateScale,
	}
}

// Run executes the frame loop until Start is pressed or the window closes.
func (d *Demo) Run() error {
	var limiter *frameLimiter
	if !d.window.VSync() && d.cfg.Graphics.FPSLimit > 0 {
		limiter = newFrameLimiter(d.cfg.Graphics.FPSLimit)
	}
	stats := newFrameStats(time.Now())

	d.log.Info("starting frame loop", zap.String("exit", "press Start (Esc/Enter)"))

	for {
		if d.input.ScanInput() {
			d.log.Info("window closed")
			return nil
		}
		if _, _, ok := d.input.Resized(); ok {
			d.relayout()
		}

		down := d.input.KeysDown()
		if down.Contains(hid.KeyStart) {
			d.log.Info("start pressed, exiting")
			return nil
		}

		frame := scene.Frame{
			Down:  down,
			Held:  d.input.KeysHeld(),
			Pad:   d.input.CirclePadPosition(),
			Touch: d.input.TouchPosition(),
		}
		if d.scene.Update(frame) {
			d.window.SetTitle(d.title())
			d.log.Debug("slider changed", zap.Float32("slider", d.scene.Slider))
		}

		left, right, center := d.scene.MVP()
		d.renderer.RenderFrame(left, right, center)

		if down.Contains(hid.KeySelect) {
			if err := d.captureScreenshot(); err != nil {
				// Not fatal: the demo keeps running without the file.
				d.log.Warn("screenshot failed", zap.Error(err))
			}
		}

		w, h := d.window.DrawableSize()
		d.renderer.Present(d.pixels, int32(w), int32(h))
		d.window.SwapBuffers()

		if limiter != nil {
			limiter.Wait(time.Now())
		}

		if fps, ok := stats.Tick(time.Now()); ok {
			d.log.Debug("frame stats",
				zap.Int("fps", fps),
				zap.Float32("cx", d.scene.Stick.X),
				zap.Float32("cy", d.scene.Stick.Y),
				zap.Bool("touching", d.scene.Touching),
				zap.Float32("slider", d.scene.Slider),
			)
		}
	}
}

// Close releases everything New created.
func (d *Demo) Close() {
	d.log.Info("closing demo")

	if d.input != nil {
		d.input.Close()
	}
	if d.renderer != nil {
		d.renderer.Close()
	}
	if d.window != nil {
		d.window.Close()
	}
}

// relayout recomputes panel placement after a size change.
func (d *Demo) relayout() {
	pw, ph := d.window.DrawableSize()
	ww, wh := d.window.GetSize()

	d.pixels = layout.Compute(d.mode, int32(pw), int32(ph))
	d.points = layout.Compute(d.mode, int32(ww), int32(wh))
	d.input.SetTouchPanel(d.points.Bottom)

	d.log.Debug("layout updated",
		zap.Int("drawable_width", pw),
		zap.Int("drawable_height", ph),
		zap.Float32("scale", d.pixels.Scale),
	)
}

func (d *Demo) captureScreenshot() error {
	left := d.renderer.Target(renderer.LeftEye)
	right := d.renderer.Target(renderer.RightEye)
	w, h := left.Size()

	name, err := d.screenshots.CaptureStereo(left.ReadPixels(), right.ReadPixels(), int(w), int(h))
	if err != nil {
		return err
	}
	d.log.Info("screenshot saved",
		logger.Target(left.Name()+"+"+right.Name()),
		zap.String("file", name),
	)
	return nil
}

func (d *Demo) title() string {
	return fmt.Sprintf("%s - 3D %.2f (%s)", Title, d.scene.Slider, d.mode)
}
