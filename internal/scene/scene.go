// Package scene holds the model and view transforms and advances them from
// one frame of input.
package scene

import (
	"github.com/Faultbox/stereotri/internal/hid"
	"github.com/Faultbox/stereotri/internal/stereo"
	"github.com/Faultbox/stereotri/pkg/math"
)

// CameraDistance is how far the view starts from the model.
const CameraDistance = 4.0

// Config tunes how input maps onto the transforms.
type Config struct {
	Camera         stereo.Params
	Slider         float32 // initial slider position
	SliderStep     float32
	Deadzone       float32
	TranslateScale float32
	RotateScale    float32
}

// Frame is the input sampled for one frame.
type Frame struct {
	Down  hid.Keys
	Held  hid.Keys
	Pad   hid.CirclePad
	Touch hid.TouchPosition
}

// Scene is the mutable per-frame state.
type Scene struct {
	cfg Config

	Model  math.Mat4
	View   math.Mat4
	Slider float32

	// Last applied inputs, for diagnostics.
	Stick    math.Vec2
	Touching bool
}

// New returns a scene with the model at the origin and the view pulled back
// along -Z.
func New(cfg Config) *Scene {
	s := &Scene{cfg: cfg}
	s.Reset()
	return s
}

// Reset restores the initial transforms and slider.
func (s *Scene) Reset() {
	s.Model = math.Identity()
	s.View = math.Translate(0, 0, -CameraDistance)
	s.Slider = stereo.ClampSlider(s.cfg.Slider)
	s.Stick = math.Vec2{}
	s.Touching = false
}

// Update applies one frame of input. It reports whether the slider moved.
func (s *Scene) Update(f Frame) bool {
	if f.Down.Contains(hid.KeyB) {
		s.Reset()
	}

	prev := s.Slider
	if f.Down.Contains(hid.KeyDUp) {
		s.Slider = stereo.ClampSlider(s.Slider + s.cfg.SliderStep)
	}
	if f.Down.Contains(hid.KeyDDown) {
		s.Slider = stereo.ClampSlider(s.Slider - s.cfg.SliderStep)
	}

	s.Stick = f.Pad.Normalized(s.cfg.Deadzone)
	if !s.Stick.IsZero() {
		d := s.Stick.Scale(s.cfg.TranslateScale)
		s.View = s.View.Mul(math.Translate(d.X, 0, d.Y))
	}

	s.Touching = (f.Down | f.Held).Contains(hid.KeyTouch)
	if s.Touching {
		t := hid.NormalizeTouch(f.Touch).Scale(s.cfg.RotateScale)
		s.Model = s.Model.Mul(math.RotateZ(t.X)).Mul(math.RotateX(t.Y))
	}

	return s.Slider != prev
}

// Projections returns this frame's projection matrices.
func (s *Scene) Projections() stereo.Projections {
	return stereo.Calculate(s.Slider, s.cfg.Camera)
}

// MVP returns projection * view * model for the left eye, the right eye and
// the mono bottom-panel view.
func (s *Scene) MVP() (left, right, center math.Mat4) {
	p := s.Projections()
	vm := s.View.Mul(s.Model)
	return p.Left.Mul(vm), p.Right.Mul(vm), p.Center.Mul(vm)
}
