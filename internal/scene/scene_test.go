package scene

import (
	"testing"

	"github.com/Faultbox/stereotri/internal/hid"
	"github.com/Faultbox/stereotri/internal/stereo"
	"github.com/Faultbox/stereotri/pkg/math"
)

func testConfig() Config {
	return Config{
		Camera:         stereo.DefaultParams(),
		Slider:         0.5,
		SliderStep:     0.25,
		Deadzone:       hid.DefaultDeadzone,
		TranslateScale: 1,
		RotateScale:    1,
	}
}

func TestNew(t *testing.T) {
	s := New(testConfig())

	if s.Model != math.Identity() {
		t.Error("model should start at identity")
	}
	if s.View != math.Translate(0, 0, -4) {
		t.Errorf("view should start at z=-4, got %v", s.View)
	}
	if s.Slider != 0.5 {
		t.Errorf("expected slider 0.5, got %f", s.Slider)
	}
}

func TestUpdateTranslatesView(t *testing.T) {
	s := New(testConfig())
	s.Update(Frame{Pad: hid.CirclePad{X: 127, Y: -127}})

	want := math.Translate(0, 0, -4).Mul(math.Translate(1, 0, -1))
	if !s.View.ApproxEqual(want, 1e-6) {
		t.Errorf("view: got %v, want %v", s.View, want)
	}
	if s.Stick != (math.Vec2{X: 1, Y: -1}) {
		t.Errorf("stick: got %+v", s.Stick)
	}
}

func TestUpdateDeadzoneLeavesViewAlone(t *testing.T) {
	s := New(testConfig())
	before := s.View
	s.Update(Frame{Pad: hid.CirclePad{X: 10, Y: -10}})

	if s.View != before {
		t.Error("input inside the dead zone should not move the view")
	}
}

func TestUpdateTranslationAccumulates(t *testing.T) {
	cfg := testConfig()
	cfg.TranslateScale = 0.5
	s := New(cfg)

	for i := 0; i < 4; i++ {
		s.Update(Frame{Pad: hid.CirclePad{Y: 127}})
	}

	// The model origin ends up 2 units closer to the eye.
	p := s.View.TransformPoint([3]float32{0, 0, 0})
	if d := p[2] + 2; d > 1e-5 || d < -1e-5 {
		t.Errorf("expected origin at z=-2, got %v", p)
	}
}

func TestUpdateRotatesOnlyWhileTouching(t *testing.T) {
	s := New(testConfig())

	s.Update(Frame{Touch: hid.TouchPosition{X: 320, Y: 120}})
	if s.Model != math.Identity() || s.Touching {
		t.Fatal("touch position without KeyTouch should be ignored")
	}

	// Right edge, vertical center: tx = 1, ty = 0
	s.Update(Frame{Held: hid.KeyTouch, Touch: hid.TouchPosition{X: 320, Y: 120}})
	want := math.RotateZ(1).Mul(math.RotateX(0))
	if !s.Model.ApproxEqual(want, 1e-6) {
		t.Errorf("model: got %v, want %v", s.Model, want)
	}
	if !s.Touching {
		t.Error("expected Touching after a held touch")
	}
}

func TestUpdateTouchDownCounts(t *testing.T) {
	s := New(testConfig())
	s.Update(Frame{Down: hid.KeyTouch, Touch: hid.TouchPosition{X: 160, Y: 0}})

	want := math.RotateZ(0).Mul(math.RotateX(-1))
	if !s.Model.ApproxEqual(want, 1e-6) {
		t.Errorf("model: got %v, want %v", s.Model, want)
	}
}

func TestUpdateRotationOrder(t *testing.T) {
	s := New(testConfig())

	// tx = 0.5, ty = 0.5
	s.Update(Frame{Held: hid.KeyTouch, Touch: hid.TouchPosition{X: 240, Y: 180}})

	want := math.RotateZ(0.5).Mul(math.RotateX(0.5))
	if !s.Model.ApproxEqual(want, 1e-6) {
		t.Errorf("model: got %v, want RotateZ(tx) * RotateX(ty) = %v", s.Model, want)
	}
	swapped := math.RotateX(0.5).Mul(math.RotateZ(0.5))
	if s.Model.ApproxEqual(swapped, 1e-3) {
		t.Error("model should not match RotateX(ty) * RotateZ(tx)")
	}

	// A second frame post-multiplies onto the first.
	s.Update(Frame{Held: hid.KeyTouch, Touch: hid.TouchPosition{X: 240, Y: 180}})
	want = want.Mul(math.RotateZ(0.5)).Mul(math.RotateX(0.5))
	if !s.Model.ApproxEqual(want, 1e-5) {
		t.Errorf("accumulated model: got %v, want %v", s.Model, want)
	}
}

func TestUpdateSlider(t *testing.T) {
	s := New(testConfig())

	if !s.Update(Frame{Down: hid.KeyDUp}) || s.Slider != 0.75 {
		t.Errorf("D-up should raise slider to 0.75, got %f", s.Slider)
	}
	s.Update(Frame{Down: hid.KeyDUp})
	if changed := s.Update(Frame{Down: hid.KeyDUp}); changed || s.Slider != 1 {
		t.Errorf("slider should saturate at 1 without reporting change, got %f (changed=%v)", s.Slider, changed)
	}

	// Holding does not repeat
	if s.Update(Frame{Held: hid.KeyDDown}) {
		t.Error("held D-down should not move the slider")
	}

	for i := 0; i < 10; i++ {
		s.Update(Frame{Down: hid.KeyDDown})
	}
	if s.Slider != 0 {
		t.Errorf("slider should saturate at 0, got %f", s.Slider)
	}
}

func TestReset(t *testing.T) {
	s := New(testConfig())
	s.Update(Frame{Pad: hid.CirclePad{X: 127}, Held: hid.KeyTouch, Touch: hid.TouchPosition{X: 10, Y: 10}})
	s.Update(Frame{Down: hid.KeyDUp})

	s.Update(Frame{Down: hid.KeyB})
	fresh := New(testConfig())
	if s.Model != fresh.Model || s.View != fresh.View || s.Slider != fresh.Slider {
		t.Error("KeyB should restore the initial scene")
	}
}

func TestMVP(t *testing.T) {
	s := New(testConfig())
	left, right, center := s.MVP()

	p := s.Projections()
	vm := s.View.Mul(s.Model)
	if left != p.Left.Mul(vm) || right != p.Right.Mul(vm) || center != p.Center.Mul(vm) {
		t.Error("MVP should be projection * view * model per target")
	}
	if left == right {
		t.Error("eyes should differ with the slider at 0.5")
	}

	// The triangle's top vertex is in front of the camera and on screen.
	top := left.TransformPoint([3]float32{0, 0.5, 0})
	if top[0] < -1 || top[0] > 1 || top[1] < -1 || top[1] > 1 || top[2] < -1 || top[2] > 1 {
		t.Errorf("top vertex should be inside the view volume, got %v", top)
	}
}
