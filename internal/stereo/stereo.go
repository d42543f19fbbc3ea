// Package stereo computes per-eye projection matrices for a parallax-barrier
// style display.
//
// Each eye gets an off-axis (asymmetric) frustum whose near-plane window is
// shifted so both frusta share the same rectangle at the screen depth. Objects
// on that plane have no parallax; nearer objects appear in front of the
// display and farther ones behind it.
package stereo

import (
	gomath "math"

	"github.com/chewxy/math32"

	"github.com/Faultbox/stereotri/pkg/math"
)

// Panel resolutions of the two screens.
const (
	TopScreenWidth     = 400
	TopScreenHeight    = 240
	BottomScreenWidth  = 320
	BottomScreenHeight = 240
)

// AspectRatio is a width/height ratio.
type AspectRatio float32

// Standard aspect ratios.
const (
	TopScreen    AspectRatio = AspectRatio(float32(TopScreenWidth) / TopScreenHeight)
	BottomScreen AspectRatio = AspectRatio(float32(BottomScreenWidth) / BottomScreenHeight)
)

// ClipPlanes holds the near and far clip distances.
type ClipPlanes struct {
	Near float32
	Far  float32
}

// Displacement is one eye's horizontal offset from the center of projection
// together with the depth at which both eyes converge.
type Displacement struct {
	Eye         float32
	ScreenDepth float32
}

// NewDisplacement splits an interocular distance into symmetric left and
// right eye displacements.
func NewDisplacement(iod, screenDepth float32) (left, right Displacement) {
	left = Displacement{Eye: -iod / 2, ScreenDepth: screenDepth}
	right = Displacement{Eye: iod / 2, ScreenDepth: screenDepth}
	return left, right
}

// Perspective describes a perspective projection.
type Perspective struct {
	FovY   float32 // vertical field of view, radians
	Aspect AspectRatio
	Clip   ClipPlanes
}

// Matrix returns the mono (center eye) projection.
func (p Perspective) Matrix() math.Mat4 {
	return math.Perspective(p.FovY, float32(p.Aspect), p.Clip.Near, p.Clip.Far)
}

// EyeMatrix returns the projection for one eye. The frustum is sheared so it
// meets the center frustum at d.ScreenDepth, then the eye is moved by d.Eye.
func (p Perspective) EyeMatrix(d Displacement) math.Mat4 {
	if d.Eye == 0 || d.ScreenDepth <= 0 {
		return p.Matrix()
	}

	near := p.Clip.Near
	top := near * math32.Tan(p.FovY/2)
	halfWidth := top * float32(p.Aspect)
	shift := d.Eye * near / d.ScreenDepth

	frustum := math.Frustum(-halfWidth-shift, halfWidth-shift, -top, top, near, p.Clip.Far)
	return frustum.Mul(math.Translate(-d.Eye, 0, 0))
}

// StereoMatrices returns the left and right eye projections.
func (p Perspective) StereoMatrices(left, right Displacement) (math.Mat4, math.Mat4) {
	return p.EyeMatrix(left), p.EyeMatrix(right)
}

// Params holds the fixed camera parameters.
type Params struct {
	FovY        float32 // radians
	ScreenDepth float32
	Clip        ClipPlanes
}

// DefaultParams returns the 40 degree camera converging two units in front of
// the eye.
func DefaultParams() Params {
	return Params{
		FovY:        Radians(40),
		ScreenDepth: 2.0,
		Clip:        ClipPlanes{Near: 0.01, Far: 100.0},
	}
}

// Projections is the set of matrices needed for one frame.
type Projections struct {
	Left   math.Mat4
	Right  math.Mat4
	Center math.Mat4 // bottom screen, mono
}

// Calculate derives the frame's projections from the 3D slider position.
// The slider is clamped to [0, 1]; the interocular distance is half of it.
func Calculate(slider float32, p Params) Projections {
	slider = ClampSlider(slider)
	iod := slider / 2

	left, right := NewDisplacement(iod, p.ScreenDepth)

	top := Perspective{FovY: p.FovY, Aspect: TopScreen, Clip: p.Clip}
	l, r := top.StereoMatrices(left, right)

	bottom := Perspective{FovY: p.FovY, Aspect: BottomScreen, Clip: p.Clip}

	return Projections{
		Left:   l,
		Right:  r,
		Center: bottom.Matrix(),
	}
}

// ClampSlider limits a slider value to [0, 1].
func ClampSlider(v float32) float32 {
	switch {
	case v < 0 || math32.IsNaN(v):
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg * (gomath.Pi / 180)
}
