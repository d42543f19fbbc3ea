// Package layout places the stereo (top) panel and the touch (bottom) panel
// inside the window.
package layout

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Mode selects how the stereo pair is shown on a flat monitor.
type Mode string

// Display modes.
const (
	SideBySide Mode = "side-by-side" // left eye on the left, for parallel viewing
	CrossEyed  Mode = "cross-eyed"   // right eye on the left
	Anaglyph   Mode = "anaglyph"     // red/cyan overlay
	LeftOnly   Mode = "left"
	RightOnly  Mode = "right"
)

// Modes lists every display mode.
var Modes = []Mode{SideBySide, CrossEyed, Anaglyph, LeftOnly, RightOnly}

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown display mode %q (want one of %v)", s, Modes)
}

// Panel sizes in panel pixels.
const (
	EyeWidth     = 400
	EyeHeight    = 240
	BottomWidth  = 320
	BottomHeight = 240
)

// Rect is an axis-aligned rectangle with a top-left origin.
type Rect struct {
	X, Y, W, H int32
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y int32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Local maps a point into a w x h coordinate space spanning the rectangle.
// Points outside are clamped to the edges.
func (r Rect) Local(x, y int32, w, h int) (float32, float32) {
	if r.Empty() {
		return 0, 0
	}
	lx := float32(x-r.X) * float32(w) / float32(r.W)
	ly := float32(y-r.Y) * float32(h) / float32(r.H)
	return clamp(lx, 0, float32(w-1)), clamp(ly, 0, float32(h-1))
}

// FlipY converts the rectangle to a bottom-left origin inside a surface of
// the given height, as glViewport expects.
func (r Rect) FlipY(height int32) Rect {
	return Rect{X: r.X, Y: height - r.Y - r.H, W: r.W, H: r.H}
}

// Layout is the placement of all panels for one window size.
type Layout struct {
	Mode   Mode
	Scale  float32
	Top    Rect
	Eyes   [2]Rect // destination of the left and right eye images
	Bottom Rect
}

// BaseSize returns the unscaled size needed to show both panels.
func BaseSize(mode Mode) (int32, int32) {
	top := topWidth(mode)
	w := max(top, BottomWidth)
	return w, EyeHeight + BottomHeight
}

// WindowSize returns the window size for an integer panel scale.
func WindowSize(mode Mode, scale int) (int, int) {
	w, h := BaseSize(mode)
	return int(w) * scale, int(h) * scale
}

// Compute fits the panels into a width x height surface, preserving aspect
// ratio and centering the result.
func Compute(mode Mode, width, height int32) Layout {
	baseW, baseH := BaseSize(mode)
	s := math32.Min(float32(width)/float32(baseW), float32(height)/float32(baseH))
	if s <= 0 {
		return Layout{Mode: mode}
	}

	px := func(v int32) int32 { return int32(math32.Floor(float32(v)*s + 0.5)) }

	contentW, contentH := px(baseW), px(baseH)
	offX := (width - contentW) / 2
	offY := (height - contentH) / 2

	topW := px(topWidth(mode))
	top := Rect{X: offX + (contentW-topW)/2, Y: offY, W: topW, H: px(EyeHeight)}

	bottomW := px(BottomWidth)
	bottom := Rect{X: offX + (contentW-bottomW)/2, Y: top.Y + top.H, W: bottomW, H: px(BottomHeight)}

	l := Layout{Mode: mode, Scale: s, Top: top, Bottom: bottom}

	switch mode {
	case SideBySide, CrossEyed:
		half := top.W / 2
		first := Rect{X: top.X, Y: top.Y, W: half, H: top.H}
		second := Rect{X: top.X + half, Y: top.Y, W: top.W - half, H: top.H}
		if mode == SideBySide {
			l.Eyes = [2]Rect{first, second}
		} else {
			l.Eyes = [2]Rect{second, first}
		}
	case Anaglyph:
		l.Eyes = [2]Rect{top, top}
	case LeftOnly:
		l.Eyes[0] = top
	case RightOnly:
		l.Eyes[1] = top
	}

	return l
}

func topWidth(mode Mode) int32 {
	if mode == SideBySide || mode == CrossEyed {
		return 2 * EyeWidth
	}
	return EyeWidth
}

func clamp(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(v, hi))
}
