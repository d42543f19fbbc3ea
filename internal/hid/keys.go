// Package hid models the handheld's buttons, circle pad and touch screen.
//
// Device polling lives in the sdlinput subpackage; everything here is plain
// data and arithmetic.
package hid

import (
	"github.com/Faultbox/stereotri/internal/layout"
	"github.com/Faultbox/stereotri/pkg/math"
)

// Keys is a set of buttons.
type Keys uint32

// Buttons.
const (
	KeyA Keys = 1 << iota
	KeyB
	KeySelect
	KeyStart
	KeyDRight
	KeyDLeft
	KeyDUp
	KeyDDown
	KeyR
	KeyL
	KeyTouch
)

// Contains reports whether every key in other is in k.
func (k Keys) Contains(other Keys) bool {
	return k&other == other && other != 0
}

// ButtonState derives pressed edges from successive held sets.
type ButtonState struct {
	held   Keys
	prev   Keys
	primed bool
}

// Update records the buttons held during this scan. The first scan only sets
// the baseline: a key already held when input starts is not reported down.
func (b *ButtonState) Update(held Keys) {
	if b.primed {
		b.prev = b.held
	} else {
		b.prev, b.primed = held, true
	}
	b.held = held
}

// Down returns buttons that went down since the previous scan.
func (b *ButtonState) Down() Keys {
	return b.held &^ b.prev
}

// Held returns buttons currently held.
func (b *ButtonState) Held() Keys {
	return b.held
}

// CirclePad is the raw analog stick reading. Positive Y is up.
type CirclePad struct {
	X, Y int16
}

// CirclePadMax is the largest magnitude the pad reports on either axis.
const CirclePadMax = 156

// CirclePadUnit is the divisor that maps the pad into roughly [-1, 1].
const CirclePadUnit = 127

// DefaultDeadzone is the normalized magnitude below which an axis reads 0.
const DefaultDeadzone = 0.1

// TouchPosition is a point on the bottom panel in panel pixels, origin top-left.
type TouchPosition struct {
	X, Y uint16
}

// Deadzone normalizes one circle pad axis and zeroes values whose magnitude
// is at most dz.
func Deadzone(raw int16, dz float32) float32 {
	v := float32(raw) / CirclePadUnit
	if v >= -dz && v <= dz {
		return 0
	}
	return v
}

// Normalized returns both axes through Deadzone.
func (c CirclePad) Normalized(dz float32) math.Vec2 {
	return math.Vec2{X: Deadzone(c.X, dz), Y: Deadzone(c.Y, dz)}
}

// NormalizeTouch maps a panel position to [-1, 1] on both axes.
func NormalizeTouch(p TouchPosition) math.Vec2 {
	return math.Vec2{
		X: float32(p.X)/layout.BottomWidth*2 - 1,
		Y: float32(p.Y)/layout.BottomHeight*2 - 1,
	}
}
