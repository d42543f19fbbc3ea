package hid

import (
	"testing"
)

func TestDeadzone(t *testing.T) {
	tests := []struct {
		name string
		raw  int16
		want float32
	}{
		{"centered", 0, 0},
		{"just inside", 12, 0},
		{"just inside negative", -12, 0},
		{"just outside", 13, 13.0 / 127},
		{"just outside negative", -13, -13.0 / 127},
		{"full", 127, 1},
		{"full negative", -127, -1},
		{"past full deflection", CirclePadMax, CirclePadMax / 127.0},
	}
	for _, tt := range tests {
		if got := Deadzone(tt.raw, DefaultDeadzone); got != tt.want {
			t.Errorf("%s: Deadzone(%d) = %v, want %v", tt.name, tt.raw, got, tt.want)
		}
	}
}

func TestDeadzoneBoundaryIsInclusive(t *testing.T) {
	if got := Deadzone(0, 0); got != 0 {
		t.Errorf("zero input should stay zero, got %v", got)
	}
	// 63/127 and 64/127 straddle 0.5
	if got := Deadzone(63, 0.5); got != 0 {
		t.Errorf("63/127 is inside a 0.5 dead zone, got %v", got)
	}
	if got := Deadzone(64, 0.5); got == 0 {
		t.Error("64/127 is outside a 0.5 dead zone")
	}
}

func TestCirclePadNormalized(t *testing.T) {
	v := CirclePad{X: 127, Y: 5}.Normalized(DefaultDeadzone)
	if v.X != 1 || v.Y != 0 {
		t.Errorf("Normalized() = %+v, want {1 0}", v)
	}
}

func TestNormalizeTouch(t *testing.T) {
	tests := []struct {
		in     TouchPosition
		wx, wy float32
	}{
		{TouchPosition{0, 0}, -1, -1},
		{TouchPosition{160, 120}, 0, 0},
		{TouchPosition{320, 240}, 1, 1},
		{TouchPosition{80, 180}, -0.5, 0.5},
	}
	for _, tt := range tests {
		got := NormalizeTouch(tt.in)
		if got.X != tt.wx || got.Y != tt.wy {
			t.Errorf("NormalizeTouch(%+v) = %+v, want {%v %v}", tt.in, got, tt.wx, tt.wy)
		}
	}
}

func TestKeysContains(t *testing.T) {
	k := KeyStart | KeyTouch
	if !k.Contains(KeyStart) || !k.Contains(KeyTouch) || !k.Contains(KeyStart|KeyTouch) {
		t.Error("expected held keys to be contained")
	}
	if k.Contains(KeyA) || k.Contains(KeyStart|KeyA) {
		t.Error("unexpected key reported as contained")
	}
	if k.Contains(0) {
		t.Error("empty set should not be reported as contained")
	}
}

func TestButtonStateEdges(t *testing.T) {
	var b ButtonState

	b.Update(0)
	b.Update(KeyStart)
	if !b.Down().Contains(KeyStart) {
		t.Error("newly held key should be down")
	}

	b.Update(KeyStart)
	if b.Down() != 0 {
		t.Error("held key should not be reported down twice")
	}
	if !b.Held().Contains(KeyStart) {
		t.Error("key should still be held")
	}

	b.Update(0)
	b.Update(KeyStart)
	if !b.Down().Contains(KeyStart) {
		t.Error("key pressed again after release should be down")
	}
}

func TestButtonStateIgnoresKeysHeldAtStartup(t *testing.T) {
	var b ButtonState

	// Enter still held from launching the program.
	b.Update(KeyStart)
	if b.Down() != 0 {
		t.Errorf("first scan reported %b as pressed", b.Down())
	}
	if !b.Held().Contains(KeyStart) {
		t.Error("first scan should still report the key as held")
	}

	b.Update(KeyStart | KeyA)
	if b.Down() != KeyA {
		t.Errorf("Down() = %b, want only KeyA", b.Down())
	}
}
