// Package sdlinput turns SDL2 keyboard, mouse and game controller input into
// handheld button, circle pad and touch screen state.
package sdlinput

import (
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/stereotri/internal/hid"
	"github.com/Faultbox/stereotri/internal/layout"
	"github.com/Faultbox/stereotri/internal/logger"
)

// keyboardButtons maps scancodes to buttons.
var keyboardButtons = map[sdl.Scancode]hid.Keys{
	sdl.SCANCODE_ESCAPE:    hid.KeyStart,
	sdl.SCANCODE_RETURN:    hid.KeyStart,
	sdl.SCANCODE_F12:       hid.KeySelect,
	sdl.SCANCODE_BACKSPACE: hid.KeyB,
	sdl.SCANCODE_SPACE:     hid.KeyA,
	sdl.SCANCODE_PAGEUP:    hid.KeyDUp,
	sdl.SCANCODE_PAGEDOWN:  hid.KeyDDown,
	sdl.SCANCODE_HOME:      hid.KeyDLeft,
	sdl.SCANCODE_END:       hid.KeyDRight,
	sdl.SCANCODE_Q:         hid.KeyL,
	sdl.SCANCODE_E:         hid.KeyR,
}

// controllerButtons maps game controller buttons to buttons.
var controllerButtons = map[sdl.GameControllerButton]hid.Keys{
	sdl.CONTROLLER_BUTTON_START:         hid.KeyStart,
	sdl.CONTROLLER_BUTTON_BACK:          hid.KeySelect,
	sdl.CONTROLLER_BUTTON_A:             hid.KeyA,
	sdl.CONTROLLER_BUTTON_B:             hid.KeyB,
	sdl.CONTROLLER_BUTTON_DPAD_UP:       hid.KeyDUp,
	sdl.CONTROLLER_BUTTON_DPAD_DOWN:     hid.KeyDDown,
	sdl.CONTROLLER_BUTTON_DPAD_LEFT:     hid.KeyDLeft,
	sdl.CONTROLLER_BUTTON_DPAD_RIGHT:    hid.KeyDRight,
	sdl.CONTROLLER_BUTTON_LEFTSHOULDER:  hid.KeyL,
	sdl.CONTROLLER_BUTTON_RIGHTSHOULDER: hid.KeyR,
}

// Input polls SDL once per frame and exposes the result as handheld input.
type Input struct {
	log *zap.Logger

	buttons  hid.ButtonState
	pad      hid.CirclePad
	touch    hid.TouchPosition
	touching bool
	panel    layout.Rect

	controller *sdl.GameController

	resized       bool
	width, height int
}

// New creates an input handler and opens the first attached game
// controller, if any. SDL must already be initialized.
func New() *Input {
	in := &Input{log: logger.Named("input")}
	for i := 0; i < sdl.NumJoysticks(); i++ {
		if sdl.IsGameController(i) {
			in.openController(i)
			break
		}
	}
	return in
}

// Close releases the game controller.
func (in *Input) Close() {
	if in.controller != nil {
		in.controller.Close()
		in.controller = nil
	}
}

// SetTouchPanel sets the window rectangle (in window coordinates) that acts
// as the touch screen.
func (in *Input) SetTouchPanel(r layout.Rect) {
	in.panel = r
}

// ScanInput drains pending SDL events and samples the current device state.
// Returns true if the window was asked to close.
func (in *Input) ScanInput() bool {
	in.resized = false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				in.resized = true
				in.width, in.height = int(e.Data1), int(e.Data2)
			}

		case *sdl.MouseButtonEvent:
			if e.Button != sdl.BUTTON_LEFT {
				continue
			}
			if e.Type == sdl.MOUSEBUTTONDOWN {
				// A touch only starts on the panel; dragging off it keeps touching.
				in.touching = in.panel.Contains(e.X, e.Y)
			} else if e.Type == sdl.MOUSEBUTTONUP {
				in.touching = false
			}

		case *sdl.ControllerDeviceEvent:
			switch e.Type {
			case sdl.CONTROLLERDEVICEADDED:
				if in.controller == nil {
					in.openController(int(e.Which))
				}
			case sdl.CONTROLLERDEVICEREMOVED:
				if in.controller != nil && in.controller.Joystick().InstanceID() == e.Which {
					in.log.Info("game controller removed")
					in.Close()
				}
			}
		}
	}

	state := sdl.GetKeyboardState()
	pressed := func(sc sdl.Scancode) bool {
		return int(sc) < len(state) && state[sc] != 0
	}

	held := keyboardKeys(pressed)
	pad := keyboardPad(pressed)

	if in.controller != nil {
		held |= controllerKeys(func(b sdl.GameControllerButton) bool {
			return in.controller.Button(b) != 0
		})
		stick := stickPad(
			in.controller.Axis(sdl.CONTROLLER_AXIS_LEFTX),
			in.controller.Axis(sdl.CONTROLLER_AXIS_LEFTY),
		)
		if stick != (hid.CirclePad{}) {
			pad = stick
		}
	}

	mx, my, mouse := sdl.GetMouseState()
	if in.touching && mouse&sdl.ButtonLMask() != 0 {
		in.touch = touchFromMouse(in.panel, mx, my)
		held |= hid.KeyTouch
	} else {
		in.touching = false
		in.touch = hid.TouchPosition{}
	}

	in.buttons.Update(held)
	in.pad = pad
	return false
}

// KeysDown returns buttons that went down since the previous scan.
func (in *Input) KeysDown() hid.Keys {
	return in.buttons.Down()
}

// KeysHeld returns buttons currently held.
func (in *Input) KeysHeld() hid.Keys {
	return in.buttons.Held()
}

// CirclePadPosition returns the raw circle pad reading.
func (in *Input) CirclePadPosition() hid.CirclePad {
	return in.pad
}

// TouchPosition returns the touch point, or the origin when not touching.
func (in *Input) TouchPosition() hid.TouchPosition {
	return in.touch
}

// Resized reports a window size change seen during the last scan.
func (in *Input) Resized() (width, height int, ok bool) {
	return in.width, in.height, in.resized
}

func (in *Input) openController(index int) {
	c := sdl.GameControllerOpen(index)
	if c == nil {
		in.log.Warn("failed to open game controller", zap.Int("index", index), zap.Error(sdl.GetError()))
		return
	}
	in.controller = c
	in.log.Info("game controller attached", zap.String("name", c.Name()))
}

func keyboardKeys(pressed func(sdl.Scancode) bool) hid.Keys {
	var k hid.Keys
	for sc, key := range keyboardButtons {
		if pressed(sc) {
			k |= key
		}
	}
	return k
}

func controllerKeys(pressed func(sdl.GameControllerButton) bool) hid.Keys {
	var k hid.Keys
	for b, key := range controllerButtons {
		if pressed(b) {
			k |= key
		}
	}
	return k
}

// keyboardPad drives the circle pad to full deflection from arrows or WASD.
func keyboardPad(pressed func(sdl.Scancode) bool) hid.CirclePad {
	var pad hid.CirclePad
	if pressed(sdl.SCANCODE_LEFT) || pressed(sdl.SCANCODE_A) {
		pad.X -= hid.CirclePadUnit
	}
	if pressed(sdl.SCANCODE_RIGHT) || pressed(sdl.SCANCODE_D) {
		pad.X += hid.CirclePadUnit
	}
	if pressed(sdl.SCANCODE_UP) || pressed(sdl.SCANCODE_W) {
		pad.Y += hid.CirclePadUnit
	}
	if pressed(sdl.SCANCODE_DOWN) || pressed(sdl.SCANCODE_S) {
		pad.Y -= hid.CirclePadUnit
	}
	return pad
}

// stickPad rescales an SDL stick (Y down, full int16 range) to circle pad
// units (Y up).
func stickPad(x, y int16) hid.CirclePad {
	return hid.CirclePad{X: scaleAxis(int32(x)), Y: scaleAxis(-int32(y))}
}

func scaleAxis(v int32) int16 {
	s := v * hid.CirclePadMax / 32767
	return int16(max(-hid.CirclePadMax, min(s, hid.CirclePadMax)))
}

func touchFromMouse(panel layout.Rect, x, y int32) hid.TouchPosition {
	lx, ly := panel.Local(x, y, layout.BottomWidth, layout.BottomHeight)
	return hid.TouchPosition{X: uint16(lx), Y: uint16(ly)}
}
