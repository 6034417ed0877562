// Package input turns raw per-tick device state into edge-triggered queries,
// a single merged on-screen cursor and device-independent UI actions.
//
// All queries read the snapshot captured by the last Update and are stable
// until the next one. Nothing here blocks or spawns goroutines.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/pewpew/internal/domain/geom"
)

// Button is a logical gamepad button (gamepad index 0 only).
type Button int

const (
	ButtonA Button = iota
	ButtonB
	ButtonX
	ButtonY
	ButtonBack
	ButtonStart
	ButtonHome
	ButtonLeftShoulder
	ButtonRightShoulder
	ButtonLeftTrigger
	ButtonRightTrigger
	ButtonLeftStick
	ButtonRightStick
	ButtonDPadUp
	ButtonDPadDown
	ButtonDPadLeft
	ButtonDPadRight

	// Virtual buttons derived from stick deflection past the threshold.
	ButtonLeftStickUp
	ButtonLeftStickDown
	ButtonLeftStickLeft
	ButtonLeftStickRight
	ButtonRightStickUp
	ButtonRightStickDown
	ButtonRightStickLeft
	ButtonRightStickRight

	buttonCount
)

// MouseButton is a logical pointer button.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseMiddle
	MouseRight
	MouseX1 // back side button
	MouseX2 // forward side button

	mouseButtonCount
)

// Device identifies the device class a Control belongs to.
type Device int

const (
	DeviceKeyboard Device = iota
	DeviceGamepad
	DevicePointer
)

// Control is any two-state control: a key, a gamepad button or a pointer button.
type Control struct {
	Device Device
	Code   int
}

// KeyControl wraps a keyboard key
func KeyControl(k ebiten.Key) Control { return Control{Device: DeviceKeyboard, Code: int(k)} }

// ButtonControl wraps a gamepad button
func ButtonControl(b Button) Control { return Control{Device: DeviceGamepad, Code: int(b)} }

// MouseControl wraps a pointer button
func MouseControl(b MouseButton) Control { return Control{Device: DevicePointer, Code: int(b)} }

// KeyboardState is the set of keys held down. It is a value type; copies
// never alias.
type KeyboardState struct {
	bits [4]uint64
}

// Press marks k as held. Keys outside the tracked range are ignored.
func (k *KeyboardState) Press(key ebiten.Key) {
	i := int(key)
	if i < 0 || i >= 256 {
		return
	}
	k.bits[i/64] |= 1 << (uint(i) % 64)
}

// IsDown reports whether key is held
func (k KeyboardState) IsDown(key ebiten.Key) bool {
	i := int(key)
	if i < 0 || i >= 256 {
		return false
	}
	return k.bits[i/64]&(1<<(uint(i)%64)) != 0
}

// Empty reports whether no key is held
func (k KeyboardState) Empty() bool {
	return k.bits == [4]uint64{}
}

// GamepadState is the state of gamepad 0.
// Stick vectors are in [-1,1] with y pointing up.
type GamepadState struct {
	Connected  bool
	Buttons    uint32
	LeftStick  geom.Vec2
	RightStick geom.Vec2
}

// Press marks b as held
func (g *GamepadState) Press(b Button) {
	if b < 0 || b >= buttonCount {
		return
	}
	g.Buttons |= 1 << uint(b)
}

// IsDown reports whether b is held
func (g GamepadState) IsDown(b Button) bool {
	if b < 0 || b >= buttonCount {
		return false
	}
	return g.Buttons&(1<<uint(b)) != 0
}

// PointerState is the mouse (or pen) state.
// Wheel is cumulative: edges come from its change between ticks.
type PointerState struct {
	X, Y    float64
	Buttons uint8
	Wheel   float64
}

// Press marks b as held
func (p *PointerState) Press(b MouseButton) {
	if b < 0 || b >= mouseButtonCount {
		return
	}
	p.Buttons |= 1 << uint(b)
}

// IsDown reports whether b is held
func (p PointerState) IsDown(b MouseButton) bool {
	if b < 0 || b >= mouseButtonCount {
		return false
	}
	return p.Buttons&(1<<uint(b)) != 0
}

// Position returns the pointer position as a vector
func (p PointerState) Position() geom.Vec2 { return geom.Vec2{X: p.X, Y: p.Y} }

// TouchPoint is one active contact on the touch surface.
type TouchPoint struct {
	ID       int
	Position geom.Vec2
}

// State is one tick's capture of every polled device.
type State struct {
	Keyboard KeyboardState
	Gamepad  GamepadState
	Pointer  PointerState
	Touches  []TouchPoint
}

// IsDown reports whether c is held in this state
func (s *State) IsDown(c Control) bool {
	switch c.Device {
	case DeviceKeyboard:
		return s.Keyboard.IsDown(ebiten.Key(c.Code))
	case DeviceGamepad:
		return s.Gamepad.IsDown(Button(c.Code))
	case DevicePointer:
		return s.Pointer.IsDown(MouseButton(c.Code))
	default:
		return false
	}
}

// AnyTouch reports whether at least one touch point is active
func (s *State) AnyTouch() bool { return len(s.Touches) > 0 }

// Poller captures the raw device state once per tick.
type Poller interface {
	Poll() State
}

// PollerFunc adapts a function to Poller
type PollerFunc func() State

// Poll calls f
func (f PollerFunc) Poll() State { return f() }

// PointerWarper moves the pointing device's reported absolute position.
type PointerWarper interface {
	WarpPointer(x, y float64)
}
