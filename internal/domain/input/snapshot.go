package input

import (
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/pewpew/internal/domain/geom"
)

// DefaultStickThreshold is the deflection past which a stick direction counts
// as a pressed virtual button.
const DefaultStickThreshold = 0.5

// Snapshot holds the current and previous tick's device state and answers
// edge queries over them.
type Snapshot struct {
	poller    Poller
	threshold float64

	current  State
	previous State
}

// NewSnapshot creates a snapshot fed by poller. A non-positive threshold
// selects DefaultStickThreshold.
func NewSnapshot(poller Poller, stickThreshold float64) *Snapshot {
	if !(stickThreshold > 0) || stickThreshold > 1 {
		stickThreshold = DefaultStickThreshold
	}
	return &Snapshot{poller: poller, threshold: stickThreshold}
}

// Update rotates current into previous and captures a fresh poll.
// Call exactly once per tick, before any query for that tick.
func (s *Snapshot) Update() {
	s.previous = s.current
	if s.poller == nil {
		s.current = State{}
		return
	}
	s.current = s.sanitize(s.poller.Poll())
}

// Current returns this tick's state
func (s *Snapshot) Current() State { return s.current }

// Previous returns the last tick's state
func (s *Snapshot) Previous() State { return s.previous }

// StickThreshold returns the virtual stick button threshold
func (s *Snapshot) StickThreshold() float64 { return s.threshold }

// sanitize makes a polled state safe to query: malformed values read as
// released or neutral, and nothing aliases the poller's buffers.
func (s *Snapshot) sanitize(st State) State {
	out := State{Keyboard: st.Keyboard}

	if st.Gamepad.Connected {
		g := GamepadState{
			Connected:  true,
			Buttons:    st.Gamepad.Buttons & (1<<uint(buttonCount) - 1),
			LeftStick:  sanitizeStick(st.Gamepad.LeftStick),
			RightStick: sanitizeStick(st.Gamepad.RightStick),
		}
		s.pressStickButtons(&g, g.LeftStick, ButtonLeftStickUp, ButtonLeftStickDown, ButtonLeftStickLeft, ButtonLeftStickRight)
		s.pressStickButtons(&g, g.RightStick, ButtonRightStickUp, ButtonRightStickDown, ButtonRightStickLeft, ButtonRightStickRight)
		out.Gamepad = g
	}

	p := st.Pointer
	out.Pointer = PointerState{
		Buttons: p.Buttons & (1<<uint(mouseButtonCount) - 1),
		Wheel:   finiteOr(p.Wheel, s.current.Pointer.Wheel),
	}
	if isFinite(p.X) && isFinite(p.Y) {
		out.Pointer.X, out.Pointer.Y = p.X, p.Y
	} else {
		out.Pointer.X, out.Pointer.Y = s.current.Pointer.X, s.current.Pointer.Y
	}

	if len(st.Touches) > 0 {
		out.Touches = make([]TouchPoint, 0, len(st.Touches))
		for _, t := range st.Touches {
			if t.Position.IsFinite() {
				out.Touches = append(out.Touches, t)
			}
		}
		sort.SliceStable(out.Touches, func(i, j int) bool { return out.Touches[i].ID < out.Touches[j].ID })
		if len(out.Touches) == 0 {
			out.Touches = nil
		}
	}
	return out
}

func (s *Snapshot) pressStickButtons(g *GamepadState, v geom.Vec2, up, down, left, right Button) {
	if v.Y >= s.threshold {
		g.Press(up)
	}
	if v.Y <= -s.threshold {
		g.Press(down)
	}
	if v.X <= -s.threshold {
		g.Press(left)
	}
	if v.X >= s.threshold {
		g.Press(right)
	}
}

func sanitizeStick(v geom.Vec2) geom.Vec2 {
	if !v.IsFinite() {
		return geom.Vec2{}
	}
	return geom.Vec2{X: geom.Clamp(v.X, -1, 1), Y: geom.Clamp(v.Y, -1, 1)}
}

func isFinite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

func finiteOr(f, fallback float64) float64 {
	if isFinite(f) {
		return f
	}
	return fallback
}

// IsDown reports whether c is held this tick
func (s *Snapshot) IsDown(c Control) bool { return s.current.IsDown(c) }

// WasDown reports whether c was held last tick
func (s *Snapshot) WasDown(c Control) bool { return s.previous.IsDown(c) }

// IsNewPress reports an up to down transition of c
func (s *Snapshot) IsNewPress(c Control) bool {
	return s.current.IsDown(c) && !s.previous.IsDown(c)
}

// IsNewRelease reports a down to up transition of c
func (s *Snapshot) IsNewRelease(c Control) bool {
	return !s.current.IsDown(c) && s.previous.IsDown(c)
}

// IsNewKeyPress reports whether k went down this tick
func (s *Snapshot) IsNewKeyPress(k ebiten.Key) bool { return s.IsNewPress(KeyControl(k)) }

// IsNewKeyRelease reports whether k went up this tick
func (s *Snapshot) IsNewKeyRelease(k ebiten.Key) bool { return s.IsNewRelease(KeyControl(k)) }

// IsNewButtonPress reports whether gamepad button b went down this tick
func (s *Snapshot) IsNewButtonPress(b Button) bool { return s.IsNewPress(ButtonControl(b)) }

// IsNewButtonRelease reports whether gamepad button b went up this tick
func (s *Snapshot) IsNewButtonRelease(b Button) bool { return s.IsNewRelease(ButtonControl(b)) }

// IsNewMouseButtonPress reports whether mouse button b went down this tick
func (s *Snapshot) IsNewMouseButtonPress(b MouseButton) bool {
	return s.IsNewPress(MouseControl(b))
}

// IsNewMouseButtonRelease reports whether mouse button b went up this tick
func (s *Snapshot) IsNewMouseButtonRelease(b MouseButton) bool {
	return s.IsNewRelease(MouseControl(b))
}

// ScrollDelta returns the wheel movement since last tick. Positive is up.
func (s *Snapshot) ScrollDelta() float64 {
	return s.current.Pointer.Wheel - s.previous.Pointer.Wheel
}

// IsNewScrollUp reports whether the wheel moved up since the last tick
func (s *Snapshot) IsNewScrollUp() bool { return s.ScrollDelta() > 0 }

// IsNewScrollDown reports whether the wheel moved down since the last tick
func (s *Snapshot) IsNewScrollDown() bool { return s.ScrollDelta() < 0 }

// AnyTouch reports whether any touch point is active this tick
func (s *Snapshot) AnyTouch() bool { return s.current.AnyTouch() }

// IsNewTouchDown reports the first contact after a tick with none
func (s *Snapshot) IsNewTouchDown() bool {
	return !s.previous.AnyTouch() && s.current.AnyTouch()
}

// IsNewTouchUp reports the last contact lifting
func (s *Snapshot) IsNewTouchUp() bool {
	return s.previous.AnyTouch() && !s.current.AnyTouch()
}

// PrimaryTouch returns the active touch point with the lowest id.
// Only this point drives the cursor; other contacts are ignored.
func (s *Snapshot) PrimaryTouch() (TouchPoint, bool) {
	if len(s.current.Touches) == 0 {
		return TouchPoint{}, false
	}
	return s.current.Touches[0], true
}
