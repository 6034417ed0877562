// Package device captures Ebitengine keyboard, gamepad, mouse and touch
// state into input.State values once per tick.
package device

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/pewpew/internal/domain/geom"
	"github.com/younwookim/pewpew/internal/domain/input"
)

// standardButtons maps the standard gamepad layout onto logical buttons
var standardButtons = []struct {
	std     ebiten.StandardGamepadButton
	logical input.Button
}{
	{ebiten.StandardGamepadButtonRightBottom, input.ButtonA},
	{ebiten.StandardGamepadButtonRightRight, input.ButtonB},
	{ebiten.StandardGamepadButtonRightLeft, input.ButtonX},
	{ebiten.StandardGamepadButtonRightTop, input.ButtonY},
	{ebiten.StandardGamepadButtonCenterLeft, input.ButtonBack},
	{ebiten.StandardGamepadButtonCenterRight, input.ButtonStart},
	{ebiten.StandardGamepadButtonCenterCenter, input.ButtonHome},
	{ebiten.StandardGamepadButtonFrontTopLeft, input.ButtonLeftShoulder},
	{ebiten.StandardGamepadButtonFrontTopRight, input.ButtonRightShoulder},
	{ebiten.StandardGamepadButtonFrontBottomLeft, input.ButtonLeftTrigger},
	{ebiten.StandardGamepadButtonFrontBottomRight, input.ButtonRightTrigger},
	{ebiten.StandardGamepadButtonLeftStick, input.ButtonLeftStick},
	{ebiten.StandardGamepadButtonRightStick, input.ButtonRightStick},
	{ebiten.StandardGamepadButtonLeftTop, input.ButtonDPadUp},
	{ebiten.StandardGamepadButtonLeftBottom, input.ButtonDPadDown},
	{ebiten.StandardGamepadButtonLeftLeft, input.ButtonDPadLeft},
	{ebiten.StandardGamepadButtonLeftRight, input.ButtonDPadRight},
}

// rawButtons is the fallback for pads without a standard layout
var rawButtons = []struct {
	raw     ebiten.GamepadButton
	logical input.Button
}{
	{ebiten.GamepadButton0, input.ButtonA},
	{ebiten.GamepadButton1, input.ButtonB},
	{ebiten.GamepadButton2, input.ButtonX},
	{ebiten.GamepadButton3, input.ButtonY},
	{ebiten.GamepadButton6, input.ButtonBack},
	{ebiten.GamepadButton7, input.ButtonStart},
}

var mouseButtons = []struct {
	raw     ebiten.MouseButton
	logical input.MouseButton
}{
	{ebiten.MouseButtonLeft, input.MouseLeft},
	{ebiten.MouseButtonMiddle, input.MouseMiddle},
	{ebiten.MouseButtonRight, input.MouseRight},
	{ebiten.MouseButton3, input.MouseX1},
	{ebiten.MouseButton4, input.MouseX2},
}

// Poller reads Ebitengine input state. It implements input.Poller and
// input.PointerWarper and must be used from the game thread.
type Poller struct {
	deadzone float64

	keys     []ebiten.Key
	gamepads []ebiten.GamepadID
	touches  []ebiten.TouchID

	wheel float64
	warp  pointerWarp
}

// NewPoller creates a poller. Stick values whose magnitude is below deadzone
// on an axis read as zero.
func NewPoller(deadzone float64) *Poller {
	return &Poller{deadzone: geom.Clamp(deadzone, 0, 0.99)}
}

// Poll implements input.Poller
func (p *Poller) Poll() input.State {
	var s input.State

	p.keys = inpututil.AppendPressedKeys(p.keys[:0])
	for _, k := range p.keys {
		s.Keyboard.Press(k)
	}

	s.Gamepad = p.pollGamepad()
	s.Pointer = p.pollPointer()

	p.touches = ebiten.AppendTouchIDs(p.touches[:0])
	if len(p.touches) > 0 {
		s.Touches = make([]input.TouchPoint, 0, len(p.touches))
		for _, id := range p.touches {
			x, y := ebiten.TouchPosition(id)
			s.Touches = append(s.Touches, input.TouchPoint{
				ID:       int(id),
				Position: geom.Vec2{X: float64(x), Y: float64(y)},
			})
		}
	}
	return s
}

// pollGamepad reads the first connected gamepad only
func (p *Poller) pollGamepad() input.GamepadState {
	p.gamepads = ebiten.AppendGamepadIDs(p.gamepads[:0])
	if len(p.gamepads) == 0 {
		return input.GamepadState{}
	}
	id := p.gamepads[0]
	for _, g := range p.gamepads[1:] {
		if g < id {
			id = g
		}
	}

	g := input.GamepadState{Connected: true}
	if !ebiten.IsStandardGamepadLayoutAvailable(id) {
		for _, b := range rawButtons {
			if ebiten.IsGamepadButtonPressed(id, b.raw) {
				g.Press(b.logical)
			}
		}
		g.LeftStick = p.stick(ebiten.GamepadAxisValue(id, 0), ebiten.GamepadAxisValue(id, 1))
		g.RightStick = p.stick(ebiten.GamepadAxisValue(id, 2), ebiten.GamepadAxisValue(id, 3))
		return g
	}

	for _, b := range standardButtons {
		if ebiten.IsStandardGamepadButtonPressed(id, b.std) {
			g.Press(b.logical)
		}
	}
	g.LeftStick = p.stick(
		ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal),
		ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical),
	)
	g.RightStick = p.stick(
		ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal),
		ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical),
	)
	return g
}

// stick converts a raw stick reading (y down) into an up-positive vector
func (p *Poller) stick(x, y float64) geom.Vec2 {
	return geom.Vec2{X: applyDeadzone(x, p.deadzone), Y: -applyDeadzone(y, p.deadzone)}
}

func applyDeadzone(v, deadzone float64) float64 {
	if math.Abs(v) < deadzone {
		return 0
	}
	return v
}

func (p *Poller) pollPointer() input.PointerState {
	cx, cy := ebiten.CursorPosition()
	x, y := p.warp.resolve(cx, cy)

	// Wheel reports a per-frame offset; the snapshot expects a running total.
	_, dy := ebiten.Wheel()
	p.wheel += dy

	ps := input.PointerState{X: x, Y: y, Wheel: p.wheel}
	for _, b := range mouseButtons {
		if ebiten.IsMouseButtonPressed(b.raw) {
			ps.Press(b.logical)
		}
	}
	return ps
}

// WarpPointer implements input.PointerWarper. Ebitengine cannot move the OS
// cursor, so the warped position is reported until the mouse moves.
func (p *Poller) WarpPointer(x, y float64) {
	cx, cy := ebiten.CursorPosition()
	p.warp.set(x, y, cx, cy)
}

// pointerWarp overrides the reported pointer position while the physical
// cursor stays where it was at warp time.
type pointerWarp struct {
	active       bool
	x, y         float64
	physX, physY int
}

func (w *pointerWarp) set(x, y float64, physX, physY int) {
	w.active = true
	w.x, w.y = x, y
	w.physX, w.physY = physX, physY
}

func (w *pointerWarp) resolve(physX, physY int) (float64, float64) {
	if w.active && physX == w.physX && physY == w.physY {
		return w.x, w.y
	}
	w.active = false
	return float64(physX), float64(physY)
}
