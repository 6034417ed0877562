package input

import (
	"github.com/younwookim/pewpew/internal/domain/geom"
)

// DefaultCursorSensitivity is the stick-driven cursor speed in pixels per
// second at full deflection.
var DefaultCursorSensitivity = geom.Vec2{X: 300, Y: 300}

// CursorSource is the device that placed the cursor on the last update.
type CursorSource int

const (
	SourceNone CursorSource = iota
	SourceGamepad
	SourcePointer
	SourceTouch
)

// String returns the source name
func (c CursorSource) String() string {
	switch c {
	case SourceGamepad:
		return "gamepad"
	case SourcePointer:
		return "pointer"
	case SourceTouch:
		return "touch"
	default:
		return "none"
	}
}

// CursorTracker merges gamepad stick, pointer and touch into one on-screen
// cursor that always lies inside the viewport.
type CursorTracker struct {
	pos         geom.Vec2
	sensitivity geom.Vec2
	warper      PointerWarper
	viewport    geom.Viewport
	source      CursorSource
}

// NewCursorTracker creates a tracker. warper may be nil when the platform
// cannot move the pointer.
func NewCursorTracker(sensitivity geom.Vec2, warper PointerWarper) *CursorTracker {
	if !sensitivity.IsFinite() {
		sensitivity = DefaultCursorSensitivity
	}
	return &CursorTracker{sensitivity: sensitivity, warper: warper}
}

// Update places the cursor for this tick. The stick integrates while
// deflected, otherwise the pointer position is used; an active touch
// overrides both. dt is in seconds.
func (c *CursorTracker) Update(s *Snapshot, vp geom.Viewport, dt float64) {
	c.viewport = vp
	if !isFinite(dt) || dt < 0 {
		dt = 0
	}

	cur := s.Current()
	if stick := cur.Gamepad.LeftStick; cur.Gamepad.Connected && !stick.IsZero() {
		// Screen y grows downwards, stick y grows upwards.
		delta := geom.Vec2{X: stick.X * c.sensitivity.X, Y: -stick.Y * c.sensitivity.Y}.Scale(dt)
		c.pos = vp.Clamp(c.pos.Add(delta))
		c.source = SourceGamepad
		if c.warper != nil {
			c.warper.WarpPointer(c.pos.X, c.pos.Y)
		}
	} else {
		c.pos = vp.Clamp(cur.Pointer.Position())
		c.source = SourcePointer
	}

	c.SyncTouch(s)
}

// SyncTouch moves the cursor onto the primary touch point, if any, clamped
// to the viewport of the last Update.
func (c *CursorTracker) SyncTouch(s *Snapshot) {
	if t, ok := s.PrimaryTouch(); ok {
		c.pos = c.viewport.Clamp(t.Position)
		c.source = SourceTouch
	}
}

// Position returns the cursor position
func (c *CursorTracker) Position() geom.Vec2 { return c.pos }

// Source returns the device that placed the cursor last
func (c *CursorTracker) Source() CursorSource { return c.source }

// Viewport returns the viewport used by the last Update
func (c *CursorTracker) Viewport() geom.Viewport { return c.viewport }
