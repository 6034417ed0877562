package system

import (
	"github.com/younwookim/pewpew/internal/application/tick"
	"github.com/younwookim/pewpew/internal/domain/geom"
	"github.com/younwookim/pewpew/internal/domain/input"
	"github.com/younwookim/pewpew/internal/infrastructure/config"
)

// InputSystem owns the per-tick input pipeline: snapshot, cursor and
// semantic actions.
type InputSystem struct {
	snapshot *input.Snapshot
	cursor   *input.CursorTracker
	mapper   *input.Mapper
}

// NewInputSystem creates a new input system. warper may be nil.
func NewInputSystem(poller input.Poller, warper input.PointerWarper, cfg config.InputConfig) *InputSystem {
	snap := input.NewSnapshot(poller, cfg.StickButtonThreshold)
	cursor := input.NewCursorTracker(geom.Vec2{X: cfg.CursorSensitivityX, Y: cfg.CursorSensitivityY}, warper)
	return &InputSystem{
		snapshot: snap,
		cursor:   cursor,
		mapper:   input.NewMapper(snap, cursor),
	}
}

// Update captures this tick's devices and moves the cursor.
// It must run before anything reads input in the same tick.
func (s *InputSystem) Update(ctx *tick.Context) {
	s.snapshot.Update()
	s.cursor.Update(s.snapshot, ctx.Viewport, ctx.Delta)
}

// Snapshot returns the edge detector
func (s *InputSystem) Snapshot() *input.Snapshot { return s.snapshot }

// Cursor returns the merged cursor
func (s *InputSystem) Cursor() *input.CursorTracker { return s.cursor }

// Actions returns the semantic action mapper
func (s *InputSystem) Actions() *input.Mapper { return s.mapper }
