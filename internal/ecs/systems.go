package ecs

import (
	"errors"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/pewpew/internal/domain/geom"
)

// AdvanceAnimations moves every animated entity forward by dt seconds.
// Call once per tick.
func AdvanceAnimations(w *World, dt float64) {
	for _, a := range w.Animator {
		a.Advance(dt)
	}
}

// MoveBodies integrates the velocity of every entity with a Body and a
// Transform, bouncing off the viewport edges.
func MoveBodies(w *World, vp geom.Viewport, dt float64) {
	if !(dt > 0) || math.IsInf(dt, 1) {
		return
	}
	for id, body := range w.Body {
		tr, ok := w.Transform[id]
		if !ok {
			continue
		}

		pos := tr.Position.Add(body.Velocity.Scale(dt))
		vel := body.Velocity

		if pos.X < 0 || pos.X > vp.Width {
			vel.X = -vel.X * body.Bounce
		}
		if pos.Y < 0 || pos.Y > vp.Height {
			vel.Y = -vel.Y * body.Bounce
		}
		tr.Position = vp.Clamp(pos)

		if body.FaceMotion && vel.X != 0 {
			tr.FlipH = vel.X < 0
		}

		body.Velocity = vel
		w.Transform[id] = tr
		w.Body[id] = body
	}
}

// DrawAnimated renders every entity that has both an Animator and a
// Transform, in creation order. A failing sprite does not stop the others;
// all failures are returned joined.
func DrawAnimated(w *World, dst *ebiten.Image) error {
	var errs []error
	for _, id := range w.Sprites() {
		tr, ok := w.Transform[id]
		if !ok {
			continue
		}
		if err := w.Animator[id].Render(dst, tr); err != nil {
			errs = append(errs, fmt.Errorf("entity %d (%s): %w", id, w.Name(id), err))
		}
	}
	return errors.Join(errs...)
}
