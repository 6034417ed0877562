package ecs

import (
	"github.com/younwookim/pewpew/internal/domain/geom"
)

// Size is the logical extent of a sprite in pixels, anchored at the
// bottom centre of its Transform position.
type Size struct {
	W, H float64
}

// Bounds returns the screen rectangle covered by a sprite of this size at tr
// as (minX, minY, maxX, maxY).
func (s Size) Bounds(tr geom.Transform) (minX, minY, maxX, maxY float64) {
	scale := tr.Scale
	if scale < 0 {
		scale = -scale
	}
	w := s.W * scale
	h := s.H * scale
	minX = tr.Position.X - w/2
	maxX = tr.Position.X + w/2
	maxY = tr.Position.Y
	minY = tr.Position.Y - h
	return
}

// Contains reports whether p lies on a sprite of this size at tr (edges inclusive)
func (s Size) Contains(tr geom.Transform, p geom.Vec2) bool {
	minX, minY, maxX, maxY := s.Bounds(tr)
	return p.X >= minX && p.X <= maxX && p.Y >= minY && p.Y <= maxY
}

// Body is a kinematic motion component: velocity in pixels per second.
// Entities with a Body bounce off the viewport edges.
type Body struct {
	Velocity geom.Vec2
	// Bounce is the fraction of speed kept when hitting an edge (0..1)
	Bounce float64
	// FaceMotion flips the sprite horizontally to face its direction of travel
	FaceMotion bool
}

// Label is a human readable name used by the HUD and logs
type Label struct {
	Name string
}
