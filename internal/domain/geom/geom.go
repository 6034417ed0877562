// Package geom holds the small value types shared by the animation and input
// packages: vectors, the viewport rectangle and sprite transforms.
package geom

import (
	"image/color"
	"math"

	"golang.org/x/exp/constraints"
)

// Clamp returns f clamped to the range [low, high].
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

// Vec2 is a 2D vector in screen space (y grows downwards).
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Mul returns the component-wise product of v and o
func (v Vec2) Mul(o Vec2) Vec2 { return Vec2{v.X * o.X, v.Y * o.Y} }

// Scale returns v scaled by s
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// IsZero reports whether both components are exactly zero
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// IsFinite reports whether neither component is NaN or infinite
func (v Vec2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// Viewport is the visible screen rectangle anchored at the origin.
type Viewport struct {
	Width, Height float64
}

// Clamp clamps p into [0,Width] x [0,Height].
// A degenerate (negative) viewport collapses to the origin.
func (vp Viewport) Clamp(p Vec2) Vec2 {
	w := math.Max(vp.Width, 0)
	h := math.Max(vp.Height, 0)
	return Vec2{
		X: Clamp(p.X, 0, w),
		Y: Clamp(p.Y, 0, h),
	}
}

// Contains reports whether p lies inside the viewport (edges inclusive)
func (vp Viewport) Contains(p Vec2) bool {
	return p.X >= 0 && p.X <= vp.Width && p.Y >= 0 && p.Y <= vp.Height
}

// Transform is the placement of a drawable entity.
type Transform struct {
	Position Vec2
	Rotation float64 // radians
	Scale    float64 // uniform
	Tint     color.RGBA
	FlipH    bool
	FlipV    bool
}

// NewTransform returns a transform at (x, y) with unit scale and a white tint
func NewTransform(x, y float64) Transform {
	return Transform{
		Position: Vec2{X: x, Y: y},
		Scale:    1,
		Tint:     color.RGBA{255, 255, 255, 255},
	}
}
