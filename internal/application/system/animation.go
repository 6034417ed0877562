package system

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/pewpew/internal/application/tick"
	"github.com/younwookim/pewpew/internal/ecs"
)

// AnimationSystem moves and animates the sprites of a world
type AnimationSystem struct {
	world *ecs.World
}

// NewAnimationSystem creates a new animation system
func NewAnimationSystem(w *ecs.World) *AnimationSystem {
	return &AnimationSystem{world: w}
}

// Update advances every body and animation by one tick
func (s *AnimationSystem) Update(ctx *tick.Context) {
	ecs.MoveBodies(s.world, ctx.Viewport, ctx.Delta)
	ecs.AdvanceAnimations(s.world, ctx.Delta)
}

// Draw renders every animated sprite
func (s *AnimationSystem) Draw(dst *ebiten.Image) error {
	return ecs.DrawAnimated(s.world, dst)
}
