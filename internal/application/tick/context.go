// Package tick carries per-tick state to the systems and scenes that need
// it, instead of a process-wide game accessor.
package tick

import (
	"math"

	"github.com/charmbracelet/log"

	"github.com/younwookim/pewpew/internal/domain/geom"
	"github.com/younwookim/pewpew/internal/infrastructure/content"
)

// Context is rebuilt by the game loop every Update
type Context struct {
	// Delta is the time covered by this tick, in seconds
	Delta float64
	// Elapsed is the total simulated time, in seconds
	Elapsed float64
	// Frame counts ticks from 1
	Frame uint64
	// Viewport is the logical screen size, read fresh each tick
	Viewport geom.Viewport

	Content *content.Manager
	Log     *log.Logger

	// Reloaded lists the sheets released by hot reload this tick
	Reloaded []string
}

// Clock produces successive tick contexts with a fixed delta
type Clock struct {
	delta   float64
	elapsed float64
	frame   uint64
}

// NewClock creates a clock ticking at tps ticks per second
func NewClock(tps int) *Clock {
	if tps <= 0 {
		tps = 60
	}
	return &Clock{delta: 1.0 / float64(tps)}
}

// NewClockDelta creates a clock with a tick length of exactly delta seconds.
// A non-positive or non-finite delta selects 60 ticks per second.
func NewClockDelta(delta float64) *Clock {
	if !(delta > 0) || math.IsInf(delta, 1) {
		return NewClock(60)
	}
	return &Clock{delta: delta}
}

// Delta returns the fixed tick length in seconds
func (c *Clock) Delta() float64 { return c.delta }

// Next advances the clock and returns the context for the new tick
func (c *Clock) Next(vp geom.Viewport, cm *content.Manager, logger *log.Logger) *Context {
	c.frame++
	c.elapsed = float64(c.frame) * c.delta
	return &Context{
		Delta:    c.delta,
		Elapsed:  c.elapsed,
		Frame:    c.frame,
		Viewport: vp,
		Content:  cm,
		Log:      logger,
	}
}
