// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"errors"
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/pewpew/internal/application/scene"
	"github.com/younwookim/pewpew/internal/application/tick"
	"github.com/younwookim/pewpew/internal/domain/geom"
	"github.com/younwookim/pewpew/internal/infrastructure/content"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	clock   *tick.Clock
	content *content.Manager
	log     *log.Logger
	last    *tick.Context
}

// Option configures a Game
type Option func(*Game)

// WithContent injects the content manager handed to scenes every tick.
// Its hot reload queue is drained before each scene Update.
func WithContent(cm *content.Manager) Option {
	return func(g *Game) { g.content = cm }
}

// WithLogger sets the logger handed to scenes every tick
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.log = l }
}

// WithTPS sets the fixed number of ticks per second
func WithTPS(tps int) Option {
	return func(g *Game) { g.clock = tick.NewClock(tps) }
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int, opts ...Option) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		clock:   tick.NewClock(60), // Default to 60 FPS
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.log == nil {
		g.log = log.New(io.Discard)
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	ctx := g.clock.Next(g.viewport(), g.content, g.log)
	if g.content != nil {
		ctx.Reloaded = g.content.Poll()
	}
	g.last = ctx

	next, err := g.current.Update(ctx)
	if err != nil {
		if errors.Is(err, ebiten.Termination) {
			g.log.Info("scene requested exit", "frame", ctx.Frame)
			g.current.OnExit()
		}
		return err
	}

	// Handle scene transition
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

func (g *Game) viewport() geom.Viewport {
	return geom.Viewport{Width: float64(g.screenW), Height: float64(g.screenH)}
}

// Resize changes the logical screen size; scenes see it on the next tick
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
}

// SetDT sets the delta time used for updates.
// Useful for testing or custom frame rates. Invalid values are ignored.
func (g *Game) SetDT(dt float64) {
	if !(dt > 0) || math.IsInf(dt, 1) {
		return
	}
	g.clock = tick.NewClockDelta(dt)
}

// LastTick returns the context of the most recent Update, nil before the first
func (g *Game) LastTick() *tick.Context { return g.last }
