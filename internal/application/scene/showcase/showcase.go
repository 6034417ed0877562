// Package showcase provides the demo scene: a set of animated sprites that
// can be browsed, retargeted and flipped with any input device.
package showcase

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/pewpew/internal/application/scene"
	"github.com/younwookim/pewpew/internal/application/state"
	"github.com/younwookim/pewpew/internal/application/system"
	"github.com/younwookim/pewpew/internal/application/tick"
	"github.com/younwookim/pewpew/internal/ecs"
	"github.com/younwookim/pewpew/internal/infrastructure/config"
	"github.com/younwookim/pewpew/internal/infrastructure/content"
)

// Colors for rendering
var (
	colorCursor    = color.RGBA{255, 255, 255, 255}
	colorSelection = color.RGBA{255, 215, 0, 255}
	colorPauseDim  = color.RGBA{0, 0, 0, 128}
)

const hudLineHeight = 16

// Showcase is the only scene of the demo
type Showcase struct {
	world    *ecs.World
	manifest *config.SpriteManifest
	input    *system.InputSystem
	anim     *system.AnimationSystem
	bg       color.Color
	log      *log.Logger

	state     state.ShowcaseState
	selected  ecs.EntityID
	highlight int

	// HUD data from the last Update
	actions    string
	renderErrs int
}

// New creates the showcase over a world already populated from manifest.
// manifest may be nil, in which case hot reloaded sheets are not rebuilt.
func New(w *ecs.World, manifest *config.SpriteManifest, in *system.InputSystem, background color.Color) *Showcase {
	s := &Showcase{
		world:    w,
		manifest: manifest,
		input:    in,
		anim:     system.NewAnimationSystem(w),
		bg:       background,
		log:      log.New(io.Discard),
	}
	if ids := w.Sprites(); len(ids) > 0 {
		s.selectSprite(ids[0])
	}
	return s
}

// OnEnter is called when entering this scene
func (s *Showcase) OnEnter() {
	s.state = state.StateBrowsing
}

// OnExit is called when leaving this scene
func (s *Showcase) OnExit() {
	s.log.Debug("leaving showcase", "state", s.state)
}

// State returns the current state
func (s *Showcase) State() state.ShowcaseState { return s.state }

// Selected returns the sprite the menu acts on, 0 if none
func (s *Showcase) Selected() ecs.EntityID { return s.selected }

// Highlighted returns the animation name under the menu highlight
func (s *Showcase) Highlighted() string {
	names := s.animationNames()
	if len(names) == 0 {
		return ""
	}
	return names[s.highlight]
}

// Update processes one tick
func (s *Showcase) Update(ctx *tick.Context) (scene.Scene, error) {
	if ctx.Log != nil {
		s.log = ctx.Log
	}
	if len(ctx.Reloaded) > 0 {
		s.reload(ctx)
	}

	s.input.Update(ctx)
	acts := s.input.Actions()
	set := acts.Actions()
	s.actions = set.String()

	switch s.state {
	case state.StateBrowsing:
		if err := s.updateBrowsing(ctx); err != nil {
			return nil, err
		}
	case state.StatePaused:
		switch {
		case acts.ScreenExit():
			s.transition(state.EventExit)
			return nil, fmt.Errorf("showcase: %w", ebiten.Termination)
		case acts.Select():
			s.transition(state.EventResume)
		}
	case state.StateExiting:
		return nil, ebiten.Termination
	}

	return nil, nil
}

func (s *Showcase) updateBrowsing(ctx *tick.Context) error {
	acts := s.input.Actions()

	if acts.Cancel() {
		s.transition(state.EventPause)
		return nil
	}

	picked := false
	if acts.Hold() {
		if id, ok := s.world.SpriteAt(s.input.Cursor().Position()); ok && id != s.selected {
			s.selectSprite(id)
			picked = true
		}
	}

	if names := s.animationNames(); len(names) > 0 {
		switch {
		case acts.Up():
			s.highlight = (s.highlight + len(names) - 1) % len(names)
		case acts.Down():
			s.highlight = (s.highlight + 1) % len(names)
		}
		if !picked && acts.Select() {
			if err := s.world.Animator[s.selected].SetActive(names[s.highlight]); err != nil {
				return fmt.Errorf("activate %s on %s: %w", names[s.highlight], s.world.Name(s.selected), err)
			}
			s.log.Debug("animation activated", "sprite", s.world.Name(s.selected), "animation", names[s.highlight])
		}
	}

	if acts.Left() || acts.Right() {
		s.flip(acts.Left())
	}

	s.anim.Update(ctx)
	return nil
}

// flip faces the selected sprite left or right. A manual flip sticks: the
// sprite's body stops turning it to face its motion.
func (s *Showcase) flip(left bool) {
	tr, ok := s.world.Transform[s.selected]
	if !ok {
		return
	}
	tr.FlipH = left
	s.world.Transform[s.selected] = tr

	if body, ok := s.world.Body[s.selected]; ok && body.FaceMotion {
		body.FaceMotion = false
		s.world.Body[s.selected] = body
	}
}

func (s *Showcase) transition(ev state.Event) {
	next := s.state.Next(ev)
	if next != s.state {
		s.log.Info("state changed", "from", s.state, "to", next)
	}
	s.state = next
}

func (s *Showcase) selectSprite(id ecs.EntityID) {
	s.selected = id
	s.highlight = 0
	a := s.world.Animator[id]
	if a == nil {
		return
	}
	for i, name := range a.Names() {
		if name == a.Active() {
			s.highlight = i
			break
		}
	}
}

func (s *Showcase) animationNames() []string {
	a := s.world.Animator[s.selected]
	if a == nil {
		return nil
	}
	return a.Names()
}

// reload rebuilds the animator of every sprite whose sheets changed on disk.
// The active animation survives when the new animator still has it.
func (s *Showcase) reload(ctx *tick.Context) {
	if s.manifest == nil || ctx.Content == nil {
		return
	}
	changed := make(map[string]bool, len(ctx.Reloaded))
	for _, p := range ctx.Reloaded {
		changed[p] = true
	}

	for _, id := range s.world.Sprites() {
		cfg, ok := s.spriteConfig(s.world.Name(id))
		if !ok || !usesAny(cfg, changed) {
			continue
		}
		anim, err := system.BuildAnimator(cfg, ctx.Content)
		if err != nil {
			s.log.Error("reload failed", "sprite", cfg.Name, "err", err)
			continue
		}
		if old := s.world.Animator[id]; old != nil && anim.AnimationExists(old.Active()) {
			_ = anim.SetActive(old.Active())
		}
		s.world.Animator[id] = anim
		s.log.Info("sprite reloaded", "sprite", cfg.Name)
	}

	if s.highlight >= len(s.animationNames()) {
		s.highlight = 0
	}
}

func (s *Showcase) spriteConfig(name string) (config.SpriteConfig, bool) {
	for _, sc := range s.manifest.Sprites {
		if sc.Name == name {
			return sc, true
		}
	}
	return config.SpriteConfig{}, false
}

func usesAny(cfg config.SpriteConfig, paths map[string]bool) bool {
	for _, p := range cfg.Sheets() {
		if paths[content.CleanPath(p)] {
			return true
		}
	}
	return false
}

// Draw renders the scene
func (s *Showcase) Draw(screen *ebiten.Image) {
	screen.Fill(s.bg)

	if err := s.anim.Draw(screen); err != nil {
		s.renderErrs++
		s.log.Error("render failed", "err", err)
	}

	s.drawSelection(screen)
	if s.state == state.StatePaused {
		b := screen.Bounds()
		vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), colorPauseDim, false)
	}
	s.drawCursor(screen)

	for i, line := range s.HUD() {
		ebitenutil.DebugPrintAt(screen, line, 4, 4+i*hudLineHeight)
	}
}

func (s *Showcase) drawSelection(screen *ebiten.Image) {
	tr, ok := s.world.Transform[s.selected]
	if !ok {
		return
	}
	size, ok := s.world.Size[s.selected]
	if !ok {
		return
	}
	minX, minY, maxX, maxY := size.Bounds(tr)
	vector.StrokeRect(screen, float32(minX)-1, float32(minY)-1, float32(maxX-minX)+2, float32(maxY-minY)+2, 1, colorSelection, false)
}

func (s *Showcase) drawCursor(screen *ebiten.Image) {
	p := s.input.Cursor().Position()
	vector.DrawFilledRect(screen, float32(p.X)-1, float32(p.Y)-1, 3, 3, colorCursor, false)
}

// HUD returns the debug overlay lines
func (s *Showcase) HUD() []string {
	lines := []string{fmt.Sprintf("state: %s", s.state)}

	if a := s.world.Animator[s.selected]; a != nil {
		lines = append(lines,
			fmt.Sprintf("sprite: %s", s.world.Name(s.selected)),
			fmt.Sprintf("animation: %s frame %d", a.Active(), a.Frame()),
			"menu: "+s.menu(),
		)
	}

	lines = append(lines,
		fmt.Sprintf("cursor: %s", s.input.Cursor().Source()),
		"actions: "+s.actions,
	)
	if s.renderErrs > 0 {
		lines = append(lines, fmt.Sprintf("render errors: %d", s.renderErrs))
	}
	return lines
}

func (s *Showcase) menu() string {
	names := s.animationNames()
	parts := make([]string, len(names))
	for i, name := range names {
		if i == s.highlight {
			parts[i] = "[" + name + "]"
		} else {
			parts[i] = name
		}
	}
	return strings.Join(parts, " ")
}
