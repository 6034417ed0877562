package animation

import (
	"fmt"
	"image"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/pewpew/internal/domain/geom"
)

// Animator owns the named animations of one entity and plays one of them.
// It is created when the entity is initialised and dropped with it.
type Animator struct {
	animations map[string]*Definition
	active     string
	timeline   Timeline
}

// NewAnimator creates an empty animator. capacity is a size hint.
func NewAnimator(capacity int) *Animator {
	if capacity < 0 {
		capacity = 0
	}
	return &Animator{animations: make(map[string]*Definition, capacity)}
}

// CreateAnimation registers a new animation and makes it the active one,
// starting from frame 0.
func (a *Animator) CreateAnimation(name string, sheet Sheet, frameDuration float64, frameW, frameH int, loop bool) error {
	if _, exists := a.animations[name]; exists {
		return fmt.Errorf("create %q: %w", name, ErrDuplicateName)
	}

	def, err := NewDefinition(name, sheet, frameDuration, frameW, frameH, loop)
	if err != nil {
		return err
	}

	a.animations[name] = def
	a.activate(name, def)
	return nil
}

// AddDefinition registers a prebuilt definition without changing the active
// animation.
func (a *Animator) AddDefinition(def *Definition) error {
	if _, exists := a.animations[def.name]; exists {
		return fmt.Errorf("add %q: %w", def.name, ErrDuplicateName)
	}
	a.animations[def.name] = def
	return nil
}

// SetActive switches to the named animation. Playback always restarts from
// frame 0, including when name is already active.
func (a *Animator) SetActive(name string) error {
	def, ok := a.animations[name]
	if !ok {
		return fmt.Errorf("activate %q: %w", name, ErrUnknownAnimation)
	}
	a.activate(name, def)
	return nil
}

// PlayAnimation is an alias of SetActive
func (a *Animator) PlayAnimation(name string) error {
	return a.SetActive(name)
}

func (a *Animator) activate(name string, def *Definition) {
	a.active = name
	a.timeline = NewTimeline(def)
}

// RemoveAnimation unregisters the named animation. Removing the active
// animation leaves the animator with nothing to play until SetActive.
func (a *Animator) RemoveAnimation(name string) error {
	if _, ok := a.animations[name]; !ok {
		return fmt.Errorf("remove %q: %w", name, ErrUnknownAnimation)
	}
	delete(a.animations, name)
	if a.active == name {
		a.active = ""
		a.timeline = Timeline{}
	}
	return nil
}

// AnimationExists reports whether name is registered
func (a *Animator) AnimationExists(name string) bool {
	_, ok := a.animations[name]
	return ok
}

// Active returns the active animation name, or "" if none
func (a *Animator) Active() string { return a.active }

// Names returns all registered names in sorted order
func (a *Animator) Names() []string {
	names := make([]string, 0, len(a.animations))
	for name := range a.animations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered animations
func (a *Animator) Len() int { return len(a.animations) }

// Timeline returns the active playback state
func (a *Animator) Timeline() *Timeline { return &a.timeline }

// Frame returns the current frame index of the active animation
func (a *Animator) Frame() int { return a.timeline.frame }

// Finished reports whether a non-looping active animation is on its last frame
func (a *Animator) Finished() bool { return a.timeline.Finished() }

// Advance moves the active animation forward by dt seconds.
// Call it at most once per tick.
func (a *Animator) Advance(dt float64) {
	a.timeline.Advance(dt)
}

// SourceRect returns the sheet rectangle of the current frame:
// (frame*frameW, 0, frameW, sheetHeight).
func (a *Animator) SourceRect() image.Rectangle {
	def := a.timeline.def
	if def == nil {
		return image.Rectangle{}
	}
	_, sheetH := def.sheet.Size()
	x := a.timeline.frame * def.frameW
	return image.Rect(x, 0, x+def.frameW, sheetH)
}

// Origin returns the draw origin: bottom centre of one frame
func (a *Animator) Origin() geom.Vec2 {
	def := a.timeline.def
	if def == nil {
		return geom.Vec2{}
	}
	return geom.Vec2{X: float64(def.frameW) / 2, Y: float64(def.frameH)}
}

// DrawOptions builds the draw options placing the current frame at tr.
// Flips mirror around the origin, then scale, rotation and translation apply.
func (a *Animator) DrawOptions(tr geom.Transform) *ebiten.DrawImageOptions {
	origin := a.Origin()
	sx, sy := tr.Scale, tr.Scale
	if tr.FlipH {
		sx = -sx
	}
	if tr.FlipV {
		sy = -sy
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-origin.X, -origin.Y)
	op.GeoM.Scale(sx, sy)
	op.GeoM.Rotate(tr.Rotation)
	op.GeoM.Translate(tr.Position.X, tr.Position.Y)
	op.ColorScale.ScaleWithColor(tr.Tint)
	return op
}

// Render draws the current frame onto dst at tr. Drawing is skipped when the
// sheet has already been released by the content manager.
func (a *Animator) Render(dst *ebiten.Image, tr geom.Transform) error {
	def := a.timeline.def
	if def == nil {
		return fmt.Errorf("render %q: %w", a.active, ErrUnknownAnimation)
	}
	if dst == nil || def.sheet.Released() {
		return nil
	}
	img := def.sheet.Image()
	if img == nil {
		return nil
	}

	frame, ok := img.SubImage(a.SourceRect()).(*ebiten.Image)
	if !ok {
		return nil
	}
	dst.DrawImage(frame, a.DrawOptions(tr))
	return nil
}
