// Package animation implements frame-sheet sprite animation: immutable
// definitions, a per-entity playback timeline, and the Animator that owns
// both and draws the current frame.
package animation

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	// ErrDuplicateName is returned when registering an animation name twice.
	ErrDuplicateName = errors.New("animation already exists")
	// ErrUnknownAnimation is returned when activating, removing or rendering
	// an animation that is not registered.
	ErrUnknownAnimation = errors.New("unknown animation")
	// ErrInvalidDefinition is returned for non-positive frame durations or sizes.
	ErrInvalidDefinition = errors.New("invalid animation definition")
)

// Sheet is a loaded frame-sheet resource. Frames are laid out horizontally.
// Sheets are owned by the content manager; animations only read them.
type Sheet interface {
	Size() (w, h int)
	Released() bool
	Image() *ebiten.Image
}

// Definition describes one named animation. It is immutable after construction.
type Definition struct {
	name          string
	sheet         Sheet
	frameDuration float64
	frameW        int
	frameH        int
	loop          bool
	frameCount    int
}

// NewDefinition creates a definition.
// frameDuration is in seconds; frameW/frameH in pixels.
func NewDefinition(name string, sheet Sheet, frameDuration float64, frameW, frameH int, loop bool) (*Definition, error) {
	if !(frameDuration > 0) {
		return nil, fmt.Errorf("animation %q: frame duration %v: %w", name, frameDuration, ErrInvalidDefinition)
	}
	if frameW <= 0 || frameH <= 0 {
		return nil, fmt.Errorf("animation %q: frame size %dx%d: %w", name, frameW, frameH, ErrInvalidDefinition)
	}
	if sheet == nil {
		return nil, fmt.Errorf("animation %q: nil sheet: %w", name, ErrInvalidDefinition)
	}

	sheetW, _ := sheet.Size()
	count := sheetW / frameW
	if count < 1 {
		count = 1
	}

	return &Definition{
		name:          name,
		sheet:         sheet,
		frameDuration: frameDuration,
		frameW:        frameW,
		frameH:        frameH,
		loop:          loop,
		frameCount:    count,
	}, nil
}

// Name returns the unique animation name
func (d *Definition) Name() string { return d.name }

// Sheet returns the backing frame sheet
func (d *Definition) Sheet() Sheet { return d.sheet }

// FrameDuration returns seconds per frame
func (d *Definition) FrameDuration() float64 { return d.frameDuration }

// FrameSize returns the width and height of one frame
func (d *Definition) FrameSize() (w, h int) { return d.frameW, d.frameH }

// Loop reports whether playback wraps around after the last frame
func (d *Definition) Loop() bool { return d.loop }

// FrameCount returns sheetWidth / frameWidth, at least 1.
func (d *Definition) FrameCount() int { return d.frameCount }

// Duration returns the length of one full pass through the frames
func (d *Definition) Duration() float64 {
	return float64(d.frameCount) * d.frameDuration
}
