package content

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sheet is a decoded frame-sheet image owned by a Manager.
// Animations hold it read-only; once released it must not be drawn.
type Sheet struct {
	path     string
	src      image.Image
	img      *ebiten.Image
	w, h     int
	released bool
}

func newSheet(path string, src image.Image) *Sheet {
	b := src.Bounds()
	return &Sheet{path: path, src: src, w: b.Dx(), h: b.Dy()}
}

// Path returns the cleaned content path the sheet was loaded from
func (s *Sheet) Path() string { return s.path }

// Size returns the sheet dimensions in pixels
func (s *Sheet) Size() (int, int) { return s.w, s.h }

// Released reports whether the manager has freed this sheet
func (s *Sheet) Released() bool { return s.released }

// Image returns the GPU image, uploading it on first use.
// Returns nil once the sheet is released.
func (s *Sheet) Image() *ebiten.Image {
	if s.released {
		return nil
	}
	if s.img == nil {
		s.img = ebiten.NewImageFromImage(s.src)
	}
	return s.img
}

func (s *Sheet) release() {
	if s.released {
		return
	}
	if s.img != nil {
		s.img.Deallocate()
		s.img = nil
	}
	s.src = nil
	s.released = true
}
