// Package content loads and caches frame sheets.
//
// A Manager is created once and injected wherever sheets are needed. It owns
// deduplication by path and the lifetime of every sheet it hands out. It is
// not safe for concurrent use except for the file watcher, whose events are
// queued and applied by Poll on the game thread.
package content

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder
	"io"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	_ "golang.org/x/image/bmp"  // Register BMP decoder
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// ErrClosed is returned when watching on a closed manager
var ErrClosed = errors.New("content manager closed")

// Manager loads frame sheets from a file system and deduplicates them by
// cleaned path.
type Manager struct {
	fsys   fs.FS
	log    *log.Logger
	sheets map[string]*Sheet

	mu      sync.Mutex
	pending map[string]struct{}

	watcher  *fsnotify.Watcher
	watchDir string
	done     chan struct{}
	wg       sync.WaitGroup
	closed   bool
}

// NewManager creates a manager reading from fsys. A nil logger discards.
func NewManager(fsys fs.FS, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Manager{
		fsys:    fsys,
		log:     logger,
		sheets:  make(map[string]*Sheet),
		pending: make(map[string]struct{}),
	}
}

// CleanPath normalises a content path to the form used as cache key
func CleanPath(p string) string {
	p = path.Clean(filepath.ToSlash(p))
	p = strings.TrimPrefix(p, "/")
	if p == "" {
		return "."
	}
	return p
}

// LoadSheet returns the sheet at p, decoding it on first use.
// Loading a released path decodes it again.
func (m *Manager) LoadSheet(p string) (*Sheet, error) {
	key := CleanPath(p)
	if s, ok := m.sheets[key]; ok && !s.released {
		return s, nil
	}

	data, err := fs.ReadFile(m.fsys, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", key, err)
	}
	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode sheet %s: %w", key, err)
	}

	s := newSheet(key, src)
	m.sheets[key] = s
	m.log.Debug("sheet loaded", "path", key, "format", format, "w", s.w, "h", s.h)
	return s, nil
}

// Sheet returns the cached, unreleased sheet at p without loading it
func (m *Manager) Sheet(p string) (*Sheet, bool) {
	s, ok := m.sheets[CleanPath(p)]
	if !ok || s.released {
		return nil, false
	}
	return s, true
}

// Release frees the sheet at p. Animations still holding it stop drawing.
// Returns false if nothing was cached there.
func (m *Manager) Release(p string) bool {
	key := CleanPath(p)
	s, ok := m.sheets[key]
	if !ok {
		return false
	}
	s.release()
	delete(m.sheets, key)
	m.log.Debug("sheet released", "path", key)
	return true
}

// ReleaseAll frees every cached sheet
func (m *Manager) ReleaseAll() {
	for key, s := range m.sheets {
		s.release()
		delete(m.sheets, key)
	}
	m.log.Debug("all sheets released")
}

// Paths returns the cached sheet paths, sorted
func (m *Manager) Paths() []string {
	paths := make([]string, 0, len(m.sheets))
	for p := range m.sheets {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Len returns the number of cached sheets
func (m *Manager) Len() int { return len(m.sheets) }
