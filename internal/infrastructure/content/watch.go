package content

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/fsnotify/fsnotify"
)

// Watch starts watching dir, the OS directory backing the manager's file
// system, and every directory below it. Changes are queued until Poll.
func (m *Manager) Watch(dir string) error {
	if m.closed {
		return ErrClosed
	}
	if m.watcher != nil {
		return nil
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	err = filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(p)
		}
		return nil
	})
	if err != nil {
		w.Close()
		return err
	}

	m.watcher = w
	m.watchDir = dir
	m.done = make(chan struct{})
	m.wg.Add(1)
	go m.watch()

	m.log.Info("watching content", "dir", dir)
	return nil
}

func (m *Manager) watch() {
	defer m.wg.Done()
	for {
		select {
		case e, ok := <-m.watcher.Events:
			if !ok {
				return
			}
			if e.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if e.Op&fsnotify.Create != 0 {
				// New subdirectories need their own watch
				if fi, err := os.Stat(e.Name); err == nil && fi.IsDir() {
					_ = m.watcher.Add(e.Name)
				}
			}
			rel, err := filepath.Rel(m.watchDir, e.Name)
			if err != nil {
				continue
			}
			m.mu.Lock()
			m.pending[CleanPath(rel)] = struct{}{}
			m.mu.Unlock()

		case err, ok := <-m.watcher.Errors:
			if !ok {
				return
			}
			m.log.Warn("content watcher", "err", err)

		case <-m.done:
			return
		}
	}
}

// Poll applies queued file changes: every changed sheet that is cached gets
// released so the next LoadSheet decodes the new contents. It returns the
// released paths, sorted. Call it once per tick on the game thread.
func (m *Manager) Poll() []string {
	m.mu.Lock()
	if len(m.pending) == 0 {
		m.mu.Unlock()
		return nil
	}
	changed := make([]string, 0, len(m.pending))
	for p := range m.pending {
		changed = append(changed, p)
	}
	m.pending = make(map[string]struct{})
	m.mu.Unlock()

	sort.Strings(changed)
	var released []string
	for _, p := range changed {
		if m.Release(p) {
			m.log.Info("sheet changed on disk", "path", p)
			released = append(released, p)
		}
	}
	return released
}

// Close stops watching and releases every sheet
func (m *Manager) Close() error {
	if m.closed {
		return nil
	}
	m.closed = true

	var err error
	if m.watcher != nil {
		close(m.done)
		err = m.watcher.Close()
		m.wg.Wait()
		m.watcher = nil
	}
	m.ReleaseAll()
	return err
}
