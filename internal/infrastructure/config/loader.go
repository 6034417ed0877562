package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Settings *GameSettings
	Sprites  *SpriteManifest
}

// Loader loads game configuration files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory the loader reads from
func (l *Loader) BasePath() string { return l.basePath }

// AssetsPath returns the OS path of the assets dir named by settings
func (l *Loader) AssetsPath(s *GameSettings) string {
	if filepath.IsAbs(s.Assets.Dir) {
		return s.Assets.Dir
	}
	return filepath.Join(l.basePath, s.Assets.Dir)
}

// LoadSettings loads game.json, fills defaults and validates it
func (l *Loader) LoadSettings() (*GameSettings, error) {
	data, err := fs.ReadFile(l.fsys, "game.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read game.json: %w", err)
	}

	var cfg GameSettings
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game.json: %w", err)
	}

	cfg.Defaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("game.json: %w", err)
	}
	return &cfg, nil
}

// LoadSprites loads a sprite manifest, fills defaults and validates it
func (l *Loader) LoadSprites(name string) (*SpriteManifest, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	var m SpriteManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}

	m.Defaults()
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &m, nil
}

// LoadAll loads the settings and the sprite manifest they name
func (l *Loader) LoadAll() (*GameConfig, error) {
	settings, err := l.LoadSettings()
	if err != nil {
		return nil, err
	}

	sprites, err := l.LoadSprites(settings.Assets.Manifest)
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Settings: settings,
		Sprites:  sprites,
	}, nil
}
