package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

func invalid(section, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", section, fmt.Sprintf(format, args...), ErrInvalidConfig)
}

// SpriteManifest is the root of sprites.yaml
type SpriteManifest struct {
	Sprites []SpriteConfig `yaml:"sprites"`
}

// SpriteConfig describes one sprite entity and its animations
type SpriteConfig struct {
	Name             string            `yaml:"name"`
	Size             SizeConfig        `yaml:"size"`
	Position         PointConfig       `yaml:"position"`
	Scale            float64           `yaml:"scale,omitempty"`
	Rotation         float64           `yaml:"rotation,omitempty"` // degrees
	Tint             HexColor          `yaml:"tint,omitempty"`
	FlipH            bool              `yaml:"flip_h,omitempty"`
	Velocity         PointConfig       `yaml:"velocity,omitempty"`
	Bounce           float64           `yaml:"bounce,omitempty"`
	DefaultAnimation string            `yaml:"default_animation,omitempty"`
	Animations       []AnimationConfig `yaml:"animations"`
}

// AnimationConfig describes one frame sheet animation
type AnimationConfig struct {
	Name          string  `yaml:"name"`
	Sheet         string  `yaml:"sheet"` // path relative to the assets dir
	FrameDuration float64 `yaml:"frame_duration"`
	FrameWidth    int     `yaml:"frame_width"`
	FrameHeight   int     `yaml:"frame_height"`
	Loop          *bool   `yaml:"loop,omitempty"` // defaults to true
}

// Looping reports the loop flag, true when unset
func (a AnimationConfig) Looping() bool {
	return a.Loop == nil || *a.Loop
}

type SizeConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type PointConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// IsMoving reports a non-zero velocity
func (p PointConfig) IsMoving() bool { return p.X != 0 || p.Y != 0 }

// Defaults fills zero values with working defaults
func (m *SpriteManifest) Defaults() {
	for i := range m.Sprites {
		s := &m.Sprites[i]
		if s.Scale == 0 {
			s.Scale = 1
		}
		if s.Tint.IsZero() {
			s.Tint = White
		}
		if s.DefaultAnimation == "" && len(s.Animations) > 0 {
			s.DefaultAnimation = s.Animations[0].Name
		}
		for j := range s.Animations {
			a := &s.Animations[j]
			if a.FrameWidth == 0 {
				a.FrameWidth = int(s.Size.Width)
			}
			if a.FrameHeight == 0 {
				a.FrameHeight = int(s.Size.Height)
			}
		}
	}
}

// Validate reports the first invalid sprite or animation
func (m *SpriteManifest) Validate() error {
	seen := make(map[string]bool, len(m.Sprites))
	for _, s := range m.Sprites {
		if s.Name == "" {
			return invalid("sprites", "sprite without a name")
		}
		if seen[s.Name] {
			return invalid("sprites", "duplicate sprite %q", s.Name)
		}
		seen[s.Name] = true

		if s.Size.Width <= 0 || s.Size.Height <= 0 {
			return invalid("sprites", "%s: size must be positive", s.Name)
		}
		if len(s.Animations) == 0 {
			return invalid("sprites", "%s: no animations", s.Name)
		}
		if s.Bounce < 0 || s.Bounce > 1 {
			return invalid("sprites", "%s: bounce must be in [0,1]", s.Name)
		}

		names := make(map[string]bool, len(s.Animations))
		for _, a := range s.Animations {
			switch {
			case a.Name == "":
				return invalid("sprites", "%s: animation without a name", s.Name)
			case names[a.Name]:
				return invalid("sprites", "%s: duplicate animation %q", s.Name, a.Name)
			case a.Sheet == "":
				return invalid("sprites", "%s/%s: missing sheet", s.Name, a.Name)
			case a.FrameDuration <= 0:
				return invalid("sprites", "%s/%s: frame duration must be positive", s.Name, a.Name)
			case a.FrameWidth <= 0 || a.FrameHeight <= 0:
				return invalid("sprites", "%s/%s: frame size must be positive", s.Name, a.Name)
			}
			names[a.Name] = true
		}
		if !names[s.DefaultAnimation] {
			return invalid("sprites", "%s: default animation %q not defined", s.Name, s.DefaultAnimation)
		}
	}
	return nil
}

// Sheets returns every sheet path referenced by the sprite
func (s SpriteConfig) Sheets() []string {
	paths := make([]string, 0, len(s.Animations))
	for _, a := range s.Animations {
		paths = append(paths, a.Sheet)
	}
	return paths
}
