package system

import (
	"fmt"
	"math"

	"github.com/younwookim/pewpew/internal/domain/animation"
	"github.com/younwookim/pewpew/internal/domain/geom"
	"github.com/younwookim/pewpew/internal/ecs"
	"github.com/younwookim/pewpew/internal/infrastructure/config"
	"github.com/younwookim/pewpew/internal/infrastructure/content"
)

// BuildAnimator loads every sheet of cfg and returns an animator playing
// the default animation
func BuildAnimator(cfg config.SpriteConfig, cm *content.Manager) (*animation.Animator, error) {
	a := animation.NewAnimator(len(cfg.Animations))
	for _, ac := range cfg.Animations {
		sheet, err := cm.LoadSheet(ac.Sheet)
		if err != nil {
			return nil, fmt.Errorf("sprite %s: %w", cfg.Name, err)
		}
		def, err := animation.NewDefinition(ac.Name, sheet, ac.FrameDuration, ac.FrameWidth, ac.FrameHeight, ac.Looping())
		if err != nil {
			return nil, fmt.Errorf("sprite %s: %w", cfg.Name, err)
		}
		if err := a.AddDefinition(def); err != nil {
			return nil, fmt.Errorf("sprite %s: %w", cfg.Name, err)
		}
	}
	if err := a.SetActive(cfg.DefaultAnimation); err != nil {
		return nil, fmt.Errorf("sprite %s: %w", cfg.Name, err)
	}
	return a, nil
}

// LoadSprite converts a SpriteConfig into a sprite entity of w
func LoadSprite(w *ecs.World, cfg config.SpriteConfig, cm *content.Manager) (ecs.EntityID, error) {
	anim, err := BuildAnimator(cfg, cm)
	if err != nil {
		return 0, err
	}

	tr := geom.NewTransform(cfg.Position.X, cfg.Position.Y)
	tr.Scale = cfg.Scale
	tr.Rotation = cfg.Rotation * math.Pi / 180
	tr.Tint = cfg.Tint.RGBA()
	tr.FlipH = cfg.FlipH

	sc := ecs.SpriteConfig{
		Name:      cfg.Name,
		Transform: tr,
		Size:      ecs.Size{W: cfg.Size.Width, H: cfg.Size.Height},
		Animator:  anim,
	}
	if cfg.Velocity.IsMoving() {
		sc.Body = &ecs.Body{
			Velocity:   geom.Vec2{X: cfg.Velocity.X, Y: cfg.Velocity.Y},
			Bounce:     cfg.Bounce,
			FaceMotion: true,
		}
	}
	return w.CreateSprite(sc), nil
}

// LoadSprites spawns every sprite of the manifest, in order
func LoadSprites(w *ecs.World, m *config.SpriteManifest, cm *content.Manager) ([]ecs.EntityID, error) {
	ids := make([]ecs.EntityID, 0, len(m.Sprites))
	for _, sc := range m.Sprites {
		id, err := LoadSprite(w, sc, cm)
		if err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
