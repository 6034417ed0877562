package ecs

import (
	"sort"

	"github.com/younwookim/pewpew/internal/domain/animation"
	"github.com/younwookim/pewpew/internal/domain/geom"
)

// EntityID is a unique identifier for an entity (never recycled)
type EntityID uint64

// World holds all component maps and the next entity ID.
// An entity's behaviour is chosen by which components it has.
type World struct {
	nextID EntityID

	// Components
	Transform map[EntityID]geom.Transform
	Animator  map[EntityID]*animation.Animator
	Size      map[EntityID]Size
	Body      map[EntityID]Body
	Label     map[EntityID]Label
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		nextID:    1, // 0 is "nil"
		Transform: make(map[EntityID]geom.Transform),
		Animator:  make(map[EntityID]*animation.Animator),
		Size:      make(map[EntityID]Size),
		Body:      make(map[EntityID]Body),
		Label:     make(map[EntityID]Label),
	}
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// DestroyEntity removes all components for an entity
func (w *World) DestroyEntity(id EntityID) {
	delete(w.Transform, id)
	delete(w.Animator, id)
	delete(w.Size, id)
	delete(w.Body, id)
	delete(w.Label, id)
}

// Exists checks if an entity has a Transform component
func (w *World) Exists(id EntityID) bool {
	_, ok := w.Transform[id]
	return ok
}

// SpriteConfig holds the components of an animated sprite
type SpriteConfig struct {
	Name      string
	Transform geom.Transform
	Size      Size
	Animator  *animation.Animator
	// Body is optional; nil leaves the sprite static
	Body *Body
}

// CreateSprite creates an animated sprite entity
func (w *World) CreateSprite(cfg SpriteConfig) EntityID {
	id := w.NewEntity()

	w.Transform[id] = cfg.Transform
	w.Size[id] = cfg.Size
	if cfg.Animator != nil {
		w.Animator[id] = cfg.Animator
	}
	if cfg.Body != nil {
		w.Body[id] = *cfg.Body
	}
	if cfg.Name != "" {
		w.Label[id] = Label{Name: cfg.Name}
	}

	return id
}

// Sprites returns the IDs of all entities with an Animator, in creation order
func (w *World) Sprites() []EntityID {
	ids := make([]EntityID, 0, len(w.Animator))
	for id := range w.Animator {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// SpriteAt returns the topmost sprite under p. Sprites created later draw on
// top, so they win.
func (w *World) SpriteAt(p geom.Vec2) (EntityID, bool) {
	ids := w.Sprites()
	for i := len(ids) - 1; i >= 0; i-- {
		id := ids[i]
		tr, ok := w.Transform[id]
		if !ok {
			continue
		}
		size, ok := w.Size[id]
		if !ok {
			continue
		}
		if size.Contains(tr, p) {
			return id, true
		}
	}
	return 0, false
}

// Name returns the entity label, or "" if it has none
func (w *World) Name(id EntityID) string {
	return w.Label[id].Name
}

// CountSprites returns the number of animated entities
func (w *World) CountSprites() int {
	return len(w.Animator)
}
