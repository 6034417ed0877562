package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/pewpew/internal/domain/animation"
	"github.com/younwookim/pewpew/internal/domain/geom"
)

func TestNewWorld(t *testing.T) {
	w := NewWorld()

	assert.NotNil(t, w)
	assert.Equal(t, EntityID(1), w.nextID)
	assert.NotNil(t, w.Transform)
	assert.NotNil(t, w.Animator)
	assert.NotNil(t, w.Body)
}

func TestNewEntity(t *testing.T) {
	w := NewWorld()

	id1 := w.NewEntity()
	id2 := w.NewEntity()
	id3 := w.NewEntity()

	assert.Equal(t, EntityID(1), id1)
	assert.Equal(t, EntityID(2), id2)
	assert.Equal(t, EntityID(3), id3)
	assert.Equal(t, EntityID(4), w.nextID)
}

func TestEntityIDNeverRecycled(t *testing.T) {
	w := NewWorld()

	id1 := w.NewEntity()
	w.Transform[id1] = geom.NewTransform(100, 200)

	w.DestroyEntity(id1)

	id2 := w.NewEntity()
	assert.NotEqual(t, id1, id2, "Entity IDs should never be recycled")
	assert.Equal(t, EntityID(2), id2)
}

func TestDestroyEntity(t *testing.T) {
	w := NewWorld()
	id := w.CreateSprite(SpriteConfig{
		Name:      "alien",
		Transform: geom.NewTransform(10, 10),
		Size:      Size{W: 7, H: 13},
		Animator:  animation.NewAnimator(1),
		Body:      &Body{Velocity: geom.Vec2{X: 1}},
	})
	require.True(t, w.Exists(id))

	w.DestroyEntity(id)

	assert.False(t, w.Exists(id))
	_, hasAnim := w.Animator[id]
	assert.False(t, hasAnim)
	_, hasBody := w.Body[id]
	assert.False(t, hasBody)
	_, hasSize := w.Size[id]
	assert.False(t, hasSize)
	assert.Equal(t, "", w.Name(id))
}

func TestExists(t *testing.T) {
	w := NewWorld()
	id := w.NewEntity()

	assert.False(t, w.Exists(id), "Entity without Transform should not exist")

	w.Transform[id] = geom.NewTransform(0, 0)
	assert.True(t, w.Exists(id), "Entity with Transform should exist")
}

func TestCreateSprite(t *testing.T) {
	t.Run("optional components follow the config", func(t *testing.T) {
		w := NewWorld()
		static := w.CreateSprite(SpriteConfig{Transform: geom.NewTransform(0, 0), Animator: animation.NewAnimator(0)})
		moving := w.CreateSprite(SpriteConfig{Name: "ship", Transform: geom.NewTransform(0, 0), Body: &Body{}})

		_, ok := w.Body[static]
		assert.False(t, ok)
		_, ok = w.Label[static]
		assert.False(t, ok)

		_, ok = w.Animator[moving]
		assert.False(t, ok)
		assert.Equal(t, "ship", w.Name(moving))
		assert.Equal(t, 1, w.CountSprites())
	})
}

func TestSprites(t *testing.T) {
	w := NewWorld()
	var want []EntityID
	for i := 0; i < 5; i++ {
		want = append(want, w.CreateSprite(SpriteConfig{Transform: geom.NewTransform(0, 0), Animator: animation.NewAnimator(0)}))
	}
	w.NewEntity() // no components

	assert.Equal(t, want, w.Sprites())
}

func TestSize(t *testing.T) {
	s := Size{W: 10, H: 20}
	tr := geom.NewTransform(50, 100)

	minX, minY, maxX, maxY := s.Bounds(tr)
	assert.Equal(t, 45.0, minX)
	assert.Equal(t, 80.0, minY)
	assert.Equal(t, 55.0, maxX)
	assert.Equal(t, 100.0, maxY)

	assert.True(t, s.Contains(tr, geom.Vec2{X: 50, Y: 90}))
	assert.True(t, s.Contains(tr, geom.Vec2{X: 45, Y: 100}), "edges inclusive")
	assert.False(t, s.Contains(tr, geom.Vec2{X: 50, Y: 101}))

	tr.Scale = -2
	assert.True(t, s.Contains(tr, geom.Vec2{X: 41, Y: 61}), "negative scale uses magnitude")
}

func TestSpriteAt(t *testing.T) {
	w := NewWorld()
	below := w.CreateSprite(SpriteConfig{Transform: geom.NewTransform(50, 100), Size: Size{W: 20, H: 20}, Animator: animation.NewAnimator(0)})
	above := w.CreateSprite(SpriteConfig{Transform: geom.NewTransform(55, 100), Size: Size{W: 20, H: 20}, Animator: animation.NewAnimator(0)})

	id, ok := w.SpriteAt(geom.Vec2{X: 58, Y: 90})
	require.True(t, ok)
	assert.Equal(t, above, id, "later sprite is on top")

	id, ok = w.SpriteAt(geom.Vec2{X: 41, Y: 90})
	require.True(t, ok)
	assert.Equal(t, below, id)

	_, ok = w.SpriteAt(geom.Vec2{X: 200, Y: 200})
	assert.False(t, ok)
}
