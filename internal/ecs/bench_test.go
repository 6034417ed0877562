package ecs

import (
	"testing"

	"github.com/younwookim/pewpew/internal/domain/animation"
	"github.com/younwookim/pewpew/internal/domain/geom"
)

const benchSprites = 10_000

var benchViewport = geom.Viewport{Width: 320, Height: 240}

func benchWorld(b *testing.B) *World {
	b.Helper()
	w := NewWorld()
	sheet := &stubSheet{w: 70, h: 13}
	for i := 0; i < benchSprites; i++ {
		a := animation.NewAnimator(1)
		if err := a.CreateAnimation("walk", sheet, 0.1, 7, 13, i%2 == 0); err != nil {
			b.Fatal(err)
		}
		cfg := SpriteConfig{
			Transform: geom.NewTransform(float64(i%320), float64(i%240)),
			Size:      Size{W: 7, H: 13},
			Animator:  a,
		}
		// every fourth sprite moves
		if i%4 == 0 {
			cfg.Body = &Body{Velocity: geom.Vec2{X: 30, Y: -20}, Bounce: 1, FaceMotion: true}
		}
		w.CreateSprite(cfg)
	}
	return w
}

func BenchmarkAdvanceAnimations(b *testing.B) {
	w := benchWorld(b)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		AdvanceAnimations(w, 1.0/60)
	}
}

func BenchmarkMoveBodies(b *testing.B) {
	w := benchWorld(b)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		MoveBodies(w, benchViewport, 1.0/60)
	}
}

// SpriteAt walks every sprite on a miss
func BenchmarkSpriteAt_Miss(b *testing.B) {
	w := benchWorld(b)
	p := geom.Vec2{X: -50, Y: -50}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		if _, ok := w.SpriteAt(p); ok {
			b.Fatal("unexpected hit")
		}
	}
}

func BenchmarkSprites(b *testing.B) {
	w := benchWorld(b)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		_ = w.Sprites()
	}
}
