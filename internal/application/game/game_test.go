package game

import (
	"fmt"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/pewpew/internal/application/scene"
	"github.com/younwookim/pewpew/internal/application/tick"
	"github.com/younwookim/pewpew/internal/infrastructure/content"
	"github.com/younwookim/pewpew/internal/infrastructure/logging"
)

// mockScene is a test double for Scene interface
type mockScene struct {
	updateCalled  int
	drawCalled    int
	onEnterCalled int
	onExitCalled  int
	nextScene     scene.Scene
	updateErr     error
	lastCtx       *tick.Context
}

func (m *mockScene) Update(ctx *tick.Context) (scene.Scene, error) {
	m.updateCalled++
	m.lastCtx = ctx
	return m.nextScene, m.updateErr
}

func (m *mockScene) Draw(screen *ebiten.Image) {
	m.drawCalled++
}

func (m *mockScene) OnEnter() {
	m.onEnterCalled++
}

func (m *mockScene) OnExit() {
	m.onExitCalled++
}

func TestNew(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, 320, 240)

	assert.NotNil(t, g)
	assert.Equal(t, 1, mockInitial.onEnterCalled, "OnEnter should be called on initial scene")
	assert.Nil(t, g.LastTick())
}

func TestGame_Update_DelegatesToCurrentScene(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, 320, 240)

	err := g.Update()
	assert.NoError(t, err)
	assert.Equal(t, 1, mockInitial.updateCalled, "Update should delegate to current scene")
}

func TestGame_Update_BuildsTickContext(t *testing.T) {
	mockInitial := &mockScene{}
	logger := logging.Discard()
	cm := content.NewManager(nil, logger)
	g := New(mockInitial, 320, 240, WithTPS(50), WithContent(cm), WithLogger(logger))

	for i := 0; i < 3; i++ {
		require.NoError(t, g.Update())
	}

	ctx := mockInitial.lastCtx
	require.NotNil(t, ctx)
	assert.Equal(t, uint64(3), ctx.Frame)
	assert.InDelta(t, 0.02, ctx.Delta, 1e-12)
	assert.InDelta(t, 0.06, ctx.Elapsed, 1e-9)
	assert.Equal(t, 320.0, ctx.Viewport.Width)
	assert.Equal(t, 240.0, ctx.Viewport.Height)
	assert.Same(t, cm, ctx.Content)
	assert.Same(t, logger, ctx.Log)
	assert.Empty(t, ctx.Reloaded)
	assert.Same(t, ctx, g.LastTick())
}

func TestGame_Resize(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, 320, 240)
	g.Resize(640, 360)

	require.NoError(t, g.Update())
	assert.Equal(t, 640.0, mockInitial.lastCtx.Viewport.Width)

	w, h := g.Layout(100, 100)
	assert.Equal(t, 640, w)
	assert.Equal(t, 360, h)
}

func TestGame_Draw_DelegatesToCurrentScene(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, 320, 240)

	// Create a dummy image for testing
	img := ebiten.NewImage(320, 240)
	g.Draw(img)

	assert.Equal(t, 1, mockInitial.drawCalled, "Draw should delegate to current scene")
}

func TestGame_Layout(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, 320, 240)

	w, h := g.Layout(640, 480)
	assert.Equal(t, 320, w)
	assert.Equal(t, 240, h)
}

func TestGame_SceneTransition(t *testing.T) {
	scene1 := &mockScene{}
	scene2 := &mockScene{}

	// scene1 will transition to scene2 on first update
	scene1.nextScene = scene2

	g := New(scene1, 320, 240)
	assert.Equal(t, 1, scene1.onEnterCalled, "Initial scene OnEnter called")

	// First update triggers transition
	err := g.Update()
	assert.NoError(t, err)

	assert.Equal(t, 1, scene1.updateCalled, "scene1 Update called")
	assert.Equal(t, 1, scene1.onExitCalled, "scene1 OnExit called on transition")
	assert.Equal(t, 1, scene2.onEnterCalled, "scene2 OnEnter called on transition")

	// Second update goes to scene2
	err = g.Update()
	assert.NoError(t, err)
	assert.Equal(t, 1, scene2.updateCalled, "scene2 Update called")
}

func TestGame_NoTransitionWhenNil(t *testing.T) {
	scene1 := &mockScene{nextScene: nil} // Returns nil, no transition

	g := New(scene1, 320, 240)

	// Multiple updates, no transition
	for i := 0; i < 5; i++ {
		err := g.Update()
		assert.NoError(t, err)
	}

	assert.Equal(t, 5, scene1.updateCalled, "All updates go to scene1")
	assert.Equal(t, 0, scene1.onExitCalled, "No OnExit when no transition")
}

func TestGame_UpdateError(t *testing.T) {
	scene1 := &mockScene{updateErr: assert.AnError}

	g := New(scene1, 320, 240)

	err := g.Update()
	assert.Error(t, err, "Error should propagate from scene")
	assert.Equal(t, 0, scene1.onExitCalled)
}

func TestGame_Termination(t *testing.T) {
	scene1 := &mockScene{updateErr: fmt.Errorf("quit: %w", ebiten.Termination)}

	g := New(scene1, 320, 240)

	err := g.Update()
	assert.ErrorIs(t, err, ebiten.Termination)
	assert.Equal(t, 1, scene1.onExitCalled, "OnExit runs on clean exit")
}

func TestGame_SetDT(t *testing.T) {
	scene1 := &mockScene{}
	g := New(scene1, 320, 240)

	g.SetDT(0.01)
	require.NoError(t, g.Update())
	assert.InDelta(t, 0.01, scene1.lastCtx.Delta, 1e-12)

	g.SetDT(-1)
	require.NoError(t, g.Update())
	assert.InDelta(t, 0.01, scene1.lastCtx.Delta, 1e-12, "invalid dt is ignored")
}

func TestGame_SetDT_KeepsExactDelta(t *testing.T) {
	tests := []struct {
		name string
		dt   float64
	}{
		{"not a whole tick rate", 0.3},
		{"longer than a second", 2.5},
		{"tiny", 1e-4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene1 := &mockScene{}
			g := New(scene1, 320, 240)
			g.SetDT(tt.dt)

			require.NoError(t, g.Update())
			require.NoError(t, g.Update())
			assert.Equal(t, tt.dt, scene1.lastCtx.Delta)
			assert.InDelta(t, 2*tt.dt, scene1.lastCtx.Elapsed, 1e-12)
		})
	}
}
