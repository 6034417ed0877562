package input

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/pewpew/internal/domain/geom"
)

// mapperAfter returns a mapper whose snapshot moved from prev to cur
func mapperAfter(t *testing.T, prev, cur State) (*Mapper, *CursorTracker) {
	t.Helper()
	s, _ := newTestSnapshot(prev, cur)
	c := NewCursorTracker(geom.Vec2{X: 300, Y: 300}, nil)
	s.Update()
	s.Update()
	c.Update(s, testViewport, 0)
	return NewMapper(s, c), c
}

func TestMapper_Tables(t *testing.T) {
	rightStick := func(x, y float64) State {
		g := pad()
		g.RightStick = geom.Vec2{X: x, Y: y}
		return State{Gamepad: g}
	}
	wheel := func(w float64) State { return State{Pointer: PointerState{Wheel: w}} }
	touch := State{Touches: []TouchPoint{{ID: 1, Position: geom.Vec2{X: 3, Y: 4}}}}

	cases := []struct {
		name   string
		action Action
		prev   State
		cur    State
	}{
		{"select on space", ActionSelect, State{}, State{Keyboard: keys(ebiten.KeySpace)}},
		{"select on enter", ActionSelect, State{}, State{Keyboard: keys(ebiten.KeyEnter)}},
		{"select on gamepad A", ActionSelect, State{}, State{Gamepad: pad(ButtonA)}},
		{"select on left click", ActionSelect, State{}, State{Pointer: mouse(0, 0, MouseLeft)}},
		{"select on new touch", ActionSelect, State{}, touch},
		{"hold on gamepad A", ActionHold, State{}, State{Gamepad: pad(ButtonA)}},
		{"hold on left click", ActionHold, State{}, State{Pointer: mouse(0, 0, MouseLeft)}},
		{"cancel on escape", ActionCancel, State{}, State{Keyboard: keys(ebiten.KeyEscape)}},
		{"cancel on backspace", ActionCancel, State{}, State{Keyboard: keys(ebiten.KeyBackspace)}},
		{"cancel on gamepad B", ActionCancel, State{}, State{Gamepad: pad(ButtonB)}},
		{"cancel on gamepad back", ActionCancel, State{}, State{Gamepad: pad(ButtonBack)}},
		{"up on arrow", ActionUp, State{}, State{Keyboard: keys(ebiten.KeyUp)}},
		{"up on page up", ActionUp, State{}, State{Keyboard: keys(ebiten.KeyPageUp)}},
		{"up on W", ActionUp, State{}, State{Keyboard: keys(ebiten.KeyW)}},
		{"up on d-pad", ActionUp, State{}, State{Gamepad: pad(ButtonDPadUp)}},
		{"up on right stick", ActionUp, rightStick(0, 0), rightStick(0, 1)},
		{"up on scroll", ActionUp, wheel(0), wheel(1)},
		{"down on arrow", ActionDown, State{}, State{Keyboard: keys(ebiten.KeyDown)}},
		{"down on page down", ActionDown, State{}, State{Keyboard: keys(ebiten.KeyPageDown)}},
		{"down on S", ActionDown, State{}, State{Keyboard: keys(ebiten.KeyS)}},
		{"down on d-pad", ActionDown, State{}, State{Gamepad: pad(ButtonDPadDown)}},
		{"down on right stick", ActionDown, rightStick(0, 0), rightStick(0, -1)},
		{"down on scroll", ActionDown, wheel(2), wheel(1)},
		{"left on arrow", ActionLeft, State{}, State{Keyboard: keys(ebiten.KeyLeft)}},
		{"left on A", ActionLeft, State{}, State{Keyboard: keys(ebiten.KeyA)}},
		{"left on d-pad", ActionLeft, State{}, State{Gamepad: pad(ButtonDPadLeft)}},
		{"left on right stick", ActionLeft, rightStick(0, 0), rightStick(-1, 0)},
		{"right on arrow", ActionRight, State{}, State{Keyboard: keys(ebiten.KeyRight)}},
		{"right on D", ActionRight, State{}, State{Keyboard: keys(ebiten.KeyD)}},
		{"right on d-pad", ActionRight, State{}, State{Gamepad: pad(ButtonDPadRight)}},
		{"right on right stick", ActionRight, rightStick(0, 0), rightStick(1, 0)},
		{"exit on escape", ActionScreenExit, State{}, State{Keyboard: keys(ebiten.KeyEscape)}},
		{"exit on backspace", ActionScreenExit, State{}, State{Keyboard: keys(ebiten.KeyBackspace)}},
		{"exit on gamepad back", ActionScreenExit, State{}, State{Gamepad: pad(ButtonBack)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, _ := mapperAfter(t, tc.prev, tc.cur)
			assert.True(t, m.Is(tc.action))

			held, _ := mapperAfter(t, tc.cur, tc.cur)
			assert.False(t, held.Is(tc.action), "held controls do not repeat")
		})
	}
}

func TestMapper_NonTriggers(t *testing.T) {
	t.Run("gamepad B does not exit the screen", func(t *testing.T) {
		m, _ := mapperAfter(t, State{}, State{Gamepad: pad(ButtonB)})
		assert.False(t, m.ScreenExit())
		assert.True(t, m.Cancel())
	})

	t.Run("touch does not count as hold", func(t *testing.T) {
		m, _ := mapperAfter(t, State{}, State{Touches: []TouchPoint{{ID: 1}}})
		assert.False(t, m.Hold())
	})

	t.Run("keyboard enter does not count as hold", func(t *testing.T) {
		m, _ := mapperAfter(t, State{}, State{Keyboard: keys(ebiten.KeyEnter)})
		assert.False(t, m.Hold())
		assert.True(t, m.Select())
	})
}

func TestMapper_SelectOnEnterOnly(t *testing.T) {
	m, _ := mapperAfter(t, State{}, State{Keyboard: keys(ebiten.KeyEnter)})

	assert.True(t, m.Select())
	set := m.Actions()
	assert.True(t, set.Has(ActionSelect))
	assert.True(t, set.Has(ActionRelease), "nothing is held")
	for _, a := range []Action{ActionHold, ActionCancel, ActionUp, ActionDown, ActionLeft, ActionRight, ActionScreenExit} {
		assert.False(t, set.Has(a), a.String())
	}
}

func TestMapper_MultipleEdgesYieldOneAction(t *testing.T) {
	cur := State{
		Keyboard: keys(ebiten.KeySpace, ebiten.KeyEnter),
		Gamepad:  pad(ButtonA),
		Pointer:  mouse(0, 0, MouseLeft),
	}
	m, _ := mapperAfter(t, State{}, cur)

	assert.True(t, m.Select())
	assert.Equal(t, "select hold", m.Actions().String())
}

func TestMapper_Release(t *testing.T) {
	cases := []struct {
		name string
		cur  State
		want bool
	}{
		{"nothing held", State{}, true},
		{"gamepad A held", State{Gamepad: pad(ButtonA)}, false},
		{"left button held", State{Pointer: mouse(0, 0, MouseLeft)}, false},
		{"other buttons do not count", State{Gamepad: pad(ButtonB), Pointer: mouse(0, 0, MouseRight)}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, _ := mapperAfter(t, tc.cur, tc.cur)
			assert.Equal(t, tc.want, m.Release(), "release is a level, not an edge")
		})
	}
}

func TestMapper_SelectSyncsCursorToTouch(t *testing.T) {
	s, p := newTestSnapshot(State{Pointer: mouse(10, 10)})
	c := NewCursorTracker(geom.Vec2{X: 300, Y: 300}, nil)
	m := NewMapper(s, c)
	s.Update()
	c.Update(s, testViewport, 0)
	require.Equal(t, geom.Vec2{X: 10, Y: 10}, c.Position())

	// the snapshot advances without a cursor update this tick
	p.push(State{Pointer: mouse(10, 10), Touches: []TouchPoint{{ID: 4, Position: geom.Vec2{X: 60, Y: 70}}}})
	s.Update()

	assert.True(t, m.Select())
	assert.Equal(t, geom.Vec2{X: 60, Y: 70}, c.Position())
}

func TestMapper_CancelSyncsCursorToTouch(t *testing.T) {
	s, p := newTestSnapshot(State{})
	c := NewCursorTracker(geom.Vec2{X: 300, Y: 300}, nil)
	m := NewMapper(s, c)
	s.Update()
	c.Update(s, testViewport, 0)

	p.push(State{Touches: []TouchPoint{{ID: 1, Position: geom.Vec2{X: 30, Y: 40}}}})
	s.Update()

	assert.False(t, m.Cancel())
	assert.Equal(t, geom.Vec2{X: 30, Y: 40}, c.Position())
}

func TestMapper_NilCursor(t *testing.T) {
	s, _ := newTestSnapshot(State{}, State{Touches: []TouchPoint{{ID: 1}}})
	s.Update()
	s.Update()
	m := NewMapper(s, nil)
	assert.True(t, m.Select())
	assert.False(t, m.Cancel())
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "select", ActionSelect.String())
	assert.Equal(t, "screen-exit", ActionScreenExit.String())
	assert.Equal(t, "unknown", Action(99).String())
	assert.Len(t, AllActions(), 9)
	assert.False(t, ActionSet(0xffff).Has(Action(42)))
	assert.Equal(t, "", ActionSet(0).String())
}
