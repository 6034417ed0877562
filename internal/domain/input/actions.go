package input

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Action is a device-independent UI event.
type Action int

const (
	ActionSelect Action = iota
	ActionHold
	ActionRelease
	ActionCancel
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionScreenExit

	actionCount
)

var actionNames = [actionCount]string{
	ActionSelect:     "select",
	ActionHold:       "hold",
	ActionRelease:    "release",
	ActionCancel:     "cancel",
	ActionUp:         "up",
	ActionDown:       "down",
	ActionLeft:       "left",
	ActionRight:      "right",
	ActionScreenExit: "screen-exit",
}

// String returns the action name, "unknown" when out of range
func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// AllActions lists every action in declaration order
func AllActions() []Action {
	all := make([]Action, actionCount)
	for i := range all {
		all[i] = Action(i)
	}
	return all
}

// ActionSet is a set of actions triggered in one tick.
type ActionSet uint16

// Has reports whether a is in the set
func (s ActionSet) Has(a Action) bool {
	if a < 0 || a >= actionCount {
		return false
	}
	return s&(1<<uint(a)) != 0
}

func (s ActionSet) with(a Action) ActionSet { return s | 1<<uint(a) }

// String lists the actions in the set, space separated
func (s ActionSet) String() string {
	var names []string
	for _, a := range AllActions() {
		if s.Has(a) {
			names = append(names, a.String())
		}
	}
	return strings.Join(names, " ")
}

// trigger lists the physical edges that fire one action
type trigger struct {
	keys    []ebiten.Key
	buttons []Button
	mouse   []MouseButton
	touch   bool
	scroll  int // +1 up, -1 down
}

var triggers = [actionCount]trigger{
	ActionSelect: {
		keys:    []ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter},
		buttons: []Button{ButtonA},
		mouse:   []MouseButton{MouseLeft},
		touch:   true,
	},
	ActionHold: {
		buttons: []Button{ButtonA},
		mouse:   []MouseButton{MouseLeft},
	},
	ActionCancel: {
		keys:    []ebiten.Key{ebiten.KeyEscape, ebiten.KeyBackspace},
		buttons: []Button{ButtonB, ButtonBack},
	},
	ActionUp: {
		keys:    []ebiten.Key{ebiten.KeyUp, ebiten.KeyPageUp, ebiten.KeyW},
		buttons: []Button{ButtonDPadUp, ButtonRightStickUp},
		scroll:  1,
	},
	ActionDown: {
		keys:    []ebiten.Key{ebiten.KeyDown, ebiten.KeyPageDown, ebiten.KeyS},
		buttons: []Button{ButtonDPadDown, ButtonRightStickDown},
		scroll:  -1,
	},
	ActionLeft: {
		keys:    []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
		buttons: []Button{ButtonDPadLeft, ButtonRightStickLeft},
	},
	ActionRight: {
		keys:    []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
		buttons: []Button{ButtonDPadRight, ButtonRightStickRight},
	},
	ActionScreenExit: {
		keys:    []ebiten.Key{ebiten.KeyEscape, ebiten.KeyBackspace},
		buttons: []Button{ButtonBack},
	},
}

// Mapper derives UI actions from the edges of one snapshot. It keeps no
// state between ticks.
type Mapper struct {
	snap   *Snapshot
	cursor *CursorTracker
}

// NewMapper creates a mapper. cursor may be nil.
func NewMapper(snap *Snapshot, cursor *CursorTracker) *Mapper {
	return &Mapper{snap: snap, cursor: cursor}
}

// Is reports whether action fired this tick
func (m *Mapper) Is(a Action) bool {
	if a == ActionRelease {
		return !m.snap.IsDown(ButtonControl(ButtonA)) && !m.snap.IsDown(MouseControl(MouseLeft))
	}
	if a < 0 || a >= actionCount {
		return false
	}
	return m.fired(&triggers[a])
}

func (m *Mapper) fired(t *trigger) bool {
	for _, k := range t.keys {
		if m.snap.IsNewKeyPress(k) {
			return true
		}
	}
	for _, b := range t.buttons {
		if m.snap.IsNewButtonPress(b) {
			return true
		}
	}
	for _, b := range t.mouse {
		if m.snap.IsNewMouseButtonPress(b) {
			return true
		}
	}
	if t.touch && m.snap.IsNewTouchDown() {
		return true
	}
	switch {
	case t.scroll > 0:
		return m.snap.IsNewScrollUp()
	case t.scroll < 0:
		return m.snap.IsNewScrollDown()
	}
	return false
}

// Select also moves the cursor onto an active touch point.
func (m *Mapper) Select() bool {
	m.syncTouch()
	return m.Is(ActionSelect)
}

// Hold reports a new press of A or the left mouse button
func (m *Mapper) Hold() bool { return m.Is(ActionHold) }

// Release reports that neither A nor the left mouse button is held
func (m *Mapper) Release() bool { return m.Is(ActionRelease) }

// Cancel also moves the cursor onto an active touch point.
func (m *Mapper) Cancel() bool {
	m.syncTouch()
	return m.Is(ActionCancel)
}

// Up reports a new up press: key, D-pad, right stick or wheel up
func (m *Mapper) Up() bool { return m.Is(ActionUp) }

// Down reports a new down press: key, D-pad, right stick or wheel down
func (m *Mapper) Down() bool { return m.Is(ActionDown) }

// Left reports a new left press on the keyboard, D-pad or right stick
func (m *Mapper) Left() bool { return m.Is(ActionLeft) }

// Right reports a new right press on the keyboard, D-pad or right stick
func (m *Mapper) Right() bool { return m.Is(ActionRight) }

// ScreenExit reports a new Escape, Backspace or Back press
func (m *Mapper) ScreenExit() bool { return m.Is(ActionScreenExit) }

// Actions returns every action that fired this tick
func (m *Mapper) Actions() ActionSet {
	m.syncTouch()
	var set ActionSet
	for _, a := range AllActions() {
		if m.Is(a) {
			set = set.with(a)
		}
	}
	return set
}

func (m *Mapper) syncTouch() {
	if m.cursor != nil {
		m.cursor.SyncTouch(m.snap)
	}
}
