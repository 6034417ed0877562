package state

// ShowcaseState represents the current state of the showcase scene
type ShowcaseState int

const (
	StateBrowsing ShowcaseState = iota
	StatePaused
	StateExiting
)

// String returns the string representation of the state
func (s ShowcaseState) String() string {
	switch s {
	case StateBrowsing:
		return "Browsing"
	case StatePaused:
		return "Paused"
	case StateExiting:
		return "Exiting"
	default:
		return "Unknown"
	}
}

// Event is something that can move the state machine
type Event int

const (
	EventPause Event = iota
	EventResume
	EventExit
)

// Next returns the state after ev. Events that do not apply leave the
// state unchanged; Exiting is terminal.
func (s ShowcaseState) Next(ev Event) ShowcaseState {
	switch s {
	case StateBrowsing:
		if ev == EventPause {
			return StatePaused
		}
	case StatePaused:
		switch ev {
		case EventResume:
			return StateBrowsing
		case EventExit:
			return StateExiting
		}
	}
	return s
}
