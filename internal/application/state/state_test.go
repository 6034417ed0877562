package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShowcaseState_String(t *testing.T) {
	tests := []struct {
		state    ShowcaseState
		expected string
	}{
		{StateBrowsing, "Browsing"},
		{StatePaused, "Paused"},
		{StateExiting, "Exiting"},
		{ShowcaseState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestShowcaseState_Next(t *testing.T) {
	tests := []struct {
		name     string
		from     ShowcaseState
		ev       Event
		expected ShowcaseState
	}{
		{"browsing pauses", StateBrowsing, EventPause, StatePaused},
		{"browsing ignores resume", StateBrowsing, EventResume, StateBrowsing},
		{"browsing cannot exit directly", StateBrowsing, EventExit, StateBrowsing},
		{"paused resumes", StatePaused, EventResume, StateBrowsing},
		{"paused exits", StatePaused, EventExit, StateExiting},
		{"paused ignores pause", StatePaused, EventPause, StatePaused},
		{"exiting is terminal", StateExiting, EventResume, StateExiting},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.from.Next(tt.ev))
		})
	}
}
