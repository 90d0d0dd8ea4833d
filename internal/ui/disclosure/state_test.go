package disclosure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextOpen(t *testing.T) {
	tests := []struct {
		name     string
		current  PanelID
		target   PanelID
		expected PanelID
	}{
		{
			name:     "opening from closed",
			current:  "",
			target:   "a",
			expected: "a",
		},
		{
			name:     "toggling the open panel closes it",
			current:  "a",
			target:   "a",
			expected: "",
		},
		{
			name:     "opening another panel switches",
			current:  "a",
			target:   "b",
			expected: "b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NextOpen(tt.current, tt.target))
		})
	}
}

func TestOpenState_TogglePairRestoresState(t *testing.T) {
	state := NewOpenState()
	state.Toggle("a")
	before := state.Open()

	state.Toggle("b")
	state.Toggle("b")

	assert.Equal(t, before, state.Open(), "toggle twice on the same id must restore the prior state")
}

func TestOpenState_SingleOpenInvariant(t *testing.T) {
	state := NewOpenState()
	ids := []PanelID{"a", "b", "c"}

	sequence := []PanelID{"a", "b", "a", "a", "c", "b", "b", "c", "c", "a"}
	for _, id := range sequence {
		state.Toggle(id)

		openCount := 0
		for _, candidate := range ids {
			if state.IsOpen(candidate) {
				openCount++
			}
		}
		assert.LessOrEqual(t, openCount, 1, "at most one panel may be open after toggling %q", id)
	}
}

func TestOpenState_StartsClosed(t *testing.T) {
	state := NewOpenState()
	assert.Equal(t, PanelID(""), state.Open())
	assert.False(t, state.IsOpen("a"))
}

func TestOpenState_ListenerSeesEveryTransition(t *testing.T) {
	state := NewOpenState()

	var seen []PanelID
	state.addListener(func(open PanelID) {
		seen = append(seen, open)
	})

	state.Toggle("a")
	state.Toggle("b")
	state.Toggle("b")

	assert.Equal(t, []PanelID{"a", "b", ""}, seen)
}
