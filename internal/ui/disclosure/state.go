// Package disclosure provides a compound accordion widget: a Group of
// Panels of which at most one is open at a time. Each panel is built from a
// tappable Title and a Content block that only joins the widget tree while
// its panel is open. The open/closed state lives in a single OpenState owned
// by the group and handed to every panel at bind time, so titles and
// contents stay generic and never know about their siblings.
package disclosure

import "sync"

// PanelID identifies one panel within a Group. The empty string is reserved
// to mean "no panel open" and must not be used as a panel id.
type PanelID string

// NextOpen is the pure toggle rule: activating the already-open panel closes
// it, activating any other panel opens it (implicitly closing the current
// one).
func NextOpen(current, target PanelID) PanelID {
	if current == target {
		return ""
	}
	return target
}

// OpenState tracks which panel of a group is open. It is created by the
// group, mutated only through Toggle, and shared by reference with every
// bound panel for the lifetime of the group.
type OpenState struct {
	mu        sync.Mutex
	open      PanelID
	listeners []func(open PanelID)
}

// NewOpenState returns state with no panel open.
func NewOpenState() *OpenState {
	return &OpenState{}
}

// Toggle applies NextOpen for the given panel id and notifies listeners.
// This is the only writer of the open id.
func (s *OpenState) Toggle(id PanelID) {
	s.mu.Lock()
	s.open = NextOpen(s.open, id)
	open := s.open
	listeners := s.listeners
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(open)
	}
}

// Open returns the id of the open panel, or the empty PanelID if every
// panel is closed.
func (s *OpenState) Open() PanelID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// IsOpen reports whether the given panel is the open one.
func (s *OpenState) IsOpen(id PanelID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open == id
}

// addListener registers fn to run after every Toggle. Listeners are never
// removed; they live as long as the group that owns this state.
func (s *OpenState) addListener(fn func(open PanelID)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// panelScope ties a panel's identity to its group's shared state. It is the
// explicit stand-in for ambient context: the group injects one scope into
// each panel's title and content, which is all they need to act.
type panelScope struct {
	state *OpenState
	id    PanelID
}
