package input

import (
	"github.com/zyedidia/generic/mapset"
)

// Direction is one of the four held movement flags.
type Direction int

const (
	DirForward Direction = iota
	DirBackward
	DirLeft
	DirRight
)

// directionFor returns the movement flag an action drives, if any.
func directionFor(a Action) (Direction, bool) {
	switch a {
	case ActionMoveForward:
		return DirForward, true
	case ActionMoveBackward:
		return DirBackward, true
	case ActionMoveLeft:
		return DirLeft, true
	case ActionMoveRight:
		return DirRight, true
	}
	return 0, false
}

// Tracker holds the live keyboard state read by the simulation tick:
// held movement flags, the interact edge and the menu toggle.
// It is only mutated by Apply and the explicit setters below.
type Tracker struct {
	held            mapset.Set[Direction]
	interactPressed bool
	menuOpen        bool
}

// NewTracker creates a tracker with nothing held and the menu closed.
func NewTracker() *Tracker {
	return &Tracker{
		held: mapset.New[Direction](),
	}
}

// Apply folds one key event into the tracker and returns the intent it mapped to.
// Presses of a movement key set its flag (idempotently), releases of either key
// bound to that direction clear it. Interact only latches on press; the menu
// toggles on press.
func (t *Tracker) Apply(ev DebouncedInput) Intent {
	intent := MapToIntent(ev)

	if dir, ok := directionFor(intent.Action); ok {
		if intent.Phase == PhasePress {
			t.held.Put(dir)
		} else {
			t.held.Remove(dir)
		}
		return intent
	}

	if intent.Phase != PhasePress {
		return intent
	}

	switch intent.Action {
	case ActionInteract:
		t.interactPressed = true
	case ActionToggleMenu:
		t.menuOpen = !t.menuOpen
	}
	return intent
}

// Held reports whether a direction flag is set.
func (t *Tracker) Held(d Direction) bool {
	return t.held.Has(d)
}

// AnyHeld reports whether any direction flag is set.
func (t *Tracker) AnyHeld() bool {
	return t.held.Size() > 0
}

// ReleaseAll clears every held direction, e.g. when the window loses focus.
func (t *Tracker) ReleaseAll() {
	t.held = mapset.New[Direction]()
}

// InteractPending reports whether an interact press has not been consumed yet.
func (t *Tracker) InteractPending() bool {
	return t.interactPressed
}

// ConsumeInteract returns and clears the interact edge.
func (t *Tracker) ConsumeInteract() bool {
	pressed := t.interactPressed
	t.interactPressed = false
	return pressed
}

// MenuOpen reports the menu visibility flag.
func (t *Tracker) MenuOpen() bool {
	return t.menuOpen
}

// SetMenuOpen forces the menu visibility flag (used by the Resume entry).
func (t *Tracker) SetMenuOpen(open bool) {
	t.menuOpen = open
}
