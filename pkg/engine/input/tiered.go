package input

import "time"

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
	DeviceBrowser
)

// Phase is the edge of a key event.
type Phase int

const (
	PhasePress Phase = iota
	PhaseRelease
)

// Action represents a high‑level intent in the walk-around.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveForward
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight

	// World
	ActionInteract
	ActionToggleMenu

	// Menu / UI
	ActionResume
	ActionToggleMusic
	ActionToggleSound
	ActionToggleTheme
	ActionMenuNext
	ActionMenuActivate
	ActionClosePage
	ActionPrevSlide
	ActionNextSlide
	ActionFullscreen
	ActionQuit
)

// Intent is the 4th‑layer, high‑level description of what the visitor wants to do.
type Intent struct {
	Action Action
	Phase  Phase
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a physical key identifier in DOM KeyboardEvent.code form
// (e.g. "KeyW", "ArrowUp", "Escape").
type RawInput struct {
	Device    Device
	Code      string
	Phase     Phase
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// Key repeat is harmless for held-key tracking since presses are idempotent,
// so this stays a thin copy of the raw event.
type DebouncedInput struct {
	Device Device
	Code   string
	Phase  Phase
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
		Phase:  raw.Phase,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Movement (arrows and WASD)
	"ArrowUp":    ActionMoveForward,
	"KeyW":       ActionMoveForward,
	"ArrowDown":  ActionMoveBackward,
	"KeyS":       ActionMoveBackward,
	"ArrowLeft":  ActionMoveLeft,
	"KeyA":       ActionMoveLeft,
	"ArrowRight": ActionMoveRight,
	"KeyD":       ActionMoveRight,

	"KeyE":   ActionInteract,
	"Escape": ActionToggleMenu,

	// Menu entries
	"KeyR":  ActionResume,
	"KeyM":  ActionToggleMusic,
	"KeyN":  ActionToggleSound,
	"KeyT":  ActionToggleTheme,
	"Tab":   ActionMenuNext,
	"Enter": ActionMenuActivate,

	// Content page
	"Backspace":    ActionClosePage,
	"KeyX":         ActionClosePage,
	"BracketLeft":  ActionPrevSlide,
	"BracketRight": ActionNextSlide,
	"KeyF":         ActionFullscreen,

	"KeyQ": ActionQuit,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act, Phase: ev.Phase}
	}
	return Intent{Action: ActionNone, Phase: ev.Phase}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveForward:
		return "Move Forward"
	case ActionMoveBackward:
		return "Move Backward"
	case ActionMoveLeft:
		return "Move Left"
	case ActionMoveRight:
		return "Move Right"
	case ActionInteract:
		return "Interact"
	case ActionToggleMenu:
		return "Menu"
	case ActionResume:
		return "Resume"
	case ActionToggleMusic:
		return "Toggle Music"
	case ActionToggleSound:
		return "Toggle Sound"
	case ActionToggleTheme:
		return "Toggle Theme"
	case ActionMenuNext:
		return "Next Menu Item"
	case ActionMenuActivate:
		return "Activate Menu Item"
	case ActionClosePage:
		return "Close Page"
	case ActionPrevSlide:
		return "Previous Slide"
	case ActionNextSlide:
		return "Next Slide"
	case ActionFullscreen:
		return "Fullscreen"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}
