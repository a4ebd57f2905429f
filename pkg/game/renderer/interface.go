package renderer

import (
	"pixelportfolio/pkg/game/state"
)

// Renderer defines the interface for presentation backends.
// Implementations include the Ebiten window and the terminal map.
type Renderer interface {
	// Init prepares the backend (fonts, window, terminal mode).
	Init() error

	// Run drives the session until the visitor quits. Backends own the
	// host loop: they feed key events in and call the tick once per frame.
	Run(g *state.Game) error

	// Close releases anything Init acquired.
	Close()
}
