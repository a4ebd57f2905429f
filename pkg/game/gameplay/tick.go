package gameplay

import (
	"pixelportfolio/pkg/game/state"
)

// Tick advances the session by dt seconds. While loading nothing moves and
// pending interact presses are dropped. Otherwise the order is: a pending
// interact press, movement, the follow camera, then proximity.
func Tick(g *state.Game, dt float32) {
	if g == nil {
		return
	}
	if g.Loading {
		g.Input.ConsumeInteract()
		return
	}
	if dt < 0 {
		dt = 0
	}
	g.Ticks++

	processInteract(g)
	UpdateMovement(g, dt)
	UpdateSpotlight(g)
	UpdateCamera(g)
	DetectProximity(g)
}
