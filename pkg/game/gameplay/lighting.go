package gameplay

import (
	"github.com/go-gl/mathgl/mgl32"

	"pixelportfolio/pkg/game/state"
)

// UpdateSpotlight keeps the character's spotlight hanging directly above it.
func UpdateSpotlight(g *state.Game) {
	if g.Character == nil {
		return
	}
	g.Spotlight = g.Character.Position.Add(mgl32.Vec3{0, g.Cfg.Camera.SpotlightHeight, 0})
}
