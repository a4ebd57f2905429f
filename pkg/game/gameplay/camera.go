package gameplay

import (
	"github.com/go-gl/mathgl/mgl32"

	"pixelportfolio/pkg/engine/geom"
	"pixelportfolio/pkg/game/state"
)

// DesiredCameraPosition is the point above and behind the character the camera trails toward.
func DesiredCameraPosition(g *state.Game) mgl32.Vec3 {
	c := g.Character
	cam := g.Cfg.Camera
	return c.Position.
		Add(mgl32.Vec3{0, cam.Height, 0}).
		Sub(c.Forward().Mul(cam.Distance))
}

// UpdateCamera eases the camera position toward its desired spot by a fixed
// share per tick and aims it straight at a point above the character.
// Position is smoothed; aim is not.
func UpdateCamera(g *state.Game) {
	if g.Character == nil || g.Camera == nil {
		return
	}
	cam := g.Cfg.Camera
	g.Camera.Position = geom.Lerp(g.Camera.Position, DesiredCameraPosition(g), cam.FollowFactor)
	g.Camera.Target = g.Character.Position.Add(mgl32.Vec3{0, cam.LookHeight, 0})
}
