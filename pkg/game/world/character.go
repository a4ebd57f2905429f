package world

import (
	"github.com/go-gl/mathgl/mgl32"

	"pixelportfolio/pkg/engine/geom"
)

// Character is the visitor's avatar. Y stays at ground level.
type Character struct {
	Position mgl32.Vec3
	// Heading is the yaw in radians; 0 faces +Z, π/2 faces +X.
	Heading float32
	// Velocity is the displacement applied during the last tick.
	Velocity mgl32.Vec3
}

// NewCharacter places a character at pos facing heading 0.
func NewCharacter(pos mgl32.Vec3) *Character {
	return &Character{Position: pos}
}

// Forward returns the unit vector the character faces.
func (c *Character) Forward() mgl32.Vec3 {
	return geom.Forward(c.Heading)
}

// Rotation returns the character orientation as a quaternion about the up axis.
func (c *Character) Rotation() mgl32.Quat {
	return mgl32.QuatRotate(c.Heading, geom.Up)
}

// Camera is the follow camera: a smoothed position aimed at a look target.
type Camera struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
}

// NewCamera creates a camera at pos looking at target.
func NewCamera(pos, target mgl32.Vec3) *Camera {
	return &Camera{Position: pos, Target: target}
}

// View returns the right-handed view matrix for the camera.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, geom.Up)
}

// Direction returns the unit vector from the camera toward its target.
func (c *Camera) Direction() mgl32.Vec3 {
	return geom.NormalizeOrZero(c.Target.Sub(c.Position))
}
