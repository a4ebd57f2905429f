package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Projector maps the ground plane onto a top-down screen. +Z points up the
// screen and +X to the right, so heading 0 faces up.
type Projector struct {
	// Center is the world point drawn in the middle of the screen.
	Center mgl32.Vec3
	// ScaleX and ScaleY are screen units per world unit. Terminals use a wider
	// ScaleX since their cells are taller than they are wide.
	ScaleX, ScaleY float32
	Width, Height  float32
}

// ToScreen projects a world point.
func (p Projector) ToScreen(v mgl32.Vec3) (x, y float32) {
	x = p.Width/2 + (v.X()-p.Center.X())*p.ScaleX
	y = p.Height/2 - (v.Z()-p.Center.Z())*p.ScaleY
	return x, y
}

// ToWorld is the inverse of ToScreen on the ground plane.
func (p Projector) ToWorld(x, y float32) mgl32.Vec3 {
	return mgl32.Vec3{
		p.Center.X() + (x-p.Width/2)/p.ScaleX,
		0,
		p.Center.Z() - (y-p.Height/2)/p.ScaleY,
	}
}

// OnScreen reports whether a projected point lies within margin of the screen.
func (p Projector) OnScreen(x, y, margin float32) bool {
	return x >= -margin && y >= -margin && x <= p.Width+margin && y <= p.Height+margin
}
