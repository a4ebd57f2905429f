// Package geom holds the small amount of ground-plane vector math the walk-around needs.
// Y is up; the character moves on the XZ plane.
package geom

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Up is the world up axis.
var Up = mgl32.Vec3{0, 1, 0}

// WrapAngle wraps an angle in radians into (-π, π].
func WrapAngle(a float32) float32 {
	r := math32.Mod(a+math32.Pi, 2*math32.Pi)
	if r <= 0 {
		r += 2 * math32.Pi
	}
	return r - math32.Pi
}

// AngleDelta returns the shortest signed rotation from one heading to another.
func AngleDelta(from, to float32) float32 {
	return WrapAngle(to - from)
}

// HeadingOf returns the heading of a planar vector, with +Z as heading 0 and
// +X as heading π/2.
func HeadingOf(v mgl32.Vec3) float32 {
	return math32.Atan2(v.X(), v.Z())
}

// Forward returns the unit vector a heading faces on the ground plane.
func Forward(heading float32) mgl32.Vec3 {
	return mgl32.Vec3{math32.Sin(heading), 0, math32.Cos(heading)}
}

// Planar drops the vertical component of v.
func Planar(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v.X(), 0, v.Z()}
}

// PlanarDistance is the distance between a and b ignoring height.
func PlanarDistance(a, b mgl32.Vec3) float32 {
	return Planar(a).Sub(Planar(b)).Len()
}

// Lerp moves a toward b by the fraction t.
func Lerp(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// NormalizeOrZero normalizes v, leaving the zero vector untouched.
func NormalizeOrZero(v mgl32.Vec3) mgl32.Vec3 {
	if v.Len() == 0 {
		return v
	}
	return v.Normalize()
}
