// Package gameplay provides core game logic for walking, the follow camera and
// interacting with buildings.
package gameplay

import (
	"github.com/go-gl/mathgl/mgl32"

	"pixelportfolio/pkg/engine/geom"
	"pixelportfolio/pkg/engine/input"
	"pixelportfolio/pkg/game/state"
)

// axis returns +1, -1 or 0 for a pair of opposing held flags.
func axis(t *input.Tracker, pos, neg input.Direction) float32 {
	var v float32
	if t.Held(pos) {
		v++
	}
	if t.Held(neg) {
		v--
	}
	return v
}

// MovementAxes returns the normalized (side, forward) axes for the held flags.
// Diagonals are scaled to unit length so they are no faster than a single axis.
func MovementAxes(t *input.Tracker) (side, forward float32) {
	forward = axis(t, input.DirForward, input.DirBackward)
	side = axis(t, input.DirRight, input.DirLeft)
	d := mgl32.Vec2{side, forward}
	if l := d.Len(); l > 0 {
		d = d.Mul(1 / l)
	}
	return d.X(), d.Y()
}

// UpdateMovement moves the character for one tick of dt seconds.
// Velocity on an axis is only non-zero while a key on that axis is held, so
// releasing every key stops the character within the same tick. There is no
// collision: the character walks through buildings.
func UpdateMovement(g *state.Game, dt float32) {
	c := g.Character
	if c == nil {
		return
	}
	t := g.Input
	speed := g.Cfg.Movement.Speed
	side, forward := MovementAxes(t)

	var vx, vz float32
	if t.Held(input.DirForward) || t.Held(input.DirBackward) {
		vz = forward * speed * dt
	}
	if t.Held(input.DirLeft) || t.Held(input.DirRight) {
		vx = side * speed * dt
	}
	c.Velocity = mgl32.Vec3{vx, 0, vz}
	c.Position = c.Position.Add(c.Velocity)

	// Turn toward the held direction. Opposing keys cancel and leave the heading alone.
	if t.AnyHeld() && (side != 0 || forward != 0) {
		target := geom.HeadingOf(mgl32.Vec3{side, 0, forward})
		c.Heading += g.Cfg.Movement.TurnFactor * geom.AngleDelta(c.Heading, target)
	}
}
