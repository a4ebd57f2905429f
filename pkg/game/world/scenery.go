package world

import (
	"github.com/go-gl/mathgl/mgl32"
)

// DecorationKind identifies a type of scenery prop.
type DecorationKind int

const (
	DecorationTree DecorationKind = iota
	DecorationRock
	DecorationFlower
)

// String returns the config name of the kind.
func (k DecorationKind) String() string {
	switch k {
	case DecorationTree:
		return "tree"
	case DecorationRock:
		return "rock"
	case DecorationFlower:
		return "flower"
	}
	return "unknown"
}

// ParseDecorationKind is the inverse of DecorationKind.String.
func ParseDecorationKind(s string) (DecorationKind, bool) {
	switch s {
	case "tree":
		return DecorationTree, true
	case "rock":
		return DecorationRock, true
	case "flower":
		return DecorationFlower, true
	}
	return 0, false
}

// MarshalText encodes the kind by name.
func (k DecorationKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Decoration is a non-interactive prop. Scenery never blocks movement.
type Decoration struct {
	Kind     DecorationKind `json:"kind"`
	Position mgl32.Vec3     `json:"position"`
	// Scale is the tree height or rock size; 1 for flowers.
	Scale float32 `json:"scale"`
	// Rotation holds Euler angles (radians); only rocks are tumbled.
	Rotation mgl32.Vec3 `json:"rotation"`
	// Stretch is a per-axis squash applied to rocks.
	Stretch mgl32.Vec3 `json:"stretch"`
	Color   Color      `json:"color"`
}

// PathSegment is one flat tile of a dirt path.
type PathSegment struct {
	Position mgl32.Vec3 `json:"position"`
	// Angle is the direction of travel on the ground plane, atan2(dz, dx).
	Angle  float32 `json:"angle"`
	Length float32 `json:"length"`
	Width  float32 `json:"width"`
	Color  Color   `json:"color"`
}
