// Package world holds the portfolio's placed objects: buildings the visitor can
// enter, the walking character, the follow camera and scenery.
package world

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Structure is a building that opens a content page when the visitor interacts with it.
type Structure struct {
	Name        string
	Description string
	ContentKey  string

	// Position is the centre of the footprint on the ground plane. It is
	// written once at placement time and never derived from a parent transform.
	Position mgl32.Vec3
	// Size is width, height, depth.
	Size mgl32.Vec3
	// Radius is the planar distance under which the structure becomes interactable.
	Radius float32

	OriginalColor Color
	Color         Color
	Highlighted   bool
}

// NewStructure creates an unhighlighted structure showing its original color.
func NewStructure(name, description, contentKey string, pos, size mgl32.Vec3, radius float32, c Color) *Structure {
	return &Structure{
		Name:          name,
		Description:   description,
		ContentKey:    contentKey,
		Position:      pos,
		Size:          size,
		Radius:        radius,
		OriginalColor: c,
		Color:         c,
	}
}

// Highlight paints the structure with the highlight color.
func (s *Structure) Highlight(c Color) {
	s.Color = c
	s.Highlighted = true
}

// ClearHighlight restores the original color.
func (s *Structure) ClearHighlight() {
	s.Color = s.OriginalColor
	s.Highlighted = false
}

// Center returns the middle of the building body, half its height above the ground.
func (s *Structure) Center() mgl32.Vec3 {
	return s.Position.Add(mgl32.Vec3{0, s.Size.Y() / 2, 0})
}
