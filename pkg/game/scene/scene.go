// Package scene assembles the portfolio world once at start-up: buildings in
// a fixed order, randomly scattered scenery and the dirt paths between buildings.
package scene

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"pixelportfolio/pkg/engine/geom"
	engineworld "pixelportfolio/pkg/engine/world"
	"pixelportfolio/pkg/game/config"
	"pixelportfolio/pkg/game/world"
)

// Prop colors.
const (
	ColorTrunk  world.Color = 0x8B4513
	colorLeaves world.Color = 0x228B22
	colorRock   world.Color = 0x808080
)

// petalColors are picked uniformly for each flower.
var petalColors = []world.Color{0xFF69B4, 0xFFD700, 0xFF6347, 0x9932CC, 0x87CEEB}

// pathHeight lifts path tiles just above the ground to avoid z-fighting.
const pathHeight = 0.01

// Scene is the assembled, static part of the world.
type Scene struct {
	Seed        int64
	GroundSize  float32
	Structures  *engineworld.Registry[*world.Structure]
	Decorations []world.Decoration
	Paths       []world.PathSegment
}

// NewRand returns a generator for seed, picking a time-based seed when seed is 0.
// The seed actually used is returned so a layout can be reproduced.
func NewRand(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}

// Assemble builds the scene described by cfg, drawing randomness from rng.
func Assemble(cfg *config.Config, rng *rand.Rand) (*Scene, error) {
	s := &Scene{
		GroundSize: cfg.World.GroundSize,
		Structures: engineworld.NewRegistry[*world.Structure](),
	}

	for _, b := range cfg.World.Buildings {
		st := world.NewStructure(
			b.Name, b.Description, b.ContentKey,
			mgl32.Vec3{b.X, 0, b.Z},
			mgl32.Vec3{b.Width, b.Height, b.Depth},
			cfg.Interaction.Radius,
			b.Color,
		)
		if err := s.Structures.Register(b.Name, st); err != nil {
			return nil, fmt.Errorf("failed to place building: %w", err)
		}
	}

	for _, d := range cfg.World.Decorations {
		kind, ok := world.ParseDecorationKind(d.Kind)
		if !ok {
			return nil, fmt.Errorf("unknown decoration kind %q", d.Kind)
		}
		s.scatter(rng, kind, d)
	}

	s.layPaths(rng, cfg.World.Paths)
	return s, nil
}

// AssembleFromConfig seeds the generator from cfg.World.Seed and records the seed used.
func AssembleFromConfig(cfg *config.Config) (*Scene, error) {
	rng, seed := NewRand(cfg.World.Seed)
	s, err := Assemble(cfg, rng)
	if err != nil {
		return nil, err
	}
	s.Seed = seed
	return s, nil
}

// Hub is the first registered building; every other building gets a path to it.
func (s *Scene) Hub() *world.Structure {
	names := s.Structures.Names()
	if len(names) == 0 {
		return nil
	}
	hub, _ := s.Structures.Get(names[0])
	return hub
}

// CountDecorations returns how many props of a kind were placed.
func (s *Scene) CountDecorations(kind world.DecorationKind) int {
	n := 0
	for _, d := range s.Decorations {
		if d.Kind == kind {
			n++
		}
	}
	return n
}

// tooClose reports whether a ground point is within clearance of any building.
func (s *Scene) tooClose(p mgl32.Vec3, clearance float32) bool {
	near := false
	s.Structures.Each(func(_ string, st *world.Structure) bool {
		if geom.PlanarDistance(p, st.Position) < clearance {
			near = true
			return false
		}
		return true
	})
	return near
}

// scatter tries d.Attempts random spots for a prop kind. Rejected spots are not retried.
func (s *Scene) scatter(rng *rand.Rand, kind world.DecorationKind, d config.DecorationConfig) {
	for i := 0; i < d.Attempts; i++ {
		x := (rng.Float32() - 0.5) * d.Spread
		z := (rng.Float32() - 0.5) * d.Spread
		pos := mgl32.Vec3{x, 0, z}

		if s.tooClose(pos, d.Clearance) {
			continue
		}
		s.Decorations = append(s.Decorations, newDecoration(rng, kind, pos))
	}
}

func newDecoration(rng *rand.Rand, kind world.DecorationKind, pos mgl32.Vec3) world.Decoration {
	dec := world.Decoration{
		Kind:     kind,
		Position: pos,
		Scale:    1,
		Stretch:  mgl32.Vec3{1, 1, 1},
	}
	switch kind {
	case world.DecorationTree:
		dec.Scale = 0.8 + rng.Float32()*1.5
		dec.Color = colorLeaves
	case world.DecorationRock:
		dec.Scale = 0.5 + rng.Float32()*0.5
		dec.Rotation = mgl32.Vec3{
			rng.Float32() * math32.Pi,
			rng.Float32() * math32.Pi,
			rng.Float32() * math32.Pi,
		}
		dec.Stretch = mgl32.Vec3{
			1 + rng.Float32()*0.2,
			1 + rng.Float32()*0.5,
			1 + rng.Float32()*0.2,
		}
		dec.Color = colorRock
	case world.DecorationFlower:
		dec.Color = petalColors[rng.Intn(len(petalColors))]
	}
	return dec
}

// layPaths joins the hub to every other building, then lays the extra links.
func (s *Scene) layPaths(rng *rand.Rand, cfg config.PathConfig) {
	hub := s.Hub()
	if hub != nil {
		s.Structures.Each(func(_ string, st *world.Structure) bool {
			if st != hub {
				s.layPath(rng, cfg, hub.Position, st.Position)
			}
			return true
		})
	}
	for _, link := range cfg.Extra {
		s.layPath(rng, cfg,
			mgl32.Vec3{link.From[0], 0, link.From[1]},
			mgl32.Vec3{link.To[0], 0, link.To[1]})
	}
}

// layPath tiles a straight path from a to b with segments of cfg.SegmentLength.
// Inner segments are jittered by up to ±Jitter/2 on each axis; the first and last
// stay on the line so paths meet buildings cleanly.
func (s *Scene) layPath(rng *rand.Rand, cfg config.PathConfig, a, b mgl32.Vec3) {
	d := geom.Planar(b.Sub(a))
	length := d.Len()
	angle := math32.Atan2(d.Z(), d.X())
	segments := int(math32.Ceil(length / cfg.SegmentLength))
	half := cfg.SegmentLength / 2

	for i := 0; i < segments; i++ {
		t := float32(i) / float32(segments)
		base := a.Add(d.Mul(t))

		offX := (rng.Float32() - 0.5) * cfg.Jitter
		offZ := (rng.Float32() - 0.5) * cfg.Jitter
		if i == 0 || i == segments-1 {
			offX, offZ = 0, 0
		}

		s.Paths = append(s.Paths, world.PathSegment{
			Position: mgl32.Vec3{
				base.X() + offX + half*math32.Cos(angle),
				pathHeight,
				base.Z() + offZ + half*math32.Sin(angle),
			},
			Angle:  angle,
			Length: cfg.SegmentLength,
			Width:  cfg.Width,
			Color:  cfg.Color,
		})
	}
}
