package scene

import (
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixelportfolio/pkg/engine/geom"
	"pixelportfolio/pkg/game/config"
	"pixelportfolio/pkg/game/world"
)

func assembleDefault(t *testing.T, seed int64) *Scene {
	t.Helper()
	s, err := Assemble(config.DefaultConfig(), rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	return s
}

func TestAssemble_BuildingsInRegistrationOrder(t *testing.T) {
	s := assembleDefault(t, 1)
	assert.Equal(t,
		[]string{"Home", "Projects", "Skills", "Contact", "CV", "Professional Project", "E4"},
		s.Structures.Names())

	e4, ok := s.Structures.Get("E4")
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec3{20, 0, 0}, e4.Position)
	assert.Equal(t, "e4", e4.ContentKey)
	assert.Equal(t, world.Color(0xFF33CC), e4.OriginalColor)
	assert.Equal(t, float32(5), e4.Radius)
	assert.False(t, e4.Highlighted)

	assert.Equal(t, "Home", s.Hub().Name)
}

func TestAssemble_SameSeedSameLayout(t *testing.T) {
	a := assembleDefault(t, 42)
	b := assembleDefault(t, 42)
	assert.Equal(t, a.Decorations, b.Decorations)
	assert.Equal(t, a.Paths, b.Paths)

	c := assembleDefault(t, 43)
	assert.NotEqual(t, a.Decorations, c.Decorations)
}

func TestAssemble_ScenerykeepsClearOfBuildings(t *testing.T) {
	cfg := config.DefaultConfig()
	clearance := map[world.DecorationKind]float32{}
	for _, d := range cfg.World.Decorations {
		k, _ := world.ParseDecorationKind(d.Kind)
		clearance[k] = d.Clearance
	}

	for seed := int64(1); seed <= 5; seed++ {
		s := assembleDefault(t, seed)
		for _, d := range s.Decorations {
			s.Structures.Each(func(name string, st *world.Structure) bool {
				dist := geom.PlanarDistance(d.Position, st.Position)
				if dist < clearance[d.Kind] {
					t.Errorf("seed %d: %v at %v is %.2f from %s, want >= %.1f",
						seed, d.Kind, d.Position, dist, name, clearance[d.Kind])
				}
				return true
			})
		}
	}
}

func TestAssemble_DecorationCountsBoundedByAttempts(t *testing.T) {
	s := assembleDefault(t, 7)
	trees := s.CountDecorations(world.DecorationTree)
	rocks := s.CountDecorations(world.DecorationRock)
	flowers := s.CountDecorations(world.DecorationFlower)
	assert.LessOrEqual(t, trees, 30)
	assert.LessOrEqual(t, rocks, 20)
	assert.LessOrEqual(t, flowers, 100)
	assert.Greater(t, flowers, 0)
	assert.Equal(t, trees+rocks+flowers, len(s.Decorations))
}

func TestAssemble_DecorationShapes(t *testing.T) {
	s := assembleDefault(t, 3)
	for _, d := range s.Decorations {
		switch d.Kind {
		case world.DecorationTree:
			assert.GreaterOrEqual(t, d.Scale, float32(0.8))
			assert.Less(t, d.Scale, float32(2.3))
		case world.DecorationRock:
			assert.GreaterOrEqual(t, d.Scale, float32(0.5))
			assert.Less(t, d.Scale, float32(1.0))
			assert.Less(t, d.Rotation.X(), math32.Pi)
		case world.DecorationFlower:
			assert.Contains(t, petalColors, d.Color)
		}
	}
}

func TestAssemble_PathSegmentCount(t *testing.T) {
	s := assembleDefault(t, 1)
	// Spokes: four of length ~15.6 (14 tiles), two of length 20 (17 tiles).
	// Extras: two of ~12.8 (11 tiles), two of 20 (17 tiles).
	assert.Len(t, s.Paths, 14*4+17*2+11*2+17*2)
}

func TestLayPath_EndsAreNotJittered(t *testing.T) {
	cfg := config.DefaultConfig().World.Paths
	s := &Scene{}
	s.layPath(rand.New(rand.NewSource(9)), cfg, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{12, 0, 0})

	require.Len(t, s.Paths, 10)
	half := cfg.SegmentLength / 2

	first := s.Paths[0]
	assert.InDelta(t, half, first.Position.X(), 1e-5)
	assert.InDelta(t, 0, first.Position.Z(), 1e-5)
	assert.InDelta(t, pathHeight, first.Position.Y(), 1e-6)

	last := s.Paths[len(s.Paths)-1]
	assert.InDelta(t, 12*9.0/10.0+half, last.Position.X(), 1e-4)
	assert.InDelta(t, 0, last.Position.Z(), 1e-5)

	for _, seg := range s.Paths[1 : len(s.Paths)-1] {
		assert.LessOrEqual(t, math32.Abs(seg.Position.Z()), cfg.Jitter/2)
		assert.Equal(t, float32(0), seg.Angle)
		assert.Equal(t, cfg.Width, seg.Width)
	}
}

func TestLayPath_ZeroLengthLaysNothing(t *testing.T) {
	s := &Scene{}
	s.layPath(rand.New(rand.NewSource(1)), config.DefaultConfig().World.Paths, mgl32.Vec3{3, 0, 3}, mgl32.Vec3{3, 0, 3})
	assert.Empty(t, s.Paths)
}

func TestAssembleFromConfig_RecordsSeed(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.World.Seed = 1234
	s, err := AssembleFromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, int64(1234), s.Seed)

	cfg.World.Seed = 0
	s, err = AssembleFromConfig(cfg)
	require.NoError(t, err)
	assert.NotZero(t, s.Seed)
}

func TestAssemble_DuplicateBuildingFails(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.World.Buildings = append(cfg.World.Buildings, cfg.World.Buildings[0])
	_, err := Assemble(cfg, rand.New(rand.NewSource(1)))
	assert.Error(t, err)
}
