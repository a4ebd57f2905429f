package geom

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{0, 0},
		{math32.Pi / 2, math32.Pi / 2},
		{math32.Pi, math32.Pi},
		{-math32.Pi, math32.Pi},
		{3 * math32.Pi / 2, -math32.Pi / 2},
		{-3 * math32.Pi / 2, math32.Pi / 2},
		{4*math32.Pi + 1, 1},
		{-0.25, -0.25},
	}
	for _, tt := range tests {
		got := WrapAngle(tt.in)
		if !approxEq(got, tt.want, 1e-5) {
			t.Errorf("WrapAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestWrapAngle_Range(t *testing.T) {
	for a := float32(-20); a <= 20; a += 0.37 {
		got := WrapAngle(a)
		if got <= -math32.Pi-1e-6 || got > math32.Pi+1e-6 {
			t.Fatalf("WrapAngle(%v) = %v, outside (-π, π]", a, got)
		}
	}
}

func TestAngleDelta_TakesShortWay(t *testing.T) {
	// From just below +π to just above -π is a small positive step.
	got := AngleDelta(math32.Pi-0.1, -math32.Pi+0.1)
	assert.InDelta(t, 0.2, got, 1e-5)
}

func TestHeadingAndForwardAgree(t *testing.T) {
	for _, h := range []float32{0, 0.5, math32.Pi / 2, -2, math32.Pi} {
		f := Forward(h)
		assert.InDelta(t, 1, f.Len(), 1e-5)
		assert.InDelta(t, 0, AngleDelta(h, HeadingOf(f)), 1e-5, "heading %v", h)
	}
}

func TestPlanarDistance_IgnoresHeight(t *testing.T) {
	d := PlanarDistance(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{3, 100, 4})
	assert.InDelta(t, 5, d, 1e-5)
}

func TestLerp(t *testing.T) {
	got := Lerp(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{10, 20, -10}, 0.05)
	assert.True(t, vec3ApproxEq(got, mgl32.Vec3{0.5, 1, -0.5}, 1e-5), "got %v", got)
}

func TestNormalizeOrZero(t *testing.T) {
	assert.Equal(t, mgl32.Vec3{}, NormalizeOrZero(mgl32.Vec3{}))
	n := NormalizeOrZero(mgl32.Vec3{1, 0, 1})
	assert.InDelta(t, 1, n.Len(), 1e-5)
}

func approxEq(a, b, eps float32) bool {
	return math32.Abs(a-b) <= eps
}

func vec3ApproxEq(a, b mgl32.Vec3, eps float32) bool {
	return approxEq(a[0], b[0], eps) && approxEq(a[1], b[1], eps) && approxEq(a[2], b[2], eps)
}
