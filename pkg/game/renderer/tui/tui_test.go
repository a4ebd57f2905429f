package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/chewxy/math32"
	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixelportfolio/pkg/engine/input"
	"pixelportfolio/pkg/game/config"
	"pixelportfolio/pkg/game/content"
	"pixelportfolio/pkg/game/gameplay"
	"pixelportfolio/pkg/game/state"
)

func newGame(t *testing.T) *state.Game {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.World.Seed = 11
	store, err := content.Default()
	require.NoError(t, err)
	g, err := gameplay.BuildGame(cfg, store, nil, nil)
	require.NoError(t, err)
	gameplay.FinishLoading(g)
	return g
}

func newRenderer(t *testing.T) *TUIRenderer {
	t.Helper()
	r := New(nil)
	require.NoError(t, r.Init())
	return r
}

func plain(lines []string) string {
	return color.ClearCode(strings.Join(lines, "\n"))
}

func TestCanvas_SetDropsOutOfBounds(t *testing.T) {
	c := newCanvas(3, 2)
	c.Set(1, 1, "x", nil)
	c.Set(-1, 0, "y", nil)
	c.Set(3, 0, "y", nil)
	c.Set(0, 2, "y", nil)

	assert.Equal(t, []string{"   ", " x "}, c.Plain())
	assert.Equal(t, "x", c.Get(1, 1))
	assert.Equal(t, "", c.Get(5, 5))
}

func TestCanvas_FillRectCoversAtLeastOneCell(t *testing.T) {
	c := newCanvas(4, 3)
	c.FillRect(1, 1, 1, 1, "#", nil)
	assert.Equal(t, []string{"    ", " #  ", "    "}, c.Plain())

	c = newCanvas(4, 3)
	c.FillRect(0, 0, 2, 2, "#", nil)
	assert.Equal(t, []string{"##  ", "##  ", "    "}, c.Plain())
}

func TestCanvas_TextUsesGraphemes(t *testing.T) {
	c := newCanvas(6, 1)
	c.Text(1, 0, "café", nil)
	assert.Equal(t, "é", c.Get(4, 0))
	assert.Equal(t, " café ", c.Plain()[0])
}

func TestCanvas_Box(t *testing.T) {
	c := newCanvas(4, 3)
	c.FillRect(0, 0, 4, 3, "x", nil)
	c.Box(0, 0, 4, 3, nil)
	assert.Equal(t, []string{"+--+", "|  |", "+--+"}, c.Plain())
}

func TestCanvas_LinesMergesRuns(t *testing.T) {
	style := &color.Style{color.FgRed}
	c := newCanvas(4, 1)
	c.Text(0, 0, "ab", style)
	c.Text(2, 0, "cd", nil)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "abcd", color.ClearCode(lines[0]))
	assert.True(t, strings.HasSuffix(lines[0], "cd"))
}

func TestHeadingIcon(t *testing.T) {
	tests := []struct {
		heading float32
		want    string
	}{
		{0, "↑"},
		{math32.Pi / 4, "↗"},
		{math32.Pi / 2, "→"},
		{math32.Pi, "↓"},
		{-math32.Pi, "↓"},
		{-math32.Pi / 2, "←"},
		{-math32.Pi / 4, "↖"},
		{2 * math32.Pi, "↑"},
	}
	for _, tt := range tests {
		if got := headingIcon(tt.heading); got != tt.want {
			t.Errorf("headingIcon(%v) = %q, want %q", tt.heading, got, tt.want)
		}
	}
}

func TestCompose_Loading(t *testing.T) {
	r := newRenderer(t)
	g := newGame(t)
	g.Loading = true
	g.LoadingStarted = time.Now()

	out := plain(r.Compose(g, 80, 24, g.LoadingStarted))
	assert.Contains(t, out, "Loading portfolio...")
	assert.Contains(t, out, "░")
}

func TestCompose_Map(t *testing.T) {
	r := newRenderer(t)
	g := newGame(t)
	gameplay.Tick(g, 0)

	lines := r.Compose(g, 100, 40, time.Now())
	require.Len(t, lines, 40)

	out := plain(lines)
	assert.Contains(t, out, "↑")
	assert.Contains(t, out, "Home")
	assert.Contains(t, out, "WASD")
}

func TestCompose_HintInRange(t *testing.T) {
	r := newRenderer(t)
	g := newGame(t)
	g.Character.Position[0] = 20
	gameplay.Tick(g, 0)

	out := plain(r.Compose(g, 100, 40, time.Now()))
	assert.Contains(t, out, "Press E to interact")
	assert.Contains(t, out, "E4: Explore my E4 project")
}

func TestCompose_PageAndMenu(t *testing.T) {
	r := newRenderer(t)
	g := newGame(t)
	g.Character.Position[0] = 20
	gameplay.Tick(g, 0)
	gameplay.HandleKey(g, input.DeviceTerminal, "KeyE", input.PhasePress)

	out := plain(r.Compose(g, 100, 40, time.Now()))
	assert.Contains(t, out, "E4 Project")
	assert.Contains(t, out, "E4 Project Slide 1")

	gameplay.ClosePage(g)
	gameplay.HandleKey(g, input.DeviceTerminal, "Escape", input.PhasePress)
	out = plain(r.Compose(g, 100, 40, time.Now()))
	assert.Contains(t, out, "GAME MENU")
	assert.Contains(t, out, "> RESUME")
}

func TestHandleBytes_HeldUntilRepeatStops(t *testing.T) {
	r := newRenderer(t)
	g := newGame(t)
	now := time.Now()

	r.handleBytes(g, []byte("w"), now)
	assert.True(t, g.Input.Held(input.DirForward))

	r.releaseExpired(g, now.Add(holdTTL/2))
	assert.True(t, g.Input.Held(input.DirForward))

	// A repeat refreshes the hold.
	r.handleBytes(g, []byte("w"), now.Add(holdTTL/2))
	r.releaseExpired(g, now.Add(holdTTL))
	assert.True(t, g.Input.Held(input.DirForward))

	r.releaseExpired(g, now.Add(holdTTL*2))
	assert.False(t, g.Input.Held(input.DirForward))
	assert.Empty(t, r.held)
}

func TestHandleBytes_Interrupt(t *testing.T) {
	r := newRenderer(t)
	g := newGame(t)
	r.handleBytes(g, []byte{3, 'w'}, time.Now())
	assert.True(t, g.Quit)
	assert.False(t, g.Input.Held(input.DirForward))
}
