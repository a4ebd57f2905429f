package gameplay

import (
	"testing"
	"time"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixelportfolio/pkg/engine/input"
	engineworld "pixelportfolio/pkg/engine/world"
	"pixelportfolio/pkg/game/config"
	"pixelportfolio/pkg/game/content"
	"pixelportfolio/pkg/game/scene"
	"pixelportfolio/pkg/game/state"
	"pixelportfolio/pkg/game/world"
)

// makeGame creates a session past loading with the given structures registered in order.
func makeGame(t *testing.T, structures ...*world.Structure) *state.Game {
	t.Helper()
	reg := engineworld.NewRegistry[*world.Structure]()
	for _, st := range structures {
		require.NoError(t, reg.Register(st.Name, st))
	}
	store := content.NewStore()
	require.NoError(t, store.Add(content.Page{Key: "home", HTML: `<h1>Home</h1><p>Welcome &amp; hello</p>`}))
	require.NoError(t, store.Add(content.Page{Key: "deck", HTML: `<p>slides</p>`, Slides: []content.Slide{{Src: "1.png"}, {Src: "2.png"}}}))

	g := state.NewGame(config.DefaultConfig(), &scene.Scene{Structures: reg}, store, config.DefaultPreferences(), nil)
	g.Loading = false
	return g
}

func building(name, key string, x, z float32) *world.Structure {
	return world.NewStructure(name, name+" building", key, mgl32.Vec3{x, 0, z}, mgl32.Vec3{3, 3, 3}, 5, 0x336699)
}

func press(g *state.Game, code string) {
	HandleKey(g, input.DeviceKeyboard, code, input.PhasePress)
}

func release(g *state.Game, code string) {
	HandleKey(g, input.DeviceKeyboard, code, input.PhaseRelease)
}

func TestUpdateMovement_SingleAxisMovesAtSpeed(t *testing.T) {
	for _, code := range []string{"KeyW", "KeyS", "KeyA", "KeyD", "ArrowUp", "ArrowDown", "ArrowLeft", "ArrowRight"} {
		for _, dt := range []float32{0, 0.016, 0.5, 1} {
			g := makeGame(t)
			press(g, code)
			UpdateMovement(g, dt)
			if got := g.Character.Velocity.Len(); !floatNear(got, 5*dt) {
				t.Errorf("%s dt=%v: |velocity| = %v, want %v", code, dt, got, 5*dt)
			}
		}
	}
}

func TestUpdateMovement_DiagonalIsNotFaster(t *testing.T) {
	tests := []struct{ a, b string }{
		{"KeyW", "KeyD"},
		{"KeyW", "KeyA"},
		{"ArrowDown", "ArrowLeft"},
		{"KeyS", "ArrowRight"},
	}
	for _, tt := range tests {
		t.Run(tt.a+"+"+tt.b, func(t *testing.T) {
			g := makeGame(t)
			press(g, tt.a)
			press(g, tt.b)
			UpdateMovement(g, 0.5)
			assert.InDelta(t, 2.5, g.Character.Velocity.Len(), 1e-5)
			assert.InDelta(t, math32.Abs(g.Character.Velocity.X()), math32.Abs(g.Character.Velocity.Z()), 1e-6)
		})
	}
}

func TestUpdateMovement_OpposingKeysCancel(t *testing.T) {
	g := makeGame(t)
	g.Character.Heading = 1
	press(g, "KeyW")
	press(g, "ArrowDown")
	UpdateMovement(g, 1)
	assert.Equal(t, mgl32.Vec3{}, g.Character.Velocity)
	assert.Equal(t, float32(1), g.Character.Heading)
}

func TestUpdateMovement_ReleaseStopsInSameTick(t *testing.T) {
	g := makeGame(t)
	press(g, "KeyW")
	press(g, "KeyD")
	UpdateMovement(g, 0.1)
	require.NotZero(t, g.Character.Velocity.Len())

	release(g, "KeyW")
	release(g, "KeyD")
	before := g.Character.Position
	UpdateMovement(g, 0.1)
	assert.Equal(t, mgl32.Vec3{}, g.Character.Velocity)
	assert.Equal(t, before, g.Character.Position)
}

func TestUpdateMovement_ReleasedAxisHasNoVelocity(t *testing.T) {
	g := makeGame(t)
	press(g, "KeyW")
	press(g, "KeyD")
	release(g, "ArrowRight") // either key clears the flag
	UpdateMovement(g, 1)
	assert.Equal(t, float32(0), g.Character.Velocity.X())
	assert.InDelta(t, 5, g.Character.Velocity.Z(), 1e-6)
}

func TestUpdateMovement_HeadingTurnsTenPercent(t *testing.T) {
	tests := []struct {
		name    string
		heading float32
		key     string
		want    float32
	}{
		{"quarter turn right", 0, "KeyD", 0.1 * math32.Pi / 2},
		{"quarter turn left", 0, "KeyA", -0.1 * math32.Pi / 2},
		{"wraps across pi", 0.9 * math32.Pi, "KeyA", 0.9*math32.Pi + 0.1*(0.6*math32.Pi)},
		{"already facing", 0, "KeyW", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := makeGame(t)
			g.Character.Heading = tt.heading
			press(g, tt.key)
			UpdateMovement(g, 0.016)
			assert.InDelta(t, tt.want, g.Character.Heading, 1e-5)
		})
	}
}

func TestUpdateMovement_NoKeysKeepsHeading(t *testing.T) {
	g := makeGame(t)
	g.Character.Heading = 2
	UpdateMovement(g, 1)
	assert.Equal(t, float32(2), g.Character.Heading)
	assert.Equal(t, mgl32.Vec3{}, g.Character.Position)
}

func TestScenario_WalkForwardForOneSecond(t *testing.T) {
	g := makeGame(t)
	press(g, "KeyW")
	Tick(g, 1.0)
	assert.InDelta(t, 5, g.Character.Position.Z(), 1e-5)
	assert.InDelta(t, 0, g.Character.Position.X(), 1e-6)
	assert.InDelta(t, 0, g.Character.Heading, 1e-6)
}

func TestScenario_HeadingConvergesWithoutReaching(t *testing.T) {
	g := makeGame(t)
	g.Character.Heading = 1
	press(g, "KeyW")

	prev := g.Character.Heading
	for i := 0; i < 150; i++ {
		Tick(g, 1.0/60)
		if g.Character.Heading >= prev {
			t.Fatalf("tick %d: heading %v did not move toward 0 from %v", i, g.Character.Heading, prev)
		}
		prev = g.Character.Heading
	}
	assert.Greater(t, g.Character.Heading, float32(0))
	assert.Less(t, g.Character.Heading, float32(1e-3))
}

func TestUpdateCamera_SmoothsPositionButNotAim(t *testing.T) {
	g := makeGame(t)
	g.Character.Position = mgl32.Vec3{10, 0, 0}
	start := g.Camera.Position
	UpdateCamera(g)

	desired := mgl32.Vec3{10, 5, -7}
	want := start.Add(desired.Sub(start).Mul(0.05))
	assert.InDelta(t, 0, want.Sub(g.Camera.Position).Len(), 1e-5)
	assert.Equal(t, mgl32.Vec3{10, 1.5, 0}, g.Camera.Target)
}

func TestUpdateCamera_TrailsBehindHeading(t *testing.T) {
	g := makeGame(t)
	g.Character.Heading = math32.Pi / 2 // facing +X
	for i := 0; i < 400; i++ {
		UpdateCamera(g)
	}
	assert.InDelta(t, -7, g.Camera.Position.X(), 1e-3)
	assert.InDelta(t, 5, g.Camera.Position.Y(), 1e-3)
	assert.InDelta(t, 0, g.Camera.Position.Z(), 1e-3)
}

func TestTick_IdleCameraStaysBehindFromDefaultStart(t *testing.T) {
	g := makeGame(t)
	require.Equal(t, config.DefaultConfig().Camera.Start.Vec(), g.Camera.Position)

	for i := 0; i < 300; i++ {
		Tick(g, 1.0/60)
		planar := mgl32.Vec2{
			g.Camera.Position.X() - g.Camera.Target.X(),
			g.Camera.Position.Z() - g.Camera.Target.Z(),
		}
		if planar.Len() < 1 {
			t.Fatalf("tick %d: camera %v is %.3f from target %v", i+1, g.Camera.Position, planar.Len(), g.Camera.Target)
		}
		if g.Camera.Position.Z() > 0 {
			t.Fatalf("tick %d: camera %v crossed to the front of the character", i+1, g.Camera.Position)
		}
	}
	assert.InDelta(t, -7, g.Camera.Position.Z(), 0.1)
}

func TestDetectProximity_FirstInRegistrationOrderWins(t *testing.T) {
	far := building("Far", "home", 4, 0)   // distance 4, registered first
	near := building("Near", "deck", 1, 0) // distance 1, registered second
	out := building("Out", "home", 0, 9)
	g := makeGame(t, out, far, near)

	DetectProximity(g)
	require.NotNil(t, g.Interaction.Interactable)
	assert.Equal(t, "Far", g.Interaction.Interactable.Name)
	assert.True(t, g.Interaction.CanInteract)
	assert.True(t, g.UI.HintVisible)
	assert.True(t, far.Highlighted)
	assert.Equal(t, world.ColorWhite, far.Color)
	assert.False(t, near.Highlighted)
	assert.False(t, out.Highlighted)
}

func TestDetectProximity_RadiusIsExclusiveAndPlanar(t *testing.T) {
	edge := building("Edge", "home", 5, 0)
	g := makeGame(t, edge)
	DetectProximity(g)
	assert.Nil(t, g.Interaction.Interactable)
	assert.False(t, g.UI.HintVisible)

	g.Character.Position = mgl32.Vec3{0.5, 100, 0}
	DetectProximity(g)
	assert.Equal(t, edge, g.Interaction.Interactable)
}

func TestDetectProximity_LeavingRangeRestoresColor(t *testing.T) {
	home := building("Home", "home", 0, 0)
	g := makeGame(t, home)
	DetectProximity(g)
	require.True(t, home.Highlighted)

	g.Character.Position = mgl32.Vec3{20, 0, 0}
	DetectProximity(g)
	assert.False(t, home.Highlighted)
	assert.Equal(t, home.OriginalColor, home.Color)
	assert.Nil(t, g.Interaction.Interactable)
	assert.False(t, g.Interaction.CanInteract)
	assert.False(t, g.UI.HintVisible)
}

func TestTick_AtMostOneHighlighted(t *testing.T) {
	a := building("A", "home", 0, 3)
	b := building("B", "home", 0, 6)
	c := building("C", "home", 0, 9)
	g := makeGame(t, a, b, c)
	press(g, "KeyW")

	for i := 0; i < 200; i++ {
		Tick(g, 0.02)
		lit := g.Highlighted()
		if len(lit) > 1 {
			t.Fatalf("tick %d: %d structures highlighted", i, len(lit))
		}
		if len(lit) == 1 && lit[0] != g.Interaction.Interactable {
			t.Fatalf("tick %d: highlighted %s but interactable is %v", i, lit[0].Name, g.Interaction.Interactable)
		}
	}
}

func TestDispatchContent_ExactMarkup(t *testing.T) {
	home := building("Home", "home", 0, 0)
	g := makeGame(t, home)
	DispatchContent(g, home)
	assert.Equal(t, `<h1>Home</h1><p>Welcome &amp; hello</p>`, g.UI.PageHTML)
	assert.Equal(t, "Home", g.UI.PageTitle)
	assert.True(t, g.UI.PageFound)
	assert.True(t, g.UI.ContentVisible)
}

func TestDispatchContent_UnknownKeyShowsPlaceholder(t *testing.T) {
	lost := building("Secret Lab", "no-such-page", 0, 0)
	g := makeGame(t, lost)
	DispatchContent(g, lost)
	assert.Contains(t, g.UI.PageHTML, "Content Not Found")
	assert.Contains(t, g.UI.PageHTML, "Secret Lab")
	assert.False(t, g.UI.PageFound)
	assert.True(t, g.UI.ContentVisible)
	assert.Equal(t, 0, g.Slideshow.Len())
}

func TestDispatchContent_LoadsSlides(t *testing.T) {
	deck := building("Deck", "deck", 0, 0)
	g := makeGame(t, deck)
	DispatchContent(g, deck)
	assert.Equal(t, 2, g.Slideshow.Len())

	press(g, "BracketRight")
	assert.Equal(t, 1, g.Slideshow.Index())
	press(g, "KeyF")
	assert.True(t, g.Slideshow.Fullscreen())

	press(g, "Escape")
	assert.False(t, g.Slideshow.Fullscreen())
	assert.False(t, g.MenuVisible(), "Escape in fullscreen must not open the menu")

	press(g, "Backspace")
	assert.False(t, g.UI.ContentVisible)
}

func TestInteract_InRangeOpensPageImmediately(t *testing.T) {
	home := building("Home", "home", 0, 0)
	g := makeGame(t, home)
	Tick(g, 0.016)

	press(g, "KeyE")
	assert.True(t, g.UI.ContentVisible)
	assert.Equal(t, "Home", g.UI.PageTitle)
	assert.False(t, g.Input.InteractPending())
}

func TestInteract_OutOfRangeDoesNothing(t *testing.T) {
	home := building("Home", "home", 30, 30)
	g := makeGame(t, home)
	Tick(g, 0.016)

	press(g, "KeyE")
	Tick(g, 0.016)
	assert.False(t, g.UI.ContentVisible)
	assert.False(t, g.Input.InteractPending())
}

func TestTick_PendingInteractDispatchedBeforeMovement(t *testing.T) {
	home := building("Home", "home", 0, 0)
	g := makeGame(t, home)
	Tick(g, 0.016)

	// Latch the edge on the tracker directly, as a host applying raw events would.
	g.Input.Apply(input.DebouncedInput{Code: "KeyE", Phase: input.PhasePress})
	Tick(g, 0.016)
	assert.True(t, g.UI.ContentVisible)
}

func TestTick_SkippedWhileLoading(t *testing.T) {
	home := building("Home", "home", 0, 0)
	g := makeGame(t, home)
	g.Loading = true
	press(g, "KeyW")
	g.Input.Apply(input.DebouncedInput{Code: "KeyE", Phase: input.PhasePress})

	camBefore := g.Camera.Position
	Tick(g, 1)
	assert.Equal(t, mgl32.Vec3{}, g.Character.Position)
	assert.Equal(t, camBefore, g.Camera.Position)
	assert.Nil(t, g.Interaction.Interactable)
	assert.False(t, g.Input.InteractPending())
	assert.Zero(t, g.Ticks)
}

func TestTick_SpotlightFollowsCharacter(t *testing.T) {
	g := makeGame(t)
	press(g, "KeyD")
	Tick(g, 1)
	assert.Equal(t, g.Character.Position.Add(mgl32.Vec3{0, 10, 0}), g.Spotlight)
}

func TestMenu_EscapeTabEnter(t *testing.T) {
	g := makeGame(t)
	press(g, "Escape")
	require.True(t, g.MenuVisible())

	press(g, "Tab") // Resume -> Music
	assert.Equal(t, 1, g.UI.MenuIndex)
	press(g, "Enter")
	assert.False(t, g.Prefs.Music)
	assert.True(t, g.MenuVisible())
	assert.NotEmpty(t, g.UI.MenuHelp)

	press(g, "Tab")
	press(g, "Tab")
	press(g, "Enter") // Theme
	assert.True(t, g.Prefs.Dark())

	press(g, "Tab") // wraps to Resume
	assert.Equal(t, 0, g.UI.MenuIndex)
	press(g, "Enter")
	assert.False(t, g.MenuVisible())
	assert.Equal(t, 0, g.UI.MenuIndex)
}

func TestMenu_DoesNotPauseMovement(t *testing.T) {
	g := makeGame(t)
	press(g, "Escape")
	press(g, "KeyW")
	Tick(g, 1)
	assert.InDelta(t, 5, g.Character.Position.Z(), 1e-5)
}

func TestQuitKey(t *testing.T) {
	g := makeGame(t)
	press(g, "KeyQ")
	assert.True(t, g.Quit)
}

func TestLoadingProgress(t *testing.T) {
	g := makeGame(t)
	g.Loading = true
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	g.LoadingStarted = start

	tests := []struct {
		after time.Duration
		want  float32
	}{
		{-time.Second, 0},
		{0, 0},
		{1250 * time.Millisecond, 0.5},
		{2500 * time.Millisecond, 1},
		{time.Minute, 1},
	}
	for _, tt := range tests {
		if got := LoadingProgress(g, start.Add(tt.after)); !floatNear(got, tt.want) {
			t.Errorf("LoadingProgress(+%v) = %v, want %v", tt.after, got, tt.want)
		}
	}

	UpdateLoading(g, start.Add(time.Second))
	assert.True(t, g.Loading)
	UpdateLoading(g, start.Add(3*time.Second))
	assert.False(t, g.Loading)
	assert.Equal(t, float32(1), LoadingProgress(g, start))
}

func TestBuildGame(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.World.Seed = 99
	store, err := content.Default()
	require.NoError(t, err)

	g, err := BuildGame(cfg, store, nil, nil)
	require.NoError(t, err)
	assert.True(t, g.Loading)
	assert.Equal(t, int64(99), g.Scene.Seed)
	assert.Equal(t, 7, g.Structures().Len())
	assert.Equal(t, mgl32.Vec3{0, 5, -10}, g.Camera.Position)
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, g.Camera.Target)

	// Home sits on the origin; once loaded the visitor starts in front of its door.
	FinishLoading(g)
	Tick(g, 0.016)
	require.NotNil(t, g.Interaction.Interactable)
	assert.Equal(t, "Home", g.Interaction.Interactable.Name)
	assert.Equal(t, []string{"Press E to interact", "Home: Welcome to my interactive portfolio!"}, HintText(g))
}

func floatNear(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-5
}
