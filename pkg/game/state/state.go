package state

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"pixelportfolio/pkg/engine/input"
	engineworld "pixelportfolio/pkg/engine/world"
	"pixelportfolio/pkg/game/config"
	"pixelportfolio/pkg/game/content"
	"pixelportfolio/pkg/game/scene"
	"pixelportfolio/pkg/game/slideshow"
	"pixelportfolio/pkg/game/world"
)

// Interaction is recomputed from scratch every tick.
type Interaction struct {
	// Interactable is the structure currently in range, if any. When set it
	// is also the only highlighted structure.
	Interactable *world.Structure
	CanInteract  bool
}

// UI holds the visibility flags and text written to the named surfaces.
type UI struct {
	HintVisible    bool
	ContentVisible bool
	PageTitle      string
	PageHTML       string
	// PageFound is false when PageHTML is the missing-content placeholder.
	PageFound bool
	// MenuIndex is the highlighted menu entry.
	MenuIndex int
	MenuHelp  string
}

// Game is one visitor session: the walk-around state mutated by input
// handlers and the tick function. It is not safe for concurrent use; a
// session is owned by exactly one goroutine.
type Game struct {
	ID uuid.UUID

	Cfg     *config.Config
	Prefs   *config.Preferences
	Content *content.Store
	Scene   *scene.Scene

	Input       *input.Tracker
	Character   *world.Character
	Camera      *world.Camera
	Interaction Interaction
	UI          UI
	Slideshow   *slideshow.Slideshow

	// Spotlight is the light hanging above the character.
	Spotlight mgl32.Vec3

	// Loading gates the tick until the start-up delay has passed.
	Loading        bool
	LoadingStarted time.Time

	Ticks uint64
	Quit  bool

	Log *zap.Logger
}

// NewGame creates a session over an assembled scene. The character starts at
// the origin, the camera at its configured start pose, and loading is on.
func NewGame(cfg *config.Config, sc *scene.Scene, store *content.Store, prefs *config.Preferences, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	if prefs == nil {
		prefs = config.DefaultPreferences()
	}
	id := uuid.New()
	g := &Game{
		ID:             id,
		Cfg:            cfg,
		Prefs:          prefs,
		Content:        store,
		Scene:          sc,
		Input:          input.NewTracker(),
		Character:      world.NewCharacter(mgl32.Vec3{}),
		Camera:         world.NewCamera(cfg.Camera.Start.Vec(), cfg.Camera.StartTarget.Vec()),
		Slideshow:      slideshow.New(nil),
		Loading:        true,
		LoadingStarted: time.Now(),
		Log:            log.With(zap.String("session", id.String())),
	}
	g.Spotlight = g.Character.Position.Add(mgl32.Vec3{0, cfg.Camera.SpotlightHeight, 0})
	return g
}

// Structures returns the scene's registered buildings, or nil without a scene.
func (g *Game) Structures() *engineworld.Registry[*world.Structure] {
	if g.Scene == nil {
		return nil
	}
	return g.Scene.Structures
}

// MenuVisible reports whether the menu panel is shown.
func (g *Game) MenuVisible() bool {
	return g.Input.MenuOpen()
}

// Highlighted returns every highlighted structure. Outside of a tick this is
// at most one, and it equals the current interactable.
func (g *Game) Highlighted() []*world.Structure {
	var out []*world.Structure
	if reg := g.Structures(); reg != nil {
		reg.Each(func(_ string, st *world.Structure) bool {
			if st.Highlighted {
				out = append(out, st)
			}
			return true
		})
	}
	return out
}
