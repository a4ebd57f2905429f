package gameplay

import (
	"time"

	"go.uber.org/zap"

	"pixelportfolio/pkg/engine/input"
	gamemenu "pixelportfolio/pkg/game/menu"
	"pixelportfolio/pkg/game/state"
)

// PauseMenu is the menu toggled by Escape.
var PauseMenu gamemenu.MenuHandler = gamemenu.NewGameplayMenuHandler()

// HandleKey feeds one physical key event from a device into the session.
func HandleKey(g *state.Game, device input.Device, code string, phase input.Phase) input.Intent {
	return HandleInput(g, input.NewDebouncedInput(input.RawInput{
		Device:    device,
		Code:      code,
		Phase:     phase,
		Timestamp: time.Now(),
	}))
}

// HandleInput applies a key event to the held-key tracker and runs the
// one-shot UI actions bound to key presses. It returns the mapped intent.
func HandleInput(g *state.Game, ev input.DebouncedInput) input.Intent {
	intent := input.MapToIntent(ev)

	// Escape leaves fullscreen before it reaches the menu toggle.
	if intent.Action == input.ActionToggleMenu && intent.Phase == input.PhasePress && g.Slideshow.Fullscreen() {
		g.Slideshow.ExitFullscreen()
		return intent
	}

	intent = g.Input.Apply(ev)
	if intent.Phase != input.PhasePress {
		return intent
	}
	ProcessIntent(g, intent)
	return intent
}

// ProcessIntent handles the press side of a high-level intent. Movement is
// already recorded by the tracker and is left to the tick.
func ProcessIntent(g *state.Game, intent input.Intent) {
	if intent.Action == input.ActionNone {
		return
	}
	g.Log.Debug("intent", zap.String("action", input.ActionName(intent.Action)))

	switch intent.Action {
	case input.ActionInteract:
		processInteract(g)

	case input.ActionToggleMenu:
		if !g.MenuVisible() {
			gamemenu.Close(g)
		}
		g.Log.Debug("menu toggled", zap.Bool("visible", g.MenuVisible()))

	case input.ActionResume:
		gamemenu.Close(g)

	case input.ActionToggleMusic:
		gamemenu.ToggleMusic(g)

	case input.ActionToggleSound:
		gamemenu.ToggleSound(g)

	case input.ActionToggleTheme:
		gamemenu.ToggleTheme(g)

	case input.ActionMenuNext:
		if g.MenuVisible() {
			gamemenu.Next(g, PauseMenu)
		}

	case input.ActionMenuActivate:
		if g.MenuVisible() {
			gamemenu.Activate(g, PauseMenu)
		}

	case input.ActionClosePage:
		ClosePage(g)

	case input.ActionPrevSlide:
		if g.UI.ContentVisible {
			g.Slideshow.Prev()
		}

	case input.ActionNextSlide:
		if g.UI.ContentVisible {
			g.Slideshow.Next()
		}

	case input.ActionFullscreen:
		if g.UI.ContentVisible {
			g.Slideshow.ToggleFullscreen()
		}

	case input.ActionQuit:
		g.Quit = true
		g.Log.Info("visitor quit")
	}
}
