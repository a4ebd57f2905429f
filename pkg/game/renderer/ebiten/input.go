package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "pixelportfolio/pkg/engine/input"
	"pixelportfolio/pkg/game/gameplay"
)

// keyCodes maps Ebiten keys to the physical key identifiers the bindings use.
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyArrowUp:      "ArrowUp",
	ebiten.KeyArrowDown:    "ArrowDown",
	ebiten.KeyArrowLeft:    "ArrowLeft",
	ebiten.KeyArrowRight:   "ArrowRight",
	ebiten.KeyEscape:       "Escape",
	ebiten.KeyEnter:        "Enter",
	ebiten.KeyNumpadEnter:  "Enter",
	ebiten.KeyTab:          "Tab",
	ebiten.KeyBackspace:    "Backspace",
	ebiten.KeyBracketLeft:  "BracketLeft",
	ebiten.KeyBracketRight: "BracketRight",
	ebiten.KeySpace:        "Space",

	ebiten.KeyA: "KeyA", ebiten.KeyB: "KeyB", ebiten.KeyC: "KeyC", ebiten.KeyD: "KeyD",
	ebiten.KeyE: "KeyE", ebiten.KeyF: "KeyF", ebiten.KeyG: "KeyG", ebiten.KeyH: "KeyH",
	ebiten.KeyI: "KeyI", ebiten.KeyJ: "KeyJ", ebiten.KeyK: "KeyK", ebiten.KeyL: "KeyL",
	ebiten.KeyM: "KeyM", ebiten.KeyN: "KeyN", ebiten.KeyO: "KeyO", ebiten.KeyP: "KeyP",
	ebiten.KeyQ: "KeyQ", ebiten.KeyR: "KeyR", ebiten.KeyS: "KeyS", ebiten.KeyT: "KeyT",
	ebiten.KeyU: "KeyU", ebiten.KeyV: "KeyV", ebiten.KeyW: "KeyW", ebiten.KeyX: "KeyX",
	ebiten.KeyY: "KeyY", ebiten.KeyZ: "KeyZ",
}

// pollInput forwards this frame's key edges to the session.
func (e *EbitenRenderer) pollInput() {
	g := e.game

	e.keys = inpututil.AppendJustPressedKeys(e.keys[:0])
	for _, k := range e.keys {
		if code, ok := keyCodes[k]; ok {
			gameplay.HandleKey(g, engineinput.DeviceKeyboard, code, engineinput.PhasePress)
		}
	}
	e.keys = inpututil.AppendJustReleasedKeys(e.keys[:0])
	for _, k := range e.keys {
		if code, ok := keyCodes[k]; ok {
			gameplay.HandleKey(g, engineinput.DeviceKeyboard, code, engineinput.PhaseRelease)
		}
	}

	// Releases that happen while another window has focus are never seen.
	focused := ebiten.IsFocused()
	if e.wasFocused && !focused {
		g.Input.ReleaseAll()
	}
	e.wasFocused = focused

	e.handleZoom()
	e.handlePageScroll()
}

// handleZoom handles =/- for map zoom and 0 to reset it.
func (e *EbitenRenderer) handleZoom() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		if e.scale < maxScale {
			e.scale += scaleStep
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		if e.scale > minScale {
			e.scale -= scaleStep
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.Key0) || inpututil.IsKeyJustPressed(ebiten.KeyNumpad0) {
		e.scale = defaultScale
	}
}

// handlePageScroll scrolls the open content panel.
func (e *EbitenRenderer) handlePageScroll() {
	if !e.game.UI.ContentVisible {
		e.pageScroll = 0
		return
	}
	if e.game.UI.PageTitle != e.pageTitle {
		e.pageTitle = e.game.UI.PageTitle
		e.pageScroll = 0
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
		e.pageScroll += 5
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		e.pageScroll -= 5
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		e.pageScroll -= int(dy)
	}
	if e.pageScroll < 0 {
		e.pageScroll = 0
	}
}
