// Package ebiten provides an Ebiten-based top-down renderer for the portfolio walk-around.
package ebiten

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"

	"pixelportfolio/pkg/engine/clock"
	"pixelportfolio/pkg/game/state"
)

// EbitenRenderer draws the world from above and feeds window key events into the session.
type EbitenRenderer struct {
	game  *state.Game
	log   *zap.Logger
	clock *clock.Clock

	windowWidth  int
	windowHeight int

	// scale is pixels per world unit.
	scale float32

	sansFontSource     *text.GoTextFaceSource
	sansBoldFontSource *text.GoTextFaceSource
	monoFontSource     *text.GoTextFaceSource

	fontMu             sync.Mutex
	cachedSansFace     *text.GoTextFace
	cachedSansBoldFace *text.GoTextFace
	cachedTitleFace    *text.GoTextFace
	cachedMonoFace     *text.GoTextFace
	cachedFontSize     float64

	// keys is scratch space for inpututil.
	keys []ebiten.Key

	// pageScroll is the first page line shown in the content panel.
	pageScroll int
	pageTitle  string

	windowOpenedLogged bool
	wasFocused         bool
}
