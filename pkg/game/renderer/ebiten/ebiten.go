package ebiten

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"pixelportfolio/pkg/engine/clock"
	"pixelportfolio/pkg/game/gameplay"
	"pixelportfolio/pkg/game/i18n"
	"pixelportfolio/pkg/game/state"
)

// New creates a new Ebiten renderer
func New(log *zap.Logger) *EbitenRenderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &EbitenRenderer{
		log:          log.Named("ebiten"),
		windowWidth:  defaultWindowW,
		windowHeight: defaultWindowH,
		scale:        defaultScale,
	}
}

// Init loads fonts and configures the window.
func (e *EbitenRenderer) Init() error {
	if err := e.loadFonts(); err != nil {
		return err
	}
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle("Pixel Portfolio")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return nil
}

// Run starts the Ebiten game loop and blocks until the window closes or the visitor quits.
func (e *EbitenRenderer) Run(g *state.Game) error {
	e.game = g
	e.clock = clock.New()
	e.wasFocused = true

	if err := ebiten.RunGame(e); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("ebiten loop failed: %w", err)
	}
	fmt.Println(i18n.T("GOODBYE"))
	return nil
}

// Close is a no-op; Ebiten tears the window down when RunGame returns.
func (e *EbitenRenderer) Close() {}

// Update handles input and advances the simulation (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		e.log.Info("window opened", zap.Int("width", w), zap.Int("height", h))
	}

	g := e.game
	e.pollInput()
	gameplay.UpdateLoading(g, time.Now())
	gameplay.Tick(g, e.clock.Delta())

	if g.Quit {
		return ebiten.Termination
	}
	return nil
}

// Layout tracks the window size so the view fills it (Ebiten interface).
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.windowWidth, e.windowHeight = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
