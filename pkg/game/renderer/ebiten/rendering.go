package ebiten

import (
	"image/color"
	"time"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"pixelportfolio/pkg/game/i18n"
	"pixelportfolio/pkg/game/renderer"
	"pixelportfolio/pkg/game/state"
	"pixelportfolio/pkg/game/world"
)

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	g := e.game
	if g == nil {
		return
	}
	pal := paletteFor(g.Prefs.Dark())
	screen.Fill(pal.background)

	frame := renderer.FrameOf(g, time.Now())
	if frame.Loading {
		e.drawLoading(screen, frame.Progress, pal)
		return
	}

	proj := e.projector()
	e.drawGround(screen, proj, pal)
	e.drawPaths(screen, proj)
	e.drawDecorations(screen, proj, pal)
	e.drawStructures(screen, proj, g, pal)
	e.drawCharacter(screen, proj, g, pal)

	e.drawControls(screen, pal)
	if len(frame.Hint) > 0 {
		e.drawHint(screen, frame.Hint, pal)
	}
	if frame.Page != nil {
		e.drawPage(screen, frame.Page, pal)
	}
	if frame.Menu != nil {
		e.drawMenu(screen, frame.Menu, pal)
	}
}

// projector centres the view on the camera's aim point.
func (e *EbitenRenderer) projector() renderer.Projector {
	return renderer.Projector{
		Center: e.game.Camera.Target,
		ScaleX: e.scale,
		ScaleY: e.scale,
		Width:  float32(e.windowWidth),
		Height: float32(e.windowHeight),
	}
}

func (e *EbitenRenderer) drawLoading(screen *ebiten.Image, progress float32, pal *palette) {
	w, h := float32(e.windowWidth), float32(e.windowHeight)
	face := e.getSansBoldFontFace()
	drawTextCentered(screen, i18n.T("LOADING"), float64(w/2), float64(h/2-40), pal.text, face)

	x := w/2 - loadingBarWidth/2
	y := h / 2
	vector.DrawFilledRect(screen, x, y, loadingBarWidth, loadingBarHeight, pal.loadingTrack, false)
	vector.DrawFilledRect(screen, x, y, loadingBarWidth*progress, loadingBarHeight, pal.accent, false)
}

func (e *EbitenRenderer) drawGround(screen *ebiten.Image, proj renderer.Projector, pal *palette) {
	half := e.game.Scene.GroundSize / 2
	x0, y0 := proj.ToScreen(mgl32.Vec3{-half, 0, half})
	x1, y1 := proj.ToScreen(mgl32.Vec3{half, 0, -half})
	vector.DrawFilledRect(screen, x0, y0, x1-x0, y1-y0, pal.ground, false)
	vector.StrokeRect(screen, x0, y0, x1-x0, y1-y0, 2, pal.groundEdge, false)
}

// drawPaths draws each tile as a quad rotated to its direction of travel.
func (e *EbitenRenderer) drawPaths(screen *ebiten.Image, proj renderer.Projector) {
	for _, seg := range e.game.Scene.Paths {
		cx, cy := proj.ToScreen(seg.Position)
		if !proj.OnScreen(cx, cy, seg.Length*proj.ScaleX) {
			continue
		}
		along := mgl32.Vec3{math32.Cos(seg.Angle), 0, math32.Sin(seg.Angle)}.Mul(seg.Length / 2)
		across := mgl32.Vec3{-math32.Sin(seg.Angle), 0, math32.Cos(seg.Angle)}.Mul(seg.Width / 2)

		var path vector.Path
		corners := []mgl32.Vec3{
			seg.Position.Add(along).Add(across),
			seg.Position.Add(along).Sub(across),
			seg.Position.Sub(along).Sub(across),
			seg.Position.Sub(along).Add(across),
		}
		for i, c := range corners {
			x, y := proj.ToScreen(c)
			if i == 0 {
				path.MoveTo(x, y)
			} else {
				path.LineTo(x, y)
			}
		}
		path.Close()
		opts := &vector.DrawPathOptions{AntiAlias: true}
		opts.ColorScale.ScaleWithColor(seg.Color.ToRGBA())
		vector.FillPath(screen, &path, nil, opts)
	}
}

func (e *EbitenRenderer) drawDecorations(screen *ebiten.Image, proj renderer.Projector, pal *palette) {
	for _, d := range e.game.Scene.Decorations {
		x, y := proj.ToScreen(d.Position)
		if !proj.OnScreen(x, y, 3*proj.ScaleX) {
			continue
		}
		switch d.Kind {
		case world.DecorationTree:
			// Canopy radius grows with tree height; the trunk peeks out in the middle.
			r := (0.6 + 0.3*d.Scale) * proj.ScaleX
			vector.DrawFilledCircle(screen, x, y, r, d.Color.ToRGBA(), true)
			vector.DrawFilledCircle(screen, x, y, 0.2*proj.ScaleX, pal.trunk, true)
		case world.DecorationRock:
			rx := 0.5 * d.Scale * d.Stretch.X() * proj.ScaleX
			vector.DrawFilledCircle(screen, x, y, rx, d.Color.ToRGBA(), true)
		case world.DecorationFlower:
			vector.DrawFilledCircle(screen, x, y, flowerRadius*proj.ScaleX, d.Color.ToRGBA(), true)
		}
	}
}

func (e *EbitenRenderer) drawStructures(screen *ebiten.Image, proj renderer.Projector, g *state.Game, pal *palette) {
	face := e.getSansBoldFontFace()
	g.Structures().Each(func(_ string, st *world.Structure) bool {
		half := st.Size.Mul(0.5)
		x0, y0 := proj.ToScreen(st.Position.Add(mgl32.Vec3{-half.X(), 0, half.Z()}))
		x1, y1 := proj.ToScreen(st.Position.Add(mgl32.Vec3{half.X(), 0, -half.Z()}))
		if !proj.OnScreen(x0, y0, x1-x0+200) {
			return true
		}

		if st.Highlighted {
			cx, cy := proj.ToScreen(st.Position)
			vector.StrokeCircle(screen, cx, cy, st.Radius*proj.ScaleX, 1.5, pal.radius, true)
		}
		vector.DrawFilledRect(screen, x0, y0, x1-x0, y1-y0, st.Color.ToRGBA(), false)
		vector.StrokeRect(screen, x0, y0, x1-x0, y1-y0, 2, st.OriginalColor.ToRGBA(), false)

		cx, _ := proj.ToScreen(st.Position)
		drawTextCentered(screen, st.Name, float64(cx), float64(y1+4), pal.text, face)
		return true
	})
}

func (e *EbitenRenderer) drawCharacter(screen *ebiten.Image, proj renderer.Projector, g *state.Game, pal *palette) {
	c := g.Character
	sx, sy := proj.ToScreen(g.Spotlight)
	vector.DrawFilledCircle(screen, sx, sy, 3*proj.ScaleX, pal.spotlight, true)

	x, y := proj.ToScreen(c.Position)
	vector.DrawFilledCircle(screen, x, y, characterRadius*proj.ScaleX, pal.character, true)
	nx, ny := proj.ToScreen(c.Position.Add(c.Forward().Mul(characterRadius * 1.8)))
	vector.StrokeLine(screen, x, y, nx, ny, 3, pal.character, true)

	// The camera trails behind; a short sight line shows where it sits.
	camX, camY := proj.ToScreen(g.Camera.Position)
	vector.StrokeLine(screen, camX, camY, x, y, 1, pal.camera, true)
	vector.DrawFilledCircle(screen, camX, camY, 3, pal.camera, true)
}

func (e *EbitenRenderer) drawControls(screen *ebiten.Image, pal *palette) {
	face := e.getSansFontFace()
	drawText(screen, i18n.T("CONTROLS"), 12, float64(e.windowHeight)-lineHeight(face)-8, pal.subtle, face)
}

func (e *EbitenRenderer) drawHint(screen *ebiten.Image, lines []string, pal *palette) {
	face := e.getSansFontFace()
	bold := e.getSansBoldFontFace()
	lh := lineHeight(face)

	width := float32(0)
	for _, l := range lines {
		if w, _ := text.Measure(l, bold, 0); float32(w) > width {
			width = float32(w)
		}
	}
	width += 2 * panelPadding
	height := float32(lh)*float32(len(lines)) + panelPadding

	x := float32(e.windowWidth)/2 - width/2
	y := float32(e.windowHeight) - height - 60
	drawRoundedRectWithShadow(screen, x, y, width, height, panelCorner, 2, pal.panel, pal.panelBorder, 1)

	for i, l := range lines {
		f := face
		col := color.Color(pal.subtle)
		if i == 0 {
			f, col = bold, pal.accent
		}
		drawTextCentered(screen, l, float64(x+width/2), float64(y)+panelPadding/2+float64(i)*lh, col, f)
	}
}
