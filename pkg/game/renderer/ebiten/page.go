package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"pixelportfolio/pkg/game/i18n"
	"pixelportfolio/pkg/game/renderer"
)

// drawPage draws the content panel for the open building page.
func (e *EbitenRenderer) drawPage(screen *ebiten.Image, p *renderer.PageView, pal *palette) {
	if p.Fullscreen && p.Slide != nil {
		e.drawFullscreenSlide(screen, p.Slide, pal)
		return
	}

	sw, sh := float32(e.windowWidth), float32(e.windowHeight)
	x, y := float32(panelMargin), float32(panelMargin)
	w, h := sw-2*panelMargin, sh-2*panelMargin
	drawRoundedRectWithShadow(screen, x, y, w, h, panelCorner, 2, pal.panel, pal.panelBorder, 1)

	title := e.getTitleFontFace()
	face := e.getSansFontFace()
	bold := e.getSansBoldFontFace()
	lh := lineHeight(face)

	left := float64(x + panelPadding)
	top := float64(y + panelPadding)
	drawText(screen, p.Title, left, top, pal.accent, title)
	drawText(screen, i18n.T("PAGE_CLOSE"), float64(x+w)-panelPadding-180, top, pal.subtle, face)
	top += lineHeight(title) + lh/2

	bottom := float64(y+h) - panelPadding - lh
	if p.Slide != nil {
		bottom -= 3 * lh
		e.drawSlideStrip(screen, p.Slide, left, bottom+lh/2, float64(w)-2*panelPadding, pal)
	}

	cols := charsPerLine(face, float64(w)-2*panelPadding)
	var lines []renderer.Line
	for _, l := range renderer.PlainText(p.HTML) {
		for _, wrapped := range renderer.Wrap(l.Text, cols) {
			lines = append(lines, renderer.Line{Kind: l.Kind, Text: wrapped})
		}
	}
	if e.pageScroll > len(lines)-1 {
		e.pageScroll = max(len(lines)-1, 0)
	}

	for _, l := range lines[min(e.pageScroll, len(lines)):] {
		if top > bottom {
			break
		}
		switch l.Kind {
		case renderer.LineHeading:
			top += lh / 3
			drawText(screen, l.Text, left, top, pal.accent, bold)
		case renderer.LineItem:
			drawText(screen, "• "+l.Text, left+12, top, pal.text, face)
		default:
			drawText(screen, l.Text, left, top, pal.text, face)
		}
		top += lh
	}
}

// drawSlideStrip shows the current slide's caption, counter and controls.
func (e *EbitenRenderer) drawSlideStrip(screen *ebiten.Image, s *renderer.SlideView, x, y, w float64, pal *palette) {
	face := e.getSansFontFace()
	mono := e.getMonoFontFace()
	lh := lineHeight(face)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(2.5*lh), 1, pal.subtle, false)
	drawText(screen, s.Alt, x+8, y+4, pal.text, face)
	drawText(screen, s.Src, x+8, y+4+lh, pal.subtle, mono)
	counter := i18n.Tf("SLIDE_COUNTER", s.Index+1, s.Count)
	drawText(screen, counter+"   "+i18n.T("SLIDE_CONTROLS"), x+w/2, y+4, pal.accent, face)
}

// drawFullscreenSlide replaces the page with the current slide.
func (e *EbitenRenderer) drawFullscreenSlide(screen *ebiten.Image, s *renderer.SlideView, pal *palette) {
	sw, sh := float32(e.windowWidth), float32(e.windowHeight)
	screen.Fill(color.Black)

	frameW, frameH := sw*0.8, sh*0.7
	fx, fy := (sw-frameW)/2, (sh-frameH)/2
	vector.DrawFilledRect(screen, fx, fy, frameW, frameH, pal.panel, false)
	vector.StrokeRect(screen, fx, fy, frameW, frameH, 3, pal.panelBorder, false)

	title := e.getTitleFontFace()
	face := e.getSansFontFace()
	cx := float64(sw / 2)
	drawTextCentered(screen, s.Alt, cx, float64(fy+frameH/2)-lineHeight(title), pal.text, title)
	drawTextCentered(screen, s.Src, cx, float64(fy+frameH/2), pal.subtle, e.getMonoFontFace())

	below := float64(fy+frameH) + 12
	drawTextCentered(screen, i18n.Tf("SLIDE_COUNTER", s.Index+1, s.Count), cx, below, color.White, face)
	drawTextCentered(screen, i18n.T("FULLSCREEN_EXIT"), cx, below+lineHeight(face), color.White, face)
}
