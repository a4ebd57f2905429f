package ebiten

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"pixelportfolio/pkg/game/renderer"
)

// appendRoundedRect adds a closed rounded-rectangle subpath (clockwise).
func appendRoundedRect(p *vector.Path, x, y, w, h, r float32) {
	appendRoundedRectDir(p, x, y, w, h, r, vector.Clockwise)
}

// appendRoundedRectDir adds a rounded-rectangle subpath in the given winding,
// so a ring can be cut out of a filled shape.
func appendRoundedRectDir(p *vector.Path, x, y, w, h, r float32, dir vector.Direction) {
	if r <= 0 {
		p.MoveTo(x, y)
		p.LineTo(x, y+h)
		p.LineTo(x+w, y+h)
		p.LineTo(x+w, y)
		p.Close()
		return
	}
	r = min(r, w/2, h/2)
	halfPi := float32(math.Pi / 2)
	pi := float32(math.Pi)
	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.Arc(x+w-r, y+r, r, 3*halfPi, 0, dir)
	p.LineTo(x+w, y+h-r)
	p.Arc(x+w-r, y+h-r, r, 0, halfPi, dir)
	p.LineTo(x+r, y+h)
	p.Arc(x+r, y+h-r, r, halfPi, pi, dir)
	p.LineTo(x, y+r)
	p.Arc(x+r, y+r, r, pi, 3*halfPi, dir)
	p.Close()
}

// drawRoundedRectWithShadow draws a bordered panel over a soft shadow tinted
// from the border color.
func drawRoundedRectWithShadow(screen *ebiten.Image, x, y, w, h, cornerRadius, borderWidth float32, bgColor, borderColor color.Color, alpha float32) {
	const shadowSpread = 8
	bor, bog, bob, _ := borderColor.RGBA()
	shade := func(c uint32) uint8 {
		return max(uint8((c>>8)*15/255), 8)
	}
	shadowR, shadowG, shadowB := shade(bor), shade(bog), shade(bob)

	var path vector.Path
	for i := shadowSpread; i >= 1; i-- {
		ringAlpha := uint8(float32(min(12+i*8, 55)) * alpha)
		path.Reset()
		appendRoundedRect(&path,
			x-float32(i), y-float32(i),
			w+float32(i*2), h+float32(i*2),
			cornerRadius+float32(i))
		appendRoundedRectDir(&path,
			x-float32(i-1), y-float32(i-1),
			w+float32((i-1)*2), h+float32((i-1)*2),
			cornerRadius+float32(i-1), vector.CounterClockwise)
		drawOpts := &vector.DrawPathOptions{AntiAlias: true}
		drawOpts.ColorScale.ScaleWithColor(color.RGBA{shadowR, shadowG, shadowB, ringAlpha})
		vector.FillPath(screen, &path, nil, drawOpts)
	}

	path.Reset()
	appendRoundedRect(&path, x, y, w, h, cornerRadius)
	drawOpts := &vector.DrawPathOptions{AntiAlias: true}
	drawOpts.ColorScale.ScaleWithColor(bgColor)
	vector.FillPath(screen, &path, nil, drawOpts)

	path.Reset()
	appendRoundedRect(&path, x, y, w, h, cornerRadius)
	strokeOpts := &vector.StrokeOptions{Width: borderWidth, MiterLimit: 10}
	drawOpts = &vector.DrawPathOptions{AntiAlias: true}
	drawOpts.ColorScale.ScaleWithColor(borderColor)
	vector.StrokePath(screen, &path, strokeOpts, drawOpts)
}

// drawMenu draws the pause menu centred over a dimmed world.
func (e *EbitenRenderer) drawMenu(screen *ebiten.Image, m *renderer.MenuView, pal *palette) {
	sw, sh := float32(e.windowWidth), float32(e.windowHeight)
	vector.DrawFilledRect(screen, 0, 0, sw, sh, pal.overlay, false)

	title := e.getTitleFontFace()
	face := e.getSansFontFace()
	bold := e.getSansBoldFontFace()
	lh := float32(lineHeight(face))

	width := float32(0)
	for _, s := range append([]string{m.Title, m.Instructions, m.Help}, m.Items...) {
		if w, _ := text.Measure(s, bold, 0); float32(w) > width {
			width = float32(w)
		}
	}
	width += 2 * panelPadding
	height := float32(lineHeight(title)) + lh*float32(len(m.Items)+3) + 2*panelPadding

	x := sw/2 - width/2
	y := sh/2 - height/2
	drawRoundedRectWithShadow(screen, x, y, width, height, panelCorner, 2, pal.panel, pal.panelBorder, 1)

	cx := float64(sw / 2)
	cy := float64(y + panelPadding)
	drawTextCentered(screen, m.Title, cx, cy, pal.accent, title)
	cy += lineHeight(title) + float64(lh)/2

	for i, item := range m.Items {
		if i == m.Selected {
			vector.DrawFilledRect(screen, x+panelPadding/2, float32(cy)-2, width-panelPadding, lh, pal.accent, false)
			drawTextCentered(screen, item, cx, cy, pal.panel, bold)
		} else {
			drawTextCentered(screen, item, cx, cy, pal.text, face)
		}
		cy += float64(lh)
	}

	cy += float64(lh) / 2
	drawTextCentered(screen, m.Instructions, cx, cy, pal.subtle, face)
	if m.Help != "" {
		drawTextCentered(screen, m.Help, cx, cy+float64(lh), pal.accent, face)
	}
}
