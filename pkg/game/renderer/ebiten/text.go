package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// drawText draws str with its top-left corner at (x, y).
func drawText(screen *ebiten.Image, str string, x, y float64, col color.Color, face *text.GoTextFace) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, str, face, op)
}

// drawTextCentered draws str horizontally centered on cx.
func drawTextCentered(screen *ebiten.Image, str string, cx, y float64, col color.Color, face *text.GoTextFace) {
	w, _ := text.Measure(str, face, 0)
	drawText(screen, str, cx-w/2, y, col, face)
}

// lineHeight is the vertical advance between lines of a face.
func lineHeight(face *text.GoTextFace) float64 {
	return face.Size * 1.4
}

// charsPerLine estimates how many characters of face fit in width.
func charsPerLine(face *text.GoTextFace, width float64) int {
	adv := text.Advance("n", face)
	if adv <= 0 {
		return 80
	}
	return int(width / adv)
}
