package tui

import (
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rivo/uniseg"

	"pixelportfolio/pkg/game/renderer"
)

type cell struct {
	glyph string
	style printer
}

// canvas is a grid of styled glyphs, one per terminal cell. Styles are
// compared when merging runs, so pass *color.Style rather than color.Style.
type canvas struct {
	w, h  int
	cells []cell
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h, cells: make([]cell, w*h)}
	for i := range c.cells {
		c.cells[i].glyph = " "
	}
	return c
}

// Set writes one glyph; out-of-bounds writes are dropped.
func (c *canvas) Set(x, y int, glyph string, style printer) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y*c.w+x] = cell{glyph: glyph, style: style}
}

// Get returns the glyph at x, y.
func (c *canvas) Get(x, y int) string {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return ""
	}
	return c.cells[y*c.w+x].glyph
}

// Plot draws a glyph at a projected world point.
func (c *canvas) Plot(proj renderer.Projector, p mgl32.Vec3, glyph string, style printer) {
	x, y := proj.ToScreen(p)
	c.Set(int(x), int(y), glyph, style)
}

// FillRect fills [x0, x1) x [y0, y1), always covering at least one cell.
func (c *canvas) FillRect(x0, y0, x1, y1 int, glyph string, style printer) {
	x1 = max(x1, x0+1)
	y1 = max(y1, y0+1)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.Set(x, y, glyph, style)
		}
	}
}

// Text writes s starting at x, one cell per grapheme.
func (c *canvas) Text(x, y int, s string, style printer) {
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		c.Set(x, y, g.Str(), style)
		x++
	}
}

// Box draws a bordered, blank panel.
func (c *canvas) Box(x0, y0, w, h int, style printer) {
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			var glyph string
			switch {
			case (y == y0 || y == y0+h-1) && (x == x0 || x == x0+w-1):
				glyph = "+"
			case y == y0 || y == y0+h-1:
				glyph = "-"
			case x == x0 || x == x0+w-1:
				glyph = "|"
			default:
				c.Set(x, y, " ", nil)
				continue
			}
			c.Set(x, y, glyph, style)
		}
	}
}

// Lines renders each row, merging runs of the same style into one escape sequence.
func (c *canvas) Lines() []string {
	out := make([]string, c.h)
	var row, run strings.Builder
	for y := 0; y < c.h; y++ {
		row.Reset()
		run.Reset()
		var cur printer
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if cur == nil {
				row.WriteString(run.String())
			} else {
				row.WriteString(cur.Sprint(run.String()))
			}
			run.Reset()
		}
		for x := 0; x < c.w; x++ {
			cl := c.cells[y*c.w+x]
			if cl.style != cur {
				flush()
				cur = cl.style
			}
			run.WriteString(cl.glyph)
		}
		flush()
		out[y] = row.String()
	}
	return out
}

// Plain renders the canvas without any styling.
func (c *canvas) Plain() []string {
	out := make([]string, c.h)
	var row strings.Builder
	for y := 0; y < c.h; y++ {
		row.Reset()
		for x := 0; x < c.w; x++ {
			row.WriteString(c.cells[y*c.w+x].glyph)
		}
		out[y] = row.String()
	}
	return out
}
