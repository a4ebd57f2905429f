package devtools

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"pixelportfolio/pkg/game/gameplay"
	"pixelportfolio/pkg/game/renderer"
	"pixelportfolio/pkg/game/state"
	"pixelportfolio/pkg/game/world"
)

// Screenshot viewport, in cells. Each cell is half a world unit wide.
const (
	screenshotCols = 96
	screenshotRows = 40
)

type shotCell struct {
	glyph string
	color world.Color
}

// SaveScreenshotHTML saves a top-down view around the camera's aim point as
// an HTML file in dir and returns its path.
func SaveScreenshotHTML(g *state.Game, dir string) (string, error) {
	if g.Scene == nil {
		return "", fmt.Errorf("no scene")
	}
	timestamp := time.Now().Format("20060102-150405")
	filename := filepath.Join(dir, fmt.Sprintf("screenshot-%s.html", timestamp))

	grid := screenshotGrid(g)

	var out strings.Builder
	out.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Portfolio - Screenshot</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header { color: #bb86fc; font-size: 18px; margin-bottom: 10px; }
        .hint { color: #888; margin-bottom: 20px; }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
        }
        .map-row { white-space: pre; line-height: 1.2; font-size: 16px; }
    </style>
</head>
<body>
`)

	out.WriteString(fmt.Sprintf(`    <div class="header">Seed %d, tick %d</div>`+"\n", g.Scene.Seed, g.Ticks))
	if hint := gameplay.HintText(g); len(hint) > 0 {
		out.WriteString(fmt.Sprintf(`    <div class="hint">%s - %s</div>`+"\n", html.EscapeString(hint[0]), html.EscapeString(hint[1])))
	}

	out.WriteString(`    <div class="map-container">` + "\n")
	for _, row := range grid {
		out.WriteString(`        <div class="map-row">`)
		for _, c := range row {
			if c.glyph == " " {
				out.WriteString(" ")
				continue
			}
			out.WriteString(fmt.Sprintf(`<span style="color:%s">%s</span>`, c.color.Hex(), html.EscapeString(c.glyph)))
		}
		out.WriteString("</div>\n")
	}
	out.WriteString(`    </div>` + "\n")
	out.WriteString(`</body>
</html>
`)

	if err := os.WriteFile(filename, []byte(out.String()), 0o644); err != nil {
		return "", fmt.Errorf("failed to write screenshot: %w", err)
	}
	return filename, nil
}

// screenshotGrid rasterises the scene onto a fixed-size grid. Later layers
// overwrite earlier ones: ground, paths, scenery, buildings, character.
func screenshotGrid(g *state.Game) [][]shotCell {
	proj := renderer.Projector{
		Center: g.Camera.Target,
		ScaleX: 2,
		ScaleY: 1,
		Width:  screenshotCols,
		Height: screenshotRows,
	}
	grid := make([][]shotCell, screenshotRows)
	for y := range grid {
		grid[y] = make([]shotCell, screenshotCols)
		for x := range grid[y] {
			grid[y][x] = shotCell{glyph: " "}
		}
	}
	put := func(p mgl32.Vec3, glyph string, c world.Color) {
		x, y := proj.ToScreen(p)
		xi, yi := int(x), int(y)
		if x < 0 || y < 0 || xi >= screenshotCols || yi >= screenshotRows {
			return
		}
		grid[yi][xi] = shotCell{glyph: glyph, color: c}
	}

	half := g.Scene.GroundSize / 2
	for y := 0; y < screenshotRows; y++ {
		for x := 0; x < screenshotCols; x++ {
			p := proj.ToWorld(float32(x)+0.5, float32(y)+0.5)
			if p.X() >= -half && p.X() <= half && p.Z() >= -half && p.Z() <= half {
				grid[y][x] = shotCell{glyph: ".", color: 0x3A7D44}
			}
		}
	}
	for _, seg := range g.Scene.Paths {
		put(seg.Position, "=", seg.Color)
	}
	for _, d := range g.Scene.Decorations {
		glyph := "*"
		switch d.Kind {
		case world.DecorationTree:
			glyph = "T"
		case world.DecorationRock:
			glyph = "o"
		}
		put(d.Position, glyph, d.Color)
	}
	g.Structures().Each(func(_ string, st *world.Structure) bool {
		hs := st.Size.Mul(0.5)
		for z := -hs.Z(); z <= hs.Z(); z += 1 / proj.ScaleY {
			for x := -hs.X(); x <= hs.X(); x += 1 / proj.ScaleX {
				put(st.Position.Add(mgl32.Vec3{x, 0, z}), "#", st.Color)
			}
		}
		return true
	})
	put(g.Character.Position, "@", 0xFF0000)
	return grid
}
