package ebiten

import "image/color"

// palette is one theme's set of UI and ground colors.
type palette struct {
	background   color.RGBA
	ground       color.RGBA
	groundEdge   color.RGBA
	text         color.RGBA
	subtle       color.RGBA
	accent       color.RGBA
	panel        color.RGBA
	panelBorder  color.RGBA
	overlay      color.RGBA
	character    color.RGBA
	spotlight    color.RGBA
	radius       color.RGBA
	camera       color.RGBA
	trunk        color.RGBA
	loadingTrack color.RGBA
}

var lightPalette = palette{
	background:   color.RGBA{135, 206, 235, 255}, // Sky blue
	ground:       color.RGBA{124, 200, 100, 255}, // Grass
	groundEdge:   color.RGBA{90, 160, 70, 255},
	text:         color.RGBA{30, 30, 50, 255},
	subtle:       color.RGBA{90, 90, 120, 255},
	accent:       color.RGBA{108, 99, 255, 255}, // Home purple
	panel:        color.RGBA{250, 250, 255, 235},
	panelBorder:  color.RGBA{108, 99, 255, 255},
	overlay:      color.RGBA{0, 0, 0, 110},
	character:    color.RGBA{255, 99, 71, 255},
	spotlight:    color.RGBA{255, 255, 200, 60},
	radius:       color.RGBA{255, 255, 255, 160},
	camera:       color.RGBA{40, 40, 60, 200},
	trunk:        color.RGBA{139, 69, 19, 255},
	loadingTrack: color.RGBA{200, 200, 220, 255},
}

var darkPalette = palette{
	background:   color.RGBA{15, 15, 30, 255},
	ground:       color.RGBA{40, 70, 45, 255},
	groundEdge:   color.RGBA{25, 45, 30, 255},
	text:         color.RGBA{200, 210, 245, 255}, // Soft off-white with blue-purple tint
	subtle:       color.RGBA{120, 130, 180, 255},
	accent:       color.RGBA{180, 150, 250, 255},
	panel:        color.RGBA{30, 30, 50, 230},
	panelBorder:  color.RGBA{180, 150, 250, 255},
	overlay:      color.RGBA{0, 0, 0, 150},
	character:    color.RGBA{255, 130, 100, 255},
	spotlight:    color.RGBA{255, 255, 200, 45},
	radius:       color.RGBA{255, 255, 255, 110},
	camera:       color.RGBA{200, 200, 230, 180},
	trunk:        color.RGBA{110, 60, 20, 255},
	loadingTrack: color.RGBA{60, 60, 80, 255},
}

func paletteFor(dark bool) *palette {
	if dark {
		return &darkPalette
	}
	return &lightPalette
}

// Zoom constraints, in pixels per world unit.
const (
	defaultScale = 12
	minScale     = 4
	maxScale     = 40
	scaleStep    = 2
)

const (
	baseFontSize     = 16.0
	characterRadius  = 0.6
	flowerRadius     = 0.25
	panelMargin      = 40
	panelPadding     = 20
	panelCorner      = 10
	defaultWindowW   = 1280
	defaultWindowH   = 800
	loadingBarWidth  = 320
	loadingBarHeight = 10
)
