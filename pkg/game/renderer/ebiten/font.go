package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// loadFonts parses the embedded Go fonts.
func (e *EbitenRenderer) loadFonts() error {
	var err error
	if e.sansFontSource, err = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF)); err != nil {
		return fmt.Errorf("failed to load sans font: %w", err)
	}
	if e.sansBoldFontSource, err = text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF)); err != nil {
		return fmt.Errorf("failed to load bold font: %w", err)
	}
	if e.monoFontSource, err = text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF)); err != nil {
		return fmt.Errorf("failed to load mono font: %w", err)
	}
	return nil
}

// getUIFontSize scales the UI font with the zoom level, within readable bounds.
func (e *EbitenRenderer) getUIFontSize() float64 {
	size := baseFontSize * float64(e.scale) / defaultScale
	if size < 12 {
		size = 12
	}
	if size > 24 {
		size = 24
	}
	return size
}

// refreshFaces rebuilds the cached faces when the font size changed.
func (e *EbitenRenderer) refreshFaces() {
	size := e.getUIFontSize()
	e.fontMu.Lock()
	defer e.fontMu.Unlock()
	if e.cachedSansFace != nil && e.cachedFontSize == size {
		return
	}
	e.cachedFontSize = size
	e.cachedSansFace = &text.GoTextFace{Source: e.sansFontSource, Size: size}
	e.cachedSansBoldFace = &text.GoTextFace{Source: e.sansBoldFontSource, Size: size}
	e.cachedTitleFace = &text.GoTextFace{Source: e.sansBoldFontSource, Size: size + 4}
	e.cachedMonoFace = &text.GoTextFace{Source: e.monoFontSource, Size: size - 2}
}

func (e *EbitenRenderer) getSansFontFace() *text.GoTextFace {
	e.refreshFaces()
	return e.cachedSansFace
}

func (e *EbitenRenderer) getSansBoldFontFace() *text.GoTextFace {
	e.refreshFaces()
	return e.cachedSansBoldFace
}

// getTitleFontFace is bold and 4pt larger than the UI font, for panel titles.
func (e *EbitenRenderer) getTitleFontFace() *text.GoTextFace {
	e.refreshFaces()
	return e.cachedTitleFace
}

func (e *EbitenRenderer) getMonoFontFace() *text.GoTextFace {
	e.refreshFaces()
	return e.cachedMonoFace
}
