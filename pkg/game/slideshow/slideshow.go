// Package slideshow steps through the images of a content page, with an
// optional fullscreen overlay.
package slideshow

import (
	"pixelportfolio/pkg/game/content"
)

// Slideshow is the state of one page's image carousel.
type Slideshow struct {
	slides     []content.Slide
	index      int
	fullscreen bool
}

// New starts a slideshow on its first slide, not fullscreen.
func New(slides []content.Slide) *Slideshow {
	return &Slideshow{slides: slides}
}

// Len returns the number of slides.
func (s *Slideshow) Len() int {
	return len(s.slides)
}

// Index returns the current slide index.
func (s *Slideshow) Index() int {
	return s.index
}

// Current returns the slide on display; ok is false for an empty slideshow.
func (s *Slideshow) Current() (slide content.Slide, ok bool) {
	if len(s.slides) == 0 {
		return content.Slide{}, false
	}
	return s.slides[s.index], true
}

// Step moves n slides forward (negative n moves back), wrapping at both ends.
func (s *Slideshow) Step(n int) {
	count := len(s.slides)
	if count == 0 {
		return
	}
	s.index = ((s.index+n)%count + count) % count
}

// Next advances one slide, wrapping from the last to the first.
func (s *Slideshow) Next() {
	s.Step(1)
}

// Prev goes back one slide, wrapping from the first to the last.
func (s *Slideshow) Prev() {
	s.Step(-1)
}

// Show jumps to slide n, wrapping out-of-range values.
func (s *Slideshow) Show(n int) {
	s.index = 0
	s.Step(n)
}

// Fullscreen reports whether the overlay is showing.
func (s *Slideshow) Fullscreen() bool {
	return s.fullscreen
}

// EnterFullscreen opens the overlay on the current slide. Empty slideshows stay windowed.
func (s *Slideshow) EnterFullscreen() {
	if len(s.slides) == 0 {
		return
	}
	s.fullscreen = true
}

// ExitFullscreen closes the overlay, keeping the current slide.
func (s *Slideshow) ExitFullscreen() {
	s.fullscreen = false
}

// ToggleFullscreen flips the overlay and returns the new state.
func (s *Slideshow) ToggleFullscreen() bool {
	if s.fullscreen {
		s.ExitFullscreen()
	} else {
		s.EnterFullscreen()
	}
	return s.fullscreen
}
