package gameplay

import (
	"go.uber.org/zap"

	"pixelportfolio/pkg/engine/geom"
	"pixelportfolio/pkg/game/content"
	"pixelportfolio/pkg/game/slideshow"
	"pixelportfolio/pkg/game/state"
	"pixelportfolio/pkg/game/world"
)

// DetectProximity recomputes the current interactable from scratch.
//
// The previous highlight is cleared first, then structures are scanned in
// registration order and the first one whose planar distance is under its
// radius wins, even when a later structure is nearer.
func DetectProximity(g *state.Game) {
	if prev := g.Interaction.Interactable; prev != nil {
		prev.ClearHighlight()
	}
	g.Interaction = state.Interaction{}

	reg := g.Structures()
	if reg == nil || g.Character == nil {
		g.UI.HintVisible = false
		return
	}

	pos := g.Character.Position
	reg.Each(func(_ string, st *world.Structure) bool {
		if geom.PlanarDistance(pos, st.Position) < st.Radius {
			g.Interaction.Interactable = st
			return false
		}
		return true
	})

	if st := g.Interaction.Interactable; st != nil {
		st.Highlight(g.Cfg.Interaction.HighlightColor)
		g.Interaction.CanInteract = true
	}
	g.UI.HintVisible = g.Interaction.CanInteract
}

// processInteract consumes the interact edge and opens the current
// interactable's page when one is in range. Without one it is a no-op.
func processInteract(g *state.Game) {
	if !g.Input.ConsumeInteract() {
		return
	}
	if g.Interaction.CanInteract && g.Interaction.Interactable != nil {
		DispatchContent(g, g.Interaction.Interactable)
	}
}

// DispatchContent shows the page behind a structure. Unknown content keys show
// the "Content Not Found" placeholder naming the structure.
func DispatchContent(g *state.Game, st *world.Structure) {
	if st == nil {
		return
	}
	html, found := content.Placeholder(st.Name), false
	var slides []content.Slide
	if g.Content != nil {
		html, found = g.Content.Resolve(st.ContentKey, st.Name)
		if page, ok := g.Content.Lookup(st.ContentKey); ok {
			slides = page.Slides
		}
	}

	g.UI.PageTitle = st.Name
	g.UI.PageHTML = html
	g.UI.PageFound = found
	g.UI.ContentVisible = true
	g.Slideshow = slideshow.New(slides)

	if !found {
		g.Log.Warn("no content for building", zap.String("building", st.Name), zap.String("key", st.ContentKey))
		return
	}
	g.Log.Info("page opened", zap.String("building", st.Name), zap.String("key", st.ContentKey))
}

// ClosePage hides the content panel.
func ClosePage(g *state.Game) {
	if !g.UI.ContentVisible {
		return
	}
	g.UI.ContentVisible = false
	g.Slideshow.ExitFullscreen()
}
