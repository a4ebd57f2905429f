package gameplay

import (
	"pixelportfolio/pkg/game/i18n"
	"pixelportfolio/pkg/game/state"
)

// HintText returns the interaction hint lines to show, or nil when the hint is hidden.
func HintText(g *state.Game) []string {
	if !g.UI.HintVisible || g.Interaction.Interactable == nil {
		return nil
	}
	st := g.Interaction.Interactable
	return []string{
		i18n.T("HINT_INTERACT"),
		i18n.Tf("HINT_BUILDING", st.Name, st.Description),
	}
}
