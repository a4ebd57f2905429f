// Package menu provides the in-world pause menu. Unlike a modal loop it never
// blocks: the selection lives on the session and each key press advances it.
package menu

import (
	"pixelportfolio/pkg/game/state"
)

// MenuItem represents a single item in a menu.
type MenuItem interface {
	// GetLabel returns the display label for this menu item.
	GetLabel() string
	// IsSelectable returns whether this item can be selected.
	IsSelectable() bool
	// GetHelpText returns optional help text for this item.
	GetHelpText() string
}

// MenuHandler supplies a menu's items and reacts to activation.
type MenuHandler interface {
	// GetMenuItems is called whenever the menu is drawn or navigated, so
	// labels can reflect the current preferences.
	GetMenuItems(g *state.Game) []MenuItem
	// OnActivate is called when an item is activated (e.g., Enter pressed).
	// Returns true if the menu should close, and any help text to display.
	OnActivate(g *state.Game, item MenuItem, index int) (shouldClose bool, helpText string)
	// GetTitle returns the menu title.
	GetTitle() string
	// GetInstructions returns the menu instructions.
	GetInstructions(selected MenuItem) string
}

// View is what a renderer needs to draw the menu for one frame.
type View struct {
	Title        string
	Instructions string
	Items        []MenuItem
	Selected     int
	HelpText     string
}

// Snapshot builds the current view of the menu for g.
func Snapshot(g *state.Game, h MenuHandler) View {
	items := h.GetMenuItems(g)
	selected := clampSelection(items, g.UI.MenuIndex)
	var sel MenuItem
	if selected >= 0 && selected < len(items) {
		sel = items[selected]
	}
	return View{
		Title:        h.GetTitle(),
		Instructions: h.GetInstructions(sel),
		Items:        items,
		Selected:     selected,
		HelpText:     g.UI.MenuHelp,
	}
}

// Next moves the selection to the next selectable item, wrapping to the first.
func Next(g *state.Game, h MenuHandler) {
	items := h.GetMenuItems(g)
	n := len(items)
	if n == 0 {
		return
	}
	cur := clampSelection(items, g.UI.MenuIndex)
	for step := 1; step <= n; step++ {
		i := (cur + step) % n
		if items[i].IsSelectable() {
			g.UI.MenuIndex = i
			g.UI.MenuHelp = ""
			return
		}
	}
}

// Prev moves the selection to the previous selectable item, wrapping to the last.
func Prev(g *state.Game, h MenuHandler) {
	items := h.GetMenuItems(g)
	n := len(items)
	if n == 0 {
		return
	}
	cur := clampSelection(items, g.UI.MenuIndex)
	for step := 1; step <= n; step++ {
		i := ((cur-step)%n + n) % n
		if items[i].IsSelectable() {
			g.UI.MenuIndex = i
			g.UI.MenuHelp = ""
			return
		}
	}
}

// Activate runs the selected item. Closing the menu resets the selection.
func Activate(g *state.Game, h MenuHandler) {
	items := h.GetMenuItems(g)
	selected := clampSelection(items, g.UI.MenuIndex)
	if selected < 0 || selected >= len(items) || !items[selected].IsSelectable() {
		return
	}
	shouldClose, helpText := h.OnActivate(g, items[selected], selected)
	g.UI.MenuHelp = helpText
	if shouldClose {
		Close(g)
	}
}

// Close hides the menu and forgets the selection.
func Close(g *state.Game) {
	g.Input.SetMenuOpen(false)
	g.UI.MenuIndex = 0
	g.UI.MenuHelp = ""
}

// clampSelection returns idx when it points at a selectable item, otherwise
// the first selectable one.
func clampSelection(items []MenuItem, idx int) int {
	if idx >= 0 && idx < len(items) && items[idx].IsSelectable() {
		return idx
	}
	for i, item := range items {
		if item.IsSelectable() {
			return i
		}
	}
	return 0
}
