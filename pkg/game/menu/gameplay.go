package menu

import (
	"go.uber.org/zap"

	"pixelportfolio/pkg/game/config"
	"pixelportfolio/pkg/game/i18n"
	"pixelportfolio/pkg/game/state"
)

// GameplayMenuAction represents the action type for gameplay menu items.
type GameplayMenuAction int

const (
	GameplayMenuActionResume GameplayMenuAction = iota
	GameplayMenuActionMusic
	GameplayMenuActionSound
	GameplayMenuActionTheme
)

// GameplayMenuItem represents a menu item in the gameplay menu.
type GameplayMenuItem struct {
	Label  string
	Action GameplayMenuAction
}

// GetLabel returns the display label for this menu item.
func (m *GameplayMenuItem) GetLabel() string {
	return m.Label
}

// IsSelectable returns whether this item can be selected.
func (m *GameplayMenuItem) IsSelectable() bool {
	return true
}

// GetHelpText returns help text for this menu item.
func (m *GameplayMenuItem) GetHelpText() string {
	switch m.Action {
	case GameplayMenuActionResume:
		return i18n.T("MENU_RESUME_HELP")
	case GameplayMenuActionMusic:
		return i18n.T("MENU_MUSIC_HELP")
	case GameplayMenuActionSound:
		return i18n.T("MENU_SOUND_HELP")
	case GameplayMenuActionTheme:
		return i18n.T("MENU_THEME_HELP")
	default:
		return ""
	}
}

// GameplayMenuHandler handles the pause menu shown on Escape.
type GameplayMenuHandler struct{}

// NewGameplayMenuHandler creates a new gameplay menu handler.
func NewGameplayMenuHandler() *GameplayMenuHandler {
	return &GameplayMenuHandler{}
}

// GetTitle returns the menu title.
func (h *GameplayMenuHandler) GetTitle() string {
	return i18n.T("MENU_TITLE")
}

// GetInstructions returns the menu instructions.
func (h *GameplayMenuHandler) GetInstructions(selected MenuItem) string {
	if selected != nil {
		return i18n.T("MENU_INSTRUCTIONS") + " - " + selected.GetHelpText()
	}
	return i18n.T("MENU_INSTRUCTIONS")
}

// GetMenuItems returns the menu items, labelled with the current preferences.
func (h *GameplayMenuHandler) GetMenuItems(g *state.Game) []MenuItem {
	return []MenuItem{
		&GameplayMenuItem{Label: i18n.T("MENU_RESUME"), Action: GameplayMenuActionResume},
		&GameplayMenuItem{Label: i18n.Tf("MENU_MUSIC", i18n.OnOff(g.Prefs.Music)), Action: GameplayMenuActionMusic},
		&GameplayMenuItem{Label: i18n.Tf("MENU_SOUND", i18n.OnOff(g.Prefs.Sound)), Action: GameplayMenuActionSound},
		&GameplayMenuItem{Label: i18n.Tf("MENU_THEME", ThemeLabel(g.Prefs.Theme)), Action: GameplayMenuActionTheme},
	}
}

// OnActivate runs the selected entry. Only Resume closes the menu.
func (h *GameplayMenuHandler) OnActivate(g *state.Game, item MenuItem, index int) (shouldClose bool, helpText string) {
	gameplayItem, ok := item.(*GameplayMenuItem)
	if !ok {
		return false, ""
	}
	switch gameplayItem.Action {
	case GameplayMenuActionResume:
		return true, ""
	case GameplayMenuActionMusic:
		ToggleMusic(g)
	case GameplayMenuActionSound:
		ToggleSound(g)
	case GameplayMenuActionTheme:
		ToggleTheme(g)
	}
	return false, gameplayItem.GetHelpText()
}

// ThemeLabel translates a theme name for display.
func ThemeLabel(theme string) string {
	if theme == config.ThemeDark {
		return i18n.T("THEME_DARK")
	}
	return i18n.T("THEME_LIGHT")
}

// ToggleMusic flips the music preference. A failed save keeps the new value
// for this session and is only logged.
func ToggleMusic(g *state.Game) {
	on, err := g.Prefs.ToggleMusic()
	if err != nil {
		g.Log.Warn("could not save preferences", zap.Error(err))
	}
	g.Log.Debug("music toggled", zap.Bool("on", on))
}

// ToggleSound flips the sound preference.
func ToggleSound(g *state.Game) {
	on, err := g.Prefs.ToggleSound()
	if err != nil {
		g.Log.Warn("could not save preferences", zap.Error(err))
	}
	g.Log.Debug("sound toggled", zap.Bool("on", on))
}

// ToggleTheme switches between the light and dark theme.
func ToggleTheme(g *state.Game) {
	theme, err := g.Prefs.ToggleTheme()
	if err != nil {
		g.Log.Warn("could not save preferences", zap.Error(err))
	}
	g.Log.Info("theme changed", zap.String("theme", theme))
}
