package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Theme names.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Preferences are the visitor settings that survive restarts.
type Preferences struct {
	Theme string `yaml:"theme"`
	Music bool   `yaml:"music"`
	Sound bool   `yaml:"sound"`

	path string
}

// DefaultPreferences returns a light theme with music and sound on.
func DefaultPreferences() *Preferences {
	return &Preferences{
		Theme: ThemeLight,
		Music: true,
		Sound: true,
	}
}

// DefaultPreferencesPath returns the per-user preferences file location.
func DefaultPreferencesPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "pixelportfolio", "preferences.yaml")
}

// LoadPreferences reads preferences from path. A missing file yields defaults
// bound to path, so the first Save creates it. An empty path keeps preferences
// in memory only.
func LoadPreferences(path string) (*Preferences, error) {
	p := DefaultPreferences()
	p.path = path
	if path == "" {
		return p, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return p, nil
		}
		return nil, fmt.Errorf("failed to read preferences: %w", err)
	}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("failed to parse preferences: %w", err)
	}
	if p.Theme != ThemeDark {
		p.Theme = ThemeLight
	}
	return p, nil
}

// Path returns the file the preferences persist to ("" when in-memory).
func (p *Preferences) Path() string {
	return p.path
}

// Save writes the preferences back to their file. In-memory preferences are a no-op.
func (p *Preferences) Save() error {
	if p.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return fmt.Errorf("failed to create preferences directory: %w", err)
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}
	if err := os.WriteFile(p.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	return nil
}

// ToggleTheme flips between light and dark, persists the choice and returns it.
func (p *Preferences) ToggleTheme() (string, error) {
	if p.Theme == ThemeDark {
		p.Theme = ThemeLight
	} else {
		p.Theme = ThemeDark
	}
	return p.Theme, p.Save()
}

// ToggleMusic flips the music flag and persists it.
func (p *Preferences) ToggleMusic() (bool, error) {
	p.Music = !p.Music
	return p.Music, p.Save()
}

// ToggleSound flips the sound flag and persists it.
func (p *Preferences) ToggleSound() (bool, error) {
	p.Sound = !p.Sound
	return p.Sound, p.Save()
}

// Dark reports whether the dark theme is active.
func (p *Preferences) Dark() bool {
	return p.Theme == ThemeDark
}
