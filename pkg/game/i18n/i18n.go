// Package i18n serves the UI strings from the embedded gettext catalogues.
package i18n

import (
	"embed"
	"fmt"
	"sync"

	"github.com/leonelquinteros/gotext"
)

//go:embed locales/*.po
var locales embed.FS

// DefaultLanguage is the catalogue used when none is selected.
const DefaultLanguage = "en"

var (
	mu      sync.RWMutex
	catalog *gotext.Po
)

// Load selects the catalogue for lang.
func Load(lang string) error {
	data, err := locales.ReadFile("locales/" + lang + ".po")
	if err != nil {
		return fmt.Errorf("no catalogue for language %q: %w", lang, err)
	}
	po := gotext.NewPo()
	po.Parse(data)

	mu.Lock()
	catalog = po
	mu.Unlock()
	return nil
}

// T translates a message key. Unknown keys come back unchanged.
func T(key string) string {
	mu.RLock()
	po := catalog
	mu.RUnlock()

	if po == nil {
		if err := Load(DefaultLanguage); err != nil {
			return key
		}
		mu.RLock()
		po = catalog
		mu.RUnlock()
	}
	// No vars: gotext returns the message verbatim, without formatting.
	return po.Get(key, []any{}...)
}

// Tf translates key and formats args into the translated message.
func Tf(key string, args ...any) string {
	msg := T(key)
	return fmt.Sprintf(msg, args...)
}

// OnOff translates a flag as ON or OFF.
func OnOff(v bool) string {
	if v {
		return T("ON")
	}
	return T("OFF")
}
