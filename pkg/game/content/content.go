// Package content is the static page store behind each building.
package content

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/elliotchance/orderedmap/v2"
	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultCatalog []byte

// placeholderFormat is shown when a building's content key has no page.
const placeholderFormat = `<div class="portfolio-content"><h2>Content Not Found</h2><p>The content for '%s' could not be loaded.</p></div>`

// Slide is one image of an in-page slideshow.
type Slide struct {
	Src string `yaml:"src" json:"src"`
	Alt string `yaml:"alt" json:"alt"`
}

// Page is the markup shown for one content key.
type Page struct {
	Key    string  `yaml:"key"`
	HTML   string  `yaml:"html"`
	Slides []Slide `yaml:"slides,omitempty"`
}

type catalog struct {
	Pages []Page `yaml:"pages"`
}

// Store maps content keys to pages. It is filled once at start-up and only
// read afterwards, so it can be shared between sessions.
type Store struct {
	pages *orderedmap.OrderedMap[string, Page]
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{pages: orderedmap.NewOrderedMap[string, Page]()}
}

// Add registers a page. Keys are unique.
func (s *Store) Add(p Page) error {
	if p.Key == "" {
		return fmt.Errorf("page has no key")
	}
	if _, exists := s.pages.Get(p.Key); exists {
		return fmt.Errorf("duplicate page key %q", p.Key)
	}
	s.pages.Set(p.Key, p)
	return nil
}

// Lookup returns the page for key.
func (s *Store) Lookup(key string) (Page, bool) {
	return s.pages.Get(key)
}

// Keys lists content keys in catalogue order.
func (s *Store) Keys() []string {
	return s.pages.Keys()
}

// Len returns the number of pages.
func (s *Store) Len() int {
	return s.pages.Len()
}

// Resolve returns the stored markup for key, unmodified, or the "Content Not
// Found" placeholder naming displayName when the key is unknown.
func (s *Store) Resolve(key, displayName string) (html string, found bool) {
	if p, ok := s.pages.Get(key); ok {
		return p.HTML, true
	}
	return Placeholder(displayName), false
}

// Placeholder renders the missing-content markup for a building name.
func Placeholder(displayName string) string {
	return fmt.Sprintf(placeholderFormat, displayName)
}

// Parse reads a YAML catalogue.
func Parse(r io.Reader) (*Store, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read content catalogue: %w", err)
	}
	return ParseBytes(data)
}

// LoadFile reads a catalogue from disk.
func LoadFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open content catalogue: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Default returns the built-in portfolio pages.
func Default() (*Store, error) {
	return ParseBytes(defaultCatalog)
}

// ParseBytes is Parse over an in-memory document.
func ParseBytes(data []byte) (*Store, error) {
	var c catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse content catalogue: %w", err)
	}
	s := NewStore()
	for _, p := range c.Pages {
		if err := s.Add(p); err != nil {
			return nil, err
		}
	}
	return s, nil
}
