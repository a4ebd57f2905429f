// Package world provides engine-level containers for placed world objects.
package world

import (
	"fmt"

	"github.com/elliotchance/orderedmap/v2"
)

// Registry is a name-keyed collection that remembers registration order.
// Iteration always follows that order, which callers rely on when a scan
// should stop at the first match.
type Registry[V any] struct {
	entries *orderedmap.OrderedMap[string, V]
}

// NewRegistry creates an empty registry.
func NewRegistry[V any]() *Registry[V] {
	return &Registry[V]{
		entries: orderedmap.NewOrderedMap[string, V](),
	}
}

// Register adds an entry. Names are unique; registering a name twice is an error.
func (r *Registry[V]) Register(name string, v V) error {
	if _, exists := r.entries.Get(name); exists {
		return fmt.Errorf("duplicate registration %q", name)
	}
	r.entries.Set(name, v)
	return nil
}

// Get looks an entry up by name.
func (r *Registry[V]) Get(name string) (V, bool) {
	return r.entries.Get(name)
}

// Len returns the number of entries.
func (r *Registry[V]) Len() int {
	return r.entries.Len()
}

// Names returns entry names in registration order.
func (r *Registry[V]) Names() []string {
	return r.entries.Keys()
}

// Each visits entries in registration order until fn returns false.
func (r *Registry[V]) Each(fn func(name string, v V) bool) {
	for el := r.entries.Front(); el != nil; el = el.Next() {
		if !fn(el.Key, el.Value) {
			return
		}
	}
}

// Values returns the entries in registration order.
func (r *Registry[V]) Values() []V {
	out := make([]V, 0, r.entries.Len())
	r.Each(func(_ string, v V) bool {
		out = append(out, v)
		return true
	})
	return out
}
