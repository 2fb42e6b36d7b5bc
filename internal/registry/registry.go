// Package registry provides named registries for pluggable pieces such as
// maps and themes. Packages register their entries in init() functions,
// allowing the platform to discover them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps names to values of one kind. Names keep their registration
// order, which is the order menus and listings present them in.
type Registry[T any] struct {
	kind  string
	mu    sync.RWMutex
	items map[string]T
	order []string
}

// New creates an empty registry. kind names the registered things in error
// messages (e.g. "map", "theme").
func New[T any](kind string) *Registry[T] {
	return &Registry[T]{
		kind:  kind,
		items: make(map[string]T),
	}
}

// Register adds an entry.
// Panics if an entry with the same name is already registered.
func (r *Registry[T]) Register(name string, v T) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[name]; exists {
		panic(fmt.Sprintf("registry: %s %q already registered", r.kind, name))
	}

	r.items[name] = v
	r.order = append(r.order, name)
}

// Get returns the entry registered under name.
// Returns an error if the name is not registered.
func (r *Registry[T]) Get(name string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.items[name]
	if !ok {
		var zero T
		return zero, fmt.Errorf("registry: unknown %s %q", r.kind, name)
	}
	return v, nil
}

// Exists checks if an entry with the given name is registered.
func (r *Registry[T]) Exists(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.items[name]
	return ok
}

// Names returns all names in registration order.
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Sorted returns all names in lexical order.
func (r *Registry[T]) Sorted() []string {
	names := r.Names()
	sort.Strings(names)
	return names
}

// At returns the i-th registered entry, wrapping i into range. It is used
// to pick an entry by random index.
func (r *Registry[T]) At(i int) (string, T) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.order) == 0 {
		var zero T
		return "", zero
	}
	i %= len(r.order)
	if i < 0 {
		i += len(r.order)
	}
	name := r.order[i]
	return name, r.items[name]
}

// Len returns the number of registered entries.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.order)
}
