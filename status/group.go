package status

import (
	"sort"
	"sync"
)

// Group is a thread-safe registry for stats of type T
// Registration uses mutex; cached pointer access is lock-free
type Group[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

// NewGroup creates an initialized Group
func NewGroup[T any]() *Group[T] {
	return &Group[T]{
		items: make(map[string]*T),
	}
}

// Get returns the stat pointer for name, creating if absent
// First call for a name allocates; subsequent calls return the cached pointer
func (g *Group[T]) Get(name string) *T {
	g.mu.RLock()
	if ptr, ok := g.items[name]; ok {
		g.mu.RUnlock()
		return ptr
	}
	g.mu.RUnlock()

	g.mu.Lock()
	defer g.mu.Unlock()

	// Double-check after acquiring write lock
	if ptr, ok := g.items[name]; ok {
		return ptr
	}

	ptr := new(T)
	g.items[name] = ptr
	return ptr
}

// Has returns true if the name exists
func (g *Group[T]) Has(name string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.items[name]
	return ok
}

// Range iterates over all stats in sorted name order
// Callback receives the pointer; caller reads the atomic value from it
func (g *Group[T]) Range(fn func(name string, ptr *T)) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if len(g.items) == 0 {
		return
	}

	names := make([]string, 0, len(g.items))
	for n := range g.items {
		names = append(names, n)
	}
	sort.Strings(names)

	for _, n := range names {
		fn(n, g.items[n])
	}
}

// Count returns the number of registered stats
func (g *Group[T]) Count() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.items)
}
