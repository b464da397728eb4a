// Package cache provides the read-through cache behind the menu listing.
// Every mutating repository call invalidates it before returning, so a stale
// listing after a write is a bug, not a tuning concern.
package cache

import "sync"

// List memoizes one listing. The zero value is empty and ready to use.
type List[T any] struct {
	mu    sync.Mutex
	items []T
	valid bool
}

// Get returns the cached listing if one is present.
func (c *List[T]) Get() ([]T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.valid {
		return nil, false
	}
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out, true
}

// Put replaces the cached listing.
func (c *List[T]) Put(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make([]T, len(items))
	copy(c.items, items)
	c.valid = true
}

// InvalidateAll drops the cached listing.
func (c *List[T]) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.valid = false
}
