package cache

import "sync"

// Map is an append-only concurrent map. Entries are never evicted or
// refreshed: once a key is stored its value wins for the process lifetime.
// Writers racing on the same key are tolerated, the last one wins.
type Map[K comparable, V any] struct {
	mu    sync.RWMutex
	items map[K]V
}

// New creates an empty Map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		items: make(map[K]V),
	}
}

// Get returns the value stored for key, if any.
func (c *Map[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.items[key]
	return v, ok
}

// Set stores the value for key.
func (c *Map[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = value
}

// Len returns the number of stored entries.
func (c *Map[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
