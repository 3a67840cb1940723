// Package cache holds computed view payloads keyed by a logical path,
// so the serving layer can reuse them until a mutation marks the path
// stale. Revalidation drops the entry; the next read recomputes it.
package cache

import "sync"

type PathCache struct {
	mu      sync.RWMutex
	entries map[string]any
}

func New() *PathCache {
	return &PathCache{entries: make(map[string]any)}
}

// Get returns the cached payload for path, if any.
func (c *PathCache) Get(path string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[path]
	return v, ok
}

// Put stores the payload for path, replacing any previous value.
func (c *PathCache) Put(path string, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[path] = v
}

// Revalidate marks the cached output for path stale by dropping it.
func (c *PathCache) Revalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, path)
}

// Len reports the number of live entries, mainly for tests and health output.
func (c *PathCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
