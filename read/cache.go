// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package read

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache memoizes Read-node construction by media-reference identity, so
// the graph compiler can rebuild a track on every render call without
// re-opening or re-decoding the same media reference twice. It is safe
// for concurrent use by multiple goroutines.
type Cache struct {
	mu    sync.Mutex
	inner *lru.Cache[string, Node]
}

// NewCache creates a Cache holding at most capacity entries, evicting
// the least-recently-used Read node once full.
func NewCache(capacity int) *Cache {
	inner, err := lru.New[string, Node](capacity)
	if err != nil {
		// Only returned for capacity <= 0; fall back to a minimally
		// useful single-entry cache rather than propagating a
		// construction-time error through every graph-compiler caller.
		inner, _ = lru.New[string, Node](1)
	}
	return &Cache{inner: inner}
}

// GetOrCreate returns the cached Read node for identity, calling create
// to build and cache one if absent.
func (c *Cache) GetOrCreate(identity string, create func() (Node, error)) (Node, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.inner.Get(identity); ok {
		return n, nil
	}
	n, err := create()
	if err != nil {
		return nil, err
	}
	c.inner.Add(identity, n)
	return n, nil
}

// Purge evicts every cached Read node.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inner.Purge()
}

// Len reports the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.Len()
}
