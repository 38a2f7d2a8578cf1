// Package cache provides a small TTL cache handed explicitly to data-access
// collaborators that need one. The forecasting engine itself never caches;
// it always operates on the snapshot it is given.
package cache

import (
	"sync"
	"time"
)

// Options configures a Cache.
type Options struct {
	// TTL is how long an entry stays valid. Zero means entries never expire.
	TTL time.Duration

	// MaxEntries bounds the cache size; the oldest entry is evicted when the
	// bound is hit. Zero means unbounded.
	MaxEntries int
}

type entry[T any] struct {
	data      T
	storedAt  time.Time
	expiresAt time.Time
}

// Cache is a thread-safe string-keyed TTL cache.
type Cache[T any] struct {
	mu      sync.Mutex
	opts    Options
	entries map[string]entry[T]
	now     func() time.Time
}

func New[T any](opts Options) *Cache[T] {
	return &Cache[T]{
		opts:    opts,
		entries: make(map[string]entry[T]),
		now:     time.Now,
	}
}

// Get retrieves a value, reporting whether a live entry was found.
func (c *Cache[T]) Get(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T

	e, ok := c.entries[key]
	if !ok {
		return zero, false
	}

	if !e.expiresAt.IsZero() && c.now().After(e.expiresAt) {
		delete(c.entries, key)

		return zero, false
	}

	return e.data, true
}

// Set stores a value, evicting the oldest entry if the cache is full.
func (c *Cache[T]) Set(key string, data T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()

	if c.opts.MaxEntries > 0 && len(c.entries) >= c.opts.MaxEntries {
		if _, exists := c.entries[key]; !exists {
			c.evictOldestLocked()
		}
	}

	e := entry[T]{data: data, storedAt: now}
	if c.opts.TTL > 0 {
		e.expiresAt = now.Add(c.opts.TTL)
	}

	c.entries[key] = e
}

// Delete removes a key.
func (c *Cache[T]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
}

// Len returns the number of stored entries, expired or not.
func (c *Cache[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// CleanExpired drops expired entries and returns how many were removed.
func (c *Cache[T]) CleanExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0

	for key, e := range c.entries {
		if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
			delete(c.entries, key)

			removed++
		}
	}

	return removed
}

func (c *Cache[T]) evictOldestLocked() {
	var (
		oldestKey string
		oldestAt  time.Time
		found     bool
	)

	for key, e := range c.entries {
		if !found || e.storedAt.Before(oldestAt) {
			oldestKey = key
			oldestAt = e.storedAt
			found = true
		}
	}

	if found {
		delete(c.entries, oldestKey)
	}
}
