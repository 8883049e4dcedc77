// Package recheck implements the recheck cache: the modification time at which
// each file last passed, persisted across sessions through a ports.CacheStore.
package recheck

import (
	"errors"

	"go.trai.ch/blackcheck/internal/core/domain"
	"go.trai.ch/blackcheck/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RecheckCache = (*Cache)(nil)

// Cache implements ports.RecheckCache.
//
// It is not safe for concurrent use. Save replaces the stored mapping
// wholesale, so concurrent sessions sharing a cache directory keep only the
// last writer's entries.
type Cache struct {
	store    ports.CacheStore
	cacheDir string
	mtimes   map[string]int64
}

// New creates a cache persisted in cacheDir through store.
// A nil store makes the cache a no-op: nothing is ever fresh and nothing is saved.
func New(store ports.CacheStore, cacheDir string) *Cache {
	return &Cache{
		store:    store,
		cacheDir: cacheDir,
		mtimes:   make(map[string]int64),
	}
}

// Disabled reports whether the cache has no backing store.
func (c *Cache) Disabled() bool {
	return c.store == nil
}

// Load replaces the in-memory entries with the persisted ones.
// A stored value that cannot be decoded is treated as empty and the next Save
// overwrites it. Any other error disables the cache. Both are returned for reporting.
func (c *Cache) Load() error {
	if c.store == nil {
		return nil
	}

	mtimes := make(map[string]int64)
	if _, err := c.store.Get(c.cacheDir, domain.MtimesCacheKey, &mtimes); err != nil {
		if errors.Is(err, domain.ErrCacheUnmarshalFailed) {
			c.mtimes = make(map[string]int64)
			return zerr.Wrap(err, "recheck cache reset")
		}
		c.store = nil
		return zerr.Wrap(err, "recheck cache disabled")
	}
	c.mtimes = mtimes
	return nil
}

// IsFresh reports whether path last passed at exactly mtime.
func (c *Cache) IsFresh(path string, mtime int64) bool {
	if c.store == nil {
		return false
	}
	old, ok := c.mtimes[path]
	return ok && old == mtime
}

// Record stores mtime as the last passing modification time of path.
func (c *Cache) Record(path string, mtime int64) {
	if c.store == nil {
		return
	}
	c.mtimes[path] = mtime
}

// Save persists the in-memory entries, replacing the stored mapping.
func (c *Cache) Save() error {
	if c.store == nil {
		return nil
	}
	if err := c.store.Set(c.cacheDir, domain.MtimesCacheKey, c.mtimes); err != nil {
		return zerr.Wrap(err, "failed to save recheck cache")
	}
	return nil
}

// Len returns the number of entries held in memory.
func (c *Cache) Len() int {
	return len(c.mtimes)
}
