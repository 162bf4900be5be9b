package reconcile

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// cachedIndex is a designer index together with its build time.
type cachedIndex struct {
	index *Index
	built time.Time
}

// IndexCache keeps built designer indices for a TTL. Indices are read-only
// once built, so one instance may be shared by concurrent reconciliations.
type IndexCache struct {
	ttl     time.Duration
	mu      sync.RWMutex
	entries map[string]*cachedIndex
	sf      singleflight.Group
	now     func() time.Time
}

// NewIndexCache creates a cache. A zero TTL disables caching.
func NewIndexCache(ttl time.Duration) *IndexCache {
	return &IndexCache{
		ttl:     ttl,
		entries: make(map[string]*cachedIndex),
		now:     time.Now,
	}
}

func (c *IndexCache) expired(e *cachedIndex) bool {
	if c.ttl == 0 {
		return true
	}
	return c.now().Sub(e.built) > c.ttl
}

// GetOrBuild returns the cached index for key, or calls build and stores the
// result if there is none or it has expired. Concurrent callers for the same
// key share one build.
func (c *IndexCache) GetOrBuild(key string, build func() (*Index, error)) (*Index, error) {
	if c.ttl == 0 {
		return build()
	}

	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()
	if exists && !c.expired(entry) {
		return entry.index, nil
	}

	result, err, _ := c.sf.Do(key, func() (interface{}, error) {
		// Another caller may have finished building while we waited.
		c.mu.RLock()
		entry, exists := c.entries[key]
		c.mu.RUnlock()
		if exists && !c.expired(entry) {
			return entry.index, nil
		}

		index, err := build()
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		for k, e := range c.entries {
			if c.expired(e) {
				delete(c.entries, k)
			}
		}
		c.entries[key] = &cachedIndex{index: index, built: c.now()}
		c.mu.Unlock()
		return index, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*Index), nil
}

// Invalidate drops the entry for key.
func (c *IndexCache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}
