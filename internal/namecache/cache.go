// Package namecache caches the case-folded form of symbolic content names.
//
// Patch directives compare names case-insensitively. Names are folded with
// golang.org/x/text/cases, which handles non-ASCII names the way the engine's
// ASCII compare handles plain ones; the fold result is cached in an LRU so
// repeated references to the same name do not re-run the folder.
//
// Concurrency: the underlying cache is safe for concurrent use. A Caser is
// not, so each miss builds its own.
package namecache

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/text/cases"
)

// defaultCapacity is the default maximum number of entries in the cache.
const defaultCapacity = 4096

// foldCache maps raw names to their folded form.
type foldCache struct {
	mu    sync.RWMutex
	cache *lru.Cache[string, string] // nil when caching is disabled
}

// newCache creates a fold cache with the given capacity.
// A capacity of 0 disables caching.
func newCache(capacity int) *foldCache {
	c := &foldCache{}
	c.setCapacity(capacity)
	return c
}

func (c *foldCache) fold(name string) string {
	c.mu.RLock()
	cache := c.cache
	c.mu.RUnlock()

	if cache != nil {
		if folded, ok := cache.Get(name); ok {
			return folded
		}
	}

	folded := cases.Fold().String(name)
	if cache != nil {
		cache.Add(name, folded)
	}
	return folded
}

// setCapacity changes the cache capacity. If the new capacity is smaller,
// excess entries are evicted. A capacity of 0 disables caching and drops
// all entries.
func (c *foldCache) setCapacity(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n <= 0 {
		c.cache = nil
		return
	}
	if c.cache != nil {
		c.cache.Resize(n)
		return
	}
	// lru.New only fails for non-positive sizes.
	c.cache, _ = lru.New[string, string](n)
}

func (c *foldCache) reset() {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.cache != nil {
		c.cache.Purge()
	}
}

func (c *foldCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.cache == nil {
		return 0
	}
	return c.cache.Len()
}

// global is the package-level singleton cache.
var global = newCache(defaultCapacity)

// --- Package-level API (delegates to global singleton) ---

// Fold returns the case-folded form of name, suitable as a map key for
// case-insensitive lookups.
func Fold(name string) string {
	return global.fold(name)
}

// SetCapacity changes the cache capacity. Pass 0 to disable caching.
func SetCapacity(n int) {
	global.setCapacity(n)
}

// Reset clears all cached entries without changing capacity.
func Reset() {
	global.reset()
}

// Len returns the current number of cached entries.
func Len() int {
	return global.len()
}
