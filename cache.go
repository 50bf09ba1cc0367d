package filemagic

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

// ============================================================================
// Cache Interface
// ============================================================================

// Result is the outcome of one identification.
type Result struct {
	Signature Signature
	Found     bool
}

// Cache stores identification results keyed by a hash of the content
// prefix. Identification is deterministic, so entries never go stale.
//
// Implementations should be thread-safe.
type Cache interface {
	// Get retrieves a result from the cache.
	Get(key uint64) (Result, bool)

	// Set stores a result in the cache.
	Set(key uint64, r Result)

	// Clear removes all results from the cache.
	Clear()
}

// CacheStatistics contains cache performance metrics.
type CacheStatistics struct {
	Hits      int64
	Misses    int64
	Size      int64
	Evictions int64
	HitRate   float64
}

// cacheKey hashes every byte any signature can read.
func cacheKey(data []byte) uint64 {
	if len(data) > MaxReadSize {
		data = data[:MaxReadSize]
	}
	return xxhash.Sum64(data)
}

// ============================================================================
// In-Memory Cache Implementation
// ============================================================================

// DefaultCacheSize is the capacity used when NewMemoryCache gets a
// non-positive size.
const DefaultCacheSize = 1024

// MemoryCache is a bounded in-memory cache. When full, the oldest entry is
// evicted first.
type MemoryCache struct {
	mu        sync.RWMutex
	entries   map[uint64]Result
	order     []uint64
	next      int
	capacity  int
	hits      int64
	misses    int64
	evictions int64
}

// NewMemoryCache creates a cache holding at most size results.
func NewMemoryCache(size int) *MemoryCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &MemoryCache{
		entries:  make(map[uint64]Result, size),
		order:    make([]uint64, 0, size),
		capacity: size,
	}
}

// Get retrieves a result from the cache.
func (c *MemoryCache) Get(key uint64) (Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	r, ok := c.entries[key]
	if !ok {
		c.misses++
		return Result{}, false
	}
	c.hits++
	return r, true
}

// Set stores a result in the cache.
func (c *MemoryCache) Set(key uint64, r Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		c.entries[key] = r
		return
	}

	if len(c.order) < c.capacity {
		c.order = append(c.order, key)
	} else {
		// Ring buffer: overwrite the oldest key.
		delete(c.entries, c.order[c.next])
		c.order[c.next] = key
		c.next = (c.next + 1) % c.capacity
		c.evictions++
	}
	c.entries[key] = r
}

// Clear removes all results from the cache.
func (c *MemoryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[uint64]Result, c.capacity)
	c.order = c.order[:0]
	c.next = 0
}

// Stats returns cache statistics.
func (c *MemoryCache) Stats() CacheStatistics {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := c.hits + c.misses
	var hitRate float64
	if total > 0 {
		hitRate = float64(c.hits) / float64(total)
	}

	return CacheStatistics{
		Hits:      c.hits,
		Misses:    c.misses,
		Size:      int64(len(c.entries)),
		Evictions: c.evictions,
		HitRate:   hitRate,
	}
}

// Ensure MemoryCache implements Cache
var _ Cache = (*MemoryCache)(nil)
