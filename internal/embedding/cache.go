package embedding

import (
	"container/list"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"
)

const (
	DefaultCacheSize = 1000
	DefaultCacheTTL  = time.Hour
)

// Cache is an in-process TTL+LRU hybrid mapping text to embedding vectors.
// Keys are content hashes of the exact input string, whitespace included.
// Entries are evicted least-recently-used once capacity is reached, and every
// entry expires after the TTL regardless of use. Vectors never leave process
// memory.
type Cache struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	entries  map[string]*list.Element
	order    *list.List // front is most recently used

	now func() time.Time
}

type cacheEntry struct {
	key       string
	vector    []float64
	expiresAt time.Time
}

type Stats struct {
	Size     int           `json:"size"`
	Capacity int           `json:"capacity"`
	TTL      time.Duration `json:"ttl"`
}

func NewCache(capacity int, ttl time.Duration) *Cache {
	if capacity <= 0 {
		capacity = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{
		capacity: capacity,
		ttl:      ttl,
		entries:  make(map[string]*list.Element, capacity),
		order:    list.New(),
		now:      time.Now,
	}
}

// Key returns the content-hash cache key for a text.
func Key(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// Get returns the cached vector for text, refreshing its recency. Expired
// entries are removed and reported as misses.
func (c *Cache) Get(text string) ([]float64, bool) {
	key := Key(text)

	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	entry := el.Value.(*cacheEntry)
	if c.now().After(entry.expiresAt) {
		c.order.Remove(el)
		delete(c.entries, key)
		return nil, false
	}
	c.order.MoveToFront(el)
	return entry.vector, true
}

// Put stores the vector for text, evicting the least recently used entry when
// the cache is full.
func (c *Cache) Put(text string, vector []float64) {
	key := Key(text)

	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		entry := el.Value.(*cacheEntry)
		entry.vector = vector
		entry.expiresAt = c.now().Add(c.ttl)
		c.order.MoveToFront(el)
		return
	}

	for len(c.entries) >= c.capacity {
		oldest := c.order.Back()
		if oldest == nil {
			break
		}
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*cacheEntry).key)
	}

	el := c.order.PushFront(&cacheEntry{
		key:       key,
		vector:    vector,
		expiresAt: c.now().Add(c.ttl),
	})
	c.entries[key] = el
}

// GetOrCompute returns the cached vector or invokes compute, stores its
// result and returns it. compute runs outside the cache lock; concurrent
// misses on the same text may compute twice, the last write wins.
func (c *Cache) GetOrCompute(text string, compute func() ([]float64, error)) ([]float64, error) {
	if vec, ok := c.Get(text); ok {
		return vec, nil
	}
	vec, err := compute()
	if err != nil {
		return nil, err
	}
	c.Put(text, vec)
	return vec, nil
}

// Clear empties the cache atomically.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*list.Element, c.capacity)
	c.order.Init()
}

func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{Size: len(c.entries), Capacity: c.capacity, TTL: c.ttl}
}
