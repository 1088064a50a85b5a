package cache

import (
	"sync"
	"time"

	"github.com/avaldez/pedidosbot/internal/domain"
)

type entry struct {
	record     domain.OrderRecord
	insertedAt time.Time
}

// Cache is an in-memory TTL store for resolved orders. A single mutex guards
// the map; expired entries are dropped lazily on read and in bulk once the
// entry count crosses the sweep threshold. There is no capacity cap and no
// LRU, TTL is the only eviction policy.
type Cache struct {
	mu             sync.Mutex
	entries        map[string]entry
	ttl            time.Duration
	sweepThreshold int

	now func() time.Time // swapped out in tests
}

func New(ttl time.Duration, sweepThreshold int) *Cache {
	return &Cache{
		entries:        make(map[string]entry),
		ttl:            ttl,
		sweepThreshold: sweepThreshold,
		now:            time.Now,
	}
}

// Get returns a copy of the stored record if it is present and younger than
// the TTL. An expired entry is removed under the same lock acquisition, so
// the check-and-evict is atomic with respect to other operations on the key.
func (c *Cache) Get(key string) (*domain.OrderRecord, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.insertedAt) >= c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	rec := e.record
	return &rec, true
}

// Set stores the record with a fresh timestamp, unconditionally overwriting
// any previous entry. When the map has grown past the sweep threshold the
// write also sweeps expired entries, which bounds growth without a background
// timer.
func (c *Cache) Set(key string, record *domain.OrderRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{record: *record, insertedAt: c.now()}
	if c.sweepThreshold > 0 && len(c.entries) > c.sweepThreshold {
		c.sweepLocked()
	}
}

// SweepExpired removes every entry whose age reached the TTL.
func (c *Cache) SweepExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sweepLocked()
}

func (c *Cache) sweepLocked() {
	now := c.now()
	for k, e := range c.entries {
		if now.Sub(e.insertedAt) >= c.ttl {
			delete(c.entries, k)
		}
	}
}

// Size reports the current entry count, expired or not. Exposed for the
// health endpoint and metrics.
func (c *Cache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear drops every entry. Used by the admin endpoint.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}
