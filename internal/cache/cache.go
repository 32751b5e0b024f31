// Package cache provides a generic in-memory cache with per-entry TTL,
// tag-based group invalidation, and bounded capacity.
//
// Expiry is lazy: entries are checked on access rather than by a background
// sweeper. The one exception is Len, which purges expired entries first so
// the reported count only covers live entries. Capacity eviction removes the
// oldest entry by store time, independent of read recency.
package cache

import (
	"sync"
	"time"

	"github.com/Audacity88/chatcache/internal/metrics"
)

const defaultCapacity = 1000

// entry is a single cached value with its store time and tag memberships.
type entry[V any] struct {
	value    V
	storedAt time.Time
	tags     []string
}

// Metrics provides cache performance counters.
type Metrics struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Evictions int64 `json:"evictions"`
	Size      int   `json:"size"`
	Capacity  int   `json:"capacity"`
}

// Cache is a string-keyed cache generic over its value type.
//
// All methods are safe for concurrent use; every operation runs under a
// single mutex so the tag index is never observable in a torn state.
type Cache[V any] struct {
	mu       sync.Mutex
	name     string
	ttl      time.Duration
	capacity int
	entries  map[string]*entry[V]
	// tagIndex is a derived reverse index from tag to member keys. It is
	// updated in the same critical section as entries: every key in every
	// tag set maps to a live entry carrying that tag, and a tag set is
	// deleted the moment it becomes empty.
	tagIndex map[string]map[string]struct{}

	hits      int64
	misses    int64
	evictions int64

	// now is swapped out by tests to pin expiry boundaries.
	now func() time.Time
}

// New creates a cache holding at most capacity entries that expire ttl after
// their last Set. The name labels this instance in metrics.
func New[V any](name string, capacity int, ttl time.Duration) *Cache[V] {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	c := &Cache[V]{
		name:     name,
		ttl:      ttl,
		capacity: capacity,
		entries:  make(map[string]*entry[V], capacity),
		tagIndex: make(map[string]map[string]struct{}),
		now:      time.Now,
	}
	metrics.UpdateCacheMetrics(name, 0, capacity)
	return c
}

// Get returns the value stored under key. An expired entry is removed as a
// side effect and reported as a miss; there is no error on absence.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	e, ok := c.entries[key]
	if !ok {
		c.misses++
		metrics.RecordCacheOperation(c.name, "get", "miss")
		return zero, false
	}
	if c.expired(e, c.now()) {
		c.remove(key, e)
		c.misses++
		metrics.RecordCacheOperation(c.name, "get", "expired")
		return zero, false
	}
	c.hits++
	metrics.RecordCacheOperation(c.name, "get", "hit")
	return e.value, true
}

// Has reports whether a live entry exists under key, with the same
// lazy-expiry side effect as Get.
func (c *Cache[V]) Has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return false
	}
	if c.expired(e, c.now()) {
		c.remove(key, e)
		return false
	}
	return true
}

// Set stores value under key with the given tag memberships, resetting the
// entry's store time. An existing entry is replaced wholesale: tags absent
// from the new set are pruned from the tag index. When the cache is at
// capacity the single oldest entry by store time is evicted first.
func (c *Cache[V]) Set(key string, value V, tags ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if old, ok := c.entries[key]; ok {
		c.remove(key, old)
	} else if len(c.entries) >= c.capacity {
		c.evictOldest()
	}

	e := &entry[V]{value: value, storedAt: c.now(), tags: tags}
	c.entries[key] = e
	for _, tag := range tags {
		set, ok := c.tagIndex[tag]
		if !ok {
			set = make(map[string]struct{})
			c.tagIndex[tag] = set
		}
		set[key] = struct{}{}
	}

	metrics.RecordCacheOperation(c.name, "set", "success")
	metrics.UpdateCacheMetrics(c.name, len(c.entries), c.capacity)
}

// Remove deletes the entry under key and prunes its tag memberships.
// Removing a missing key is a no-op.
func (c *Cache[V]) Remove(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		c.remove(key, e)
		metrics.RecordCacheOperation(c.name, "remove", "success")
	}
}

// InvalidateTag removes every entry currently carrying tag, along with the
// tag set itself.
func (c *Cache[V]) InvalidateTag(tag string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	set, ok := c.tagIndex[tag]
	if !ok {
		return
	}
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	for _, key := range keys {
		if e, ok := c.entries[key]; ok {
			c.remove(key, e)
		}
	}
	delete(c.tagIndex, tag)

	metrics.RecordCacheOperation(c.name, "invalidate_tag", "success")
	metrics.UpdateCacheMetrics(c.name, len(c.entries), c.capacity)
}

// Len returns the number of live entries. Unlike the other operations it
// sweeps all expired entries first, so the count never includes entries that
// are past their TTL but have not been touched since.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, e := range c.entries {
		if c.expired(e, now) {
			c.remove(key, e)
		}
	}
	metrics.UpdateCacheMetrics(c.name, len(c.entries), c.capacity)
	return len(c.entries)
}

// Clear drops all entries and all tag sets.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*entry[V], c.capacity)
	c.tagIndex = make(map[string]map[string]struct{})

	metrics.RecordCacheOperation(c.name, "clear", "success")
	metrics.UpdateCacheMetrics(c.name, 0, c.capacity)
}

// Metrics returns current performance counters.
func (c *Cache[V]) Metrics() Metrics {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Metrics{
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		Size:      len(c.entries),
		Capacity:  c.capacity,
	}
}

// expired reports whether e is past its TTL at the given instant.
func (c *Cache[V]) expired(e *entry[V], now time.Time) bool {
	return !now.Before(e.storedAt.Add(c.ttl))
}

// remove deletes an entry and its tag memberships. Tag sets that become
// empty are deleted so the tag index never holds an empty-but-present set.
// Must be called with the lock held.
func (c *Cache[V]) remove(key string, e *entry[V]) {
	delete(c.entries, key)
	for _, tag := range e.tags {
		set, ok := c.tagIndex[tag]
		if !ok {
			continue
		}
		delete(set, key)
		if len(set) == 0 {
			delete(c.tagIndex, tag)
		}
	}
}

// evictOldest removes the single entry with the earliest store time, ties
// broken arbitrarily. Must be called with the lock held.
func (c *Cache[V]) evictOldest() {
	var oldestKey string
	var oldest *entry[V]
	for key, e := range c.entries {
		if oldest == nil || e.storedAt.Before(oldest.storedAt) {
			oldestKey, oldest = key, e
		}
	}
	if oldest == nil {
		return
	}
	c.remove(oldestKey, oldest)
	c.evictions++
	metrics.RecordCacheOperation(c.name, "evict", "capacity")
}
