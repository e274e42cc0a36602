package planner

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/sqlplan/logicplan/pkg/plan"
)

// cachedPlan stores a cached plan with metadata, mirroring the
// teacher's CachedPlan.
type cachedPlan struct {
	plan     plan.LogicalPlan
	lastHit  time.Time
	hitCount int64
}

// MemoryCache is an in-process PlanCache. Grounded directly on the
// teacher's pkg/optimizer/plan_cache.go PlanCache, stripped of its
// DQ-specific ActualCost reward feedback since this layer only caches
// compiled plans rather than scoring execution strategies.
type MemoryCache struct {
	mu      sync.RWMutex
	cache   map[uint64]*cachedPlan
	maxSize int
	hits    int64
	misses  int64
}

// NewMemoryCache builds a MemoryCache holding at most maxSize entries
// before it starts evicting the least recently hit one.
func NewMemoryCache(maxSize int) *MemoryCache {
	if maxSize <= 0 {
		maxSize = 1024
	}
	return &MemoryCache{cache: make(map[uint64]*cachedPlan, maxSize), maxSize: maxSize}
}

func (c *MemoryCache) Get(fingerprint uint64) (plan.LogicalPlan, bool) {
	c.mu.RLock()
	entry, ok := c.cache[fingerprint]
	if !ok {
		c.mu.RUnlock()
		atomic.AddInt64(&c.misses, 1)
		return nil, false
	}
	p := entry.plan
	c.mu.RUnlock()

	atomic.AddInt64(&c.hits, 1)
	atomic.AddInt64(&entry.hitCount, 1)

	c.mu.Lock()
	entry.lastHit = time.Now()
	c.mu.Unlock()

	return p, true
}

func (c *MemoryCache) Put(fingerprint uint64, p plan.LogicalPlan) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.cache) >= c.maxSize {
		c.evictOne()
	}
	c.cache[fingerprint] = &cachedPlan{plan: p, lastHit: time.Now()}
}

func (c *MemoryCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = make(map[uint64]*cachedPlan, c.maxSize)
}

func (c *MemoryCache) Stats() (hits, misses int64) {
	return atomic.LoadInt64(&c.hits), atomic.LoadInt64(&c.misses)
}

// evictOne removes the least recently hit entry. Caller must hold the
// write lock.
func (c *MemoryCache) evictOne() {
	var oldestKey uint64
	var oldestTime time.Time
	first := true
	for k, v := range c.cache {
		if first || v.lastHit.Before(oldestTime) {
			oldestKey, oldestTime, first = k, v.lastHit, false
		}
	}
	if !first {
		delete(c.cache, oldestKey)
	}
}
