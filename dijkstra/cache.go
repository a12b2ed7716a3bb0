package dijkstra

import (
	"sync"

	"github.com/katalvlaran/waypath/core"
)

// pairKey identifies an ordered (source, target) query.
type pairKey struct {
	from, to string
}

// CacheStats reports PathCache usage counters.
type CacheStats struct {
	Hits    uint64
	Misses  uint64
	Entries int
}

// PathCache memoizes FindPath results for a fixed graph and option set.
//
// Keys are ordered pairs: (u,v) and (v,u) are computed and stored separately,
// so the answer for a pair never depends on which direction was asked first.
// Safe for concurrent use. Two goroutines missing on the same pair may both
// compute it; the results are identical and the second store is a no-op.
//
// The graph must not be mutated while the cache is in use; call Reset after
// any mutation.
type PathCache struct {
	g    *core.Graph
	opts []Option

	mu       sync.RWMutex
	entries  map[pairKey]Result
	hits     uint64
	misses   uint64
	observer func(hit bool)
}

// NewPathCache returns an empty cache over g. Option errors are reported by
// the first lookup.
func NewPathCache(g *core.Graph, opts ...Option) *PathCache {
	return &PathCache{
		g:       g,
		opts:    append([]Option(nil), opts...),
		entries: make(map[pairKey]Result),
	}
}

// SetObserver installs fn to be called after every lookup with hit=true for a
// cache hit. fn runs outside the cache lock and must be safe for concurrent use.
func (c *PathCache) SetObserver(fn func(hit bool)) {
	c.mu.Lock()
	c.observer = fn
	c.mu.Unlock()
}

// FindPath returns the cached result for (source, target), computing it on
// the first request. Errors are never cached.
func (c *PathCache) FindPath(source, target string) (Result, error) {
	key := pairKey{from: source, to: target}

	c.mu.RLock()
	res, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		c.record(true)
		return res, nil
	}

	res, err := FindPath(c.g, source, target, c.opts...)
	if err != nil {
		return Result{}, err
	}

	c.mu.Lock()
	if prior, dup := c.entries[key]; dup {
		res = prior
	} else {
		c.entries[key] = res
	}
	c.mu.Unlock()
	c.record(false)

	return res, nil
}

// Distance is shorthand for the cached path length (+Inf when unreachable).
func (c *PathCache) Distance(source, target string) (float64, error) {
	res, err := c.FindPath(source, target)
	if err != nil {
		return 0, err
	}

	return res.Distance, nil
}

// Stats returns a snapshot of the hit/miss counters.
func (c *PathCache) Stats() CacheStats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return CacheStats{Hits: c.hits, Misses: c.misses, Entries: len(c.entries)}
}

// Reset drops every cached entry and zeroes the counters.
func (c *PathCache) Reset() {
	c.mu.Lock()
	c.entries = make(map[pairKey]Result)
	c.hits, c.misses = 0, 0
	c.mu.Unlock()
}

func (c *PathCache) record(hit bool) {
	c.mu.Lock()
	if hit {
		c.hits++
	} else {
		c.misses++
	}
	fn := c.observer
	c.mu.Unlock()

	if fn != nil {
		fn(hit)
	}
}
