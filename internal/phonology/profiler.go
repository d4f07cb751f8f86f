package phonology

import (
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Profiler memoizes word profiles. Verse repeats the same forms often, so
// a bounded LRU keyed by the raw word avoids re-normalizing them.
type Profiler struct {
	table  *Table
	cache  *lru.Cache[string, Profile]
	hits   atomic.Int64
	misses atomic.Int64
}

// NewProfiler creates a profiler over table. A size of zero or less
// disables memoization.
func NewProfiler(table *Table, size int) (*Profiler, error) {
	if table == nil {
		table = Greek
	}
	p := &Profiler{table: table}
	if size > 0 {
		cache, err := lru.New[string, Profile](size)
		if err != nil {
			return nil, fmt.Errorf("failed to create profile cache: %w", err)
		}
		p.cache = cache
	}
	return p, nil
}

// Table returns the replacement table in use
func (p *Profiler) Table() *Table {
	return p.table
}

// Profile returns the sound profile for word. Safe for concurrent use.
func (p *Profiler) Profile(word string) Profile {
	if p.cache == nil {
		p.misses.Add(1)
		return p.table.Profile(word)
	}
	if prof, ok := p.cache.Get(word); ok {
		p.hits.Add(1)
		return prof
	}
	p.misses.Add(1)
	prof := p.table.Profile(word)
	p.cache.Add(word, prof)
	return prof
}

// Stats returns the number of cache hits and misses so far
func (p *Profiler) Stats() (hits, misses int64) {
	return p.hits.Load(), p.misses.Load()
}
