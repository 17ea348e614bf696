package searcher

// Cache maps a state to its already-computed possibility subtree so that
// structurally identical states reached via different move sequences are
// built once. It is exclusively owned by one Solver for the lifetime of a
// session, never evicts, and is not safe for concurrent use.
//
// Entries are snapshots: lookups hand out independent deep copies, so a copy
// expanded further does not retroactively change the cached original or other
// outstanding copies.
type Cache[S State[S, C], C comparable, V Value[V]] struct {
	entries map[S]Possibility[S, C, V]
	stats   CacheStats
}

// CacheStats counts cache traffic across a session.
type CacheStats struct {
	Hits        int
	Misses      int
	Entries     int
	Evaluations int
}

func NewCache[S State[S, C], C comparable, V Value[V]]() *Cache[S, C, V] {
	return &Cache[S, C, V]{entries: map[S]Possibility[S, C, V]{}}
}

func (c *Cache[S, C, V]) lookup(state S) (Possibility[S, C, V], bool) {
	cached, ok := c.entries[state]
	if !ok {
		c.stats.Misses++
		var zero Possibility[S, C, V]
		return zero, false
	}
	c.stats.Hits++
	return cached.clone(), true
}

func (c *Cache[S, C, V]) insert(state S, p Possibility[S, C, V]) {
	c.entries[state] = p.clone()
}

func (c *Cache[S, C, V]) Len() int { return len(c.entries) }

func (c *Cache[S, C, V]) Stats() CacheStats {
	stats := c.stats
	stats.Entries = len(c.entries)
	return stats
}
