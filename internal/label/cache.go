package label

import (
	"sync"

	"github.com/kimyoungjin06/MRC-running-bingo/internal/card"
)

// Cache memoizes label maps per seed for one catalog. A map is a pure
// function of seed and catalog, so entries never need invalidation within a
// process; separate seasons just use separate seeds (or separate caches).
type Cache struct {
	cat *card.Catalog

	mu   sync.RWMutex
	maps map[string]*Map
}

// NewCache creates an empty cache over a catalog.
func NewCache(cat *card.Catalog) *Cache {
	return &Cache{cat: cat, maps: make(map[string]*Map)}
}

// Get returns the label map for a seed, building it on first use.
func (c *Cache) Get(seed string) *Map {
	c.mu.RLock()
	m := c.maps[seed]
	c.mu.RUnlock()
	if m != nil {
		return m
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if m := c.maps[seed]; m != nil {
		return m
	}
	m = Build(seed, c.cat)
	c.maps[seed] = m
	return m
}
