package pattern

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"stixcore/metrics"
)

// DefaultCacheSize is the default number of parsed patterns the cache keeps.
const DefaultCacheSize = 1024

// Cache memoizes pattern parses keyed by the exact pattern text. Indicator
// feeds repeat the same patterns heavily, so parsing each distinct pattern
// once is a large win for bulk validation.
//
// Cached *Pattern values are shared between callers and must be treated as
// immutable. The underlying LRU is safe for concurrent use.
type Cache struct {
	entries *lru.Cache[string, *Pattern]
}

// NewCache creates a pattern cache holding up to size parsed patterns.
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	entries, err := lru.New[string, *Pattern](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create pattern cache: %w", err)
	}
	return &Cache{entries: entries}, nil
}

// Parse returns the parsed form of input, consulting the cache first. Parse
// failures are not cached; malformed patterns are expected to be rare and
// caching them would let one bad feed entry occupy cache slots.
func (c *Cache) Parse(input string) (*Pattern, error) {
	if pat, ok := c.entries.Get(input); ok {
		metrics.PatternCacheHits.Inc()
		return pat, nil
	}
	metrics.PatternCacheMisses.Inc()

	pat, err := Parse(input)
	if err != nil {
		return nil, err
	}
	c.entries.Add(input, pat)
	return pat, nil
}

// Len returns the number of cached patterns.
func (c *Cache) Len() int {
	return c.entries.Len()
}

// Purge drops every cached pattern.
func (c *Cache) Purge() {
	c.entries.Purge()
}
