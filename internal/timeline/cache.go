package timeline

import (
	"fmt"
	"sync"
	"time"

	"github.com/rvannest/joist/internal/domain"
)

// Cache stores computed layouts keyed by range and scale. Implementations
// must be safe for concurrent use.
type Cache interface {
	Get(key string) (Layout, bool)
	Set(key string, l Layout)
}

// LayoutKey builds the cache key for a range and scale.
func LayoutKey(start, end time.Time, scale Scale) string {
	return fmt.Sprintf("%s|%s|%s", domain.ISODate(start), domain.ISODate(end), scale)
}

type ttlEntry struct {
	layout  Layout
	expires time.Time
}

// TTLCache is a bounded in-memory Cache with per-entry expiry. When full it
// evicts the entry closest to expiry.
type TTLCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	max     int
	entries map[string]ttlEntry
	now     func() time.Time
}

// NewTTLCache creates a cache holding at most max entries for ttl each.
func NewTTLCache(ttl time.Duration, max int) *TTLCache {
	return &TTLCache{
		ttl:     ttl,
		max:     max,
		entries: make(map[string]ttlEntry),
		now:     time.Now,
	}
}

func (c *TTLCache) Get(key string) (Layout, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok || c.now().After(e.expires) {
		delete(c.entries, key)
		return Layout{}, false
	}
	return e.layout, true
}

func (c *TTLCache) Set(key string, l Layout) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for k, e := range c.entries {
		if now.After(e.expires) {
			delete(c.entries, k)
		}
	}
	if len(c.entries) >= c.max {
		var oldest string
		var oldestExp time.Time
		for k, e := range c.entries {
			if oldest == "" || e.expires.Before(oldestExp) {
				oldest = k
				oldestExp = e.expires
			}
		}
		delete(c.entries, oldest)
	}

	c.entries[key] = ttlEntry{layout: l, expires: now.Add(c.ttl)}
}

// NoopCache never stores anything; useful in tests.
type NoopCache struct{}

func (NoopCache) Get(string) (Layout, bool) { return Layout{}, false }
func (NoopCache) Set(string, Layout)        {}

// Provider serves layouts through a cache.
type Provider struct {
	cache Cache
}

// NewProvider wraps the given cache; a nil cache disables caching.
func NewProvider(cache Cache) *Provider {
	if cache == nil {
		cache = NoopCache{}
	}
	return &Provider{cache: cache}
}

// Layout returns the band layout for the range, computing it on a miss.
func (p *Provider) Layout(start, end time.Time, scale Scale) Layout {
	key := LayoutKey(start, end, scale)
	if l, ok := p.cache.Get(key); ok {
		return l
	}
	l := Compute(start, end, scale)
	p.cache.Set(key, l)
	return l
}
