package alphavantage

import (
	"time"

	"stockemu"
)

// Cache stores the daily price series of already-fetched tickers so that
// repeated lookups (a DCA replay asks for the same ticker over and over) cost
// one HTTP request. It is an explicit object owned by whoever builds the
// Client; a nil Cache disables caching and the engine stays correct either
// way.
type Cache struct {
	ttl     time.Duration
	entries map[string]cacheEntry

	now func() time.Time // test seam
}

type cacheEntry struct {
	series  map[string]stockemu.Money // keyed by day in "2006-01-02" form
	fetched time.Time
}

// NewCache creates a cache whose entries expire ttl after they were fetched.
// A zero ttl means entries never expire within the process lifetime.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

// get returns the cached series for ticker, or false on a miss or an expired entry.
func (c *Cache) get(ticker string) (map[string]stockemu.Money, bool) {
	e, ok := c.entries[ticker]
	if !ok {
		return nil, false
	}
	if c.ttl > 0 && c.now().Sub(e.fetched) > c.ttl {
		delete(c.entries, ticker)
		return nil, false
	}
	return e.series, true
}

// put stores the series for ticker, stamping it with the current time.
func (c *Cache) put(ticker string, series map[string]stockemu.Money) {
	c.entries[ticker] = cacheEntry{series: series, fetched: c.now()}
}

// Invalidate drops the cached series for ticker, forcing the next lookup to
// fetch again.
func (c *Cache) Invalidate(ticker string) {
	delete(c.entries, ticker)
}
