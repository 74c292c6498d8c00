package restaurant

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"sync"
	"time"
)

// ChartKey addresses one rendered chart. Digest fingerprints the data the
// chart was drawn from.
type ChartKey struct {
	Chart  string
	Theme  string
	Digest string
}

func (k ChartKey) slot() [2]string { return [2]string{k.Chart, k.Theme} }

// RenderCache memoizes rendered chart HTML.
type RenderCache interface {
	GetOrRender(key ChartKey, render func() (string, error)) (string, error)
}

// ChartCache keeps the latest rendering of each chart per theme. A render
// with a new digest replaces the previous one, so the cache never holds
// more than one entry per chart and theme.
type ChartCache struct {
	ttl   time.Duration
	now   func() time.Time
	mu    sync.Mutex
	slots map[[2]string]chartSlot
}

type chartSlot struct {
	digest  string
	html    string
	expires time.Time
}

// NewChartCache builds a cache with the provided TTL. A TTL <= 0 disables it.
func NewChartCache(ttl time.Duration) *ChartCache {
	return &ChartCache{ttl: ttl, now: time.Now, slots: map[[2]string]chartSlot{}}
}

// WithClock swaps the cache clock, mostly for expiry tests.
func (c *ChartCache) WithClock(now func() time.Time) *ChartCache {
	if now != nil {
		c.now = now
	}
	return c
}

func (c *ChartCache) GetOrRender(key ChartKey, render func() (string, error)) (string, error) {
	if c == nil || c.ttl <= 0 {
		return render()
	}
	at := c.now()
	c.mu.Lock()
	slot, ok := c.slots[key.slot()]
	c.mu.Unlock()
	if ok && slot.digest == key.Digest && at.Before(slot.expires) {
		return slot.html, nil
	}

	html, err := render()
	if err != nil {
		return "", err
	}
	c.mu.Lock()
	c.slots[key.slot()] = chartSlot{digest: key.Digest, html: html, expires: at.Add(c.ttl)}
	c.mu.Unlock()
	return html, nil
}

// Purge drops expired entries and returns how many were removed.
func (c *ChartCache) Purge() int {
	if c == nil {
		return 0
	}
	at := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()
	removed := 0
	for k, slot := range c.slots {
		if !at.Before(slot.expires) {
			delete(c.slots, k)
			removed++
		}
	}
	return removed
}

func (c *ChartCache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.slots)
}

func dataHash(data any) string {
	b, err := json.Marshal(data)
	if err != nil {
		return "invalid"
	}
	sum := sha1.Sum(b)
	return hex.EncodeToString(sum[:])
}
