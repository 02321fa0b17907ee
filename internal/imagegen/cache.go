package imagegen

import (
	"sync"
	"time"
)

// OGImageCache caches the generated OG image for a short period.
type OGImageCache struct {
	mu        sync.RWMutex
	data      []byte
	expiresAt time.Time
	cacheTTL  time.Duration
	now       func() time.Time
}

// NewOGImageCache creates a new OG image cache with the specified TTL.
func NewOGImageCache(ttl time.Duration) *OGImageCache {
	return &OGImageCache{
		cacheTTL: ttl,
		now:      time.Now,
	}
}

// Get returns the cached OG image if still valid.
func (c *OGImageCache) Get() ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.data == nil || c.now().After(c.expiresAt) {
		return nil, false
	}
	return c.data, true
}

// set stores a new image. Callers hold mu.
func (c *OGImageCache) set(data []byte) {
	c.data = data
	c.expiresAt = c.now().Add(c.cacheTTL)
}

// GetOrGenerate returns the cached image or generates, stores and returns a
// fresh one. Concurrent misses generate once.
func (c *OGImageCache) GetOrGenerate(gen func() ([]byte, error)) ([]byte, bool, error) {
	if data, ok := c.Get(); ok {
		return data, true, nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.data != nil && !c.now().After(c.expiresAt) {
		return c.data, true, nil
	}
	data, err := gen()
	if err != nil {
		return nil, false, err
	}
	c.set(data)
	return data, false, nil
}
