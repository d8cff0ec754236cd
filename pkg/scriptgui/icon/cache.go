package icon

import "sync"

const defaultMaxCacheSize = 16

// thumbnailCache is a small LRU of rendered thumbnails. Rendering an icon
// rasterizes the SVG, so the drawer reuses the strings between frames.
type thumbnailCache struct {
	mu      sync.Mutex
	entries map[string]string
	order   []string // least recently used first
	maxSize int
}

func newThumbnailCache(maxSize int) *thumbnailCache {
	return &thumbnailCache{
		entries: make(map[string]string),
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
	}
}

func (c *thumbnailCache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	value, ok := c.entries[key]
	if ok {
		c.moveToEnd(key)
	}
	return value, ok
}

func (c *thumbnailCache) Set(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; ok {
		c.entries[key] = value
		c.moveToEnd(key)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}
	c.entries[key] = value
	c.order = append(c.order, key)
}

func (c *thumbnailCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.order)
}

// Clear drops every entry, e.g. after a theme change.
func (c *thumbnailCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
	c.order = c.order[:0]
}

func (c *thumbnailCache) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *thumbnailCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}
	oldest := c.order[0]
	c.order = c.order[1:]
	delete(c.entries, oldest)
}
