package render

import (
	"container/list"
	"hash/fnv"
	"strconv"
	"sync"
)

// Cache is an LRU cache for rendered output. Re-rendering a whole message on
// every watch event or TUI resize is wasteful when the text has not changed;
// the pipeline itself never caches (pure function), so memoization lives
// here with the caller.
type Cache struct {
	mu      sync.Mutex
	maxSize int
	entries map[string]*list.Element
	lru     *list.List
}

type cacheEntry struct {
	key      string
	rendered string
}

// NewCache creates a render cache with the given maximum entry count.
func NewCache(maxSize int) *Cache {
	if maxSize <= 0 {
		maxSize = 64
	}
	return &Cache{
		maxSize: maxSize,
		entries: make(map[string]*list.Element),
		lru:     list.New(),
	}
}

// Key builds a cache key from the input text and the render parameters that
// affect output. The text is hashed; keys stay small regardless of message
// size.
func Key(text string, width int, format string) string {
	h := fnv.New64a()
	h.Write([]byte(text))
	return strconv.FormatUint(h.Sum64(), 16) + ":" + strconv.Itoa(width) + ":" + format
}

// Get retrieves a rendered string, returning false if absent.
// A hit moves the entry to the front of the LRU list.
func (c *Cache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		c.lru.MoveToFront(elem)
		return elem.Value.(*cacheEntry).rendered, true
	}
	return "", false
}

// Put stores a rendered string, evicting the least recently used entry when
// at capacity.
func (c *Cache) Put(key, rendered string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		c.lru.MoveToFront(elem)
		elem.Value.(*cacheEntry).rendered = rendered
		return
	}

	if c.lru.Len() >= c.maxSize {
		if oldest := c.lru.Back(); oldest != nil {
			entry := oldest.Value.(*cacheEntry)
			delete(c.entries, entry.key)
			c.lru.Remove(oldest)
		}
	}

	c.entries[key] = c.lru.PushFront(&cacheEntry{key: key, rendered: rendered})
}

// Size returns the current number of cached renders.
func (c *Cache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear drops all cached renders.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*list.Element)
	c.lru.Init()
}
