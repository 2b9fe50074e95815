package lint

import (
	"os"
	"sync"
	"time"
)

// cacheItem is a cached value with file metadata for invalidation.
type cacheItem[V any] struct {
	value   V
	modTime time.Time
	size    int64
}

// cache is a small generic cache with optional file-based invalidation,
// used to avoid re-parsing source files across lint passes.
type cache[K comparable, V any] struct {
	items map[K]*cacheItem[V]
	mutex sync.RWMutex
}

func newCache[K comparable, V any]() *cache[K, V] {
	return &cache[K, V]{items: make(map[K]*cacheItem[V])}
}

// getValid returns the cached value if the backing file is unchanged since
// it was stored; otherwise the entry is evicted.
func (c *cache[K, V]) getValid(key K, filePath string) (V, bool) {
	c.mutex.RLock()
	item, exists := c.items[key]
	c.mutex.RUnlock()

	if !exists {
		var zero V
		return zero, false
	}

	if stat, err := os.Stat(filePath); err == nil {
		if stat.ModTime().Equal(item.modTime) && stat.Size() == item.size {
			return item.value, true
		}
	}

	c.mutex.Lock()
	delete(c.items, key)
	c.mutex.Unlock()

	var zero V
	return zero, false
}

// setWithFileInfo stores a value along with the backing file's metadata.
func (c *cache[K, V]) setWithFileInfo(key K, value V, filePath string) error {
	stat, err := os.Stat(filePath)
	if err != nil {
		return err
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.items[key] = &cacheItem[V]{
		value:   value,
		modTime: stat.ModTime(),
		size:    stat.Size(),
	}
	return nil
}
