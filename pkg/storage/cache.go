package storage

import (
	"os"
	"sync"
	"time"
)

type cacheEntry struct {
	modTime time.Time
	size    int64
	data    []byte
}

// FileCache keeps raw file contents and revalidates them against the file's
// modification time and size on every read. Returned slices are shared and
// must not be modified.
type FileCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
}

func NewFileCache() *FileCache {
	return &FileCache{
		entries: make(map[string]cacheEntry),
	}
}

func (c *FileCache) Get(fileName string) ([]byte, error) {
	info, err := os.Stat(fileName)
	if err != nil {
		c.Invalidate(fileName)
		return nil, err
	}

	c.mu.RLock()
	entry, ok := c.entries[fileName]
	c.mu.RUnlock()
	if ok && entry.modTime.Equal(info.ModTime()) && entry.size == info.Size() {
		return entry.data, nil
	}

	data, err := os.ReadFile(fileName)
	if err != nil {
		c.Invalidate(fileName)
		return nil, err
	}
	c.mu.Lock()
	c.entries[fileName] = cacheEntry{
		modTime: info.ModTime(),
		size:    info.Size(),
		data:    data,
	}
	c.mu.Unlock()
	return data, nil
}

func (c *FileCache) Invalidate(fileName string) {
	c.mu.Lock()
	delete(c.entries, fileName)
	c.mu.Unlock()
}

func (c *FileCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
