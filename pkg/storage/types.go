package storage

import (
	"path/filepath"
	"time"
)

const (
	CatalogFile    = "fips.json"
	TaxonomyFile   = "categories.json"
	UserGroupsFile = "nested_all_user_groups.json"
)

const DefaultLoadTimeout = 5 * time.Second

type DiskStorage struct {
	RootFolder string
	Timeout    time.Duration
	cache      *FileCache
}

type Option func(*DiskStorage)

// WithCache enables a read-through cache of raw file contents. Without it
// every load reads the file from disk.
func WithCache(cache *FileCache) Option {
	return func(ds *DiskStorage) {
		ds.cache = cache
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(ds *DiskStorage) {
		if timeout > 0 {
			ds.Timeout = timeout
		}
	}
}

func NewDiskStorage(rootFolder string, opts ...Option) *DiskStorage {
	ds := &DiskStorage{
		RootFolder: rootFolder,
		Timeout:    DefaultLoadTimeout,
	}
	for _, opt := range opts {
		opt(ds)
	}
	return ds
}

func (ds *DiskStorage) GetFileName(name string) string {
	return filepath.Join(ds.RootFolder, name)
}

func (ds *DiskStorage) Cache() *FileCache {
	return ds.cache
}
