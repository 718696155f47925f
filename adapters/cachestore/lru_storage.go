package cachestore

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru"
)

const (
	DefaultMaxCaches  = 32
	DefaultMaxEntries = 512
)

// LRUStorage is an in-memory CacheStorage. Caches are listed in creation order
// and each cache evicts its least recently used entry once full.
type LRUStorage struct {
	mu         sync.Mutex
	caches     *lru.Cache
	maxEntries int
}

func NewLRUStorage(maxCaches, maxEntries int) (*LRUStorage, error) {
	if maxCaches <= 0 {
		maxCaches = DefaultMaxCaches
	}
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	caches, err := lru.New(maxCaches)
	if err != nil {
		return nil, fmt.Errorf("create cache storage: %w", err)
	}
	return &LRUStorage{caches: caches, maxEntries: maxEntries}, nil
}

// Open returns the named cache, creating it when missing.
func (s *LRUStorage) Open(name string) (*LRUCache, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.caches.Peek(name); ok {
		return v.(*LRUCache), nil
	}
	entries, err := lru.New(s.maxEntries)
	if err != nil {
		return nil, fmt.Errorf("create cache %q: %w", name, err)
	}
	c := &LRUCache{entries: entries}
	s.caches.Add(name, c)
	return c, nil
}

func (s *LRUStorage) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw := s.caches.Keys()
	keys := make([]string, 0, len(raw))
	for _, k := range raw {
		keys = append(keys, k.(string))
	}
	return keys
}

func (s *LRUStorage) Delete(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.caches.Remove(name)
}

// LRUCache is one named cache inside an LRUStorage.
type LRUCache struct {
	entries *lru.Cache
}

func (c *LRUCache) Put(key string, value []byte) {
	c.entries.Add(key, value)
}

func (c *LRUCache) Match(key string) ([]byte, bool) {
	v, ok := c.entries.Get(key)
	if !ok {
		return nil, false
	}
	return v.([]byte), true
}

func (c *LRUCache) Len() int {
	return c.entries.Len()
}
