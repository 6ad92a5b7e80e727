package optionstore

import (
	"context"
	"sync"

	"github.com/dmitrymomot/optguard/pkg/cache"
)

// DefaultCacheSize is used when NewCachedStore gets a non-positive size.
const DefaultCacheSize = 256

// CachedStore is a read-through LRU cache in front of another Store.
// Entries hold the encoded value, so every Get returns a fresh copy that the
// caller may mutate. Absent options are not cached.
//
// Each write bumps a per-option generation before and after it reaches the
// backing store. A read only fills the cache if the generation it started
// with is still current, so a read racing a write never caches the old value.
type CachedStore struct {
	next  Store
	cache *cache.LRUCache[string, []byte]

	mu  sync.Mutex
	gen map[string]uint64
}

func NewCachedStore(next Store, size int) *CachedStore {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &CachedStore{
		next:  next,
		cache: cache.NewLRUCache[string, []byte](size),
		gen:   make(map[string]uint64),
	}
}

func (s *CachedStore) Get(ctx context.Context, name string) (any, error) {
	if data, ok := s.cache.Get(name); ok {
		return decode(data)
	}

	s.mu.Lock()
	start := s.gen[name]
	s.mu.Unlock()

	value, err := s.next.Get(ctx, name)
	if err != nil {
		return nil, err
	}

	data, err := encode(value)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.gen[name] == start {
		s.cache.Put(name, data)
	}
	s.mu.Unlock()

	return decode(data)
}

func (s *CachedStore) Set(ctx context.Context, name string, value any) error {
	s.invalidate(name)
	defer s.invalidate(name)
	return s.next.Set(ctx, name, value)
}

func (s *CachedStore) Delete(ctx context.Context, name string) error {
	s.invalidate(name)
	defer s.invalidate(name)
	return s.next.Delete(ctx, name)
}

// Stats reports cache hits and misses.
func (s *CachedStore) Stats() cache.Stats {
	return s.cache.Stats()
}

func (s *CachedStore) invalidate(name string) {
	s.mu.Lock()
	s.gen[name]++
	s.cache.Remove(name)
	s.mu.Unlock()
}
