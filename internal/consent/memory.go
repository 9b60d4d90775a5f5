package consent

import (
	"context"

	"github.com/patrickmn/go-cache"
)

// MemoryStore keeps records for the lifetime of the process.
type MemoryStore struct {
	c *cache.Cache
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		c: cache.New(cache.NoExpiration, 0),
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) (*Record, error) {
	v, ok := s.c.Get(key)
	if !ok {
		return nil, ErrNotFound
	}
	record := v.(Record)
	return &record, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, record Record) error {
	s.c.Set(key, record, cache.NoExpiration)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.c.Delete(key)
	return nil
}
