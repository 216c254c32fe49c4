package memory

import (
	"context"
	"sync"

	"tugasku/internal/storage"
)

// Store is an in-process Repository. A zero quota means unlimited.
type Store struct {
	mu    sync.RWMutex
	data  map[storage.Key][]byte
	quota int64
}

var _ storage.Repository = (*Store)(nil)

// New creates an empty Store limited to quota bytes across all keys.
func New(quota int64) *Store {
	return &Store{
		data:  make(map[storage.Key][]byte),
		quota: quota,
	}
}

func (s *Store) Load(ctx context.Context, key storage.Key) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (s *Store) Save(ctx context.Context, key storage.Key, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.quota > 0 {
		used := int64(len(value))
		for k, v := range s.data {
			if k != key {
				used += int64(len(v))
			}
		}
		if used > s.quota {
			return storage.ErrQuotaExceeded
		}
	}

	v := make([]byte, len(value))
	copy(v, value)
	s.data[key] = v
	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[storage.Key][]byte)
	return nil
}

func (s *Store) Close() error { return nil }
