package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"tugasku/pkg/log"
)

// Storage serializes collections as JSON on top of a Repository.
type Storage struct {
	repo Repository
	l    log.Logger
}

var _ Facade = (*Storage)(nil)

// New creates a Storage facade.
func New(repo Repository, l log.Logger) *Storage {
	return &Storage{repo: repo, l: l}
}

// Get decodes key into dst, which must be a non-nil pointer. It never fails the caller:
// missing or corrupt data leaves dst untouched and returns false.
func (s *Storage) Get(ctx context.Context, key Key, dst any) bool {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		s.l.Errorf(ctx, "storage.Get %s: destination must be a non-nil pointer, got %T", key, dst)
		return false
	}

	raw, err := s.repo.Load(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.l.Warnf(ctx, "storage.Get Load %s: %v", key, err)
		}
		return false
	}

	tmp := reflect.New(rv.Elem().Type())
	if err := json.Unmarshal(raw, tmp.Interface()); err != nil {
		s.l.Warnf(ctx, "storage.Get %s: corrupt data ignored: %v", key, err)
		return false
	}
	rv.Elem().Set(tmp.Elem())
	return true
}

// Set replaces the whole collection stored under key.
// Every failure is wrapped in ErrWriteFailed.
func (s *Storage) Set(ctx context.Context, key Key, records any) error {
	raw, err := json.Marshal(records)
	if err != nil {
		s.l.Errorf(ctx, "storage.Set Marshal %s: %v", key, err)
		return fmt.Errorf("%w: %w: %v", ErrWriteFailed, ErrSerialize, err)
	}

	if err := s.repo.Save(ctx, key, raw); err != nil {
		s.l.Errorf(ctx, "storage.Set Save %s: %v", key, err)
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	return nil
}

// Clear removes every collection.
func (s *Storage) Clear(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		s.l.Errorf(ctx, "storage.Clear: %v", err)
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	return nil
}
