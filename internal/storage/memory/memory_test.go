package memory_test

import (
	"context"
	"errors"
	"testing"

	"tugasku/internal/storage"
	"tugasku/internal/storage/memory"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	s := memory.New(10)

	if _, err := s.Load(ctx, storage.KeyTasks); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Load() error = %v, want ErrNotFound", err)
	}

	if err := s.Save(ctx, storage.KeyTasks, []byte("123456")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	// Overwriting the same key only counts the new value.
	if err := s.Save(ctx, storage.KeyTasks, []byte("1234567890")); err != nil {
		t.Fatalf("Save() overwrite error = %v", err)
	}
	if err := s.Save(ctx, storage.KeyNotes, []byte("x")); !errors.Is(err, storage.ErrQuotaExceeded) {
		t.Fatalf("Save() error = %v, want ErrQuotaExceeded", err)
	}

	got, err := s.Load(ctx, storage.KeyTasks)
	if err != nil || string(got) != "1234567890" {
		t.Fatalf("Load() = %q, %v", got, err)
	}

	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if _, err := s.Load(ctx, storage.KeyTasks); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Load() after Clear error = %v, want ErrNotFound", err)
	}
}
