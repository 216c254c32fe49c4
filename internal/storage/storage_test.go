package storage_test

import (
	"context"
	"errors"
	"testing"

	"tugasku/internal/model"
	"tugasku/internal/storage"
	"tugasku/internal/storage/memory"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func TestGetMissingKey(t *testing.T) {
	s := storage.New(memory.New(0), &mockLogger{})

	var tasks []model.Task
	if s.Get(context.Background(), storage.KeyTasks, &tasks) {
		t.Error("Get() = true for missing key")
	}
	if len(tasks) != 0 {
		t.Errorf("Get() filled %d tasks for missing key", len(tasks))
	}
}

func TestGetCorruptDataLeavesDestination(t *testing.T) {
	ctx := context.Background()
	repo := memory.New(0)
	if err := repo.Save(ctx, storage.KeyNotes, []byte(`{not json`)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	s := storage.New(repo, &mockLogger{})

	notes := []model.Note{{ID: "keep"}}
	if s.Get(ctx, storage.KeyNotes, &notes) {
		t.Error("Get() = true for corrupt data")
	}
	if len(notes) != 1 || notes[0].ID != "keep" {
		t.Errorf("Get() modified destination: %+v", notes)
	}
}

func TestSetThenGet(t *testing.T) {
	ctx := context.Background()
	s := storage.New(memory.New(0), &mockLogger{})

	page := 12
	in := []model.Task{{ID: "t1", Title: "Tugas Kimia", Page: &page, Priority: model.PriorityHigh}}
	if err := s.Set(ctx, storage.KeyTasks, in); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	var out []model.Task
	if !s.Get(ctx, storage.KeyTasks, &out) {
		t.Fatal("Get() = false after Set")
	}
	if len(out) != 1 || out[0].Title != "Tugas Kimia" || out[0].Page == nil || *out[0].Page != 12 {
		t.Errorf("Get() = %+v", out)
	}
}

func TestSetQuotaExceeded(t *testing.T) {
	s := storage.New(memory.New(16), &mockLogger{})

	err := s.Set(context.Background(), storage.KeyNotes, []model.Note{{ID: "n1", Title: "terlalu panjang untuk kuota"}})
	if !errors.Is(err, storage.ErrWriteFailed) {
		t.Errorf("Set() error = %v, want ErrWriteFailed", err)
	}
	if !errors.Is(err, storage.ErrQuotaExceeded) {
		t.Errorf("Set() error = %v, want ErrQuotaExceeded", err)
	}
}

func TestSetSerializationError(t *testing.T) {
	s := storage.New(memory.New(0), &mockLogger{})

	err := s.Set(context.Background(), storage.KeySettings, map[string]any{"bad": make(chan int)})
	if !errors.Is(err, storage.ErrWriteFailed) || !errors.Is(err, storage.ErrSerialize) {
		t.Errorf("Set() error = %v, want ErrWriteFailed and ErrSerialize", err)
	}
}

func TestGetRejectsNonPointer(t *testing.T) {
	s := storage.New(memory.New(0), &mockLogger{})
	var settings model.Settings
	if s.Get(context.Background(), storage.KeySettings, settings) {
		t.Error("Get() = true for non-pointer destination")
	}
}
