package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"tugasku/internal/storage"
	"tugasku/internal/storage/memory"
	"tugasku/pkg/datemath"
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

// baseTime is Wednesday, May 1, 2024.
var baseTime = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

// failingFacade wraps a real facade and fails every Set while fail is true.
type failingFacade struct {
	storage.Facade
	fail bool
	sets int
}

func (f *failingFacade) Set(ctx context.Context, key storage.Key, records any) error {
	f.sets++
	if f.fail {
		return fmt.Errorf("%w: %w", storage.ErrWriteFailed, storage.ErrQuotaExceeded)
	}
	return f.Facade.Set(ctx, key, records)
}

func (f *failingFacade) Clear(ctx context.Context) error {
	if f.fail {
		return errors.New("clear failed")
	}
	return f.Facade.Clear(ctx)
}

func newTestUseCase(t *testing.T) (*implUseCase, *failingFacade) {
	t.Helper()
	dates, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("datemath.NewParser: %v", err)
	}
	l := &mockLogger{}
	store := &failingFacade{Facade: storage.New(memory.New(0), l)}
	uc := New(l, store, dates, func() time.Time { return baseTime })

	n := 0
	uc.newID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	return uc, store
}
