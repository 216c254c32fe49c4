package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"tugasku/internal/parser"
	"tugasku/internal/router"
	"tugasku/internal/storage"
	"tugasku/internal/storage/memory"
	"tugasku/internal/tracker"
	trackeruc "tugasku/internal/tracker/usecase"
	"tugasku/pkg/datemath"
	"tugasku/pkg/toast"
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

type notification struct {
	level toast.Level
	text  string
}

type mockNotifier struct {
	mu   sync.Mutex
	sent []notification
}

func (m *mockNotifier) Notify(ctx context.Context, level toast.Level, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, notification{level: level, text: text})
}

func (m *mockNotifier) count(level toast.Level) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, s := range m.sent {
		if s.level == level {
			n++
		}
	}
	return n
}

// baseTime is Wednesday, May 1, 2024.
var baseTime = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

type fixture struct {
	uc       *implUseCase
	tracker  tracker.UseCase
	parser   *parser.Parser
	notifier *mockNotifier
}

// newFixture wires a preview controller over an in-memory store limited to quota bytes.
func newFixture(t *testing.T, quota int64) fixture {
	t.Helper()
	return newFixtureWithRepo(t, memory.New(quota))
}

func newFixtureWithRepo(t *testing.T, repo storage.Repository) fixture {
	t.Helper()
	dates, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("datemath.NewParser: %v", err)
	}
	l := &mockLogger{}
	clock := func() time.Time { return baseTime }

	tr := trackeruc.New(l, storage.New(repo, l), dates, clock)
	notifier := &mockNotifier{}
	uc, err := New(l, tr, notifier, dates, 4)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	uc.now = clock

	return fixture{
		uc:       uc,
		tracker:  tr,
		parser:   parser.New(l, router.New(l), dates, clock),
		notifier: notifier,
	}
}

func (f fixture) open(t *testing.T, msg string) string {
	t.Helper()
	result, err := f.parser.Build(context.Background(), msg)
	if err != nil {
		t.Fatalf("Build(%q) error = %v", msg, err)
	}
	sess, err := f.uc.Open(context.Background(), result)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return sess.ID
}
