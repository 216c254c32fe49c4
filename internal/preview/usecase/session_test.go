package usecase

import (
	"context"
	"errors"
	"testing"

	"tugasku/internal/model"
	"tugasku/internal/preview"
	"tugasku/internal/tracker"
)

func TestOpen(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()

	id := f.open(t, "PR Matematika halaman 20 untuk besok")
	sess, err := f.uc.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if sess.State != preview.StateDrafting {
		t.Errorf("State = %s, want drafting", sess.State)
	}
	if sess.Form.Subject != "Matematika" || sess.Form.Page != "20" || sess.Form.Deadline != "2024-05-02" {
		t.Errorf("Form = %+v", sess.Form)
	}
	if !sess.CanSaveAsNote() {
		t.Error("CanSaveAsNote() = false for a task")
	}

	if _, err := f.uc.Open(ctx, model.ParseResult{}); !errors.Is(err, preview.ErrNothingToConfirm) {
		t.Errorf("Open(empty) error = %v, want ErrNothingToConfirm", err)
	}
}

func TestCancel(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()
	id := f.open(t, "catat beli buku gambar besok")

	if err := f.uc.Cancel(ctx, id); err != nil {
		t.Fatalf("Cancel() error = %v", err)
	}
	if _, err := f.uc.Get(ctx, id); !errors.Is(err, preview.ErrSessionNotFound) {
		t.Errorf("Get() after cancel error = %v, want ErrSessionNotFound", err)
	}
	if err := f.uc.Cancel(ctx, id); !errors.Is(err, preview.ErrSessionNotFound) {
		t.Errorf("Cancel() twice error = %v, want ErrSessionNotFound", err)
	}
	if notes := f.tracker.ListNotes(ctx); len(notes) != 0 {
		t.Errorf("notes after cancel = %d, want 0", len(notes))
	}
	tasks, _ := f.tracker.ListTasks(ctx, tracker.ListTasksInput{})
	if len(tasks) != 0 {
		t.Errorf("tasks after cancel = %d, want 0", len(tasks))
	}
}

func TestSessionsAreBounded(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()

	first := f.open(t, "catat satu")
	for range 4 {
		f.open(t, "catat lagi")
	}
	if _, err := f.uc.Get(ctx, first); !errors.Is(err, preview.ErrSessionNotFound) {
		t.Errorf("Get(oldest) error = %v, want ErrSessionNotFound after eviction", err)
	}
}
