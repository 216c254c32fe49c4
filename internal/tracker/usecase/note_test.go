package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"tugasku/internal/checklist"
	"tugasku/internal/model"
	"tugasku/internal/tracker"
)

func TestCheckNoteItem(t *testing.T) {
	older := baseTime.Add(-time.Hour)

	tcs := map[string]struct {
		id        string
		item      string
		checked   bool
		failStore bool
		wantErr   error
		wantDone  int
	}{
		"check":          {id: "id-1", item: "buku", checked: true, wantDone: 2},
		"uncheck":        {id: "id-1", item: "pensil", checked: false, wantDone: 0},
		"unknown note":   {id: "nope", item: "buku", checked: true, wantErr: tracker.ErrNotFound, wantDone: 1},
		"unknown item":   {id: "id-1", item: "kalkulator", checked: true, wantErr: tracker.ErrItemNotFound, wantDone: 1},
		"storage failed": {id: "id-1", item: "buku", checked: true, failStore: true, wantErr: tracker.ErrStorageWrite, wantDone: 1},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			uc, store := newTestUseCase(t)
			ctx := context.Background()

			_, err := uc.Commit(ctx, model.Note{
				Title:     "Bawa besok",
				Content:   "- [ ] buku gambar\n- [x] pensil warna",
				CreatedAt: older,
				UpdatedAt: older,
			})
			if err != nil {
				t.Fatalf("Commit() error = %v", err)
			}
			store.fail = tc.failStore

			got, err := uc.CheckNoteItem(ctx, tc.id, tc.item, tc.checked)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("CheckNoteItem() error = %v, want %v", err, tc.wantErr)
			}
			if err == nil && !got.UpdatedAt.Equal(baseTime) {
				t.Errorf("UpdatedAt = %v, want %v", got.UpdatedAt, baseTime)
			}

			stored := uc.ListNotes(ctx)[0]
			if done := checklist.Summarize(stored.Content).Completed; done != tc.wantDone {
				t.Errorf("completed items = %d, want %d", done, tc.wantDone)
			}
		})
	}
}
