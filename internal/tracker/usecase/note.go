package usecase

import (
	"context"
	"slices"

	"tugasku/internal/checklist"
	"tugasku/internal/model"
	"tugasku/internal/storage"
	"tugasku/internal/tracker"
)

func noteID(n model.Note) string { return n.ID }

// ListNotes returns notes, most recently updated first.
func (uc *implUseCase) ListNotes(ctx context.Context) []model.Note {
	uc.mu.RLock()
	out := slices.Clone(uc.st.notes)
	uc.mu.RUnlock()

	if out == nil {
		out = []model.Note{}
	}
	slices.SortStableFunc(out, func(a, b model.Note) int {
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})
	return out
}

func (uc *implUseCase) DeleteNote(ctx context.Context, id string) error {
	err := mutate(ctx, uc, storage.KeyNotes, model.KindNote, &uc.st.notes, func(ns []model.Note) ([]model.Note, error) {
		i := indexOf(ns, id, noteID)
		if i < 0 {
			return nil, tracker.ErrNotFound
		}
		return slices.Delete(ns, i, i+1), nil
	})
	if err != nil {
		uc.l.Warnf(ctx, "tracker.DeleteNote %s: %v", id, err)
	}
	return err
}

func (uc *implUseCase) CheckNoteItem(ctx context.Context, id, item string, checked bool) (model.Note, error) {
	var updated model.Note
	err := mutate(ctx, uc, storage.KeyNotes, model.KindNote, &uc.st.notes, func(ns []model.Note) ([]model.Note, error) {
		i := indexOf(ns, id, noteID)
		if i < 0 {
			return nil, tracker.ErrNotFound
		}
		content, n := checklist.Check(ns[i].Content, item, checked)
		if n == 0 {
			return nil, tracker.ErrItemNotFound
		}
		ns[i].Content = content
		ns[i].UpdatedAt = uc.now()
		updated = ns[i]
		return ns, nil
	})
	if err != nil {
		uc.l.Warnf(ctx, "tracker.CheckNoteItem %s: %v", id, err)
		return model.Note{}, err
	}
	return updated, nil
}
