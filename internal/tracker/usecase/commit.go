package usecase

import (
	"context"
	"fmt"
	"slices"

	"tugasku/internal/model"
	"tugasku/internal/storage"
	"tugasku/internal/tracker"
)

func (uc *implUseCase) Commit(ctx context.Context, rec model.Record) (model.Record, error) {
	now := uc.now()

	switch r := rec.(type) {
	case model.Task:
		if r.ID == "" {
			r.ID = uc.newID()
		}
		if r.CreatedAt.IsZero() {
			r.CreatedAt = now
		}
		if r.UpdatedAt.IsZero() {
			r.UpdatedAt = r.CreatedAt
		}
		r.Priority, _ = model.ParsePriority(string(r.Priority))
		if r.Status == "" {
			r.Status = model.StatusNew
		}
		err := mutate(ctx, uc, storage.KeyTasks, model.KindTask, &uc.st.tasks, func(ts []model.Task) ([]model.Task, error) {
			return append(ts, r), nil
		})
		if err != nil {
			uc.l.Errorf(ctx, "tracker.Commit task: %v", err)
			return nil, err
		}
		return r, nil

	case model.Schedule:
		if r.ID == "" {
			r.ID = uc.newID()
		}
		if r.CreatedAt.IsZero() {
			r.CreatedAt = now
		}
		err := mutate(ctx, uc, storage.KeySchedules, model.KindSchedule, &uc.st.schedules, func(ss []model.Schedule) ([]model.Schedule, error) {
			return append(ss, r), nil
		})
		if err != nil {
			uc.l.Errorf(ctx, "tracker.Commit schedule: %v", err)
			return nil, err
		}
		return r, nil

	case model.Note:
		if r.ID == "" {
			r.ID = uc.newID()
		}
		if r.CreatedAt.IsZero() {
			r.CreatedAt = now
		}
		if r.UpdatedAt.IsZero() {
			r.UpdatedAt = r.CreatedAt
		}
		err := mutate(ctx, uc, storage.KeyNotes, model.KindNote, &uc.st.notes, func(ns []model.Note) ([]model.Note, error) {
			return append(ns, r), nil
		})
		if err != nil {
			uc.l.Errorf(ctx, "tracker.Commit note: %v", err)
			return nil, err
		}
		return r, nil
	}

	return nil, fmt.Errorf("tracker.Commit: unsupported record %T", rec)
}

// mutate applies fn to a copy of *list and swaps the copy in only after it was persisted,
// so a failed write leaves the in-memory collection as it was.
func mutate[T any](ctx context.Context, uc *implUseCase, key storage.Key, kind model.Kind, list *[]T, fn func([]T) ([]T, error)) error {
	uc.mu.Lock()
	next, err := fn(slices.Clone(*list))
	if err != nil {
		uc.mu.Unlock()
		return err
	}
	if next == nil {
		next = []T{}
	}
	if err := uc.store.Set(ctx, key, next); err != nil {
		uc.mu.Unlock()
		return fmt.Errorf("%w: %w", tracker.ErrStorageWrite, err)
	}
	*list = next
	uc.mu.Unlock()

	uc.refresh(ctx, kind)
	return nil
}

// indexOf returns the position of the element whose id matches, or -1.
func indexOf[T any](list []T, id string, idOf func(T) string) int {
	return slices.IndexFunc(list, func(v T) bool { return idOf(v) == id })
}
