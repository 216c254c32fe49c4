package usecase

import (
	"context"
	"slices"
	"strings"
	"time"

	"tugasku/internal/model"
	"tugasku/internal/storage"
	"tugasku/internal/tracker"
	"tugasku/pkg/datemath"
)

func taskID(t model.Task) string { return t.ID }

func (uc *implUseCase) ListTasks(ctx context.Context, input tracker.ListTasksInput) ([]model.Task, error) {
	filter := input.Filter
	if filter == "" {
		filter = tracker.FilterAll
	}
	if !slices.Contains(tracker.TaskFilters, filter) {
		return nil, tracker.ErrInvalidFilter
	}

	today := uc.dates.StartOfDay(uc.now())
	match := uc.taskMatcher(filter, today)

	uc.mu.RLock()
	out := make([]model.Task, 0, len(uc.st.tasks))
	for _, t := range uc.st.tasks {
		if match(t) {
			out = append(out, t)
		}
	}
	uc.mu.RUnlock()

	sortTasks(out)
	return out, nil
}

func (uc *implUseCase) taskMatcher(filter tracker.TaskFilter, today time.Time) func(model.Task) bool {
	todayStr := today.Format(datemath.DateLayout)
	tomorrowStr := today.AddDate(0, 0, 1).Format(datemath.DateLayout)
	monday := today.AddDate(0, 0, -((int(today.Weekday()) + 6) % 7))
	weekStart := monday.Format(datemath.DateLayout)
	weekEnd := monday.AddDate(0, 0, 6).Format(datemath.DateLayout)

	switch filter {
	case tracker.FilterNew:
		return func(t model.Task) bool { return t.Status == model.StatusNew }
	case tracker.FilterActive:
		return func(t model.Task) bool { return !t.IsDone() }
	case tracker.FilterDone:
		return model.Task.IsDone
	case tracker.FilterToday:
		return func(t model.Task) bool { return !t.IsDone() && t.Deadline == todayStr }
	case tracker.FilterTomorrow:
		return func(t model.Task) bool { return !t.IsDone() && t.Deadline == tomorrowStr }
	case tracker.FilterWeek:
		return func(t model.Task) bool {
			return !t.IsDone() && t.Deadline != "" && t.Deadline >= weekStart && t.Deadline <= weekEnd
		}
	case tracker.FilterOverdue:
		return func(t model.Task) bool { return isOverdue(t, todayStr) }
	}
	return func(model.Task) bool { return true }
}

func isOverdue(t model.Task, today string) bool {
	return !t.IsDone() && t.Deadline != "" && t.Deadline < today
}

// sortTasks orders by priority, then deadline with undated tasks last, then creation time.
func sortTasks(ts []model.Task) {
	slices.SortStableFunc(ts, func(a, b model.Task) int {
		if d := a.Priority.Rank() - b.Priority.Rank(); d != 0 {
			return d
		}
		switch {
		case a.Deadline == "" && b.Deadline != "":
			return 1
		case a.Deadline != "" && b.Deadline == "":
			return -1
		}
		if c := strings.Compare(a.Deadline, b.Deadline); c != 0 {
			return c
		}
		return a.CreatedAt.Compare(b.CreatedAt)
	})
}

func (uc *implUseCase) ToggleTask(ctx context.Context, id string) (model.Task, error) {
	return uc.updateTask(ctx, id, func(t model.Task) (model.Task, error) {
		if t.IsDone() {
			t.Status = model.StatusOpened
		} else {
			t.Status = model.StatusDone
		}
		return t, nil
	})
}

func (uc *implUseCase) UpdateTaskStatus(ctx context.Context, id string, status model.TaskStatus) (model.Task, error) {
	switch status {
	case model.StatusNew, model.StatusOpened, model.StatusDone:
	default:
		return model.Task{}, tracker.ErrInvalidStatus
	}
	return uc.updateTask(ctx, id, func(t model.Task) (model.Task, error) {
		t.Status = status
		return t, nil
	})
}

func (uc *implUseCase) updateTask(ctx context.Context, id string, fn func(model.Task) (model.Task, error)) (model.Task, error) {
	var updated model.Task
	err := mutate(ctx, uc, storage.KeyTasks, model.KindTask, &uc.st.tasks, func(ts []model.Task) ([]model.Task, error) {
		i := indexOf(ts, id, taskID)
		if i < 0 {
			return nil, tracker.ErrNotFound
		}
		t, err := fn(ts[i])
		if err != nil {
			return nil, err
		}
		t.UpdatedAt = uc.now()
		ts[i] = t
		updated = t
		return ts, nil
	})
	if err != nil {
		uc.l.Warnf(ctx, "tracker.updateTask %s: %v", id, err)
		return model.Task{}, err
	}
	return updated, nil
}

func (uc *implUseCase) DeleteTask(ctx context.Context, id string) error {
	err := mutate(ctx, uc, storage.KeyTasks, model.KindTask, &uc.st.tasks, func(ts []model.Task) ([]model.Task, error) {
		i := indexOf(ts, id, taskID)
		if i < 0 {
			return nil, tracker.ErrNotFound
		}
		return slices.Delete(ts, i, i+1), nil
	})
	if err != nil {
		uc.l.Warnf(ctx, "tracker.DeleteTask %s: %v", id, err)
	}
	return err
}
