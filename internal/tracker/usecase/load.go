package usecase

import (
	"context"

	"tugasku/internal/model"
	"tugasku/internal/storage"
)

func (uc *implUseCase) Load(ctx context.Context) error {
	var (
		tasks     []model.Task
		schedules []model.Schedule
		notes     []model.Note
		settings  = model.DefaultSettings()
	)
	uc.store.Get(ctx, storage.KeyTasks, &tasks)
	uc.store.Get(ctx, storage.KeySchedules, &schedules)
	uc.store.Get(ctx, storage.KeyNotes, &notes)
	uc.store.Get(ctx, storage.KeySettings, &settings)

	for i := range tasks {
		tasks[i].Priority, _ = model.ParsePriority(string(tasks[i].Priority))
		if tasks[i].Status == "" {
			tasks[i].Status = model.StatusNew
		}
	}
	if settings.Theme != model.ThemeLight && settings.Theme != model.ThemeDark {
		settings = model.DefaultSettings()
	}

	uc.mu.Lock()
	uc.st = state{tasks: tasks, schedules: schedules, notes: notes, settings: settings}
	uc.mu.Unlock()

	uc.l.Infof(ctx, "tracker.Load: %d tasks, %d schedules, %d notes", len(tasks), len(schedules), len(notes))
	return nil
}
