package tracker

import (
	"context"

	"tugasku/internal/model"
)

// UseCase owns the in-memory collections and keeps them in step with storage.
type UseCase interface {
	// Load reads every collection from storage. Missing or corrupt data yields empty collections.
	Load(ctx context.Context) error

	// Commit assigns an ID and timestamps to rec, appends it to its collection and persists it.
	// On a storage failure the in-memory collection is left unchanged.
	Commit(ctx context.Context, rec model.Record) (model.Record, error)

	ListTasks(ctx context.Context, input ListTasksInput) ([]model.Task, error)
	ToggleTask(ctx context.Context, id string) (model.Task, error)
	UpdateTaskStatus(ctx context.Context, id string, status model.TaskStatus) (model.Task, error)
	DeleteTask(ctx context.Context, id string) error

	// ListSchedules returns schedules of day (all days when empty) ordered by day then start time.
	ListSchedules(ctx context.Context, day string) ([]model.Schedule, error)
	WeeklySchedules(ctx context.Context) []DaySchedules
	DeleteSchedule(ctx context.Context, id string) error

	ListNotes(ctx context.Context) []model.Note
	DeleteNote(ctx context.Context, id string) error
	// CheckNoteItem sets the checkbox lines of a note whose text contains item.
	CheckNoteItem(ctx context.Context, id, item string, checked bool) (model.Note, error)

	Settings(ctx context.Context) model.Settings
	UpdateSettings(ctx context.Context, s model.Settings) (model.Settings, error)

	Stats(ctx context.Context) Stats
	ClearAll(ctx context.Context) error

	// Subscribe registers fn for changes of kind. Panics inside fn are recovered.
	Subscribe(kind model.Kind, fn RefreshFunc)
}
