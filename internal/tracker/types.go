package tracker

import (
	"context"

	"tugasku/internal/model"
)

// KindSettings is the refresh topic for settings changes.
const KindSettings model.Kind = "settings"

// RefreshFunc is invoked after a collection changed. It must not block for long.
type RefreshFunc func(ctx context.Context, kind model.Kind)

// TaskFilter selects a view over the task list.
type TaskFilter string

const (
	FilterAll      TaskFilter = "all"
	FilterNew      TaskFilter = "new"
	FilterActive   TaskFilter = "active"
	FilterDone     TaskFilter = "done"
	FilterToday    TaskFilter = "today"
	FilterTomorrow TaskFilter = "tomorrow"
	FilterWeek     TaskFilter = "week"
	FilterOverdue  TaskFilter = "overdue"
)

// TaskFilters lists every accepted filter.
var TaskFilters = []TaskFilter{FilterAll, FilterNew, FilterActive, FilterDone, FilterToday, FilterTomorrow, FilterWeek, FilterOverdue}

// ListTasksInput is the input for ListTasks. An empty filter means all.
type ListTasksInput struct {
	Filter TaskFilter
}

// DaySchedules groups the schedules of one working day.
type DaySchedules struct {
	Day       string
	Schedules []model.Schedule
}

// Stats summarises the collections.
type Stats struct {
	Total           int
	Completed       int
	Pending         int
	Overdue         int
	ByPriority      map[model.Priority]int
	Schedules       int
	SchedulesPerDay map[string]int
	Notes           int
}
