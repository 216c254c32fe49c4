package usecase

import (
	"context"

	"tugasku/internal/model"
	"tugasku/internal/tracker"
	"tugasku/pkg/datemath"
)

func (uc *implUseCase) Stats(ctx context.Context) tracker.Stats {
	today := uc.dates.StartOfDay(uc.now()).Format(datemath.DateLayout)

	st := tracker.Stats{
		ByPriority:      map[model.Priority]int{model.PriorityHigh: 0, model.PriorityMedium: 0, model.PriorityLow: 0},
		SchedulesPerDay: make(map[string]int, len(model.WorkingDays)),
	}
	for _, d := range model.WorkingDays {
		st.SchedulesPerDay[d] = 0
	}

	uc.mu.RLock()
	defer uc.mu.RUnlock()

	for _, t := range uc.st.tasks {
		st.Total++
		if t.IsDone() {
			st.Completed++
			continue
		}
		st.Pending++
		st.ByPriority[t.Priority]++
		if isOverdue(t, today) {
			st.Overdue++
		}
	}
	for _, s := range uc.st.schedules {
		st.Schedules++
		st.SchedulesPerDay[s.Day]++
	}
	st.Notes = len(uc.st.notes)
	return st
}
