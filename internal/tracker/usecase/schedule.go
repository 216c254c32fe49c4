package usecase

import (
	"context"
	"slices"
	"strings"

	"tugasku/internal/model"
	"tugasku/internal/storage"
	"tugasku/internal/tracker"
	"tugasku/pkg/datemath"
)

func scheduleID(s model.Schedule) string { return s.ID }

func dayOrder(day string) int {
	if i := slices.Index(datemath.IndonesianWeekdays, day); i >= 0 {
		return i
	}
	return len(datemath.IndonesianWeekdays)
}

func sortSchedules(ss []model.Schedule) {
	slices.SortStableFunc(ss, func(a, b model.Schedule) int {
		if d := dayOrder(a.Day) - dayOrder(b.Day); d != 0 {
			return d
		}
		return strings.Compare(a.StartTime, b.StartTime)
	})
}

func (uc *implUseCase) ListSchedules(ctx context.Context, day string) ([]model.Schedule, error) {
	day = strings.ToLower(strings.TrimSpace(day))
	if day != "" && !slices.Contains(datemath.IndonesianWeekdays, day) {
		return nil, tracker.ErrInvalidDay
	}

	uc.mu.RLock()
	out := make([]model.Schedule, 0, len(uc.st.schedules))
	for _, s := range uc.st.schedules {
		if day == "" || s.Day == day {
			out = append(out, s)
		}
	}
	uc.mu.RUnlock()

	sortSchedules(out)
	return out, nil
}

func (uc *implUseCase) WeeklySchedules(ctx context.Context) []tracker.DaySchedules {
	all, _ := uc.ListSchedules(ctx, "")

	week := make([]tracker.DaySchedules, 0, len(model.WorkingDays))
	for _, day := range model.WorkingDays {
		ds := tracker.DaySchedules{Day: day, Schedules: []model.Schedule{}}
		for _, s := range all {
			if s.Day == day {
				ds.Schedules = append(ds.Schedules, s)
			}
		}
		week = append(week, ds)
	}
	return week
}

func (uc *implUseCase) DeleteSchedule(ctx context.Context, id string) error {
	err := mutate(ctx, uc, storage.KeySchedules, model.KindSchedule, &uc.st.schedules, func(ss []model.Schedule) ([]model.Schedule, error) {
		i := indexOf(ss, id, scheduleID)
		if i < 0 {
			return nil, tracker.ErrNotFound
		}
		return slices.Delete(ss, i, i+1), nil
	})
	if err != nil {
		uc.l.Warnf(ctx, "tracker.DeleteSchedule %s: %v", id, err)
	}
	return err
}
