package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"tugasku/internal/model"
	"tugasku/internal/parser"
	"tugasku/internal/preview"
	"tugasku/pkg/datemath"
)

func formFromRecord(rec model.Record) preview.Form {
	switch r := rec.(type) {
	case model.Task:
		f := preview.Form{
			Title:    r.Title,
			Name:     r.Name,
			Subject:  r.Subject,
			Deadline: r.Deadline,
			Notes:    r.Notes,
			Warning:  r.Warning,
			Priority: string(r.Priority),
		}
		if r.Page != nil {
			f.Page = strconv.Itoa(*r.Page)
		}
		return f
	case model.Schedule:
		return preview.Form{
			Subject:   r.Subject,
			Day:       r.Day,
			StartTime: r.StartTime,
			EndTime:   r.EndTime,
			Teacher:   r.Teacher,
			Notes:     r.Notes,
		}
	case model.Note:
		return preview.Form{Title: r.Title, Content: r.Content}
	}
	return preview.Form{}
}

// coalesce returns newVal when it is non-blank, otherwise existing.
func coalesce(newVal, existing string) string {
	if v := strings.TrimSpace(newVal); v != "" {
		return v
	}
	return existing
}

func invalid(field model.Field, value string) error {
	return fmt.Errorf("%w: %s %q", preview.ErrInvalidField, field, value)
}

// applyForm merges f into rec. Non-empty fields win; empty fields keep the parsed value.
func (uc *implUseCase) applyForm(rec model.Record, f preview.Form) (model.Record, error) {
	switch r := rec.(type) {
	case model.Task:
		t, err := uc.applyTask(r, f)
		if err != nil {
			return nil, err
		}
		return t, nil
	case model.Schedule:
		s, err := applySchedule(r, f)
		if err != nil {
			return nil, err
		}
		return s, nil
	case model.Note:
		r.Title = coalesce(f.Title, r.Title)
		r.Content = coalesce(f.Content, r.Content)
		return r, nil
	}
	return nil, preview.ErrNothingToConfirm
}

func (uc *implUseCase) applyTask(t model.Task, f preview.Form) (model.Task, error) {
	t.Title = coalesce(f.Title, t.Title)
	t.Name = coalesce(f.Name, t.Name)
	t.Subject = coalesce(f.Subject, t.Subject)
	t.Notes = coalesce(f.Notes, t.Notes)
	t.Warning = coalesce(f.Warning, t.Warning)

	if v := strings.TrimSpace(f.Page); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page <= 0 {
			return model.Task{}, invalid(model.FieldPage, v)
		}
		t.Page = &page
	}

	if v := strings.TrimSpace(f.Deadline); v != "" && v != t.Deadline {
		d, err := uc.dates.Normalize(v, uc.now())
		if err != nil {
			return model.Task{}, invalid(model.FieldDeadline, v)
		}
		t.Deadline = d
	}

	if v := strings.TrimSpace(f.Priority); v != "" {
		p, ok := model.ParsePriority(strings.ToLower(v))
		if !ok {
			return model.Task{}, invalid(model.FieldPriority, v)
		}
		t.Priority = p
	}
	return t, nil
}

func applySchedule(s model.Schedule, f preview.Form) (model.Schedule, error) {
	s.Subject = coalesce(f.Subject, s.Subject)
	s.Teacher = coalesce(f.Teacher, s.Teacher)
	s.Notes = coalesce(f.Notes, s.Notes)

	if v := strings.ToLower(strings.TrimSpace(f.Day)); v != "" {
		if _, ok := datemath.Weekdays[v]; !ok {
			return model.Schedule{}, invalid(model.FieldDay, v)
		}
		s.Day = v
	}

	for _, slot := range []struct {
		value string
		dst   *string
	}{
		{f.StartTime, &s.StartTime},
		{f.EndTime, &s.EndTime},
	} {
		v := strings.TrimSpace(slot.value)
		if v == "" {
			continue
		}
		c, ok := parser.NormalizeClock(v)
		if !ok {
			return model.Schedule{}, invalid(model.FieldTime, v)
		}
		*slot.dst = c
	}
	return s, nil
}
