package http

import (
	"tugasku/internal/checklist"
	"tugasku/internal/model"
	"tugasku/internal/tracker"
)

// --- Request DTOs ---

type listTasksReq struct {
	Filter string `form:"filter"`
}

func (r listTasksReq) toInput() tracker.ListTasksInput {
	return tracker.ListTasksInput{Filter: tracker.TaskFilter(r.Filter)}
}

type settingsReq struct {
	Theme string `json:"theme"`
}

func (r settingsReq) toSettings() model.Settings {
	return model.Settings{Theme: model.Theme(r.Theme)}
}

type checkItemReq struct {
	Item    string `json:"item"`
	Checked bool   `json:"checked"`
}

// --- Response DTOs ---

type listTasksResp struct {
	Filter tracker.TaskFilter `json:"filter"`
	Tasks  []model.Task       `json:"tasks"`
	Total  int                `json:"total"`
}

func newListTasksResp(filter tracker.TaskFilter, tasks []model.Task) listTasksResp {
	if filter == "" {
		filter = tracker.FilterAll
	}
	return listTasksResp{Filter: filter, Tasks: tasks, Total: len(tasks)}
}

type listSchedulesResp struct {
	Schedules []model.Schedule `json:"schedules"`
	Total     int              `json:"total"`
}

type daySchedulesResp struct {
	Day       string           `json:"day"`
	Schedules []model.Schedule `json:"schedules"`
}

func newWeeklyResp(week []tracker.DaySchedules) []daySchedulesResp {
	out := make([]daySchedulesResp, len(week))
	for i, d := range week {
		out[i] = daySchedulesResp{Day: d.Day, Schedules: d.Schedules}
	}
	return out
}

type noteResp struct {
	model.Note
	Checklist *checklist.Progress `json:"checklist,omitempty"`
}

func newNoteResp(n model.Note) noteResp {
	resp := noteResp{Note: n}
	if p := checklist.Summarize(n.Content); p.Total > 0 {
		resp.Checklist = &p
	}
	return resp
}

type listNotesResp struct {
	Notes []noteResp `json:"notes"`
	Total int        `json:"total"`
}

func newListNotesResp(notes []model.Note) listNotesResp {
	out := make([]noteResp, len(notes))
	for i, n := range notes {
		out[i] = newNoteResp(n)
	}
	return listNotesResp{Notes: out, Total: len(out)}
}

type statsResp struct {
	Total           int            `json:"total"`
	Completed       int            `json:"completed"`
	Pending         int            `json:"pending"`
	Overdue         int            `json:"overdue"`
	ByPriority      map[string]int `json:"by_priority"`
	Schedules       int            `json:"schedules"`
	SchedulesPerDay map[string]int `json:"schedules_per_day"`
	Notes           int            `json:"notes"`
}

func newStatsResp(st tracker.Stats) statsResp {
	byPriority := make(map[string]int, len(st.ByPriority))
	for p, n := range st.ByPriority {
		byPriority[string(p)] = n
	}
	return statsResp{
		Total:           st.Total,
		Completed:       st.Completed,
		Pending:         st.Pending,
		Overdue:         st.Overdue,
		ByPriority:      byPriority,
		Schedules:       st.Schedules,
		SchedulesPerDay: st.SchedulesPerDay,
		Notes:           st.Notes,
	}
}
