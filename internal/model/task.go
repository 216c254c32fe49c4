package model

import "time"

// Priority of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority maps s onto a Priority. Unknown values yield medium and false.
func ParsePriority(s string) (Priority, bool) {
	switch Priority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return Priority(s), true
	}
	return PriorityMedium, false
}

// Rank orders priorities for sorting, high first.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityLow:
		return 2
	default:
		return 1
	}
}

// TaskStatus is the stored lifecycle state of a task.
// "active" is a derived view (anything not done) and is never stored.
type TaskStatus string

const (
	StatusNew    TaskStatus = "new"
	StatusOpened TaskStatus = "opened"
	StatusDone   TaskStatus = "done"
)

// Task is a homework item.
type Task struct {
	ID        string     `json:"id"`
	Subject   string     `json:"subject"`
	Name      string     `json:"name"`
	Title     string     `json:"title"`
	Page      *int       `json:"page,omitempty"`
	Deadline  string     `json:"deadline"`
	Notes     string     `json:"notes"`
	Warning   string     `json:"warning"`
	Priority  Priority   `json:"priority"`
	Status    TaskStatus `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func (Task) Kind() Kind { return KindTask }
func (Task) isRecord()  {}

// IsDone reports whether the task is completed.
func (t Task) IsDone() bool { return t.Status == StatusDone }
