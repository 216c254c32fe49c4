package model

import "time"

// Schedule is a recurring weekly lesson.
type Schedule struct {
	ID        string    `json:"id"`
	Subject   string    `json:"subject"`
	Day       string    `json:"day"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime,omitempty"`
	Teacher   string    `json:"teacher,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Schedule) Kind() Kind { return KindSchedule }
func (Schedule) isRecord()  {}

// Label is a short title used when the schedule is shown or saved as a note.
func (s Schedule) Label() string {
	switch {
	case s.Subject != "":
		return "Jadwal " + s.Subject
	case s.Day != "":
		return "Jadwal " + s.Day
	}
	return "Jadwal"
}

// WorkingDays is the six-day weekly cycle shown by schedule views.
// Sunday is accepted by the parser but not enumerated here.
var WorkingDays = []string{"senin", "selasa", "rabu", "kamis", "jumat", "sabtu"}
