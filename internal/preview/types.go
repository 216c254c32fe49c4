package preview

import (
	"time"

	"tugasku/internal/model"
)

// State of a preview session.
type State string

const (
	StateDrafting    State = "drafting"
	StateConfirmed   State = "confirmed"
	StateSavedAsNote State = "saved_as_note"
	StateCancelled   State = "cancelled"
)

// Messages shown through the notifier.
const (
	MsgSaved       = "Sukses disimpan"
	MsgSaveFailed  = "Gagal menyimpan data."
	MsgStorageFull = "Gagal menyimpan: penyimpanan penuh. Hapus tugas lama."
	NotePrefix     = "Dari parsing: "
)

// Form holds one editable text value per entity attribute.
// Empty values keep what the parser produced.
type Form struct {
	Title     string `json:"title"`
	Name      string `json:"name"`
	Subject   string `json:"subject"`
	Page      string `json:"page"`
	Deadline  string `json:"deadline"`
	Notes     string `json:"notes"`
	Warning   string `json:"warning"`
	Priority  string `json:"priority"`
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Teacher   string `json:"teacher"`
	Content   string `json:"content"`
}

// Session is one open preview of a parsed message.
type Session struct {
	ID        string
	State     State
	Result    model.ParseResult
	Form      Form
	CreatedAt time.Time
}

// CanSaveAsNote reports whether the save-as-note action is offered.
func (s Session) CanSaveAsNote() bool {
	k := s.Result.Kind()
	return k == model.KindTask || k == model.KindSchedule
}

// ConfirmInput carries the form values submitted with a confirm action.
type ConfirmInput struct {
	ID   string
	Form Form
}

// ConfirmOutput is the outcome of a confirm or save-as-note action.
type ConfirmOutput struct {
	State  State
	Record model.Record
}
