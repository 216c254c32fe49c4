package model

// Kind identifies which collection a record belongs to.
type Kind string

const (
	KindTask     Kind = "task"
	KindSchedule Kind = "schedule"
	KindNote     Kind = "note"
	KindUnknown  Kind = "unknown"
)

// Record is implemented by Task, Schedule and Note only.
type Record interface {
	Kind() Kind
	isRecord()
}

// Confidence is a coarse trust label attached to an extracted field.
type Confidence string

const (
	ConfidenceHigh Confidence = "HIGH"
	ConfidenceMed  Confidence = "MED"
	ConfidenceLow  Confidence = "LOW"
)

// Field names an extracted slot.
type Field string

const (
	FieldSubject  Field = "subject"
	FieldPage     Field = "page"
	FieldDeadline Field = "deadline"
	FieldNotes    Field = "notes"
	FieldWarning  Field = "warning"
	FieldPriority Field = "priority"
	FieldDay      Field = "day"
	FieldTime     Field = "time"
	FieldTeacher  Field = "teacher"
	FieldTitle    Field = "title"
	FieldContent  Field = "content"
)

// ParseResult is the transient outcome of parsing a chat message.
// Record is nil when the message could not be classified.
type ParseResult struct {
	Record          Record
	OriginalMessage string
	Confidence      map[Field]Confidence
}

// Kind returns the kind of the carried record, or KindUnknown.
func (r ParseResult) Kind() Kind {
	if r.Record == nil {
		return KindUnknown
	}
	return r.Record.Kind()
}

// Title is the human label of the carried record.
func (r ParseResult) Title() string {
	switch rec := r.Record.(type) {
	case Task:
		return rec.Title
	case Schedule:
		return rec.Label()
	case Note:
		return rec.Title
	}
	return ""
}
