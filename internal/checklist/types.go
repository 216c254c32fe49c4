package checklist

// Item is one checkbox line of a note.
type Item struct {
	Line    int // zero-based line number in the content
	Checked bool
	Text    string
}

// Progress counts the checkboxes of a note.
type Progress struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

// Percent is the completed share in the range 0-100. A note without checkboxes is 0.
func (p Progress) Percent() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Completed) / float64(p.Total) * 100
}

// Done reports whether the note has checkboxes and all of them are checked.
func (p Progress) Done() bool {
	return p.Total > 0 && p.Completed == p.Total
}
