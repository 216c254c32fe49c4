package model

import "time"

// Note is a free-form reminder.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Note) Kind() Kind { return KindNote }
func (Note) isRecord()  {}
