package parser

import (
	"strings"
	"time"

	"tugasku/internal/model"
)

// ParseNote strips a leading command word and splits the rest into title and content.
func (p *Parser) ParseNote(text string, now time.Time) (model.Note, map[model.Field]model.Confidence) {
	cleaned := strings.TrimSpace(reNotePrefix.ReplaceAllString(text, ""))
	words := strings.Fields(cleaned)

	n := model.Note{CreatedAt: now, UpdatedAt: now}
	conf := map[model.Field]model.Confidence{}

	if len(words) > 3 {
		n.Title = strings.Join(words[:3], " ")
		n.Content = strings.Join(words[3:], " ")
		conf[model.FieldTitle] = model.ConfidenceMed
		conf[model.FieldContent] = model.ConfidenceMed
		return n, conf
	}

	n.Title = strings.Join(words, " ")
	conf[model.FieldTitle] = model.ConfidenceMed
	if n.Title == "" {
		n.Title = DefaultNoteTitle
		conf[model.FieldTitle] = model.ConfidenceLow
	}
	n.Content = DefaultNoteContent
	conf[model.FieldContent] = model.ConfidenceLow
	return n, conf
}
