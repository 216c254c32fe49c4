package parser_test

import (
	"testing"

	"tugasku/internal/parser"
)

func TestParseNote(t *testing.T) {
	p := newTestParser(t)

	tests := []struct {
		name        string
		text        string
		wantTitle   string
		wantContent string
	}{
		{name: "Long note splits after three words", text: "Catat: beli buku tulis baru di koperasi", wantTitle: "beli buku tulis", wantContent: "baru di koperasi"},
		{name: "Short note uses placeholder content", text: "ingat: ulangan", wantTitle: "ulangan", wantContent: parser.DefaultNoteContent},
		{name: "Prefix without colon", text: "catatan bayar uang kas", wantTitle: "bayar uang kas", wantContent: parser.DefaultNoteContent},
		{name: "Empty note gets default title", text: "catatan:", wantTitle: parser.DefaultNoteTitle, wantContent: parser.DefaultNoteContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := p.ParseNote(tt.text, baseTime)
			if got.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", got.Title, tt.wantTitle)
			}
			if got.Content != tt.wantContent {
				t.Errorf("Content = %q, want %q", got.Content, tt.wantContent)
			}
		})
	}
}
