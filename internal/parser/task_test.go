package parser_test

import (
	"testing"

	"tugasku/internal/model"
)

func TestParseTask(t *testing.T) {
	p := newTestParser(t)

	tests := []struct {
		name         string
		text         string
		wantSubject  string
		wantPage     int
		wantName     string
		wantDeadline string
		wantNotes    string
		wantWarning  string
		wantPriority model.Priority
		wantTitle    string
	}{
		{
			name:         "Known subject with page and besok",
			text:         "PR Matematika halaman 20 untuk besok",
			wantSubject:  "Matematika",
			wantPage:     20,
			wantName:     "Halaman 20",
			wantDeadline: "2024-05-02",
			wantPriority: model.PriorityHigh,
			wantTitle:    "Halaman 20 - Matematika",
		},
		{
			name:         "Untuk rule with items split on dan",
			text:         "tugas untuk fisika hari jumat bawa penggaris dan jangka",
			wantSubject:  "Fisika",
			wantDeadline: "2024-05-03",
			wantNotes:    "penggaris, jangka",
			wantPriority: model.PriorityHigh,
			wantTitle:    "Tugas Fisika",
		},
		{
			name:         "Unknown subject with bare deadline word",
			text:         "Tugas kliping deadline",
			wantSubject:  "kliping",
			wantDeadline: "2024-05-02",
			wantPriority: model.PriorityMedium,
			wantTitle:    "Tugas kliping",
		},
		{
			name:         "Explicit low priority beats subject confidence",
			text:         "PR sejarah biasa saja dikumpulkan 10/05/2024",
			wantSubject:  "Sejarah",
			wantDeadline: "2024-05-10",
			wantPriority: model.PriorityLow,
			wantTitle:    "Tugas Sejarah",
		},
		{
			name:         "Explicit high priority without subject",
			text:         "pr penting kumpulkan lusa",
			wantSubject:  "",
			wantDeadline: "2024-05-03",
			wantPriority: model.PriorityHigh,
			wantTitle:    "pr penting kumpulkan lusa",
		},
		{
			name:         "No subject falls back to truncated raw title",
			text:         "pr untuk besok jangan lupa bawa kamus, kalau tidak lari lapangan",
			wantDeadline: "2024-05-02",
			wantNotes:    "kamus",
			wantWarning:  "jangan lupa",
			wantPriority: model.PriorityMedium,
			wantTitle:    "pr untuk besok jangan lupa baw...",
		},
		{
			name:         "Counted weeks resolve from today",
			text:         "tugas kelompok 2 minggu lagi",
			wantSubject:  "kelompok",
			wantDeadline: "2024-05-15",
			wantPriority: model.PriorityMedium,
			wantTitle:    "Tugas kelompok",
		},
		{
			name:         "Counted unit without lagi is not a weekday",
			text:         "tugas kelompok selama 2 minggu",
			wantSubject:  "kelompok",
			wantDeadline: "",
			wantPriority: model.PriorityMedium,
			wantTitle:    "Tugas kelompok",
		},
		{
			name:         "Impossible date is dropped",
			text:         "tugas biologi 31-02-2024",
			wantSubject:  "Biologi",
			wantDeadline: "",
			wantPriority: model.PriorityHigh,
			wantTitle:    "Tugas Biologi",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := p.ParseTask(tt.text, baseTime)

			if got.Subject != tt.wantSubject {
				t.Errorf("Subject = %q, want %q", got.Subject, tt.wantSubject)
			}
			if tt.wantPage == 0 && got.Page != nil {
				t.Errorf("Page = %d, want nil", *got.Page)
			}
			if tt.wantPage != 0 && (got.Page == nil || *got.Page != tt.wantPage) {
				t.Errorf("Page = %v, want %d", got.Page, tt.wantPage)
			}
			if got.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", got.Name, tt.wantName)
			}
			if got.Deadline != tt.wantDeadline {
				t.Errorf("Deadline = %q, want %q", got.Deadline, tt.wantDeadline)
			}
			if got.Notes != tt.wantNotes {
				t.Errorf("Notes = %q, want %q", got.Notes, tt.wantNotes)
			}
			if got.Warning != tt.wantWarning {
				t.Errorf("Warning = %q, want %q", got.Warning, tt.wantWarning)
			}
			if got.Priority != tt.wantPriority {
				t.Errorf("Priority = %q, want %q", got.Priority, tt.wantPriority)
			}
			if got.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", got.Title, tt.wantTitle)
			}
			if got.Status != model.StatusNew {
				t.Errorf("Status = %q, want %q", got.Status, model.StatusNew)
			}
			if !got.CreatedAt.Equal(baseTime) {
				t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, baseTime)
			}
		})
	}
}

func TestParseTaskConfidence(t *testing.T) {
	p := newTestParser(t)

	_, conf := p.ParseTask("PR Matematika halaman 20 untuk besok", baseTime)
	if conf[model.FieldSubject] != model.ConfidenceHigh {
		t.Errorf("subject confidence = %s, want HIGH", conf[model.FieldSubject])
	}

	_, conf = p.ParseTask("Tugas kliping", baseTime)
	if conf[model.FieldSubject] != model.ConfidenceMed {
		t.Errorf("subject confidence = %s, want MED", conf[model.FieldSubject])
	}
	if conf[model.FieldDeadline] != model.ConfidenceLow {
		t.Errorf("deadline confidence = %s, want LOW", conf[model.FieldDeadline])
	}
}

func TestParseTaskCountedDeadlineConfidence(t *testing.T) {
	p := newTestParser(t)

	tests := map[string]struct {
		text         string
		wantDeadline string
		wantConf     model.Confidence
	}{
		"weeks":              {text: "tugas kelompok 2 minggu lagi", wantDeadline: "2024-05-15", wantConf: model.ConfidenceMed},
		"days":               {text: "pr fisika 3 hari lagi", wantDeadline: "2024-05-04", wantConf: model.ConfidenceMed},
		"weekday still wins": {text: "pr fisika hari minggu, kira kira 2 minggu lagi", wantDeadline: "2024-05-05", wantConf: model.ConfidenceHigh},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, conf := p.ParseTask(tc.text, baseTime)
			if got.Deadline != tc.wantDeadline {
				t.Errorf("Deadline = %q, want %q", got.Deadline, tc.wantDeadline)
			}
			if conf[model.FieldDeadline] != tc.wantConf {
				t.Errorf("deadline confidence = %s, want %s", conf[model.FieldDeadline], tc.wantConf)
			}
		})
	}
}
