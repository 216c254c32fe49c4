package parser

import (
	"regexp"
	"strings"
)

// Log prefixes
const (
	LogPrefixBuild = "internal.parser.Build"
)

// Defaults
const (
	TitleMaxRunes       = 30
	TitleEllipsis       = "..."
	DefaultNoteTitle    = "Catatan Baru"
	DefaultNoteContent  = "Isi catatan..."
	PageNameFormat      = "Halaman %d"
	TaskTitleFormat     = "Tugas %s"
	NamedTaskFormat     = "%s - %s"
	DeadlineKeyword     = "deadline"
	RelativeTomorrow    = "besok"
	ItemsSeparator      = ", "
	TeacherMaxNameWords = 4
	DurationFormat      = "in %s %s"
)

var (
	// Task
	reSubjectFor    = regexp.MustCompile(`(?i)\b(?:tugas|pr|pekerjaan rumah)\s+untuk\s+(\w+)`)
	reSubjectAfter  = regexp.MustCompile(`(?i)\b(?:tugas|pr|pekerjaan rumah)\s+(\w+)`)
	rePage          = regexp.MustCompile(`(?i)\b(?:halaman|hal|hlm|page|pg)\.?\s*(\d{1,3})\b`)
	reDateToken     = regexp.MustCompile(`\b(hari ini|besok|lusa|minggu depan|senin|selasa|rabu|kamis|jumat|sabtu|minggu|today|tomorrow|\d{4}[/-]\d{1,2}[/-]\d{1,2}|\d{1,2}[/-]\d{1,2}[/-](?:\d{4}|\d{2}))\b`)
	reCountedUnit   = regexp.MustCompile(`\b(\d{1,2})\s+(hari|minggu|bulan)(\s+lagi)?\b`)
	reDeadlineWord  = regexp.MustCompile(`\bdeadline\b`)
	reItems         = regexp.MustCompile(`(?i)\b(?:jangan lupa bawa|bawalah|membawa|bawa)\s+([^.,;]+)`)
	reItemSeparator = regexp.MustCompile(`(?i)\s+dan\s+|,`)
	reWarning       = regexp.MustCompile(`\b(lari lapangan|push up|sit up|jangan lupa|peringatan|dihukum|ditegur)\b`)
	rePriorityHigh  = regexp.MustCompile(`\b(penting|urgent|segera|mendesak)\b`)
	rePriorityLow   = regexp.MustCompile(`\b(biasa|bebas|santai)\b`)

	// Schedule
	reScheduleSubject = regexp.MustCompile(`(?i)\b(?:jadwal|pelajaran|kelas)(?:\s+(?:jadwal|pelajaran|kelas))*\s+(\w+)`)
	reWeekday         = regexp.MustCompile(`\b(senin|selasa|rabu|kamis|jumat|sabtu|minggu)\b`)
	reTimeRange       = regexp.MustCompile(`\b(\d{1,2})[:.](\d{2})\s*(?:-|sampai|s/d)\s*(\d{1,2})[:.](\d{2})\b`)
	reTimeSingle      = regexp.MustCompile(`\b(\d{1,2})[:.](\d{2})\b`)
	reTeacher         = regexp.MustCompile(`(?i)\b(?:guru|pak|bu|ibu)\s+([a-z]+(?:\s+[a-z]+)*)`)
	reBring           = regexp.MustCompile(`(?i)bawa`)

	// Note
	reNotePrefix = regexp.MustCompile(`(?i)^\s*(?:catatan|catat|ingat|note|tulis)\b\s*(?::|bahwa\b)?\s*`)
)

// stopWords are never taken as a subject.
var stopWords = map[string]bool{
	"untuk": true, "halaman": true, "hal": true, "hlm": true, "page": true, "pg": true,
	"hari": true, "ini": true, "besok": true, "lusa": true, "depan": true, "tanggal": true,
	"senin": true, "selasa": true, "rabu": true, "kamis": true, "jumat": true, "sabtu": true, "minggu": true,
	"yang": true, "di": true, "ke": true, "dari": true, "dan": true, "deadline": true, "jam": true,
	"pada": true, "bawa": true, "jangan": true, "harus": true, "nanti": true, "mulai": true, "pukul": true,
	"jadwal": true, "pelajaran": true, "kelas": true,
	"penting": true, "urgent": true, "segera": true, "mendesak": true, "biasa": true, "bebas": true, "santai": true,
}

// durationUnits maps counted Indonesian units to the date normalizer's duration units.
var durationUnits = map[string]string{
	"hari":   "days",
	"minggu": "weeks",
	"bulan":  "months",
}

// teacherStops end a teacher name.
var teacherStops = map[string]bool{
	"jam": true, "pukul": true, "hari": true, "bawa": true, "membawa": true, "di": true, "pada": true,
	"ruang": true, "kelas": true, "dan": true, "untuk": true, "mulai": true, "jangan": true,
	"senin": true, "selasa": true, "rabu": true, "kamis": true, "jumat": true, "sabtu": true, "minggu": true,
}

func isStopWord(word string) bool {
	w := strings.ToLower(word)
	if stopWords[w] {
		return true
	}
	return strings.Trim(w, "0123456789") == ""
}
