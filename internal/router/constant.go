package router

import "regexp"

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// Keyword sets, checked in this order.
var (
	taskKeywords     = regexp.MustCompile(`\b(tugas|pr|pekerjaan rumah|deadline|homework|tenggat)\b`)
	scheduleKeywords = regexp.MustCompile(`\b(jadwal|jam|pelajaran|kelas)\b`)
	weekdayKeywords  = regexp.MustCompile(`\b(senin|selasa|rabu|kamis|jumat|sabtu|minggu)\b`)
	noteKeywords     = regexp.MustCompile(`\b(catat|catatan|ingat|note|tulis)\b`)
	helpKeywords     = regexp.MustCompile(`\b(bantuan|help|tolong|cara|contoh)\b`)
)

// Reasons
const (
	ReasonTaskKeyword     = "task keyword"
	ReasonScheduleKeyword = "schedule noun and weekday"
	ReasonNoteKeyword     = "note keyword"
	ReasonNoMatch         = "no keyword matched"
)
