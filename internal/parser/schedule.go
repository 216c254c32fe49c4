package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"tugasku/internal/model"
)

// ParseSchedule extracts a weekly schedule entry from text.
func (p *Parser) ParseSchedule(text string, now time.Time) (model.Schedule, map[model.Field]model.Confidence) {
	lower := strings.ToLower(text)
	conf := map[model.Field]model.Confidence{}

	s := model.Schedule{CreatedAt: now}

	conf[model.FieldSubject] = model.ConfidenceLow
	if sm, ok := firstMatch(p.scheduleSubjectRules, text); ok {
		s.Subject = sm.value
		conf[model.FieldSubject] = sm.confidence
	}

	if day := reWeekday.FindString(lower); day != "" {
		s.Day = day
		conf[model.FieldDay] = model.ConfidenceHigh
	}

	if start, end, ok := extractTimes(lower); ok {
		s.StartTime, s.EndTime = start, end
		conf[model.FieldTime] = model.ConfidenceHigh
	}

	if teacher, ok := extractTeacher(text); ok {
		s.Teacher = teacher
		conf[model.FieldTeacher] = model.ConfidenceMed
	}

	if loc := reBring.FindStringIndex(text); loc != nil {
		s.Notes = strings.TrimSpace(text[loc[0]:])
		conf[model.FieldNotes] = model.ConfidenceMed
	}

	return s, conf
}

// extractTimes prefers an HH:MM-HH:MM range and falls back to a single start time.
func extractTimes(lower string) (string, string, bool) {
	if m := reTimeRange.FindStringSubmatch(lower); m != nil {
		start, okStart := clock(m[1], m[2])
		end, okEnd := clock(m[3], m[4])
		if okStart && okEnd {
			return start, end, true
		}
		if okStart {
			return start, "", true
		}
	}
	for _, m := range reTimeSingle.FindAllStringSubmatch(lower, -1) {
		if start, ok := clock(m[1], m[2]); ok {
			return start, "", true
		}
	}
	return "", "", false
}

// clock formats hour and minute as zero padded HH:MM.
func clock(hour, minute string) (string, bool) {
	h, errH := strconv.Atoi(hour)
	m, errM := strconv.Atoi(minute)
	if errH != nil || errM != nil || h > 23 || m > 59 {
		return "", false
	}
	return fmt.Sprintf("%02d:%02d", h, m), true
}

// NormalizeClock validates a user-typed HH:MM (or H.MM) value.
func NormalizeClock(s string) (string, bool) {
	m := reTimeSingle.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil || m[0] != strings.TrimSpace(s) {
		return "", false
	}
	return clock(m[1], m[2])
}

// extractTeacher takes the words after guru/pak/bu/ibu up to the first non-name keyword.
func extractTeacher(text string) (string, bool) {
	m := reTeacher.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	var name []string
	for _, w := range strings.Fields(m[1]) {
		if teacherStops[strings.ToLower(w)] || len(name) == TeacherMaxNameWords {
			break
		}
		name = append(name, w)
	}
	if len(name) == 0 {
		return "", false
	}
	return strings.Join(name, " "), true
}
