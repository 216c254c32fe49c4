package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	reInDuration = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)
	reDMY        = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})[/-](\d{4}|\d{2})$`)
	reYMD        = regexp.MustCompile(`^(\d{4})[/-](\d{1,2})[/-](\d{1,2})$`)
)

// Parser converts relative, day-name and explicit date tokens to absolute dates.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Jakarta"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse converts a date token to midnight of the resolved day in the parser's timezone.
// The baseTime is used as the reference point (usually time.Now()).
func (p *Parser) Parse(token string, baseTime time.Time) (time.Time, error) {
	token = strings.Join(strings.Fields(strings.ToLower(token)), " ")
	today := p.StartOfDay(baseTime)

	switch token {
	case "today", "hari ini":
		return today, nil
	case "tomorrow", "besok":
		return today.AddDate(0, 0, 1), nil
	case "lusa":
		return today.AddDate(0, 0, 2), nil
	case "minggu depan", "next week":
		return today.AddDate(0, 0, 7), nil
	}

	if strings.HasPrefix(token, "in ") {
		return p.parseInDuration(token, today)
	}

	if t, ok := p.parseWeekday(strings.TrimPrefix(token, "next "), today); ok {
		return t, nil
	}

	if t, ok := p.parseExplicit(token); ok {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognizedDate, token)
}

// Normalize resolves token and formats it as YYYY-MM-DD.
func (p *Parser) Normalize(token string, baseTime time.Time) (string, error) {
	t, err := p.Parse(token, baseTime)
	if err != nil {
		return "", err
	}
	return t.Format(DateLayout), nil
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(token string, today time.Time) (time.Time, error) {
	matches := reInDuration.FindStringSubmatch(token)
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("%w: invalid duration format %q", ErrUnrecognizedDate, token)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return today.AddDate(0, 0, amount), nil
	case strings.HasPrefix(unit, "week"):
		return today.AddDate(0, 0, amount*7), nil
	default:
		return today.AddDate(0, amount, 0), nil
	}
}

// parseWeekday resolves a day name to its next occurrence strictly after today.
func (p *Parser) parseWeekday(name string, today time.Time) (time.Time, bool) {
	target, ok := Weekdays[name]
	if !ok {
		return time.Time{}, false
	}

	daysUntil := (int(target) - int(today.Weekday()) + 7) % 7
	if daysUntil == 0 {
		daysUntil = 7
	}
	return today.AddDate(0, 0, daysUntil), true
}

// parseExplicit handles D-M-Y, D/M/Y, Y-M-D and Y/M/D. Two-digit years are read as 20YY.
func (p *Parser) parseExplicit(token string) (time.Time, bool) {
	var year, month, day int
	if m := reYMD.FindStringSubmatch(token); m != nil {
		year, _ = strconv.Atoi(m[1])
		month, _ = strconv.Atoi(m[2])
		day, _ = strconv.Atoi(m[3])
	} else if m := reDMY.FindStringSubmatch(token); m != nil {
		day, _ = strconv.Atoi(m[1])
		month, _ = strconv.Atoi(m[2])
		year, _ = strconv.Atoi(m[3])
		if len(m[3]) == 2 {
			year += 2000
		}
	} else {
		return time.Time{}, false
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, p.location)
	// time.Date normalizes overflow (31-02 becomes 02-03); reject instead.
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

// IsValidDate reports whether s is a YYYY-MM-DD calendar date.
func IsValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
