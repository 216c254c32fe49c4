package datemath

import (
	"errors"
	"time"
)

// ErrUnrecognizedDate is returned when a token matches none of the date rules.
var ErrUnrecognizedDate = errors.New("unrecognized date")

// DateLayout is the canonical calendar date format produced by Normalize.
const DateLayout = "2006-01-02"

// Weekdays maps Indonesian and English day names to time.Weekday.
var Weekdays = map[string]time.Weekday{
	"minggu": time.Sunday,
	"senin":  time.Monday,
	"selasa": time.Tuesday,
	"rabu":   time.Wednesday,
	"kamis":  time.Thursday,
	"jumat":  time.Friday,
	"sabtu":  time.Saturday,

	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// IndonesianWeekdays lists the Indonesian day names in display order, Monday first.
var IndonesianWeekdays = []string{"senin", "selasa", "rabu", "kamis", "jumat", "sabtu", "minggu"}
