package datemath_test

import (
	"errors"
	"testing"
	"time"

	"tugasku/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Asia/Jakarta")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestNormalize(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024

	tests := []struct {
		name    string
		token   string
		want    string
		wantErr bool
	}{
		{name: "Hari ini", token: "hari ini", want: "2024-05-01"},
		{name: "Today", token: "Today", want: "2024-05-01"},
		{name: "Besok", token: "besok", want: "2024-05-02"},
		{name: "Tomorrow", token: "tomorrow", want: "2024-05-02"},
		{name: "Lusa", token: "lusa", want: "2024-05-03"},
		{name: "Minggu depan", token: "minggu  depan", want: "2024-05-08"},
		{name: "Senin from Wed", token: "senin", want: "2024-05-06"},
		{name: "Kamis from Wed", token: "kamis", want: "2024-05-02"},
		{name: "Minggu from Wed", token: "minggu", want: "2024-05-05"},
		{name: "Rabu from Wed is next week", token: "rabu", want: "2024-05-08"},
		{name: "Next monday", token: "next monday", want: "2024-05-06"},
		{name: "In 3 days", token: "in 3 days", want: "2024-05-04"},
		{name: "In 1 month", token: "in 1 month", want: "2024-06-01"},
		{name: "Invalid duration", token: "in a few days", wantErr: true},
		{name: "D/M/Y", token: "5/3/2024", want: "2024-03-05"},
		{name: "D-M-YY", token: "05-03-24", want: "2024-03-05"},
		{name: "Y-M-D unpadded", token: "2024-3-5", want: "2024-03-05"},
		{name: "Y/M/D", token: "2024/12/31", want: "2024-12-31"},
		{name: "Impossible date", token: "31-02-2024", wantErr: true},
		{name: "Unknown word", token: "kemarin", wantErr: true},
		{name: "Empty", token: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Normalize(tt.token, baseTime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Normalize() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, datemath.ErrUnrecognizedDate) {
					t.Errorf("Normalize() error = %v, want ErrUnrecognizedDate", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("Normalize() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWeekdayIsStrictlyFuture(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 14; i++ {
		base := start.AddDate(0, 0, i)
		today := parser.StartOfDay(base)
		for name, wd := range datemath.Weekdays {
			got, err := parser.Parse(name, base)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", name, err)
			}
			if !got.After(today) {
				t.Errorf("Parse(%q) from %s = %s, want strictly after today", name, base.Format("Mon 2006-01-02"), got.Format("2006-01-02"))
			}
			if got.Weekday() != wd {
				t.Errorf("Parse(%q) weekday = %s, want %s", name, got.Weekday(), wd)
			}
			if got.Sub(today) > 7*24*time.Hour {
				t.Errorf("Parse(%q) more than a week ahead: %s", name, got.Format("2006-01-02"))
			}
		}
	}
}

func TestBesokIgnoresTimeOfDay(t *testing.T) {
	parser, _ := datemath.NewParser("Asia/Jakarta")
	loc := parser.Location()

	for _, hour := range []int{0, 7, 12, 23} {
		base := time.Date(2024, 8, 17, hour, 59, 0, 0, loc)
		got, err := parser.Normalize("besok", base)
		if err != nil {
			t.Fatalf("Normalize(besok) unexpected error: %v", err)
		}
		if got != "2024-08-18" {
			t.Errorf("Normalize(besok) at %02d:59 = %s, want 2024-08-18", hour, got)
		}
	}
}

func TestEndOfDay(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	want := time.Date(2024, 5, 1, 23, 59, 59, 0, time.UTC)

	got := parser.EndOfDay(base)
	if !got.Equal(want) {
		t.Errorf("EndOfDay() got = %v, want %v", got, want)
	}
}

func TestIsValidDate(t *testing.T) {
	if !datemath.IsValidDate("2024-02-29") {
		t.Error("IsValidDate(2024-02-29) = false, want true")
	}
	if datemath.IsValidDate("2023-02-29") {
		t.Error("IsValidDate(2023-02-29) = true, want false")
	}
}
