package timeparse_test

import (
	"testing"
	"time"

	"github.com/teamtrace/tsheet/internal/timeparse"
)

func TestClock(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"12:00 AM", 0},
		{"12:30 AM", 0.5},
		{"1:00 AM", 1},
		{"9:00 AM", 9},
		{"9:30 AM", 9.5},
		{"11:45 AM", 11.75},
		{"12:00 PM", 12},
		{"12:15 PM", 12.25},
		{"1:00 PM", 13},
		{"5:30 PM", 17.5},
		{"11:59 PM", 23 + 59.0/60},
	}
	for _, tt := range tests {
		got, err := timeparse.Clock(tt.in)
		if err != nil {
			t.Errorf("Clock(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Clock(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestClockMonotonic(t *testing.T) {
	// Wall-clock order within a day must map to increasing values.
	ordered := []string{
		"12:00 AM", "12:01 AM", "1:00 AM", "11:59 AM",
		"12:00 PM", "12:01 PM", "1:00 PM", "11:59 PM",
	}
	prev := -1.0
	for _, s := range ordered {
		got, err := timeparse.Clock(s)
		if err != nil {
			t.Fatalf("Clock(%q) unexpected error: %v", s, err)
		}
		if got <= prev {
			t.Errorf("Clock(%q) = %v, not greater than previous %v", s, got, prev)
		}
		prev = got
	}
}

func TestClockMalformed(t *testing.T) {
	for _, s := range []string{"", "9:30", "9 AM", "13:00 PM", "0:30 AM", "9:60 AM", "9:30 XM", "nine thirty AM"} {
		if _, err := timeparse.Clock(s); err == nil {
			t.Errorf("Clock(%q): expected error, got none", s)
		}
	}
}

func TestBreak(t *testing.T) {
	br, err := timeparse.Break("9:00 AM to 9:30 AM")
	if err != nil {
		t.Fatalf("Break: unexpected error: %v", err)
	}
	if br.Start != 9.0 || br.End != 9.5 {
		t.Errorf("Break start/end = %v/%v, want 9/9.5", br.Start, br.End)
	}
	if br.Raw != "9:00 AM to 9:30 AM" || br.StartLabel != "9:00 AM" || br.EndLabel != "9:30 AM" {
		t.Errorf("Break labels = %q/%q/%q", br.Raw, br.StartLabel, br.EndLabel)
	}
}

func TestBreakAbsent(t *testing.T) {
	br, err := timeparse.Break("")
	if err != nil {
		t.Fatalf("Break(\"\"): unexpected error: %v", err)
	}
	if br != nil {
		t.Errorf("Break(\"\") = %+v, want nil", br)
	}
}

func TestBreakMalformed(t *testing.T) {
	for _, s := range []string{"9:00 AM", "9:00 AM - 9:30 AM", "lunch to 9:30 AM"} {
		if _, err := timeparse.Break(s); err == nil {
			t.Errorf("Break(%q): expected error, got none", s)
		}
	}
}

func TestTaskDuration(t *testing.T) {
	got, err := timeparse.TaskDuration("9:00 AM", "5:30 PM")
	if err != nil {
		t.Fatalf("TaskDuration: unexpected error: %v", err)
	}
	if got != 8.5 {
		t.Errorf("TaskDuration = %v, want 8.5", got)
	}
}

func TestTaskDurationInverted(t *testing.T) {
	if _, err := timeparse.TaskDuration("5:30 PM", "9:00 AM"); err == nil {
		t.Error("TaskDuration: expected error for inverted range, got none")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		hours float64
		want  string
	}{
		{0, "0 h 00 m"},
		{0.5, "0 h 30 m"},
		{1, "1 h 00 m"},
		{2.25, "2 h 15 m"},
		{4.5, "4 h 30 m"},
		{8.75, "8 h 45 m"},
		// Rounded minutes hit 60 and must carry into the hour.
		{2.9999, "3 h 00 m"},
		{7.9999, "8 h 00 m"},
	}
	for _, tt := range tests {
		got := timeparse.FormatDuration(tt.hours)
		if got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.hours, got, tt.want)
		}
	}
}

func TestRangeDates(t *testing.T) {
	from := time.Date(2025, 6, 24, 0, 0, 0, 0, time.UTC)
	dates := timeparse.RangeDates(from, 7)
	if len(dates) != 7 {
		t.Fatalf("RangeDates length = %d, want 7", len(dates))
	}
	if got := dates[0].Format(timeparse.ISODate); got != "2025-06-24" {
		t.Errorf("RangeDates[0] = %s, want 2025-06-24", got)
	}
	if got := dates[6].Format(timeparse.ISODate); got != "2025-06-30" {
		t.Errorf("RangeDates[6] = %s, want 2025-06-30", got)
	}
}

func TestMonthRange(t *testing.T) {
	mid := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	first, days := timeparse.MonthRange(mid)
	if got := first.Format(timeparse.ISODate); got != "2025-06-01" {
		t.Errorf("MonthRange first = %s, want 2025-06-01", got)
	}
	if days != 30 {
		t.Errorf("MonthRange days = %d, want 30", days)
	}

	feb := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	if _, days := timeparse.MonthRange(feb); days != 29 {
		t.Errorf("MonthRange days for 2024-02 = %d, want 29", days)
	}
}

func TestInRange(t *testing.T) {
	from := time.Date(2025, 6, 24, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 6)
	if !timeparse.InRange(from, from, to) || !timeparse.InRange(to, from, to) {
		t.Error("InRange: bounds must be inclusive")
	}
	if timeparse.InRange(to.AddDate(0, 0, 1), from, to) {
		t.Error("InRange: day after the window must be excluded")
	}
}
