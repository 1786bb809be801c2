package timeparse

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ISODate is the calendar-date layout used throughout the dataset.
const ISODate = "2006-01-02"

// Clock converts a 12-hour clock string like "9:30 AM" into fractional
// hours since midnight in [0, 24). 12 AM maps to 0 and 12 PM to 12;
// other PM hours gain 12 and minutes contribute minutes/60.
func Clock(s string) (float64, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return 0, fmt.Errorf("malformed clock time %q: want \"H:MM AM|PM\"", s)
	}
	hm := strings.SplitN(fields[0], ":", 2)
	if len(hm) != 2 {
		return 0, fmt.Errorf("malformed clock time %q: missing minutes", s)
	}
	hours, err := strconv.Atoi(hm[0])
	if err != nil || hours < 1 || hours > 12 {
		return 0, fmt.Errorf("malformed clock time %q: bad hour %q", s, hm[0])
	}
	minutes, err := strconv.Atoi(hm[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("malformed clock time %q: bad minute %q", s, hm[1])
	}

	switch fields[1] {
	case "AM":
		if hours == 12 {
			hours = 0
		}
	case "PM":
		if hours != 12 {
			hours += 12
		}
	default:
		return 0, fmt.Errorf("malformed clock time %q: bad meridiem %q", s, fields[1])
	}
	return float64(hours) + float64(minutes)/60, nil
}

// BreakRange is a parsed break interval. Start and End are fractional
// hours; the original labels are kept for display.
type BreakRange struct {
	Start      float64
	End        float64
	Raw        string
	StartLabel string
	EndLabel   string
}

// Break parses a break interval of the form "9:00 AM to 9:30 AM".
// An empty string means no break was logged and returns (nil, nil).
// Start < End is not validated.
func Break(s string) (*BreakRange, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.SplitN(s, " to ", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("malformed break range %q: want \"<start> to <end>\"", s)
	}
	start, err := Clock(parts[0])
	if err != nil {
		return nil, fmt.Errorf("break range %q: %w", s, err)
	}
	end, err := Clock(parts[1])
	if err != nil {
		return nil, fmt.Errorf("break range %q: %w", s, err)
	}
	return &BreakRange{
		Start:      start,
		End:        end,
		Raw:        s,
		StartLabel: parts[0],
		EndLabel:   parts[1],
	}, nil
}

// TaskDuration returns the elapsed hours between two clock strings.
// An inverted range (end before start) is a validation error rather
// than a negative duration.
func TaskDuration(start, end string) (float64, error) {
	s, err := Clock(start)
	if err != nil {
		return 0, err
	}
	e, err := Clock(end)
	if err != nil {
		return 0, err
	}
	if e < s {
		return 0, fmt.Errorf("inverted time range: %q ends before it starts (%s to %s)", start+" to "+end, start, end)
	}
	return e - s, nil
}

// FormatDuration formats fractional hours as "H h MM m". Minutes are
// rounded to the nearest integer; a rounded value of 60 carries into
// the hour so 2.9999 renders as "3 h 00 m", never "2 h 60 m".
func FormatDuration(hours float64) string {
	h := int(math.Floor(hours))
	m := int(math.Round((hours - math.Floor(hours)) * 60))
	if m == 60 {
		h++
		m = 0
	}
	return fmt.Sprintf("%d h %02d m", h, m)
}

// ParseDate parses an ISO calendar date like "2025-06-24".
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(ISODate, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed date %q: want YYYY-MM-DD", s)
	}
	return t, nil
}

// RangeDates returns the n consecutive dates starting at from,
// inclusive. Weekly views use n=7, bi-weekly n=14.
func RangeDates(from time.Time, n int) []time.Time {
	dates := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		dates = append(dates, from.AddDate(0, 0, i))
	}
	return dates
}

// MonthRange returns the first day of the month containing t and the
// number of days in that month.
func MonthRange(t time.Time) (time.Time, int) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return first, first.AddDate(0, 1, -1).Day()
}

// InRange reports whether date falls within [from, to] inclusive.
func InRange(date, from, to time.Time) bool {
	return !date.Before(from) && !date.After(to)
}
