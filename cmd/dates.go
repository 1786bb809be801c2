package cmd

import (
	"time"

	"github.com/teamtrace/tsheet/internal/model"
	"github.com/teamtrace/tsheet/internal/timeparse"
)

// latestDailyDate returns the most recent record date in the daily
// view, used as the default when --date is not given. Falls back to
// today when the dataset is empty.
func latestDailyDate(records []model.TimeRecord) string {
	latest := ""
	for _, r := range records {
		if r.Date > latest {
			latest = r.Date
		}
	}
	if latest == "" {
		return time.Now().Format(timeparse.ISODate)
	}
	return latest
}

// earliestLogDate returns the earliest per-task log date across the
// records, used as the default range start when --from is not given.
func earliestLogDate(records []model.TimeRecord) string {
	earliest := ""
	note := func(date string) {
		if date != "" && (earliest == "" || date < earliest) {
			earliest = date
		}
	}
	for _, r := range records {
		for _, l := range r.Summary {
			note(l.Date)
		}
		for _, p := range r.Projects {
			for _, t := range p.Tasks {
				for _, l := range t.Daily {
					note(l.Date)
				}
			}
		}
	}
	if earliest == "" {
		return time.Now().Format(timeparse.ISODate)
	}
	return earliest
}
