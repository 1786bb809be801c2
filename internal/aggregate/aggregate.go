// Package aggregate derives hour totals from filtered timesheet
// records. All functions are pure and recompute from scratch; results
// for zero matching records are empty maps or zero totals, never
// errors.
package aggregate

import (
	"time"

	"github.com/teamtrace/tsheet/internal/filter"
	"github.com/teamtrace/tsheet/internal/model"
	"github.com/teamtrace/tsheet/internal/timeparse"
)

// TotalHours sums the elapsed hours of every task in the record that
// passes the snapshot's project/task filter (daily view). The filter
// predicate is re-applied here regardless of any earlier filtering.
// A record with no projects totals zero.
func TotalHours(rec model.TimeRecord, snap filter.Snapshot) (float64, error) {
	var sum float64
	for _, p := range rec.Projects {
		if snap.Project != "" && p.ProjectName != snap.Project {
			continue
		}
		for _, t := range p.Tasks {
			if snap.Task != "" && t.TaskName != snap.Task {
				continue
			}
			d, err := timeparse.TaskDuration(t.StartTime, t.EndTime)
			if err != nil {
				return 0, err
			}
			sum += d
		}
	}
	return sum, nil
}

// HoursByMemberByDay buckets range-view day logs into a per-member,
// per-ISO-date hour map. Only logs inside [from, to] count, and two
// logs for the same member and date accumulate additively. Every
// member passing the member filter gets a bucket map, even if no log
// lands in it.
func HoursByMemberByDay(records []model.TimeRecord, snap filter.Snapshot, from, to time.Time) map[string]map[string]float64 {
	out := make(map[string]map[string]float64)
	for _, r := range records {
		if snap.Member != "" && r.EmployeeName != snap.Member {
			continue
		}
		if out[r.EmployeeName] == nil {
			out[r.EmployeeName] = make(map[string]float64)
		}
		for _, p := range r.Projects {
			if snap.Project != "" && p.ProjectName != snap.Project {
				continue
			}
			for _, t := range p.Tasks {
				if snap.Task != "" && t.TaskName != snap.Task {
					continue
				}
				for _, l := range t.Daily {
					d, err := timeparse.ParseDate(l.Date)
					if err != nil {
						continue
					}
					if !timeparse.InRange(d, from, to) {
						continue
					}
					out[r.EmployeeName][l.Date] += l.Hours
				}
			}
		}
	}
	return out
}

// TotalByMember collapses a per-member per-day map to one scalar per
// member.
func TotalByMember(byDay map[string]map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(byDay))
	for member, days := range byDay {
		var sum float64
		for _, h := range days {
			sum += h
		}
		out[member] = sum
	}
	return out
}

// GrandTotal sums every member's total for the header badge.
func GrandTotal(totals map[string]float64) float64 {
	var sum float64
	for _, h := range totals {
		sum += h
	}
	return sum
}
