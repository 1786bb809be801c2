// Package filter selects and narrows timesheet records against a
// user-selected filter snapshot. Filtering never mutates its input:
// narrowing builds new records with freshly copied project/task slices,
// and an empty result is a valid outcome, not an error.
package filter

import (
	"time"

	"github.com/teamtrace/tsheet/internal/model"
	"github.com/teamtrace/tsheet/internal/timeparse"
)

// Daily returns the records matching the snapshot for the daily view:
// the record's date must equal snap.Date exactly, the member must match
// when one is selected, and when a project or task is selected at least
// one nested entry must carry it (the task under a matching project).
// Records are returned whole; row projection applies the nested
// narrowing so that a record with zero surviving rows still renders its
// summary card.
func Daily(records []model.TimeRecord, snap Snapshot) []model.TimeRecord {
	var out []model.TimeRecord
	for _, r := range records {
		if r.Date != snap.Date {
			continue
		}
		if snap.Member != "" && r.EmployeeName != snap.Member {
			continue
		}
		if !hasMatch(r, snap) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// hasMatch reports whether the record contains a project passing the
// project filter and, beneath one, a task passing the task filter.
func hasMatch(r model.TimeRecord, snap Snapshot) bool {
	if snap.Project == "" && snap.Task == "" {
		return true
	}
	projectSeen := false
	for _, p := range r.Projects {
		if !snap.matchesProject(p) {
			continue
		}
		projectSeen = true
		if snap.Task == "" {
			return true
		}
		for _, t := range p.Tasks {
			if snap.matchesTask(t) {
				return true
			}
		}
	}
	// Project matched but no task under it did.
	if snap.Task != "" {
		return false
	}
	return projectSeen
}

// Range returns the records matching the snapshot for a range view,
// with deep narrowing: non-matching projects and tasks are discarded,
// per-task day logs outside [from, to] are discarded, and tasks or
// projects left empty by that are dropped. A record whose narrowed
// project list is empty is dropped entirely. Ordering follows the
// input and the input records are never modified.
func Range(records []model.TimeRecord, snap Snapshot, from, to time.Time) []model.TimeRecord {
	var out []model.TimeRecord
	for _, r := range records {
		if snap.Member != "" && r.EmployeeName != snap.Member {
			continue
		}
		projects := narrowProjects(r.Projects, snap, from, to)
		if len(projects) == 0 {
			continue
		}
		nr := r
		nr.Projects = projects
		out = append(out, nr)
	}
	return out
}

func narrowProjects(projects []model.ProjectEntry, snap Snapshot, from, to time.Time) []model.ProjectEntry {
	var out []model.ProjectEntry
	for _, p := range projects {
		if !snap.matchesProject(p) {
			continue
		}
		tasks := narrowTasks(p.Tasks, snap, from, to)
		if len(tasks) == 0 {
			continue
		}
		np := p
		np.Tasks = tasks
		out = append(out, np)
	}
	return out
}

func narrowTasks(tasks []model.TaskEntry, snap Snapshot, from, to time.Time) []model.TaskEntry {
	var out []model.TaskEntry
	for _, t := range tasks {
		if !snap.matchesTask(t) {
			continue
		}
		daily := narrowDaily(t.Daily, from, to)
		if len(daily) == 0 {
			continue
		}
		nt := t
		nt.Daily = daily
		out = append(out, nt)
	}
	return out
}

func narrowDaily(logs []model.DayLog, from, to time.Time) []model.DayLog {
	var out []model.DayLog
	for _, l := range logs {
		d, err := timeparse.ParseDate(l.Date)
		if err != nil {
			// Unparseable dates can never fall inside the window.
			continue
		}
		if timeparse.InRange(d, from, to) {
			out = append(out, l)
		}
	}
	return out
}
