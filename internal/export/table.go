// Package export renders filtered timesheet data into downloadable
// files: PDF, Excel, CSV, and JSON. All writers work on the same flat
// Table projection so every format sees identical data.
package export

import (
	"fmt"
	"strconv"
	"time"

	"github.com/teamtrace/tsheet/internal/filter"
	"github.com/teamtrace/tsheet/internal/model"
	"github.com/teamtrace/tsheet/internal/rows"
	"github.com/teamtrace/tsheet/internal/timeparse"
)

// View names a timesheet view mode for export.
type View string

const (
	ViewDaily    View = "daily"
	ViewWeekly   View = "weekly"
	ViewBiweekly View = "biweekly"
)

// labelDate is the dd/mm/yyyy layout used in report headers.
const labelDate = "02/01/2006"

// Table is a flat, format-independent projection of an export.
type Table struct {
	Title     string
	DateLabel string
	Member    string
	Header    []string
	Rows      [][]string
}

// DailyTable projects daily-view records into an export table with one
// row per task occurrence.
func DailyTable(records []model.TimeRecord, snap filter.Snapshot) (Table, error) {
	date, err := timeparse.ParseDate(snap.Date)
	if err != nil {
		return Table{}, err
	}

	t := Table{
		Title:     "Daily Timesheet Report",
		DateLabel: "Date: " + date.Format(labelDate),
		Member:    memberLabel(snap),
		Header:    []string{"Employee", "Project", "Task", "Start Time", "End Time", "Duration"},
	}
	for _, row := range rows.Flatten(records, snap) {
		t.Rows = append(t.Rows, []string{
			row.EmployeeName,
			row.ProjectName,
			row.TaskName,
			orDash(row.StartTime),
			orDash(row.EndTime),
			orDash(row.Duration),
		})
	}
	return t, nil
}

// RangeTable projects already-narrowed range-view records into an
// export table with one row per day log.
func RangeTable(records []model.TimeRecord, snap filter.Snapshot, from, to time.Time, title string) Table {
	t := Table{
		Title:     title,
		DateLabel: fmt.Sprintf("Week: %s to %s", from.Format(labelDate), to.Format(labelDate)),
		Member:    memberLabel(snap),
		Header:    []string{"Employee", "Project", "Task", "Date", "Hours"},
	}
	for _, r := range records {
		for _, p := range r.Projects {
			for _, task := range p.Tasks {
				for _, l := range task.Daily {
					t.Rows = append(t.Rows, []string{
						r.EmployeeName,
						p.ProjectName,
						task.TaskName,
						l.Date,
						formatHours(l.Hours),
					})
				}
			}
		}
	}
	return t
}

// SummaryTable projects bi-weekly summary roll-ups into an export
// table with one row per member per day.
func SummaryTable(records []model.TimeRecord, snap filter.Snapshot, from, to time.Time) Table {
	t := Table{
		Title:     "Bi-Weekly Timesheet Report",
		DateLabel: fmt.Sprintf("Period: %s to %s", from.Format(labelDate), to.Format(labelDate)),
		Member:    memberLabel(snap),
		Header:    []string{"Employee", "Date", "Hours"},
	}
	for _, r := range records {
		if snap.Member != "" && r.EmployeeName != snap.Member {
			continue
		}
		for _, l := range r.Summary {
			d, err := timeparse.ParseDate(l.Date)
			if err != nil || !timeparse.InRange(d, from, to) {
				continue
			}
			t.Rows = append(t.Rows, []string{r.EmployeeName, l.Date, formatHours(l.Hours)})
		}
	}
	return t
}

// FileName derives the default export file name for a view, matching
// the Timesheet_<date> / Weekly_Timesheet_<start> convention.
func FileName(view View, snap filter.Snapshot, ext string) string {
	switch view {
	case ViewWeekly:
		return "Weekly_Timesheet_" + snap.StartDate + "." + ext
	case ViewBiweekly:
		return "BiWeekly_Timesheet_" + snap.StartDate + "." + ext
	default:
		return "Timesheet_" + snap.Date + "." + ext
	}
}

func memberLabel(snap filter.Snapshot) string {
	if snap.Member == "" {
		return "All"
	}
	return snap.Member
}

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'g', -1, 64)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
