// Package rows flattens filtered timesheet records into display rows
// for timeline and table rendering.
package rows

import (
	"github.com/teamtrace/tsheet/internal/filter"
	"github.com/teamtrace/tsheet/internal/model"
)

// placeholder stands in for a missing task description.
const placeholder = "—"

// Row is one task occurrence ready for tabular display.
type Row struct {
	EmployeeName string
	ProjectName  string
	TaskName     string
	Duration     string
	StartTime    string
	EndTime      string
	Description  string
}

// Flatten projects every task surviving the snapshot's project/task
// filter into a flat row sequence, preserving record → project → task
// order. An empty result is the caller's "no data" signal.
func Flatten(records []model.TimeRecord, snap filter.Snapshot) []Row {
	var out []Row
	for _, r := range records {
		for _, p := range r.Projects {
			if snap.Project != "" && p.ProjectName != snap.Project {
				continue
			}
			for _, t := range p.Tasks {
				if snap.Task != "" && t.TaskName != snap.Task {
					continue
				}
				desc := t.Description
				if desc == "" {
					desc = placeholder
				}
				out = append(out, Row{
					EmployeeName: r.EmployeeName,
					ProjectName:  p.ProjectName,
					TaskName:     t.TaskName,
					Duration:     t.Duration,
					StartTime:    t.StartTime,
					EndTime:      t.EndTime,
					Description:  desc,
				})
			}
		}
	}
	return out
}
