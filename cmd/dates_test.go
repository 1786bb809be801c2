package cmd

import (
	"testing"

	"github.com/teamtrace/tsheet/internal/model"
)

func TestLatestDailyDate(t *testing.T) {
	records := []model.TimeRecord{
		{EmployeeName: "Asha Verma", Date: "2025-06-24"},
		{EmployeeName: "Rafi Ahmed", Date: "2025-06-26"},
		{EmployeeName: "Nadia Islam", Date: "2025-06-25"},
	}
	if got := latestDailyDate(records); got != "2025-06-26" {
		t.Errorf("latestDailyDate = %q, want 2025-06-26", got)
	}
}

func TestEarliestLogDate(t *testing.T) {
	records := []model.TimeRecord{
		{
			EmployeeName: "Asha Verma",
			Projects: []model.ProjectEntry{
				{ProjectName: "Website Redesign", Tasks: []model.TaskEntry{
					{TaskName: "UI Design", Daily: []model.DayLog{
						{Date: "2025-06-25", Hours: 3},
						{Date: "2025-06-24", Hours: 2},
					}},
				}},
			},
		},
		{
			EmployeeName: "Rafi Ahmed",
			Summary:      []model.DayLog{{Date: "2025-06-23", Hours: 8}},
		},
	}
	if got := earliestLogDate(records); got != "2025-06-23" {
		t.Errorf("earliestLogDate = %q, want 2025-06-23", got)
	}
}

func TestDateDefaultsOnEmptyDataset(t *testing.T) {
	// Both helpers must fall back to a valid date, never panic.
	if got := latestDailyDate(nil); len(got) != len("2006-01-02") {
		t.Errorf("latestDailyDate(nil) = %q, want a YYYY-MM-DD date", got)
	}
	if got := earliestLogDate(nil); len(got) != len("2006-01-02") {
		t.Errorf("earliestLogDate(nil) = %q, want a YYYY-MM-DD date", got)
	}
}
