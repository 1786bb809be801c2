package aggregate_test

import (
	"math"
	"testing"
	"time"

	"github.com/teamtrace/tsheet/internal/aggregate"
	"github.com/teamtrace/tsheet/internal/filter"
	"github.com/teamtrace/tsheet/internal/model"
)

const eps = 1e-9

func dailyRecord() model.TimeRecord {
	return model.TimeRecord{
		EmployeeName: "Asha Verma",
		Date:         "2025-06-25",
		Projects: []model.ProjectEntry{
			{
				ProjectName: "Website Redesign",
				Tasks: []model.TaskEntry{
					{TaskName: "UI Design", StartTime: "9:00 AM", EndTime: "12:00 PM"},
					{TaskName: "Wireframes", StartTime: "1:00 PM", EndTime: "3:30 PM"},
				},
			},
			{
				ProjectName: "Mobile App",
				Tasks: []model.TaskEntry{
					{TaskName: "QA", StartTime: "3:30 PM", EndTime: "5:00 PM"},
				},
			},
		},
	}
}

func weeklyRecords() []model.TimeRecord {
	return []model.TimeRecord{
		{
			EmployeeName: "Asha Verma",
			Projects: []model.ProjectEntry{
				{
					ProjectName: "Website Redesign",
					Tasks: []model.TaskEntry{
						{TaskName: "UI Design", Daily: []model.DayLog{
							{Date: "2025-06-24", Hours: 3.5},
							{Date: "2025-06-25", Hours: 4},
							{Date: "2025-07-02", Hours: 6},
						}},
						{TaskName: "Wireframes", Daily: []model.DayLog{
							{Date: "2025-06-24", Hours: 1.0},
						}},
					},
				},
			},
		},
		{
			EmployeeName: "Rafi Ahmed",
			Projects: []model.ProjectEntry{
				{
					ProjectName: "Mobile App",
					Tasks: []model.TaskEntry{
						{TaskName: "QA", Daily: []model.DayLog{
							{Date: "2025-06-27", Hours: 5},
						}},
					},
				},
			},
		},
	}
}

func week() (time.Time, time.Time) {
	from := time.Date(2025, 6, 24, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 0, 6)
}

func TestTotalHours(t *testing.T) {
	tests := []struct {
		name string
		snap filter.Snapshot
		want float64
	}{
		{"no filter", filter.Snapshot{}, 3 + 2.5 + 1.5},
		{"by project", filter.Snapshot{Project: "Website Redesign"}, 5.5},
		{"by task", filter.Snapshot{Project: "Website Redesign", Task: "Wireframes"}, 2.5},
		{"task under other project", filter.Snapshot{Project: "Website Redesign", Task: "QA"}, 0},
	}
	for _, tt := range tests {
		got, err := aggregate.TotalHours(dailyRecord(), tt.snap)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
			continue
		}
		if math.Abs(got-tt.want) > eps {
			t.Errorf("%s: TotalHours = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestTotalHoursEmptyProjects(t *testing.T) {
	rec := model.TimeRecord{EmployeeName: "Asha Verma", Projects: []model.ProjectEntry{}}
	got, err := aggregate.TotalHours(rec, filter.Snapshot{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Errorf("TotalHours with no projects = %v, want 0", got)
	}
}

func TestTotalHoursParseError(t *testing.T) {
	rec := model.TimeRecord{
		EmployeeName: "Asha Verma",
		Projects: []model.ProjectEntry{
			{ProjectName: "X", Tasks: []model.TaskEntry{{TaskName: "Y", StartTime: "nine", EndTime: "5:00 PM"}}},
		},
	}
	if _, err := aggregate.TotalHours(rec, filter.Snapshot{}); err == nil {
		t.Error("expected parse error for malformed start time, got none")
	}
}

func TestHoursByMemberByDayAccumulates(t *testing.T) {
	records := []model.TimeRecord{
		{
			EmployeeName: "Asha",
			Projects: []model.ProjectEntry{
				{
					ProjectName: "Website Redesign",
					Tasks: []model.TaskEntry{
						{TaskName: "UI Design", Daily: []model.DayLog{{Date: "2025-06-24", Hours: 3.5}}},
						{TaskName: "QA", Daily: []model.DayLog{{Date: "2025-06-24", Hours: 1.0}}},
					},
				},
			},
		},
	}
	from, to := week()
	byDay := aggregate.HoursByMemberByDay(records, filter.Snapshot{}, from, to)
	if got := byDay["Asha"]["2025-06-24"]; math.Abs(got-4.5) > eps {
		t.Errorf("two logs for the same member+date must sum: got %v, want 4.5", got)
	}
}

func TestHoursByMemberByDayWindow(t *testing.T) {
	from, to := week()
	byDay := aggregate.HoursByMemberByDay(weeklyRecords(), filter.Snapshot{}, from, to)

	if _, ok := byDay["Asha Verma"]["2025-07-02"]; ok {
		t.Error("log outside the window must not be bucketed")
	}
	if got := byDay["Asha Verma"]["2025-06-24"]; math.Abs(got-4.5) > eps {
		t.Errorf("2025-06-24 bucket = %v, want 4.5", got)
	}
	if got := byDay["Rafi Ahmed"]["2025-06-27"]; math.Abs(got-5) > eps {
		t.Errorf("2025-06-27 bucket = %v, want 5", got)
	}
}

func TestHoursByMemberByDayMemberFilter(t *testing.T) {
	from, to := week()
	byDay := aggregate.HoursByMemberByDay(weeklyRecords(), filter.Snapshot{Member: "Rafi Ahmed"}, from, to)
	if len(byDay) != 1 {
		t.Fatalf("member filter kept %d members, want 1", len(byDay))
	}
	if _, ok := byDay["Rafi Ahmed"]; !ok {
		t.Error("expected Rafi Ahmed bucket")
	}
}

func TestTotalByMemberRoundtrip(t *testing.T) {
	from, to := week()
	byDay := aggregate.HoursByMemberByDay(weeklyRecords(), filter.Snapshot{}, from, to)
	totals := aggregate.TotalByMember(byDay)

	// Each member's total must equal the sum of their day buckets.
	for member, days := range byDay {
		var want float64
		for _, h := range days {
			want += h
		}
		if got := totals[member]; math.Abs(got-want) > eps {
			t.Errorf("%s: total = %v, want %v", member, got, want)
		}
	}

	if got := aggregate.GrandTotal(totals); math.Abs(got-(4.5+4+5)) > eps {
		t.Errorf("GrandTotal = %v, want 13.5", got)
	}
}

func TestEmptyRecordsYieldEmptyAggregates(t *testing.T) {
	from, to := week()
	byDay := aggregate.HoursByMemberByDay(nil, filter.Snapshot{}, from, to)
	if len(byDay) != 0 {
		t.Errorf("HoursByMemberByDay(nil) = %v, want empty", byDay)
	}
	if got := aggregate.GrandTotal(aggregate.TotalByMember(byDay)); got != 0 {
		t.Errorf("GrandTotal of empty map = %v, want 0", got)
	}
}
