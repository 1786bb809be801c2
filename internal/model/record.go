package model

// DayLog is one day's logged hours for a task (range views) or an
// employee-level roll-up (bi-weekly summary).
type DayLog struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
}

// TaskEntry is a single task under a project. Daily-view entries carry
// clock times and a precomputed duration label; range-view entries carry
// per-day logs instead.
type TaskEntry struct {
	TaskName    string   `json:"taskName"`
	StartTime   string   `json:"startTime,omitempty"`
	EndTime     string   `json:"endTime,omitempty"`
	Duration    string   `json:"duration,omitempty"`
	Description string   `json:"description,omitempty"`
	Daily       []DayLog `json:"daily,omitempty"`
}

// ProjectEntry groups the tasks an employee logged against one project.
type ProjectEntry struct {
	ProjectName string      `json:"projectName"`
	Tasks       []TaskEntry `json:"tasks"`
}

// TimeRecord is one employee's logged activity for a date (daily view)
// or a date-range bucket (weekly/bi-weekly views). TotalHours and
// Summary are precomputed roll-ups carried by the dataset; BreakTime is
// an optional "9:00 AM to 9:30 AM" style interval.
type TimeRecord struct {
	EmployeeID   string         `json:"employeeId,omitempty"`
	EmployeeName string         `json:"employeeName"`
	Date         string         `json:"date,omitempty"`
	TotalHours   float64        `json:"totalHours,omitempty"`
	BreakTime    string         `json:"breakTime,omitempty"`
	Projects     []ProjectEntry `json:"projects"`
	Summary      []DayLog       `json:"summary,omitempty"`
}

// Entries is the per-view wrapper used by the dataset file.
type Entries struct {
	Entries []TimeRecord `json:"entries"`
}

// Timesheet holds one record set per view mode.
type Timesheet struct {
	Daily    Entries `json:"daily"`
	Weekly   Entries `json:"weekly"`
	Biweekly Entries `json:"biweekly"`
}

// Dataset is the top-level structure of a timesheet data file.
type Dataset struct {
	Timesheet Timesheet `json:"timesheet"`
}
