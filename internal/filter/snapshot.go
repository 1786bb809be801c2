package filter

import "github.com/teamtrace/tsheet/internal/model"

// Snapshot is the current set of user-selected filters. Fields hold
// plain string equality filters; the empty string means "no
// restriction". Snapshots are values: every change produces a new
// Snapshot and never touches the old one.
type Snapshot struct {
	// Date is the exact record date for the daily view.
	Date string
	// StartDate is the first day of the window for range views.
	StartDate string
	Member    string
	Project   string
	Task      string
}

// WithMember returns a copy selecting the given member. Changing the
// member invalidates any project/task selection, so both are cleared.
func (s Snapshot) WithMember(member string) Snapshot {
	s.Member = member
	s.Project = ""
	s.Task = ""
	return s
}

// WithProject returns a copy selecting the given project. The task
// selection is cleared since it may not belong to the new project.
func (s Snapshot) WithProject(project string) Snapshot {
	s.Project = project
	s.Task = ""
	return s
}

// WithTask returns a copy selecting the given task.
func (s Snapshot) WithTask(task string) Snapshot {
	s.Task = task
	return s
}

// WithDate returns a copy selecting the given daily-view date.
func (s Snapshot) WithDate(date string) Snapshot {
	s.Date = date
	return s
}

// WithStartDate returns a copy selecting the given range start.
func (s Snapshot) WithStartDate(date string) Snapshot {
	s.StartDate = date
	return s
}

// matchesProject reports whether the project passes the snapshot's
// project filter.
func (s Snapshot) matchesProject(p model.ProjectEntry) bool {
	return s.Project == "" || p.ProjectName == s.Project
}

// matchesTask reports whether the task passes the snapshot's task
// filter.
func (s Snapshot) matchesTask(t model.TaskEntry) bool {
	return s.Task == "" || t.TaskName == s.Task
}

// Members returns the distinct employee names in record order.
func Members(records []model.TimeRecord) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range records {
		if !seen[r.EmployeeName] {
			seen[r.EmployeeName] = true
			out = append(out, r.EmployeeName)
		}
	}
	return out
}

// Projects returns the distinct project names in record order.
func Projects(records []model.TimeRecord) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range records {
		for _, p := range r.Projects {
			if !seen[p.ProjectName] {
				seen[p.ProjectName] = true
				out = append(out, p.ProjectName)
			}
		}
	}
	return out
}

// TasksFor returns the distinct task names under the named project in
// record order. An empty project name yields nil, matching the UI rule
// that the task filter only appears once a project is selected.
func TasksFor(records []model.TimeRecord, project string) []string {
	if project == "" {
		return nil
	}
	seen := make(map[string]bool)
	var out []string
	for _, r := range records {
		for _, p := range r.Projects {
			if p.ProjectName != project {
				continue
			}
			for _, t := range p.Tasks {
				if !seen[t.TaskName] {
					seen[t.TaskName] = true
					out = append(out, t.TaskName)
				}
			}
		}
	}
	return out
}
