package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teamtrace/tsheet/internal/aggregate"
	"github.com/teamtrace/tsheet/internal/filter"
	"github.com/teamtrace/tsheet/internal/timeparse"
)

var (
	weeklyFrom    string
	weeklyMember  string
	weeklyProject string
	weeklyTask    string
)

var weeklyCmd = &cobra.Command{
	Use:   "weekly",
	Short: "Show the weekly member × day grid",
	Args:  cobra.NoArgs,
	RunE:  runWeekly,
}

func init() {
	weeklyCmd.Flags().StringVar(&weeklyFrom, "from", "", "Week start (YYYY-MM-DD, default: earliest in dataset)")
	weeklyCmd.Flags().StringVar(&weeklyMember, "member", "", "Member filter")
	weeklyCmd.Flags().StringVar(&weeklyProject, "project", "", "Project filter")
	weeklyCmd.Flags().StringVar(&weeklyTask, "task", "", "Task filter")
}

func runWeekly(cmd *cobra.Command, args []string) error {
	ds, _ := loadDataset()
	records := ds.Timesheet.Weekly.Entries

	start := weeklyFrom
	if start == "" {
		start = earliestLogDate(records)
	}
	from, err := timeparse.ParseDate(start)
	if err != nil {
		return err
	}
	to := from.AddDate(0, 0, 6)

	snap := filter.Snapshot{StartDate: start}.
		WithMember(weeklyMember).
		WithProject(weeklyProject).
		WithTask(weeklyTask)

	byDay := aggregate.HoursByMemberByDay(records, snap, from, to)
	totals := aggregate.TotalByMember(byDay)
	dates := timeparse.RangeDates(from, 7)

	fmt.Printf("Weekly Timesheet — %s to %s\n", from.Format("Jan 2"), to.Format("Jan 2 2006"))
	fmt.Printf("Members: %d   Total: %s\n\n", len(byDay), timeparse.FormatDuration(aggregate.GrandTotal(totals)))

	// Header: day-of-week columns plus the totals column.
	fmt.Printf("%-18s", "")
	for _, d := range dates {
		fmt.Printf(" %-10s", d.Format("Mon 02"))
	}
	fmt.Printf(" %s\n", "Total")

	for _, member := range filter.Members(records) {
		days, ok := byDay[member]
		if !ok {
			continue
		}
		fmt.Printf("%-18s", member)
		for _, d := range dates {
			cell := "-"
			if h, ok := days[d.Format(timeparse.ISODate)]; ok {
				cell = timeparse.FormatDuration(h)
			}
			fmt.Printf(" %-10s", cell)
		}
		fmt.Printf(" %s\n", timeparse.FormatDuration(totals[member]))
	}
	return nil
}
