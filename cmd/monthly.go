package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/teamtrace/tsheet/internal/aggregate"
	"github.com/teamtrace/tsheet/internal/filter"
	"github.com/teamtrace/tsheet/internal/timeparse"
)

var (
	monthlyMonth   string
	monthlyMember  string
	monthlyProject string
	monthlyTask    string
)

var monthlyCmd = &cobra.Command{
	Use:   "monthly",
	Short: "Show per-member hours for a calendar month",
	Args:  cobra.NoArgs,
	RunE:  runMonthly,
}

func init() {
	monthlyCmd.Flags().StringVar(&monthlyMonth, "month", "", "Month to show (YYYY-MM, default: month of earliest log)")
	monthlyCmd.Flags().StringVar(&monthlyMember, "member", "", "Member filter")
	monthlyCmd.Flags().StringVar(&monthlyProject, "project", "", "Project filter")
	monthlyCmd.Flags().StringVar(&monthlyTask, "task", "", "Task filter")
}

func runMonthly(cmd *cobra.Command, args []string) error {
	ds, _ := loadDataset()
	records := ds.Timesheet.Weekly.Entries

	var anchor time.Time
	if monthlyMonth == "" {
		var err error
		anchor, err = timeparse.ParseDate(earliestLogDate(records))
		if err != nil {
			return err
		}
	} else {
		var err error
		anchor, err = time.Parse("2006-01", monthlyMonth)
		if err != nil {
			return fmt.Errorf("malformed month %q: want YYYY-MM", monthlyMonth)
		}
	}

	from, days := timeparse.MonthRange(anchor)
	to := from.AddDate(0, 0, days-1)

	snap := filter.Snapshot{StartDate: from.Format(timeparse.ISODate)}.
		WithMember(monthlyMember).
		WithProject(monthlyProject).
		WithTask(monthlyTask)

	byDay := aggregate.HoursByMemberByDay(records, snap, from, to)
	totals := aggregate.TotalByMember(byDay)

	fmt.Printf("Monthly Timesheet — %s\n", from.Format("January 2006"))
	fmt.Printf("Members: %d   Total: %s\n\n", len(byDay), timeparse.FormatDuration(aggregate.GrandTotal(totals)))

	for _, member := range filter.Members(records) {
		days, ok := byDay[member]
		if !ok {
			continue
		}
		fmt.Println(member)
		dates := make([]string, 0, len(days))
		for d := range days {
			dates = append(dates, d)
		}
		sort.Strings(dates)
		for _, d := range dates {
			fmt.Printf("  %-12s %s\n", d, timeparse.FormatDuration(days[d]))
		}
		fmt.Printf("  %-12s %s\n\n", "Total", timeparse.FormatDuration(totals[member]))
	}
	return nil
}
