package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teamtrace/tsheet/internal/aggregate"
	"github.com/teamtrace/tsheet/internal/filter"
	"github.com/teamtrace/tsheet/internal/rows"
	"github.com/teamtrace/tsheet/internal/timeparse"
)

var (
	dailyDate    string
	dailyMember  string
	dailyProject string
	dailyTask    string
	dailyAll     bool
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Show the daily timesheet view",
	Args:  cobra.NoArgs,
	RunE:  runDaily,
}

func init() {
	dailyCmd.Flags().StringVar(&dailyDate, "date", "", "Date to show (YYYY-MM-DD, default: latest in dataset)")
	dailyCmd.Flags().StringVar(&dailyMember, "member", "", "Member filter (default: first member)")
	dailyCmd.Flags().StringVar(&dailyProject, "project", "", "Project filter")
	dailyCmd.Flags().StringVar(&dailyTask, "task", "", "Task filter")
	dailyCmd.Flags().BoolVar(&dailyAll, "all", false, "Show all members instead of one")
}

func runDaily(cmd *cobra.Command, args []string) error {
	ds, cfg := loadDataset()
	records := ds.Timesheet.Daily.Entries

	member := dailyMember
	if member == "" && !dailyAll {
		// The daily view always focuses one member; fall back to the
		// configured default, then the first member in the dataset.
		member = cfg.DefaultMember
		if member == "" {
			if members := filter.Members(records); len(members) > 0 {
				member = members[0]
			}
		}
	}

	date := dailyDate
	if date == "" {
		date = latestDailyDate(records)
	}

	snap := filter.Snapshot{Date: date}.WithMember(member).WithProject(dailyProject).WithTask(dailyTask)

	day, err := timeparse.ParseDate(date)
	if err != nil {
		return err
	}
	fmt.Printf("Daily Timesheet — %s\n\n", day.Format("Mon, Jan 2 2006"))

	filtered := filter.Daily(records, snap)
	for _, rec := range filtered {
		total, err := aggregate.TotalHours(rec, snap)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		fmt.Printf("%-20s %s total", rec.EmployeeName, timeparse.FormatDuration(total))
		br, err := timeparse.Break(rec.BreakTime)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		if br != nil {
			fmt.Printf("   break %s to %s", br.StartLabel, br.EndLabel)
		}
		fmt.Println()
	}
	if len(filtered) > 0 {
		fmt.Println()
	}

	printRows(rows.Flatten(filtered, snap))
	return nil
}

// printRows prints the flattened task table, or the no-data placeholder
// when nothing survived filtering.
func printRows(list []rows.Row) {
	if len(list) == 0 {
		fmt.Println("No timesheet entries for this date.")
		return
	}

	fmt.Printf("%-18s %-20s %-18s %-10s %-10s %-10s %s\n",
		"Member", "Project", "Task", "Start", "End", "Total", "Description")
	for _, r := range list {
		fmt.Printf("%-18s %-20s %-18s %-10s %-10s %-10s %s\n",
			r.EmployeeName, r.ProjectName, r.TaskName, r.StartTime, r.EndTime, r.Duration, r.Description)
	}
}
