package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teamtrace/tsheet/internal/aggregate"
	"github.com/teamtrace/tsheet/internal/filter"
	"github.com/teamtrace/tsheet/internal/timeparse"
)

var (
	reportFrom    string
	reportProject string
	reportTask    string
	reportFormat  string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show aggregated per-member hour totals for a week",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportFrom, "from", "", "Week start (YYYY-MM-DD, default: earliest in dataset)")
	reportCmd.Flags().StringVar(&reportProject, "project", "", "Project filter")
	reportCmd.Flags().StringVar(&reportTask, "task", "", "Task filter")
	reportCmd.Flags().StringVar(&reportFormat, "format", "md", "Output format: md, csv, json")
}

func runReport(cmd *cobra.Command, args []string) error {
	ds, _ := loadDataset()
	records := ds.Timesheet.Weekly.Entries

	start := reportFrom
	if start == "" {
		start = earliestLogDate(records)
	}
	from, err := timeparse.ParseDate(start)
	if err != nil {
		return err
	}
	to := from.AddDate(0, 0, 6)

	snap := filter.Snapshot{StartDate: start}.WithProject(reportProject).WithTask(reportTask)

	totals := aggregate.TotalByMember(aggregate.HoursByMemberByDay(records, snap, from, to))
	grand := aggregate.GrandTotal(totals)
	label := fmt.Sprintf("%s to %s", from.Format(timeparse.ISODate), to.Format(timeparse.ISODate))

	// Stable dataset order, not map order.
	var order []string
	for _, m := range filter.Members(records) {
		if _, ok := totals[m]; ok {
			order = append(order, m)
		}
	}

	switch reportFormat {
	case "csv":
		fmt.Println("member,total_hours")
		for _, m := range order {
			fmt.Printf("%s,%.2f\n", m, totals[m])
		}
	case "json":
		fmt.Println("{")
		fmt.Printf("  \"week\": %q,\n", label)
		fmt.Println("  \"members\": [")
		for i, m := range order {
			comma := ","
			if i == len(order)-1 {
				comma = ""
			}
			fmt.Printf("    {\"member\": %q, \"total_hours\": %.2f}%s\n", m, totals[m], comma)
		}
		fmt.Println("  ],")
		fmt.Printf("  \"grand_total_hours\": %.2f\n", grand)
		fmt.Println("}")
	default: // md
		fmt.Printf("Week %s\n", label)
		fmt.Println("--------------------------------")
		for _, m := range order {
			fmt.Printf("%-20s%s\n", m, timeparse.FormatDuration(totals[m]))
		}
		fmt.Println("--------------------------------")
		fmt.Printf("%-20s%s\n", "Total", timeparse.FormatDuration(grand))
	}

	return nil
}
