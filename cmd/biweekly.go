package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/teamtrace/tsheet/internal/model"
	"github.com/teamtrace/tsheet/internal/timeparse"
)

var (
	biweeklyFrom   string
	biweeklyMember string
)

var biweeklyCmd = &cobra.Command{
	Use:   "biweekly",
	Short: "Show the bi-weekly summary view",
	Args:  cobra.NoArgs,
	RunE:  runBiweekly,
}

func init() {
	biweeklyCmd.Flags().StringVar(&biweeklyFrom, "from", "", "Period start (YYYY-MM-DD, default: earliest in dataset)")
	biweeklyCmd.Flags().StringVar(&biweeklyMember, "member", "", "Member filter")
}

func runBiweekly(cmd *cobra.Command, args []string) error {
	ds, _ := loadDataset()
	records := ds.Timesheet.Biweekly.Entries

	start := biweeklyFrom
	if start == "" {
		start = earliestLogDate(records)
	}
	from, err := timeparse.ParseDate(start)
	if err != nil {
		return err
	}
	to := from.AddDate(0, 0, 13)

	var filtered []model.TimeRecord
	var periodTotal float64
	for _, r := range records {
		if biweeklyMember != "" && r.EmployeeName != biweeklyMember {
			continue
		}
		filtered = append(filtered, r)
		periodTotal += r.TotalHours
	}

	fmt.Printf("Bi-Weekly Timesheet — %s - %s\n", from.Format("January 02"), to.Format("January 02"))
	fmt.Printf("Total Hours: %s\n\n", timeparse.FormatDuration(periodTotal))

	dates := timeparse.RangeDates(from, 14)
	for _, rec := range filtered {
		hourMap := make(map[string]float64, len(rec.Summary))
		for _, l := range rec.Summary {
			hourMap[l.Date] = l.Hours
		}

		fmt.Println(rec.EmployeeName)
		// Two 7-day rows, like the bi-weekly grid.
		printSummaryWeek(dates[:7], hourMap)
		printSummaryWeek(dates[7:], hourMap)
		fmt.Printf("  %-12s %s\n\n", "Total", timeparse.FormatDuration(rec.TotalHours))
	}

	if len(filtered) == 0 {
		fmt.Println("No timesheet entries for this period.")
	}
	return nil
}

func printSummaryWeek(dates []time.Time, hourMap map[string]float64) {
	for _, d := range dates {
		cell := "-"
		if h, ok := hourMap[d.Format(timeparse.ISODate)]; ok {
			cell = timeparse.FormatDuration(h)
		}
		fmt.Printf("  %-12s %s\n", d.Format("Jan 02"), cell)
	}
}
