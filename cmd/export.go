package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/teamtrace/tsheet/internal/export"
	"github.com/teamtrace/tsheet/internal/filter"
	"github.com/teamtrace/tsheet/internal/timeparse"
)

var (
	exportView    string
	exportFormat  string
	exportOut     string
	exportDate    string
	exportFrom    string
	exportMember  string
	exportProject string
	exportTask    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a timesheet view to a file",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportView, "view", "weekly", "View to export: daily, weekly, biweekly")
	exportCmd.Flags().StringVar(&exportFormat, "format", "xlsx", "File format: pdf, xlsx, csv, json")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output path (default: derived from view and date)")
	exportCmd.Flags().StringVar(&exportDate, "date", "", "Date for the daily view (YYYY-MM-DD)")
	exportCmd.Flags().StringVar(&exportFrom, "from", "", "Range start for weekly/biweekly views (YYYY-MM-DD)")
	exportCmd.Flags().StringVar(&exportMember, "member", "", "Member filter")
	exportCmd.Flags().StringVar(&exportProject, "project", "", "Project filter")
	exportCmd.Flags().StringVar(&exportTask, "task", "", "Task filter")
}

func runExport(cmd *cobra.Command, args []string) error {
	ds, cfg := loadDataset()

	snap := filter.Snapshot{}.
		WithMember(exportMember).
		WithProject(exportProject).
		WithTask(exportTask)

	var table export.Table
	view := export.View(exportView)

	switch view {
	case export.ViewDaily:
		records := ds.Timesheet.Daily.Entries
		date := exportDate
		if date == "" {
			date = latestDailyDate(records)
		}
		snap = snap.WithDate(date)
		var err error
		table, err = export.DailyTable(filter.Daily(records, snap), snap)
		if err != nil {
			return err
		}

	case export.ViewWeekly:
		records := ds.Timesheet.Weekly.Entries
		start := exportFrom
		if start == "" {
			start = earliestLogDate(records)
		}
		snap = snap.WithStartDate(start)
		from, err := timeparse.ParseDate(start)
		if err != nil {
			return err
		}
		to := from.AddDate(0, 0, 6)
		table = export.RangeTable(filter.Range(records, snap, from, to), snap, from, to, "Weekly Timesheet Report")

	case export.ViewBiweekly:
		records := ds.Timesheet.Biweekly.Entries
		start := exportFrom
		if start == "" {
			start = earliestLogDate(records)
		}
		snap = snap.WithStartDate(start)
		from, err := timeparse.ParseDate(start)
		if err != nil {
			return err
		}
		to := from.AddDate(0, 0, 13)
		table = export.SummaryTable(records, snap, from, to)

	default:
		return fmt.Errorf("unknown view %q: want daily, weekly, or biweekly", exportView)
	}

	if len(table.Rows) == 0 {
		return fmt.Errorf("nothing to export: no entries match the current filters")
	}

	path := exportOut
	if path == "" {
		path = filepath.Join(cfg.ExportDir, export.FileName(view, snap, exportFormat))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	switch exportFormat {
	case "pdf":
		err = table.WritePDF(f)
	case "xlsx":
		err = table.WriteXLSX(f)
	case "json":
		err = table.WriteJSON(f)
	case "csv":
		err = table.WriteCSV(f)
	default:
		return fmt.Errorf("unknown format %q: want pdf, xlsx, csv, or json", exportFormat)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Wrote %s (%d rows)\n", path, len(table.Rows))
	return nil
}
