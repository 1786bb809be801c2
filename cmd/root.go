package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teamtrace/tsheet/internal/config"
	"github.com/teamtrace/tsheet/internal/model"
	"github.com/teamtrace/tsheet/internal/storage"
)

var dataPath string

var rootCmd = &cobra.Command{
	Use:   "tsheet",
	Short: "tsheet – a terminal timesheet viewer",
	Long: `tsheet renders daily, weekly, bi-weekly, and monthly views of
time-tracking records, with filtering by member, project, and task,
and export to PDF, Excel, CSV, and JSON.

Data comes from a bundled sample dataset or a JSON file of the same
shape (--data, TSHEET_DATA, or data_path in ~/.tsheet/config.json).`,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "Path to a timesheet JSON file (overrides config)")
	rootCmd.AddCommand(dailyCmd)
	rootCmd.AddCommand(weeklyCmd)
	rootCmd.AddCommand(biweeklyCmd)
	rootCmd.AddCommand(monthlyCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(membersCmd)
}

// loadDataset resolves configuration and loads the timesheet dataset.
// Commands treat a failure here as fatal.
func loadDataset() (model.Dataset, config.Config) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if dataPath != "" {
		cfg.DataPath = dataPath
	}

	ds, err := storage.Load(cfg.DataPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return ds, cfg
}
