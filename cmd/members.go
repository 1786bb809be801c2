package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teamtrace/tsheet/internal/filter"
)

var membersCmd = &cobra.Command{
	Use:   "members",
	Short: "List members, projects, and tasks in the dataset",
	Args:  cobra.NoArgs,
	RunE:  runMembers,
}

func runMembers(cmd *cobra.Command, args []string) error {
	ds, _ := loadDataset()
	records := ds.Timesheet.Weekly.Entries

	fmt.Println("Members")
	for _, m := range filter.Members(records) {
		fmt.Printf("  %s\n", m)
	}

	fmt.Println("\nProjects")
	for _, p := range filter.Projects(records) {
		fmt.Printf("  %s\n", p)
		for _, t := range filter.TasksFor(records, p) {
			fmt.Printf("    %s\n", t)
		}
	}
	return nil
}
