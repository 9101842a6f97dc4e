package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-meta-metrics/internal/report"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored events",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	events, err := db.ListEvents()
	if err != nil {
		return err
	}
	if len(events) == 0 {
		fmt.Fprintln(os.Stdout, "No events stored.")
		return nil
	}
	report.PrintEvents(os.Stdout, events)
	return nil
}
