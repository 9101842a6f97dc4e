package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-meta-metrics/internal/report"
)

var standingsCmd = &cobra.Command{
	Use:   "standings <event-id>",
	Short: "Show stored final standings for an event",
	Args:  cobra.ExactArgs(1),
	RunE:  runStandings,
}

func runStandings(cmd *cobra.Command, args []string) error {
	eventID, err := parseEventID(args[0])
	if err != nil {
		return err
	}

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	rows, err := db.GetStandings(eventID)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no standings stored for event %d (fetch with --standings)", eventID)
	}
	report.PrintStandings(os.Stdout, rows)
	return nil
}
