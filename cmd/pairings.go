package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-meta-metrics/internal/report"
)

var pairingsRound int

var pairingsCmd = &cobra.Command{
	Use:   "pairings <event-id>",
	Short: "Show stored pairings for an event",
	Args:  cobra.ExactArgs(1),
	RunE:  runPairings,
}

func init() {
	pairingsCmd.Flags().IntVar(&pairingsRound, "round", 0, "only show this round id")
}

func runPairings(cmd *cobra.Command, args []string) error {
	eventID, err := parseEventID(args[0])
	if err != nil {
		return err
	}

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	rows, err := db.GetPairings(eventID)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no pairings stored for event %d", eventID)
	}
	if pairingsRound != 0 {
		filtered := rows[:0]
		for _, r := range rows {
			if r.RoundID == pairingsRound {
				filtered = append(filtered, r)
			}
		}
		rows = filtered
	}
	report.PrintPairings(os.Stdout, rows)
	return nil
}
