package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-meta-metrics/internal/matchup"
	"github.com/pable/go-meta-metrics/internal/pairings"
	"github.com/pable/go-meta-metrics/internal/report"
)

var statsCmd = &cobra.Command{
	Use:   "stats <event-id>",
	Short: "Show overall win/loss records per archetype",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
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

	byArchetype := matchup.BuildAll(rows, pairings.Archetypes(rows))
	report.PrintAggregates(os.Stdout, matchup.AggregateAll(byArchetype))
	return nil
}
