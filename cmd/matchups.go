package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-meta-metrics/internal/matchup"
	"github.com/pable/go-meta-metrics/internal/report"
)

var matchupsCmd = &cobra.Command{
	Use:   "matchups <event-id> <archetype>",
	Short: "Show an archetype's win/loss record against each opponent archetype",
	Args:  cobra.ExactArgs(2),
	RunE:  runMatchups,
}

func runMatchups(cmd *cobra.Command, args []string) error {
	eventID, err := parseEventID(args[0])
	if err != nil {
		return err
	}
	archetype := args[1]

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	rows, err := db.GetPairings(eventID)
	if err != nil {
		return err
	}
	filtered := matchup.FilterArchetype(rows, archetype)
	matchups := matchup.Matchups(archetype, filtered)
	if len(matchups) == 0 {
		return fmt.Errorf("no matchups for archetype %q in event %d", archetype, eventID)
	}
	report.PrintMatchups(os.Stdout, archetype, matchups)
	return nil
}
