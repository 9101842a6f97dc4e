package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-meta-metrics/internal/matchup"
	"github.com/pable/go-meta-metrics/internal/report"
)

var resultsCmd = &cobra.Command{
	Use:   "results <event-id> <archetype>",
	Short: "Show an archetype's matches from its own perspective",
	Long: `Shows every match involving the archetype, with opposing rows flipped so
the archetype is always the Player side. Mirror matches appear once per
perspective. Byes and voided results are excluded.`,
	Args: cobra.ExactArgs(2),
	RunE: runResults,
}

func runResults(cmd *cobra.Command, args []string) error {
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
	if len(filtered) == 0 {
		return fmt.Errorf("no matches for archetype %q in event %d", archetype, eventID)
	}
	report.PrintPairings(os.Stdout, filtered)
	return nil
}
