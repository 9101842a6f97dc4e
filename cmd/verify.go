package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-meta-metrics/internal/matchup"
	"github.com/pable/go-meta-metrics/internal/pairings"
	"github.com/pable/go-meta-metrics/internal/report"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <event-id>",
	Short: "Cross-check matchup tables for symmetry",
	Long: `Checks every archetype pair: A's wins against B must equal B's losses
against A, draws must match, and each side's record must sum to its total.
Exits non-zero when any pair fails to reconcile.`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
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
	failures := matchup.VerifyAll(byArchetype)
	report.PrintPairChecks(os.Stdout, failures)
	if len(failures) > 0 {
		return fmt.Errorf("%d matchup pair(s) failed to reconcile", len(failures))
	}
	return nil
}
