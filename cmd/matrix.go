package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-meta-metrics/internal/matchup"
	"github.com/pable/go-meta-metrics/internal/pairings"
	"github.com/pable/go-meta-metrics/internal/report"
)

var matrixTop int

var matrixCmd = &cobra.Command{
	Use:   "matrix <event-id>",
	Short: "Show the head-to-head win matrix for the most played archetypes",
	Args:  cobra.ExactArgs(1),
	RunE:  runMatrix,
}

func init() {
	matrixCmd.Flags().IntVar(&matrixTop, "top", 15, "number of archetypes to include (0 for all)")
}

func runMatrix(cmd *cobra.Command, args []string) error {
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
	report.PrintMatrix(os.Stdout, matchup.BuildMatrix(byArchetype, matrixTop))
	return nil
}
