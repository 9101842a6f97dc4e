package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pable/go-meta-metrics/internal/decklist"
	"github.com/pable/go-meta-metrics/internal/export"
	"github.com/pable/go-meta-metrics/internal/matchup"
	"github.com/pable/go-meta-metrics/internal/pairings"
)

var (
	exportOut string
	exportTop int
)

var exportCmd = &cobra.Command{
	Use:   "export <event-id>",
	Short: "Export an event's tables to CSV files",
	Long: `Writes pairings, per-archetype matchups and results, overall stats, the win
matrix, the metagame breakdown, and standings (when stored) as CSV files
under the output directory.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "export", "output directory")
	exportCmd.Flags().IntVar(&exportTop, "top", 15, "archetypes in the win matrix (0 for all)")
}

func runExport(cmd *cobra.Command, args []string) error {
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

	outDir := filepath.Join(exportOut, fmt.Sprintf("event_%d", eventID))

	if err := export.Pairings(filepath.Join(outDir, "pairings.csv"), rows); err != nil {
		return err
	}

	archetypes := pairings.Archetypes(rows)
	byArchetype := matchup.BuildAll(rows, archetypes)

	for _, archetype := range archetypes {
		safe := export.SafeFilename(archetype)
		filtered := matchup.FilterArchetype(rows, archetype)
		if len(filtered) == 0 {
			continue
		}
		if err := export.ArchetypeResults(filepath.Join(outDir, "results", safe+".csv"), filtered); err != nil {
			return err
		}
		if err := export.Matchups(filepath.Join(outDir, "matchups", safe+".csv"), byArchetype[archetype]); err != nil {
			return err
		}
	}

	if err := export.Aggregates(filepath.Join(outDir, "stats.csv"), matchup.AggregateAll(byArchetype)); err != nil {
		return err
	}
	if err := export.Matrix(filepath.Join(outDir, "matrix.csv"), matchup.BuildMatrix(byArchetype, exportTop)); err != nil {
		return err
	}

	cards, err := db.GetDecklistCards(eventID)
	if err != nil {
		return err
	}
	meta := decklist.Metagame(cards)
	if len(meta) == 0 {
		meta = decklist.MetagameFromPairings(rows)
	}
	if err := export.Metagame(filepath.Join(outDir, "metagame.csv"), meta); err != nil {
		return err
	}

	standings, err := db.GetStandings(eventID)
	if err != nil {
		return err
	}
	if len(standings) > 0 {
		if err := export.Standings(filepath.Join(outDir, "standings.csv"), standings); err != nil {
			return err
		}
	}

	fmt.Fprintf(os.Stdout, "Exported event %d to %s\n", eventID, outDir)
	return nil
}
