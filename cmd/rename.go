package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-meta-metrics/internal/pairings"
)

var renameCmd = &cobra.Command{
	Use:   "rename <event-id> <map.toml>",
	Short: "Rewrite archetype labels using a rename map",
	Long: `Applies a TOML rename map to the stored deck labels of an event, merging
variant spellings into canonical archetype names. The map file looks like:

  [archetypes]
  "Izzet Murktide" = "Murktide"
  "UR Murktide" = "Murktide"`,
	Args: cobra.ExactArgs(2),
	RunE: runRename,
}

func runRename(cmd *cobra.Command, args []string) error {
	eventID, err := parseEventID(args[0])
	if err != nil {
		return err
	}

	renames, err := pairings.LoadRenameMap(args[1])
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

	changed := renames.Apply(rows)
	if err := db.UpdatePairingDecks(eventID, rows); err != nil {
		return fmt.Errorf("update pairings: %w", err)
	}
	if err := db.UpdateDecklistArchetypes(eventID, renames); err != nil {
		return fmt.Errorf("update decklists: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Renamed %d deck labels across %d pairing rows.\n", changed, len(rows))
	return nil
}
