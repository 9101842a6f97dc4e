package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-meta-metrics/internal/pairings"
)

var archetypesCmd = &cobra.Command{
	Use:   "archetypes <event-id>",
	Short: "List the archetype labels seen in an event",
	Args:  cobra.ExactArgs(1),
	RunE:  runArchetypes,
}

func runArchetypes(cmd *cobra.Command, args []string) error {
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
	for _, a := range pairings.Archetypes(rows) {
		fmt.Fprintln(os.Stdout, a)
	}
	return nil
}
