package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dropCmd = &cobra.Command{
	Use:   "drop <event-id>",
	Short: "Delete a stored event and all its data",
	Args:  cobra.ExactArgs(1),
	RunE:  runDrop,
}

func runDrop(cmd *cobra.Command, args []string) error {
	eventID, err := parseEventID(args[0])
	if err != nil {
		return err
	}

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	ev, err := db.GetEvent(eventID)
	if err != nil {
		return err
	}
	if ev == nil {
		return fmt.Errorf("event %d not stored", eventID)
	}
	if err := db.DeleteEvent(eventID); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Dropped event %d.\n", eventID)
	return nil
}
