package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-meta-metrics/internal/decklist"
	"github.com/pable/go-meta-metrics/internal/report"
)

var metaCmd = &cobra.Command{
	Use:   "meta <event-id>",
	Short: "Show the archetype breakdown of the field",
	Long: `Shows how many pilots brought each archetype and its share of the field.
Uses scraped decklists when available, otherwise falls back to deck labels
from the pairings.`,
	Args: cobra.ExactArgs(1),
	RunE: runMeta,
}

func runMeta(cmd *cobra.Command, args []string) error {
	eventID, err := parseEventID(args[0])
	if err != nil {
		return err
	}

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	cards, err := db.GetDecklistCards(eventID)
	if err != nil {
		return err
	}
	if len(cards) > 0 {
		report.PrintMetagame(os.Stdout, decklist.Metagame(cards))
		return nil
	}

	rows, err := db.GetPairings(eventID)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no data stored for event %d", eventID)
	}
	report.PrintMetagame(os.Stdout, decklist.MetagameFromPairings(rows))
	return nil
}
