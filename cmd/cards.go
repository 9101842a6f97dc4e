package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-meta-metrics/internal/decklist"
	"github.com/pable/go-meta-metrics/internal/report"
)

var (
	cardsMinPilots int
	cardsMaxCopies int
)

var cardsCmd = &cobra.Command{
	Use:   "cards <event-id> <archetype>",
	Short: "Show per-card copy-count winrates within an archetype",
	Long: `For each card seen in the archetype's decklists, shows the match winrate of
pilots playing each copy count (including zero copies). Requires decklists
fetched with 'fetch --decklists'.`,
	Args: cobra.ExactArgs(2),
	RunE: runCards,
}

func init() {
	cardsCmd.Flags().IntVar(&cardsMinPilots, "min-pilots", 2, "hide cells with fewer pilots than this")
	cardsCmd.Flags().IntVar(&cardsMaxCopies, "max-copies", -1, "cap the copy range (-1 for observed max)")
}

func runCards(cmd *cobra.Command, args []string) error {
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

	cards, err := db.GetDecklistCards(eventID)
	if err != nil {
		return err
	}
	if len(cards) == 0 {
		return fmt.Errorf("no decklists stored for event %d (fetch with --decklists)", eventID)
	}

	stats := decklist.CardCopyWinrates(cards, archetype, cardsMinPilots, cardsMaxCopies)
	if len(stats) == 0 {
		return fmt.Errorf("no decklists for archetype %q in event %d", archetype, eventID)
	}
	report.PrintCardStats(os.Stdout, archetype, stats)
	return nil
}
