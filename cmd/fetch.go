package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pable/go-meta-metrics/internal/melee"
	"github.com/pable/go-meta-metrics/internal/model"
	"github.com/pable/go-meta-metrics/internal/pairings"
	"github.com/pable/go-meta-metrics/internal/storage"
)

// fetch command flags.
var (
	// fetchName is an optional display name stored with the event.
	fetchName string
	// fetchPageSize is the page length used for paged service requests.
	fetchPageSize int
	// fetchStandings also fetches the final round standings.
	fetchStandings bool
	// fetchDecklists also scrapes every submitted decklist.
	fetchDecklists bool
	// fetchForce refetches an event that is already stored.
	fetchForce bool
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <event-id>",
	Short: "Fetch a tournament's pairings from melee.gg and store them",
	Long: `Fetches every round's pairings for a tournament, normalizes the results,
and stores them for matchup analysis. Authentication uses the session cookie
from MELEE_COOKIE or ~/.metametrics/cookie.

Examples:
  # Pairings only
  metametrics fetch 12345

  # Pairings plus final standings and full decklists
  metametrics fetch 12345 --standings --decklists`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringVar(&fetchName, "name", "", "event display name stored in DB")
	fetchCmd.Flags().IntVar(&fetchPageSize, "page-size", 400, "page length for service requests")
	fetchCmd.Flags().BoolVar(&fetchStandings, "standings", false, "also fetch final round standings")
	fetchCmd.Flags().BoolVar(&fetchDecklists, "decklists", false, "also scrape submitted decklists")
	fetchCmd.Flags().BoolVar(&fetchForce, "force", false, "refetch even if the event is already stored")
}

func runFetch(cmd *cobra.Command, args []string) error {
	eventID, err := parseEventID(args[0])
	if err != nil {
		return err
	}

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	if !fetchForce {
		exists, err := db.EventExists(eventID)
		if err != nil {
			return fmt.Errorf("check event: %w", err)
		}
		if exists {
			fmt.Fprintf(os.Stdout, "Event %d already stored; use --force to refetch.\n", eventID)
			return nil
		}
	}

	cookie, err := loadCookie()
	if err != nil {
		return err
	}
	client := melee.NewClient(cookie)
	ctx := cmd.Context()

	roundIDs, err := client.GetRoundIDs(ctx, eventID, melee.RoundsPairings)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Event %d: %d rounds\n", eventID, len(roundIDs))

	var raws []model.RawMatch
	for i, roundID := range roundIDs {
		fmt.Fprintf(os.Stdout, "  round %d/%d (id %d)...\n", i+1, len(roundIDs), roundID)
		page, err := client.GetRoundPairings(ctx, roundID, fetchPageSize)
		if err != nil {
			return err
		}
		raws = append(raws, page...)
	}

	rows := pairings.Build(raws)
	fmt.Fprintf(os.Stdout, "Normalized %d matches from %d raw entries.\n", len(rows), len(raws))

	ev := model.EventSummary{
		EventID:   eventID,
		Name:      fetchName,
		FetchedAt: time.Now().UTC().Format(time.RFC3339),
		Rounds:    len(roundIDs),
		Matches:   len(rows),
	}
	if err := db.InsertEvent(ev); err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	if err := db.InsertPairings(eventID, rows); err != nil {
		return fmt.Errorf("insert pairings: %w", err)
	}

	if fetchStandings {
		if err := fetchFinalStandings(ctx, client, db, eventID); err != nil {
			return err
		}
	}
	if fetchDecklists {
		if err := fetchEventDecklists(ctx, client, db, eventID, raws, rows); err != nil {
			return err
		}
	}
	return nil
}

func fetchFinalStandings(ctx context.Context, client *melee.Client, db *storage.DB, eventID int) error {
	roundIDs, err := client.GetRoundIDs(ctx, eventID, melee.RoundsStandings)
	if err != nil {
		return err
	}
	finalRound := roundIDs[len(roundIDs)-1]
	standings, err := client.GetRoundStandings(ctx, eventID, finalRound, fetchPageSize)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Stored %d standings rows (round id %d).\n", len(standings), finalRound)
	return db.InsertStandings(eventID, finalRound, standings)
}

// fetchEventDecklists scrapes one deck page per distinct decklist guid seen in
// the pairings and stores the card rows joined with each pilot's match record.
func fetchEventDecklists(ctx context.Context, client *melee.Client, db *storage.DB, eventID int, raws []model.RawMatch, rows []model.PairingRow) error {
	type deckRef struct {
		player    string
		archetype string
	}
	refs := make(map[string]deckRef)
	for _, m := range raws {
		for _, comp := range m.Competitors {
			if comp.DecklistGuid != "" {
				refs[comp.DecklistGuid] = deckRef{player: comp.Name, archetype: comp.Deck}
			}
		}
	}
	if len(refs) == 0 {
		fmt.Fprintln(os.Stdout, "No decklists submitted for this event.")
		return nil
	}

	records := playerRecords(rows)

	fmt.Fprintf(os.Stdout, "Scraping %d decklists...\n", len(refs))
	var cards []model.DecklistCard
	fetched := 0
	for guid, ref := range refs {
		dl, err := client.GetDecklist(ctx, guid)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  skip decklist %s (%s): %v\n", guid, ref.player, err)
			continue
		}
		player := ref.player
		if player == "" {
			player = dl.Player
		}
		rec := records[player]
		for _, c := range dl.Cards {
			cards = append(cards, model.DecklistCard{
				Player:    player,
				Archetype: ref.archetype,
				Card:      c.Name,
				Quantity:  c.Quantity,
				Zone:      c.Zone,
				Wins:      rec.wins,
				Losses:    rec.losses,
			})
		}
		fetched++
	}
	fmt.Fprintf(os.Stdout, "Stored %d card rows from %d decklists.\n", len(cards), fetched)
	return db.InsertDecklistCards(eventID, cards)
}

type record struct {
	wins, losses int
}

// playerRecords tallies each player's match wins and losses from the stored
// pairing rows. Each row is one match, so both columns get credited: the
// winner's side a win, the other a loss. Byes count as wins for the
// recipient; draws count as neither.
func playerRecords(rows []model.PairingRow) map[string]record {
	out := make(map[string]record)
	for _, r := range rows {
		rec := out[r.Player]
		switch r.Outcome {
		case "Bye", r.Player + " won":
			rec.wins++
		case r.Opponent + " won":
			rec.losses++
		}
		out[r.Player] = rec

		if r.Opponent == "" {
			continue
		}
		opp := out[r.Opponent]
		switch r.Outcome {
		case r.Opponent + " won":
			opp.wins++
		case r.Player + " won":
			opp.losses++
		}
		out[r.Opponent] = opp
	}
	return out
}

func parseEventID(arg string) (int, error) {
	var id int
	if _, err := fmt.Sscanf(arg, "%d", &id); err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid event id %q", arg)
	}
	return id, nil
}
