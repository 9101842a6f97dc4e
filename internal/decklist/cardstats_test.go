package decklist

import (
	"testing"

	"github.com/pable/go-meta-metrics/internal/model"
)

// pilotCards builds one pilot's rows: a record plus some card quantities.
func pilotCards(player string, wins, losses int, quantities map[string]int) []model.DecklistCard {
	var out []model.DecklistCard
	for name, qty := range quantities {
		out = append(out, model.DecklistCard{
			Player:    player,
			Archetype: "Burn",
			Card:      name,
			Quantity:  qty,
			Zone:      "main",
			Wins:      wins,
			Losses:    losses,
		})
	}
	return out
}

func TestCardCopyWinrates(t *testing.T) {
	var cards []model.DecklistCard
	cards = append(cards, pilotCards("p1", 3, 1, map[string]int{"Lightning Bolt": 4})...)
	cards = append(cards, pilotCards("p2", 1, 3, map[string]int{"Lightning Bolt": 4})...)
	cards = append(cards, pilotCards("p3", 2, 2, map[string]int{"Lava Spike": 4})...)

	got := CardCopyWinrates(cards, "Burn", 1, -1)

	// Lava Spike at zero copies: p1 and p2 both skipped it.
	zero := findStat(got, "Lava Spike", 0)
	if zero == nil {
		t.Fatal("missing zero-copy cell for Lava Spike")
	}
	if zero.Pilots != 2 || zero.Wins != 4 || zero.Losses != 4 {
		t.Errorf("zero-copy cell = %+v", zero)
	}
	if zero.WinPercent != 50.0 {
		t.Errorf("zero-copy winrate = %.2f, want 50.00", zero.WinPercent)
	}

	four := findStat(got, "Lightning Bolt", 4)
	if four == nil {
		t.Fatal("missing four-copy cell for Lightning Bolt")
	}
	if four.Pilots != 2 || four.Wins != 4 || four.Losses != 4 {
		t.Errorf("four-copy cell = %+v", four)
	}
}

func TestCardCopyWinratesMinPilots(t *testing.T) {
	var cards []model.DecklistCard
	cards = append(cards, pilotCards("p1", 3, 1, map[string]int{"Lightning Bolt": 4})...)
	cards = append(cards, pilotCards("p2", 1, 3, map[string]int{"Lightning Bolt": 3})...)

	got := CardCopyWinrates(cards, "Burn", 2, -1)
	if len(got) != 0 {
		t.Errorf("every cell has one pilot; want none with min 2, got %d", len(got))
	}
}

func TestCardCopyWinratesOtherArchetypeIgnored(t *testing.T) {
	cards := []model.DecklistCard{
		{Player: "p1", Archetype: "Tron", Card: "Karn Liberated", Quantity: 4, Zone: "main", Wins: 2, Losses: 2},
	}
	if got := CardCopyWinrates(cards, "Burn", 1, -1); got != nil {
		t.Errorf("expected nil for archetype with no lists, got %v", got)
	}
}

func TestCardCopyWinratesCopiesCap(t *testing.T) {
	var cards []model.DecklistCard
	cards = append(cards, pilotCards("p1", 1, 1, map[string]int{"Lightning Bolt": 4})...)
	cards = append(cards, pilotCards("p2", 1, 1, map[string]int{"Lightning Bolt": 2})...)

	got := CardCopyWinrates(cards, "Burn", 1, 2)
	for _, s := range got {
		if s.Copies > 2 {
			t.Errorf("copies %d exceeds cap", s.Copies)
		}
	}
	// The four-copy pilot falls outside the capped range entirely.
	if s := findStat(got, "Lightning Bolt", 2); s == nil || s.Pilots != 1 {
		t.Errorf("two-copy cell = %+v, want 1 pilot", s)
	}
}

func findStat(stats []model.CardCopyStat, card string, copies int) *model.CardCopyStat {
	for i := range stats {
		if stats[i].Card == card && stats[i].Copies == copies {
			return &stats[i]
		}
	}
	return nil
}
