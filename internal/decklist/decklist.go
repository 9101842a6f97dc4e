// Package decklist computes field-level summaries from scraped decklists:
// the metagame breakdown and per-card copy-count winrates.
package decklist

import (
	"math"
	"sort"

	"github.com/pable/go-meta-metrics/internal/model"
)

// Metagame counts distinct pilots per archetype and each archetype's share
// of the field, most popular first. Rows without an archetype label are
// skipped.
func Metagame(cards []model.DecklistCard) []model.MetagameRow {
	pilots := make(map[string]map[string]struct{})
	for _, c := range cards {
		if c.Archetype == "" {
			continue
		}
		if pilots[c.Archetype] == nil {
			pilots[c.Archetype] = make(map[string]struct{})
		}
		pilots[c.Archetype][c.Player] = struct{}{}
	}

	total := 0
	out := make([]model.MetagameRow, 0, len(pilots))
	for archetype, set := range pilots {
		out = append(out, model.MetagameRow{Archetype: archetype, Pilots: len(set)})
		total += len(set)
	}
	for i := range out {
		if total > 0 {
			out[i].Percentage = round2(float64(out[i].Pilots) / float64(total) * 100)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Pilots != out[j].Pilots {
			return out[i].Pilots > out[j].Pilots
		}
		return out[i].Archetype < out[j].Archetype
	})
	return out
}

// MetagameFromPairings derives the field breakdown from pairing rows when no
// decklists were scraped, counting distinct players per deck label.
func MetagameFromPairings(rows []model.PairingRow) []model.MetagameRow {
	cards := make([]model.DecklistCard, 0, len(rows))
	for _, r := range rows {
		cards = append(cards, model.DecklistCard{Player: r.Player, Archetype: r.PlayerDeck})
	}
	return Metagame(cards)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
