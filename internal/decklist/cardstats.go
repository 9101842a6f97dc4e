package decklist

import (
	"sort"

	"github.com/pable/go-meta-metrics/internal/model"
)

// CardCopyWinrates builds the per-card, per-copy winrate table for one
// archetype. For every (card, zone) pair seen in the archetype's lists it
// reports, per copy count from zero up to maxCopiesCap (or the observed
// maximum when the cap is negative), the pilots playing exactly that many
// copies and their combined match record. Zero-copy cells matter: they are
// the pilots of the archetype who did not play the card at all. Cells with
// fewer than minPilots pilots are omitted.
//
// A pilot's wins/losses are taken from their first decklist row; the record
// belongs to the pilot, not the card.
func CardCopyWinrates(cards []model.DecklistCard, archetype string, minPilots, maxCopiesCap int) []model.CardCopyStat {
	type record struct{ wins, losses int }
	type cardKey struct{ card, zone string }

	pilotRecords := make(map[string]record)
	var pilotOrder []string
	copies := make(map[cardKey]map[string]int)
	var keyOrder []cardKey

	for _, c := range cards {
		if c.Archetype != archetype {
			continue
		}
		if _, seen := pilotRecords[c.Player]; !seen {
			pilotRecords[c.Player] = record{c.Wins, c.Losses}
			pilotOrder = append(pilotOrder, c.Player)
		}
		k := cardKey{c.Card, c.Zone}
		if copies[k] == nil {
			copies[k] = make(map[string]int)
			keyOrder = append(keyOrder, k)
		}
		copies[k][c.Player] += c.Quantity
	}
	if len(pilotOrder) == 0 {
		return nil
	}

	var out []model.CardCopyStat
	for _, k := range keyOrder {
		perPilot := copies[k]
		maxC := 0
		for _, n := range perPilot {
			if n > maxC {
				maxC = n
			}
		}
		if maxCopiesCap >= 0 {
			maxC = maxCopiesCap
		}
		for c := 0; c <= maxC; c++ {
			var wins, losses, n int
			for _, pilot := range pilotOrder {
				if perPilot[pilot] != c {
					continue
				}
				n++
				r := pilotRecords[pilot]
				wins += r.wins
				losses += r.losses
			}
			if n < minPilots {
				continue
			}
			winPct := 0.0
			if wins+losses > 0 {
				winPct = round2(float64(wins) / float64(wins+losses) * 100)
			}
			out = append(out, model.CardCopyStat{
				Card:       k.card,
				Zone:       k.zone,
				Archetype:  archetype,
				Copies:     c,
				Pilots:     n,
				Wins:       wins,
				Losses:     losses,
				WinPercent: winPct,
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Card != out[j].Card {
			return out[i].Card < out[j].Card
		}
		if out[i].Zone != out[j].Zone {
			return out[i].Zone < out[j].Zone
		}
		return out[i].Copies < out[j].Copies
	})
	return out
}
