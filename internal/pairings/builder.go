package pairings

import (
	"sort"

	"github.com/pable/go-meta-metrics/internal/model"
)

// Build normalizes a collection of raw matches into the canonical pairings
// table: malformed records dropped, rows sorted by (round, table, player).
// Missing table numbers carry the sentinel and therefore sort last within
// their round; the player-name tiebreak keeps the order deterministic for
// identical input regardless of input order.
func Build(raws []model.RawMatch) []model.PairingRow {
	rows := make([]model.PairingRow, 0, len(raws))
	for _, m := range raws {
		row, ok := Normalize(m)
		if !ok {
			continue
		}
		rows = append(rows, row)
	}
	Sort(rows)
	return rows
}

// Sort orders pairing rows in place by round, then numeric table position,
// then player name.
func Sort(rows []model.PairingRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.RoundID != b.RoundID {
			return a.RoundID < b.RoundID
		}
		if a.TableNumber != b.TableNumber {
			return a.TableNumber < b.TableNumber
		}
		return a.Player < b.Player
	})
}

// Archetypes returns the sorted distinct non-empty deck labels appearing on
// either side of the pairings table.
func Archetypes(rows []model.PairingRow) []string {
	seen := make(map[string]struct{})
	for _, r := range rows {
		for _, deck := range []string{r.PlayerDeck, r.OpponentDeck} {
			if d := trimmed(deck); d != "" {
				seen[d] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(seen))
	for a := range seen {
		out = append(out, a)
	}
	sort.Strings(out)
	return out
}
