// Package matchup derives archetype-vs-archetype win/loss/draw tables from
// the canonical pairings table, and checks their cross-archetype consistency.
package matchup

import (
	"strings"

	"github.com/pable/go-meta-metrics/internal/model"
)

// voidRecord marks matches that never finished (zero wins, zero losses,
// three draws awarded by the pairing system). These rows count toward no
// matchup, same as byes.
const voidRecord = "0-0-3"

// IsVoid reports whether a pairing row denotes a bye or an incomplete match.
func IsVoid(r model.PairingRow) bool {
	if strings.EqualFold(strings.TrimSpace(r.Outcome), "Bye") {
		return true
	}
	return strings.Contains(r.ResultString, voidRecord)
}

// FilterArchetype extracts every match involving the given archetype, with
// the archetype always on the player side. Rows where the archetype was the
// opponent are reoriented via SwapPerspective. Byes and void results are
// excluded. An archetype with no matches yields an empty slice, not an error.
//
// Rows where the archetype appears on the player side come first, in input
// order, followed by the reoriented rows in input order.
func FilterArchetype(rows []model.PairingRow, archetype string) []model.PairingRow {
	var asIs, toSwap []model.PairingRow
	for _, r := range rows {
		if IsVoid(r) {
			continue
		}
		if r.PlayerDeck == archetype {
			asIs = append(asIs, r)
		}
		// A mirror row matches both branches and appears twice, once per
		// perspective; the aggregator drops mirrors either way.
		if r.OpponentDeck == archetype {
			toSwap = append(toSwap, SwapPerspective(r))
		}
	}
	return append(asIs, toSwap...)
}

// SwapPerspective returns a copy of the row with the player and opponent
// sides exchanged. The outcome label's win/loss polarity is inverted (draws
// are untouched); the winning deck is left alone because it names a real
// deck, independent of column position. Swapping twice reproduces the
// original row.
func SwapPerspective(r model.PairingRow) model.PairingRow {
	out := r
	out.Player, out.Opponent = r.Opponent, r.Player
	out.PlayerDeck, out.OpponentDeck = r.OpponentDeck, r.PlayerDeck
	out.Outcome = invertOutcome(r.Outcome)
	return out
}

// invertOutcome flips "won" and "lost" in an outcome label. Labels carrying
// neither (draws, byes, preserved raw result strings) pass through.
func invertOutcome(label string) string {
	lower := strings.ToLower(label)
	if strings.Contains(lower, "draw") {
		return label
	}
	switch {
	case strings.Contains(lower, "won"):
		label = strings.ReplaceAll(label, "won", "lost")
		return strings.ReplaceAll(label, "Won", "Lost")
	case strings.Contains(lower, "lost"):
		label = strings.ReplaceAll(label, "lost", "won")
		return strings.ReplaceAll(label, "Lost", "Won")
	default:
		return label
	}
}
