package pairings

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pable/go-meta-metrics/internal/model"
)

// tableDigitsRe matches a digit run inside an HTML-ish ">123<" fragment, the
// shape the service's table-number description cells come in.
var tableDigitsRe = regexp.MustCompile(`>(\d+)<`)

// CleanTableNumber extracts a numeric table position from a raw table field.
// Markup-wrapped digits win over the raw string; anything unparseable maps to
// the MissingTable sentinel so those rows sort last.
func CleanTableNumber(raw string) int {
	s := strings.TrimSpace(raw)
	if m := tableDigitsRe.FindStringSubmatch(s); m != nil {
		s = m[1]
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return model.MissingTable
	}
	return n
}

// Normalize converts one RawMatch into a PairingRow. The second return value
// is false for malformed records (competitor count other than 1 or 2), which
// callers drop silently.
func Normalize(m model.RawMatch) (model.PairingRow, bool) {
	var p1, p2 model.Competitor
	switch len(m.Competitors) {
	case 2:
		p1, p2 = m.Competitors[0], m.Competitors[1]
	case 1:
		p1 = m.Competitors[0]
	default:
		return model.PairingRow{}, false
	}

	out := ParseResult(m.ResultString)
	outcome, winningDeck := resolveOutcome(out, p1, p2, m.ResultString)

	return model.PairingRow{
		RoundID:      m.RoundID,
		TableNumber:  CleanTableNumber(m.TableNumber),
		Player:       p1.Name,
		PlayerDeck:   p1.Deck,
		Opponent:     p2.Name,
		OpponentDeck: p2.Deck,
		Outcome:      outcome,
		WinningDeck:  winningDeck,
		ResultString: m.ResultString,
	}, true
}

// resolveOutcome produces the human outcome label and the winning deck for a
// parsed result. The winning deck names a real deck, not a column side: for
// a decisive result it is the winner's deck, for a bye the recipient's deck
// when the recipient is competitor 1, and empty otherwise.
func resolveOutcome(out model.Outcome, p1, p2 model.Competitor, raw string) (label, winningDeck string) {
	switch out.Kind {
	case model.OutcomeBye:
		if out.Winner == p1.Name {
			return "Bye", p1.Deck
		}
		return "Bye", ""
	case model.OutcomeDraw:
		return "Draw", ""
	case model.OutcomeDecisive:
		switch {
		case out.Winner != "" && out.Winner == p1.Name:
			return p1.Name + " won", p1.Deck
		case out.Winner != "" && out.Winner == p2.Name:
			return p2.Name + " won", p2.Deck
		default:
			// Winner string matches neither side; keep the original text.
			if raw == "" {
				return "Unknown", ""
			}
			return raw, ""
		}
	default:
		if raw == "" {
			return "Unknown", ""
		}
		return raw, ""
	}
}
