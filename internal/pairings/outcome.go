// Package pairings turns raw match records from the tournament service into
// the canonical, sorted pairings table.
package pairings

import (
	"strings"

	"github.com/pable/go-meta-metrics/internal/model"
)

const byePhrase = " was assigned a bye"

// ParseResult classifies a free-text result string into an Outcome.
//
// Rules are checked in order: the bye phrase first, then any of the draw
// signals ("Draw" token, the "0-0-3" record notation, or "-0-3 Draw"), then
// the " won " phrase, else Unparsed. Order matters: a string carrying both a
// "won" phrase and "0-0-3" classifies as a draw.
func ParseResult(result string) model.Outcome {
	s := strings.TrimSpace(result)
	if s == "" {
		return model.Outcome{Kind: model.OutcomeUnparsed, Raw: result}
	}

	if i := strings.Index(s, byePhrase); i >= 0 {
		// e.g. "doejurko was assigned a bye"; the name is everything
		// strictly before the phrase.
		who := strings.TrimSpace(s[:i])
		return model.Outcome{Kind: model.OutcomeBye, Winner: who, Raw: result}
	}

	if strings.Contains(s, "Draw") || strings.Contains(s, "0-0-3") || strings.Contains(s, "-0-3 Draw") {
		return model.Outcome{Kind: model.OutcomeDraw, Raw: result}
	}

	// e.g. "Sam Clayton won 2-0-0"
	if i := strings.Index(s, " won "); i >= 0 {
		winner := strings.TrimSpace(s[:i])
		return model.Outcome{Kind: model.OutcomeDecisive, Winner: winner, Raw: result}
	}

	return model.Outcome{Kind: model.OutcomeUnparsed, Raw: result}
}
