package matchup

import (
	"fmt"
	"sort"

	"github.com/pable/go-meta-metrics/internal/model"
)

// PairCheck is the symmetry comparison between two archetypes' views of the
// same head-to-head. Problems lists every violated equality; an empty list
// means the pair reconciles.
type PairCheck struct {
	ArchetypeA string
	ArchetypeB string
	AvsB       model.MatchupRow
	BvsA       model.MatchupRow
	FoundA     bool // A has a matchup row for B
	FoundB     bool // B has a matchup row for A
	Problems   []string
}

// OK reports whether the pair's tallies reconcile.
func (c PairCheck) OK() bool { return len(c.Problems) == 0 }

// VerifyPair checks one archetype pair: A's wins against B must equal B's
// losses against A and vice versa, draws must match exactly, and each side's
// total must sum to its own W+L+D. A row missing on exactly one side is a
// violation; missing on both means the pair never played, which is fine.
func VerifyPair(a, b string, aRows, bRows []model.MatchupRow) PairCheck {
	c := PairCheck{ArchetypeA: a, ArchetypeB: b}
	c.AvsB, c.FoundA = findOpponent(aRows, b)
	c.BvsA, c.FoundB = findOpponent(bRows, a)

	if !c.FoundA && !c.FoundB {
		return c
	}
	if c.FoundA != c.FoundB {
		missing := a
		if !c.FoundB {
			missing = b
		}
		c.Problems = append(c.Problems,
			fmt.Sprintf("matchup row missing on %s's side", missing))
		return c
	}

	if c.AvsB.Wins != c.BvsA.Losses {
		c.Problems = append(c.Problems, fmt.Sprintf(
			"%s wins (%d) != %s losses (%d)", a, c.AvsB.Wins, b, c.BvsA.Losses))
	}
	if c.AvsB.Losses != c.BvsA.Wins {
		c.Problems = append(c.Problems, fmt.Sprintf(
			"%s losses (%d) != %s wins (%d)", a, c.AvsB.Losses, b, c.BvsA.Wins))
	}
	if c.AvsB.Draws != c.BvsA.Draws {
		c.Problems = append(c.Problems, fmt.Sprintf(
			"draws differ: %d vs %d", c.AvsB.Draws, c.BvsA.Draws))
	}
	if c.AvsB.Total != c.AvsB.Wins+c.AvsB.Losses+c.AvsB.Draws {
		c.Problems = append(c.Problems, fmt.Sprintf(
			"%s total (%d) does not sum to W+L+D", a, c.AvsB.Total))
	}
	if c.BvsA.Total != c.BvsA.Wins+c.BvsA.Losses+c.BvsA.Draws {
		c.Problems = append(c.Problems, fmt.Sprintf(
			"%s total (%d) does not sum to W+L+D", b, c.BvsA.Total))
	}
	return c
}

// VerifyAll runs the pairwise check over every unordered archetype pair with
// at least one recorded match, returning only the failing pairs. A failure
// is diagnostic output, not a reason to halt the rest of the pipeline.
func VerifyAll(byArchetype map[string][]model.MatchupRow) []PairCheck {
	names := make([]string, 0, len(byArchetype))
	for a := range byArchetype {
		names = append(names, a)
	}
	// Deterministic pair order for stable reports.
	sort.Strings(names)

	var failed []PairCheck
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			c := VerifyPair(names[i], names[j], byArchetype[names[i]], byArchetype[names[j]])
			if !c.OK() {
				failed = append(failed, c)
			}
		}
	}
	return failed
}

func findOpponent(rows []model.MatchupRow, opponent string) (model.MatchupRow, bool) {
	for _, r := range rows {
		if r.Opponent == opponent {
			return r, true
		}
	}
	return model.MatchupRow{}, false
}
