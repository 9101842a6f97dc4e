package matchup

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/pable/go-meta-metrics/internal/model"
)

// Matchups tallies one archetype's perspective-normalized rows (the output of
// FilterArchetype) into one MatchupRow per distinct opponent archetype.
//
// Per row: a draw when the outcome label or result string carries "Draw"
// without the void 0-0-3 record; a win when the winning deck equals the
// owning archetype's deck label; a loss when it equals the opponent's. Rows
// matching none of the three (an unparsed result, or a winner name that
// matched neither competitor) contribute to nothing, including the total.
// Mirror groups are dropped wholesale.
func Matchups(archetype string, rows []model.PairingRow) []model.MatchupRow {
	type tally struct{ wins, losses, draws int }
	tallies := make(map[string]*tally)
	var order []string

	for _, r := range rows {
		opp := r.OpponentDeck
		if opp == archetype {
			continue
		}
		t := tallies[opp]
		if t == nil {
			t = &tally{}
			tallies[opp] = t
			order = append(order, opp)
		}
		switch {
		case isDrawRow(r):
			t.draws++
		case r.WinningDeck != "" && r.WinningDeck == r.PlayerDeck:
			t.wins++
		case r.WinningDeck != "" && r.WinningDeck == r.OpponentDeck:
			t.losses++
		}
	}

	out := make([]model.MatchupRow, 0, len(order))
	for _, opp := range order {
		t := tallies[opp]
		total := t.wins + t.losses + t.draws
		out = append(out, model.MatchupRow{
			Archetype: archetype,
			Opponent:  opp,
			Wins:      t.wins,
			Losses:    t.losses,
			Draws:     t.draws,
			Total:     total,
			Winrate:   winratePct(t.wins, total),
		})
	}

	// Presentation order: most-played matchups first, winrate breaking ties.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		if out[i].Winrate != out[j].Winrate {
			return out[i].Winrate > out[j].Winrate
		}
		return out[i].Opponent < out[j].Opponent
	})
	return out
}

func isDrawRow(r model.PairingRow) bool {
	if strings.Contains(r.ResultString, voidRecord) {
		return false
	}
	return strings.Contains(r.Outcome, "Draw") || strings.Contains(r.ResultString, "Draw")
}

// winratePct is wins over total as a percentage rounded to one decimal,
// zero when total is zero.
func winratePct(wins, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(wins)/float64(total)*1000) / 10
}

// Aggregate folds one archetype's matchup rows into a single summary line.
func Aggregate(archetype string, rows []model.MatchupRow) model.ArchetypeAggregate {
	agg := model.ArchetypeAggregate{Archetype: archetype}
	for _, r := range rows {
		agg.Wins += r.Wins
		agg.Losses += r.Losses
		agg.Draws += r.Draws
		agg.Total += r.Total
	}
	agg.Winrate = winratePct(agg.Wins, agg.Total)
	return agg
}

// AggregateAll summarizes every archetype in the matchup set, sorted by wins
// descending.
func AggregateAll(byArchetype map[string][]model.MatchupRow) []model.ArchetypeAggregate {
	out := make([]model.ArchetypeAggregate, 0, len(byArchetype))
	for archetype, rows := range byArchetype {
		out = append(out, Aggregate(archetype, rows))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Wins != out[j].Wins {
			return out[i].Wins > out[j].Wins
		}
		return out[i].Archetype < out[j].Archetype
	})
	return out
}

// BuildAll runs the filter and aggregator for every archetype present in the
// pairings table, keyed by archetype label.
func BuildAll(rows []model.PairingRow, archetypes []string) map[string][]model.MatchupRow {
	out := make(map[string][]model.MatchupRow, len(archetypes))
	for _, a := range archetypes {
		out[a] = Matchups(a, FilterArchetype(rows, a))
	}
	return out
}

// BuildMatrix assembles the head-to-head win matrix for the topN archetypes
// by total matches played (all archetypes when topN <= 0). Cell (i, j) is
// "W-L-D" from archetype i's matchup row against archetype j, "0-0-0" when
// the pair never played, and "-" on the mirror diagonal. Overall carries each
// row archetype's aggregate winrate.
func BuildMatrix(byArchetype map[string][]model.MatchupRow, topN int) model.WinMatrix {
	type total struct {
		archetype string
		matches   int
	}
	totals := make([]total, 0, len(byArchetype))
	for archetype, rows := range byArchetype {
		n := 0
		for _, r := range rows {
			n += r.Total
		}
		totals = append(totals, total{archetype, n})
	}
	sort.SliceStable(totals, func(i, j int) bool {
		if totals[i].matches != totals[j].matches {
			return totals[i].matches > totals[j].matches
		}
		return totals[i].archetype < totals[j].archetype
	})
	if topN > 0 && len(totals) > topN {
		totals = totals[:topN]
	}

	m := model.WinMatrix{
		Archetypes: make([]string, len(totals)),
		Cells:      make([][]string, len(totals)),
		Overall:    make([]float64, len(totals)),
	}
	for i, t := range totals {
		m.Archetypes[i] = t.archetype
	}
	for i, t := range totals {
		rows := byArchetype[t.archetype]
		byOpp := make(map[string]model.MatchupRow, len(rows))
		for _, r := range rows {
			byOpp[r.Opponent] = r
		}
		m.Cells[i] = make([]string, len(totals))
		for j, opp := range m.Archetypes {
			if i == j {
				m.Cells[i][j] = "-"
				continue
			}
			r, ok := byOpp[opp]
			if !ok {
				m.Cells[i][j] = "0-0-0"
				continue
			}
			m.Cells[i][j] = fmt.Sprintf("%d-%d-%d", r.Wins, r.Losses, r.Draws)
		}
		m.Overall[i] = Aggregate(t.archetype, rows).Winrate
	}
	return m
}
