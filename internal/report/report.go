// Package report renders matchup tables and summaries to the terminal.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/pable/go-meta-metrics/internal/matchup"
	"github.com/pable/go-meta-metrics/internal/model"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// PrintMatchups prints one archetype's matchup table.
func PrintMatchups(w io.Writer, archetype string, rows []model.MatchupRow) {
	fmt.Fprintf(w, "\nMatchups for %s\n\n", archetype)

	table := newTable(w)
	table.Header("OPPONENT", "W", "L", "D", "TOTAL", "WIN%")
	for _, r := range rows {
		table.Append(
			r.Opponent,
			strconv.Itoa(r.Wins),
			strconv.Itoa(r.Losses),
			strconv.Itoa(r.Draws),
			strconv.Itoa(r.Total),
			fmt.Sprintf("%.1f%%", r.Winrate),
		)
	}
	table.Render()
}

// PrintAggregates prints overall per-archetype records.
func PrintAggregates(w io.Writer, aggs []model.ArchetypeAggregate) {
	table := newTable(w)
	table.Header("ARCHETYPE", "W", "L", "D", "TOTAL", "WIN%")
	for _, a := range aggs {
		table.Append(
			a.Archetype,
			strconv.Itoa(a.Wins),
			strconv.Itoa(a.Losses),
			strconv.Itoa(a.Draws),
			strconv.Itoa(a.Total),
			fmt.Sprintf("%.1f%%", a.Winrate),
		)
	}
	table.Render()
}

// PrintMatrix prints the head-to-head win matrix. Column headers are
// abbreviated to keep wide matrices readable.
func PrintMatrix(w io.Writer, m model.WinMatrix) {
	header := make([]string, 0, len(m.Archetypes)+2)
	header = append(header, "ARCHETYPE")
	for _, a := range m.Archetypes {
		header = append(header, abbreviate(a, 12))
	}
	header = append(header, "OVERALL%")

	table := newTable(w)
	table.Header(header)
	for i, a := range m.Archetypes {
		row := make([]string, 0, len(header))
		row = append(row, a)
		row = append(row, m.Cells[i]...)
		row = append(row, fmt.Sprintf("%.1f", m.Overall[i]))
		table.Append(row)
	}
	table.Render()
}

// PrintMetagame prints the archetype share of the field.
func PrintMetagame(w io.Writer, rows []model.MetagameRow) {
	table := newTable(w)
	table.Header("ARCHETYPE", "PILOTS", "FIELD%")
	for _, r := range rows {
		table.Append(r.Archetype, strconv.Itoa(r.Pilots), fmt.Sprintf("%.2f%%", r.Percentage))
	}
	table.Render()
}

// PrintStandings prints the final standings table.
func PrintStandings(w io.Writer, rows []model.StandingRow) {
	table := newTable(w)
	table.Header("RANK", "PLAYER", "RECORD", "PTS", "OMW%", "GW%", "OGW%")
	for _, s := range rows {
		table.Append(
			strconv.Itoa(s.Rank),
			s.Player,
			s.MatchRecord,
			strconv.Itoa(s.Points),
			fmt.Sprintf("%.1f", s.OMWPercent),
			fmt.Sprintf("%.1f", s.GWPercent),
			fmt.Sprintf("%.1f", s.OGWPercent),
		)
	}
	table.Render()
}

// PrintCardStats prints the card copy winrate table for one archetype.
func PrintCardStats(w io.Writer, archetype string, stats []model.CardCopyStat) {
	fmt.Fprintf(w, "\nCard winrates for %s\n\n", archetype)

	table := newTable(w)
	table.Header("CARD", "ZONE", "COPIES", "PILOTS", "W", "L", "WIN%")
	for _, s := range stats {
		table.Append(
			s.Card,
			s.Zone,
			strconv.Itoa(s.Copies),
			strconv.Itoa(s.Pilots),
			strconv.Itoa(s.Wins),
			strconv.Itoa(s.Losses),
			fmt.Sprintf("%.2f%%", s.WinPercent),
		)
	}
	table.Render()
}

// PrintEvents prints the stored event list.
func PrintEvents(w io.Writer, events []model.EventSummary) {
	table := newTable(w)
	table.Header("EVENT", "NAME", "FETCHED", "ROUNDS", "MATCHES")
	for _, ev := range events {
		table.Append(
			strconv.Itoa(ev.EventID),
			ev.Name,
			ev.FetchedAt,
			strconv.Itoa(ev.Rounds),
			strconv.Itoa(ev.Matches),
		)
	}
	table.Render()
}

// PrintPairings prints canonical pairing rows.
func PrintPairings(w io.Writer, rows []model.PairingRow) {
	table := newTable(w)
	table.Header("ROUND", "TABLE", "PLAYER", "DECK", "OPPONENT", "OPP DECK", "OUTCOME")
	for _, r := range rows {
		tableNum := strconv.Itoa(r.TableNumber)
		if r.TableNumber == model.MissingTable {
			tableNum = "—"
		}
		table.Append(
			strconv.Itoa(r.RoundID),
			tableNum,
			r.Player,
			r.PlayerDeck,
			r.Opponent,
			r.OpponentDeck,
			r.Outcome,
		)
	}
	table.Render()
}

// PrintPairChecks prints cross-table consistency failures. A nil slice means
// every matchup pair reconciled.
func PrintPairChecks(w io.Writer, checks []matchup.PairCheck) {
	if len(checks) == 0 {
		fmt.Fprintln(w, "All matchup pairs reconcile.")
		return
	}
	table := newTable(w)
	table.Header("ARCHETYPE A", "ARCHETYPE B", "PROBLEMS")
	for _, c := range checks {
		table.Append(c.ArchetypeA, c.ArchetypeB, strings.Join(c.Problems, "; "))
	}
	table.Render()
}

func abbreviate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
