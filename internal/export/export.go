// Package export writes matchup data to CSV files.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/pable/go-meta-metrics/internal/model"
)

var unsafePathChars = regexp.MustCompile(`[<>:"/\\|?*]`)

// SafeFilename replaces characters that are invalid in file names with
// underscores, so archetype labels like "Boros Energy / Burn" produce
// usable paths.
func SafeFilename(name string) string {
	return unsafePathChars.ReplaceAllString(name, "_")
}

func writeCSV(path string, header []string, records [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := w.WriteAll(records); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// Pairings writes canonical pairing rows to path.
func Pairings(path string, rows []model.PairingRow) error {
	header := []string{
		"RoundId", "TableNumber", "Player", "PlayerDeck",
		"Opponent", "OpponentDeck", "Outcome", "WinningDeck", "ResultString",
	}
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			strconv.Itoa(r.RoundID),
			strconv.Itoa(r.TableNumber),
			r.Player,
			r.PlayerDeck,
			r.Opponent,
			r.OpponentDeck,
			r.Outcome,
			r.WinningDeck,
			r.ResultString,
		})
	}
	return writeCSV(path, header, records)
}

// Matchups writes one archetype's matchup table to path.
func Matchups(path string, rows []model.MatchupRow) error {
	header := []string{"Opponent_Archetype", "Wins", "Losses", "Draws", "Total_Matches", "Winrate"}
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			r.Opponent,
			strconv.Itoa(r.Wins),
			strconv.Itoa(r.Losses),
			strconv.Itoa(r.Draws),
			strconv.Itoa(r.Total),
			strconv.FormatFloat(r.Winrate, 'f', 1, 64),
		})
	}
	return writeCSV(path, header, records)
}

// Aggregates writes per-archetype overall records to path.
func Aggregates(path string, aggs []model.ArchetypeAggregate) error {
	header := []string{"Archetype", "Wins", "Losses", "Draws", "Total_Matches", "Winrate"}
	records := make([][]string, 0, len(aggs))
	for _, a := range aggs {
		records = append(records, []string{
			a.Archetype,
			strconv.Itoa(a.Wins),
			strconv.Itoa(a.Losses),
			strconv.Itoa(a.Draws),
			strconv.Itoa(a.Total),
			strconv.FormatFloat(a.Winrate, 'f', 1, 64),
		})
	}
	return writeCSV(path, header, records)
}

// Matrix writes the head-to-head win matrix to path. The first column is the
// row archetype; the final column holds the archetype's overall winrate.
func Matrix(path string, m model.WinMatrix) error {
	header := make([]string, 0, len(m.Archetypes)+2)
	header = append(header, "Archetype")
	header = append(header, m.Archetypes...)
	header = append(header, "Overall_Winrate")

	records := make([][]string, 0, len(m.Archetypes))
	for i, a := range m.Archetypes {
		row := make([]string, 0, len(header))
		row = append(row, a)
		row = append(row, m.Cells[i]...)
		row = append(row, strconv.FormatFloat(m.Overall[i], 'f', 1, 64))
		records = append(records, row)
	}
	return writeCSV(path, header, records)
}

// Metagame writes the archetype field breakdown to path.
func Metagame(path string, rows []model.MetagameRow) error {
	header := []string{"Archetype", "Pilots", "Percentage"}
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			r.Archetype,
			strconv.Itoa(r.Pilots),
			strconv.FormatFloat(r.Percentage, 'f', 2, 64),
		})
	}
	return writeCSV(path, header, records)
}

// Standings writes standing rows to path.
func Standings(path string, rows []model.StandingRow) error {
	header := []string{"Rank", "Player", "MatchRecord", "Points", "OMW_Percent", "GW_Percent", "OGW_Percent"}
	records := make([][]string, 0, len(rows))
	for _, s := range rows {
		records = append(records, []string{
			strconv.Itoa(s.Rank),
			s.Player,
			s.MatchRecord,
			strconv.Itoa(s.Points),
			strconv.FormatFloat(s.OMWPercent, 'f', 1, 64),
			strconv.FormatFloat(s.GWPercent, 'f', 1, 64),
			strconv.FormatFloat(s.OGWPercent, 'f', 1, 64),
		})
	}
	return writeCSV(path, header, records)
}

// CardStats writes card copy winrates for one archetype to path.
func CardStats(path string, stats []model.CardCopyStat) error {
	header := []string{"Card", "Zone", "Copies", "Pilots", "Wins", "Losses", "Win_Percent"}
	records := make([][]string, 0, len(stats))
	for _, s := range stats {
		records = append(records, []string{
			s.Card,
			s.Zone,
			strconv.Itoa(s.Copies),
			strconv.Itoa(s.Pilots),
			strconv.Itoa(s.Wins),
			strconv.Itoa(s.Losses),
			strconv.FormatFloat(s.WinPercent, 'f', 2, 64),
		})
	}
	return writeCSV(path, header, records)
}

// ArchetypeResults writes the filtered per-archetype pairing rows (normalized
// to the archetype's perspective) to path. Columns match Pairings.
func ArchetypeResults(path string, rows []model.PairingRow) error {
	return Pairings(path, rows)
}
