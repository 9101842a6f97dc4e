package pairings

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/pable/go-meta-metrics/internal/model"
)

// RenameMap maps old archetype labels to their normalized names. Applying it
// is idempotent as long as no new name is itself a key.
type RenameMap map[string]string

// renameFile is the on-disk schema for rename map TOML files:
//
//	[archetypes]
//	"Izzet Aggro" = "Izzet Prowess"
//	"Mono-Red Storm" = "Ruby Storm"
type renameFile struct {
	Archetypes map[string]string `toml:"archetypes"`
}

// LoadRenameMap reads an archetype rename map from a TOML file.
func LoadRenameMap(path string) (RenameMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rename map: %w", err)
	}
	var f renameFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse rename map %s: %w", path, err)
	}
	if len(f.Archetypes) == 0 {
		return nil, fmt.Errorf("rename map %s has no [archetypes] entries", path)
	}
	return RenameMap(f.Archetypes), nil
}

// Apply renames the deck columns of every row and returns the number of cell
// changes. Only whole-label matches are replaced; outcome labels and result
// strings are left alone since they name players, not decks.
func (m RenameMap) Apply(rows []model.PairingRow) int {
	changed := 0
	for i := range rows {
		changed += m.replace(&rows[i].PlayerDeck)
		changed += m.replace(&rows[i].OpponentDeck)
		changed += m.replace(&rows[i].WinningDeck)
	}
	return changed
}

// ApplyToDecklists renames the archetype column of scraped decklist rows.
func (m RenameMap) ApplyToDecklists(cards []model.DecklistCard) int {
	changed := 0
	for i := range cards {
		changed += m.replace(&cards[i].Archetype)
	}
	return changed
}

func (m RenameMap) replace(s *string) int {
	if to, ok := m[*s]; ok && to != *s {
		*s = to
		return 1
	}
	return 0
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}
