package pairings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pable/go-meta-metrics/internal/model"
)

func writeRenameMap(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "renames.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write rename map: %v", err)
	}
	return path
}

func TestLoadRenameMap(t *testing.T) {
	path := writeRenameMap(t, `
[archetypes]
"Izzet Aggro" = "Izzet Prowess"
"Mono-Red Storm" = "Ruby Storm"
`)
	m, err := LoadRenameMap(path)
	if err != nil {
		t.Fatalf("LoadRenameMap: %v", err)
	}
	if m["Izzet Aggro"] != "Izzet Prowess" || m["Mono-Red Storm"] != "Ruby Storm" {
		t.Errorf("unexpected map: %v", m)
	}
}

func TestLoadRenameMapEmpty(t *testing.T) {
	path := writeRenameMap(t, "[archetypes]\n")
	if _, err := LoadRenameMap(path); err == nil {
		t.Fatal("expected error for empty map")
	}
}

func TestRenameMapApply(t *testing.T) {
	m := RenameMap{"Izzet Aggro": "Izzet Prowess"}
	rows := []model.PairingRow{
		{PlayerDeck: "Izzet Aggro", OpponentDeck: "Tron", WinningDeck: "Izzet Aggro"},
		{PlayerDeck: "Tron", OpponentDeck: "Izzet Aggro", WinningDeck: "Tron"},
	}
	changed := m.Apply(rows)
	if changed != 3 {
		t.Errorf("changed = %d, want 3", changed)
	}
	if rows[0].PlayerDeck != "Izzet Prowess" || rows[0].WinningDeck != "Izzet Prowess" {
		t.Errorf("row 0 not renamed: %+v", rows[0])
	}
	if rows[1].OpponentDeck != "Izzet Prowess" {
		t.Errorf("row 1 not renamed: %+v", rows[1])
	}

	// Applying again changes nothing.
	if again := m.Apply(rows); again != 0 {
		t.Errorf("second apply changed %d cells", again)
	}
}

// Partial label matches are left alone; only whole labels rename.
func TestRenameMapWholeLabelOnly(t *testing.T) {
	m := RenameMap{"Burn": "Boros Burn"}
	rows := []model.PairingRow{{PlayerDeck: "Mardu Burn"}}
	if changed := m.Apply(rows); changed != 0 {
		t.Errorf("changed = %d, want 0", changed)
	}
	if rows[0].PlayerDeck != "Mardu Burn" {
		t.Errorf("deck = %q, want untouched", rows[0].PlayerDeck)
	}
}

func TestRenameMapApplyToDecklists(t *testing.T) {
	m := RenameMap{"Izzet Aggro": "Izzet Prowess"}
	cards := []model.DecklistCard{
		{Player: "p1", Archetype: "Izzet Aggro", Card: "Lightning Bolt"},
		{Player: "p2", Archetype: "Tron", Card: "Karn Liberated"},
	}
	if changed := m.ApplyToDecklists(cards); changed != 1 {
		t.Errorf("changed = %d, want 1", changed)
	}
	if cards[0].Archetype != "Izzet Prowess" {
		t.Errorf("archetype = %q", cards[0].Archetype)
	}
}
