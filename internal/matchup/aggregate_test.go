package matchup

import (
	"testing"

	"github.com/pable/go-meta-metrics/internal/model"
)

// makeDraw builds a drawn pairing row between the two decks.
func makeDraw(player, playerDeck, opponent, opponentDeck string) model.PairingRow {
	r := makeRow(player, playerDeck, opponent, opponentDeck)
	r.Outcome = "Draw"
	r.WinningDeck = ""
	r.ResultString = "1-1-1 Draw"
	return r
}

// blinkGoryoRows is a four-match head-to-head: Blink wins two, loses one,
// draws one. Plus a bye and a mirror that must not contribute anywhere.
func blinkGoryoRows() []model.PairingRow {
	return []model.PairingRow{
		makeRow("a1", "Azorius Blink", "b1", "Esper Goryo's"),
		makeRow("a2", "Azorius Blink", "b2", "Esper Goryo's"),
		makeRow("b3", "Esper Goryo's", "a3", "Azorius Blink"),
		makeDraw("a4", "Azorius Blink", "b4", "Esper Goryo's"),
		{Player: "a5", PlayerDeck: "Azorius Blink", Outcome: "Bye", WinningDeck: "Azorius Blink", ResultString: "a5 was assigned a bye"},
		makeRow("a6", "Azorius Blink", "a7", "Azorius Blink"),
	}
}

func TestMatchupsHeadToHead(t *testing.T) {
	rows := blinkGoryoRows()

	got := Matchups("Azorius Blink", FilterArchetype(rows, "Azorius Blink"))
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1 (bye and mirror excluded)", len(got))
	}
	m := got[0]
	if m.Opponent != "Esper Goryo's" {
		t.Errorf("opponent = %q", m.Opponent)
	}
	if m.Wins != 2 || m.Losses != 1 || m.Draws != 1 || m.Total != 4 {
		t.Errorf("record = %d-%d-%d (%d), want 2-1-1 (4)", m.Wins, m.Losses, m.Draws, m.Total)
	}
	if m.Winrate != 50.0 {
		t.Errorf("winrate = %.1f, want 50.0", m.Winrate)
	}

	// Same data from the other side of the table.
	inv := Matchups("Esper Goryo's", FilterArchetype(rows, "Esper Goryo's"))
	if len(inv) != 1 {
		t.Fatalf("inverse len = %d, want 1", len(inv))
	}
	n := inv[0]
	if n.Wins != 1 || n.Losses != 2 || n.Draws != 1 || n.Total != 4 {
		t.Errorf("inverse record = %d-%d-%d (%d), want 1-2-1 (4)", n.Wins, n.Losses, n.Draws, n.Total)
	}
	if n.Winrate != 25.0 {
		t.Errorf("inverse winrate = %.1f, want 25.0", n.Winrate)
	}
}

// A result whose winner matched neither competitor counts toward nothing,
// not even the total.
func TestMatchupsSkipsUnattributable(t *testing.T) {
	r := makeRow("Alice", "Burn", "Bob", "Tron")
	r.Outcome = "Carol won 2-0-0"
	r.WinningDeck = ""

	got := Matchups("Burn", FilterArchetype([]model.PairingRow{r}, "Burn"))
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Total != 0 {
		t.Errorf("total = %d, want 0", got[0].Total)
	}
}

func TestMatchupsWinrateRounding(t *testing.T) {
	rows := []model.PairingRow{
		makeRow("a1", "Burn", "b1", "Tron"),
		makeRow("a2", "Burn", "b2", "Tron"),
		makeRow("b3", "Tron", "a3", "Burn"),
	}
	got := Matchups("Burn", FilterArchetype(rows, "Burn"))
	// 2/3 = 66.666... rounds to 66.7.
	if got[0].Winrate != 66.7 {
		t.Errorf("winrate = %.1f, want 66.7", got[0].Winrate)
	}
}

func TestMatchupsSortOrder(t *testing.T) {
	rows := []model.PairingRow{
		makeRow("a1", "Burn", "b1", "Tron"),
		makeRow("a2", "Burn", "b2", "Amulet Titan"),
		makeRow("a3", "Burn", "b3", "Amulet Titan"),
	}
	got := Matchups("Burn", FilterArchetype(rows, "Burn"))
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Opponent != "Amulet Titan" {
		t.Errorf("most-played matchup first: got %q", got[0].Opponent)
	}
}

func TestAggregate(t *testing.T) {
	rows := blinkGoryoRows()
	byArchetype := BuildAll(rows, []string{"Azorius Blink", "Esper Goryo's"})

	agg := Aggregate("Azorius Blink", byArchetype["Azorius Blink"])
	if agg.Wins != 2 || agg.Losses != 1 || agg.Draws != 1 || agg.Total != 4 {
		t.Errorf("aggregate = %+v", agg)
	}
	if agg.Winrate != 50.0 {
		t.Errorf("winrate = %.1f, want 50.0", agg.Winrate)
	}

	all := AggregateAll(byArchetype)
	if len(all) != 2 {
		t.Fatalf("len = %d, want 2", len(all))
	}
	if all[0].Archetype != "Azorius Blink" {
		t.Errorf("most wins first: got %q", all[0].Archetype)
	}
}

func TestBuildMatrix(t *testing.T) {
	rows := blinkGoryoRows()
	byArchetype := BuildAll(rows, []string{"Azorius Blink", "Esper Goryo's"})

	m := BuildMatrix(byArchetype, 0)
	if len(m.Archetypes) != 2 {
		t.Fatalf("archetypes = %v", m.Archetypes)
	}
	i := indexOf(m.Archetypes, "Azorius Blink")
	j := indexOf(m.Archetypes, "Esper Goryo's")
	if m.Cells[i][i] != "-" || m.Cells[j][j] != "-" {
		t.Errorf("diagonal = %q / %q, want -", m.Cells[i][i], m.Cells[j][j])
	}
	if m.Cells[i][j] != "2-1-1" {
		t.Errorf("cell = %q, want 2-1-1", m.Cells[i][j])
	}
	if m.Cells[j][i] != "1-2-1" {
		t.Errorf("mirror cell = %q, want 1-2-1", m.Cells[j][i])
	}
	if m.Overall[i] != 50.0 || m.Overall[j] != 25.0 {
		t.Errorf("overall = %v", m.Overall)
	}
}

func TestBuildMatrixTopN(t *testing.T) {
	rows := []model.PairingRow{
		makeRow("a1", "Burn", "b1", "Tron"),
		makeRow("a2", "Burn", "b2", "Tron"),
		makeRow("a3", "Amulet Titan", "b3", "Burn"),
	}
	byArchetype := BuildAll(rows, []string{"Amulet Titan", "Burn", "Tron"})

	m := BuildMatrix(byArchetype, 2)
	if len(m.Archetypes) != 2 {
		t.Fatalf("archetypes = %v, want top 2", m.Archetypes)
	}
	if m.Archetypes[0] != "Burn" {
		t.Errorf("most played first: got %q", m.Archetypes[0])
	}
}

// Archetypes in the matrix that never met show a zero record cell.
func TestBuildMatrixNeverPlayed(t *testing.T) {
	rows := []model.PairingRow{
		makeRow("a1", "Burn", "b1", "Tron"),
		makeRow("a2", "Amulet Titan", "b2", "Tron"),
	}
	byArchetype := BuildAll(rows, []string{"Amulet Titan", "Burn", "Tron"})

	m := BuildMatrix(byArchetype, 0)
	i := indexOf(m.Archetypes, "Burn")
	j := indexOf(m.Archetypes, "Amulet Titan")
	if m.Cells[i][j] != "0-0-0" {
		t.Errorf("cell = %q, want 0-0-0", m.Cells[i][j])
	}
}

func indexOf(ss []string, s string) int {
	for i, v := range ss {
		if v == s {
			return i
		}
	}
	return -1
}
