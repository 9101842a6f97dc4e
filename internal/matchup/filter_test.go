package matchup

import (
	"reflect"
	"testing"

	"github.com/pable/go-meta-metrics/internal/model"
)

// makeRow builds a decisive pairing row where the player side won.
func makeRow(player, playerDeck, opponent, opponentDeck string) model.PairingRow {
	return model.PairingRow{
		RoundID:      1,
		TableNumber:  1,
		Player:       player,
		PlayerDeck:   playerDeck,
		Opponent:     opponent,
		OpponentDeck: opponentDeck,
		Outcome:      player + " won",
		WinningDeck:  playerDeck,
		ResultString: player + " won 2-0-0",
	}
}

func TestIsVoid(t *testing.T) {
	cases := []struct {
		row  model.PairingRow
		want bool
	}{
		{model.PairingRow{Outcome: "Bye"}, true},
		{model.PairingRow{Outcome: " bye "}, true},
		{model.PairingRow{Outcome: "Draw", ResultString: "0-0-3"}, true},
		{model.PairingRow{Outcome: "Draw", ResultString: "1-1-1 Draw"}, false},
		{model.PairingRow{Outcome: "a won", ResultString: "a won 2-0-0"}, false},
	}
	for _, c := range cases {
		if got := IsVoid(c.row); got != c.want {
			t.Errorf("IsVoid(%+v) = %v, want %v", c.row, got, c.want)
		}
	}
}

func TestSwapPerspective(t *testing.T) {
	r := makeRow("Alice", "Burn", "Bob", "Tron")
	s := SwapPerspective(r)

	if s.Player != "Bob" || s.PlayerDeck != "Tron" {
		t.Errorf("player side = %q / %q", s.Player, s.PlayerDeck)
	}
	if s.Opponent != "Alice" || s.OpponentDeck != "Burn" {
		t.Errorf("opponent side = %q / %q", s.Opponent, s.OpponentDeck)
	}
	if s.Outcome != "Alice lost" {
		t.Errorf("outcome = %q, want %q", s.Outcome, "Alice lost")
	}
	// The winning deck names a deck, not a side.
	if s.WinningDeck != "Burn" {
		t.Errorf("winning deck = %q, want %q", s.WinningDeck, "Burn")
	}
	if s.ResultString != r.ResultString {
		t.Errorf("result string changed: %q", s.ResultString)
	}

	// Swapping twice reproduces the original row.
	if rt := SwapPerspective(s); !reflect.DeepEqual(rt, r) {
		t.Errorf("double swap = %+v, want original", rt)
	}
}

func TestSwapPerspectiveDraw(t *testing.T) {
	r := makeRow("Alice", "Burn", "Bob", "Tron")
	r.Outcome = "Draw"
	r.WinningDeck = ""
	if s := SwapPerspective(r); s.Outcome != "Draw" {
		t.Errorf("outcome = %q, want Draw", s.Outcome)
	}
}

func TestFilterArchetype(t *testing.T) {
	rows := []model.PairingRow{
		makeRow("Alice", "Burn", "Bob", "Tron"),
		makeRow("Carol", "Tron", "Dave", "Burn"),
		{Player: "Eve", PlayerDeck: "Burn", Outcome: "Bye", ResultString: "Eve was assigned a bye"},
	}

	got := FilterArchetype(rows, "Burn")
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	// Player-side rows first, then reoriented opponent-side rows.
	if got[0].Player != "Alice" {
		t.Errorf("first row player = %q, want Alice", got[0].Player)
	}
	if got[1].Player != "Dave" || got[1].PlayerDeck != "Burn" {
		t.Errorf("second row = %q / %q, want reoriented Dave on Burn", got[1].Player, got[1].PlayerDeck)
	}
}

// A mirror row enters once per perspective; the aggregator drops both.
func TestFilterArchetypeMirror(t *testing.T) {
	rows := []model.PairingRow{makeRow("Alice", "Burn", "Bob", "Burn")}
	got := FilterArchetype(rows, "Burn")
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Player != "Alice" || got[1].Player != "Bob" {
		t.Errorf("mirror perspectives = %q, %q", got[0].Player, got[1].Player)
	}
}

func TestFilterArchetypeNoMatches(t *testing.T) {
	rows := []model.PairingRow{makeRow("Alice", "Burn", "Bob", "Tron")}
	if got := FilterArchetype(rows, "Amulet Titan"); len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}
