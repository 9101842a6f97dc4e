package model

// OutcomeKind classifies a parsed result string.
type OutcomeKind int

const (
	// OutcomeUnparsed means the result text matched no known pattern.
	OutcomeUnparsed OutcomeKind = iota
	// OutcomeDecisive means a named competitor won the match.
	OutcomeDecisive
	// OutcomeDraw means the match ended with no winner.
	OutcomeDraw
	// OutcomeBye means one competitor received an automatic win with no opponent.
	OutcomeBye
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeDecisive:
		return "Decisive"
	case OutcomeDraw:
		return "Draw"
	case OutcomeBye:
		return "Bye"
	default:
		return "Unparsed"
	}
}

// Outcome is the structured classification of a free-text result string.
// Winner is set for Decisive (the winner's display name) and Bye (the
// recipient's display name); Raw always preserves the original text.
type Outcome struct {
	Kind   OutcomeKind
	Winner string
	Raw    string
}

// ---- Raw records as received from the tournament service ----

// Competitor is one side of a scheduled match. Deck is the label of the
// first decklist associated with the player; empty when no decklist was
// submitted or matched.
type Competitor struct {
	Name string
	Deck string
	// DecklistGuid identifies the submitted decklist on the tournament
	// service, when one exists. Used to scrape the full card list.
	DecklistGuid string
}

// RawMatch is one scheduled match in one round, prior to normalization.
// TableNumber may embed HTML markup (the service returns a description cell)
// or be empty. A valid RawMatch has exactly two competitors, or one when it
// represents a bye; any other count is malformed and gets discarded.
type RawMatch struct {
	RoundID      int
	TableNumber  string
	Competitors  []Competitor
	ResultString string
}

// ---- Canonical rows ----

// MissingTable is the sentinel table position for rows whose table number is
// absent or unparseable, chosen large so they sort last.
const MissingTable = 9999

// PairingRow is the canonical record for one valid RawMatch. Opponent fields
// are empty for byes; WinningDeck is empty for draws, byes whose recipient
// had no deck, and unattributable results.
type PairingRow struct {
	RoundID      int
	TableNumber  int
	Player       string
	PlayerDeck   string
	Opponent     string
	OpponentDeck string
	Outcome      string
	WinningDeck  string
	ResultString string
}

// MatchupRow is the aggregated record for one (archetype, opponent archetype)
// pair. Winrate is a percentage rounded to one decimal; mirrors are never
// materialized as MatchupRows.
type MatchupRow struct {
	Archetype string
	Opponent  string
	Wins      int
	Losses    int
	Draws     int
	Total     int
	Winrate   float64
}

// ArchetypeAggregate sums one archetype's matchup rows across all opponents.
type ArchetypeAggregate struct {
	Archetype string
	Wins      int
	Losses    int
	Draws     int
	Total     int
	Winrate   float64
}

// WinMatrix is an N×N head-to-head table. Cells[i][j] is "W-L-D" from
// archetype i's perspective against archetype j, "-" on the diagonal, and
// "0-0-0" for pairs that never played. Overall holds each archetype's
// aggregate winrate, aligned with Archetypes.
type WinMatrix struct {
	Archetypes []string
	Cells      [][]string
	Overall    []float64
}

// ---- Standings and decklists ----

// StandingRow is one player's line in the round standings. MatchRecord is
// the raw "W-L-D" string; Wins/Losses/Draws are parsed from it when possible.
type StandingRow struct {
	Rank        int
	Player      string
	MatchRecord string
	Points      int
	Wins        int
	Losses      int
	Draws       int
	OMWPercent  float64
	GWPercent   float64
	OGWPercent  float64
}

// DecklistCard is one card row scraped from a deck view page, tagged with the
// pilot and archetype, and joined with the pilot's match record.
type DecklistCard struct {
	Player    string
	Archetype string
	Card      string
	Quantity  int
	Zone      string // "main" or "side"
	Wins      int
	Losses    int
}

// MetagameRow is one archetype's share of the field.
type MetagameRow struct {
	Archetype  string
	Pilots     int
	Percentage float64
}

// CardCopyStat is one (card, zone, copy count) cell of the per-archetype card
// winrate table. Pilots counts pilots of the archetype playing exactly Copies
// copies, including zero.
type CardCopyStat struct {
	Card       string
	Zone       string
	Archetype  string
	Copies     int
	Pilots     int
	Wins       int
	Losses     int
	WinPercent float64
}

// EventSummary is a lightweight record for list/show commands.
type EventSummary struct {
	EventID   int
	Name      string
	FetchedAt string
	Rounds    int
	Matches   int
}
