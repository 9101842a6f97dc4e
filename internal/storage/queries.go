package storage

import (
	"database/sql"
	"fmt"

	"github.com/pable/go-meta-metrics/internal/model"
)

// EventExists returns true if an event with the given id is already stored.
func (db *DB) EventExists(eventID int) (bool, error) {
	var count int
	err := db.conn.QueryRow("SELECT COUNT(1) FROM events WHERE event_id = ?", eventID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// InsertEvent inserts an event record. Uses INSERT OR REPLACE for idempotency.
func (db *DB) InsertEvent(ev model.EventSummary) error {
	_, err := db.conn.Exec(`
		INSERT OR REPLACE INTO events(event_id, name, fetched_at, rounds, matches)
		VALUES (?, ?, ?, ?, ?)`,
		ev.EventID, ev.Name, ev.FetchedAt, ev.Rounds, ev.Matches,
	)
	return err
}

// ListEvents returns all stored events ordered by fetch time desc.
func (db *DB) ListEvents() ([]model.EventSummary, error) {
	rows, err := db.conn.Query(`
		SELECT event_id, name, fetched_at, rounds, matches
		FROM events ORDER BY fetched_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.EventSummary
	for rows.Next() {
		var ev model.EventSummary
		if err := rows.Scan(&ev.EventID, &ev.Name, &ev.FetchedAt, &ev.Rounds, &ev.Matches); err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}

// GetEvent returns one event, or nil when it is not stored.
func (db *DB) GetEvent(eventID int) (*model.EventSummary, error) {
	var ev model.EventSummary
	err := db.conn.QueryRow(`
		SELECT event_id, name, fetched_at, rounds, matches
		FROM events WHERE event_id = ?`, eventID).
		Scan(&ev.EventID, &ev.Name, &ev.FetchedAt, &ev.Rounds, &ev.Matches)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

// DeleteEvent removes an event together with its pairings, standings and
// decklist cards.
func (db *DB) DeleteEvent(eventID int) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"pairings", "standings", "decklist_cards", "events"} {
		if _, err := tx.Exec("DELETE FROM "+table+" WHERE event_id = ?", eventID); err != nil {
			return fmt.Errorf("delete from %s: %w", table, err)
		}
	}
	return tx.Commit()
}

// InsertPairings bulk-inserts pairing rows for an event in a transaction.
func (db *DB) InsertPairings(eventID int, rows []model.PairingRow) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO pairings(
			event_id, round_id, table_number, player, player_deck,
			opponent, opponent_deck, outcome, winning_deck, result_string
		) VALUES (?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range rows {
		_, err = stmt.Exec(
			eventID, r.RoundID, r.TableNumber, r.Player, r.PlayerDeck,
			r.Opponent, r.OpponentDeck, r.Outcome, r.WinningDeck, r.ResultString,
		)
		if err != nil {
			return fmt.Errorf("insert pairing for %q round %d: %w", r.Player, r.RoundID, err)
		}
	}
	return tx.Commit()
}

// GetPairings returns all pairing rows for an event in canonical order.
func (db *DB) GetPairings(eventID int) ([]model.PairingRow, error) {
	rows, err := db.conn.Query(`
		SELECT round_id, table_number, player, player_deck,
		       opponent, opponent_deck, outcome, winning_deck, result_string
		FROM pairings WHERE event_id = ?
		ORDER BY round_id, table_number, player`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.PairingRow
	for rows.Next() {
		var r model.PairingRow
		if err := rows.Scan(
			&r.RoundID, &r.TableNumber, &r.Player, &r.PlayerDeck,
			&r.Opponent, &r.OpponentDeck, &r.Outcome, &r.WinningDeck, &r.ResultString,
		); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// UpdatePairingDecks rewrites the deck labels of stored pairing rows. Used by
// the rename pass so later reads see the canonical archetype names.
func (db *DB) UpdatePairingDecks(eventID int, rows []model.PairingRow) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		UPDATE pairings SET player_deck = ?, opponent_deck = ?, winning_deck = ?
		WHERE event_id = ? AND round_id = ? AND player = ?`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err := stmt.Exec(r.PlayerDeck, r.OpponentDeck, r.WinningDeck, eventID, r.RoundID, r.Player); err != nil {
			return fmt.Errorf("update pairing for %q round %d: %w", r.Player, r.RoundID, err)
		}
	}
	return tx.Commit()
}

// InsertStandings bulk-inserts standing rows for one round in a transaction.
func (db *DB) InsertStandings(eventID, roundID int, rows []model.StandingRow) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO standings(
			event_id, round_id, rank, player, match_record, points,
			wins, losses, draws, omw_percent, gw_percent, ogw_percent
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, s := range rows {
		_, err = stmt.Exec(
			eventID, roundID, s.Rank, s.Player, s.MatchRecord, s.Points,
			s.Wins, s.Losses, s.Draws, s.OMWPercent, s.GWPercent, s.OGWPercent,
		)
		if err != nil {
			return fmt.Errorf("insert standing for %q: %w", s.Player, err)
		}
	}
	return tx.Commit()
}

// GetStandings returns the latest stored standings for an event, ordered by rank.
func (db *DB) GetStandings(eventID int) ([]model.StandingRow, error) {
	rows, err := db.conn.Query(`
		SELECT rank, player, match_record, points,
		       wins, losses, draws, omw_percent, gw_percent, ogw_percent
		FROM standings
		WHERE event_id = ? AND round_id = (SELECT MAX(round_id) FROM standings WHERE event_id = ?)
		ORDER BY rank`, eventID, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.StandingRow
	for rows.Next() {
		var s model.StandingRow
		if err := rows.Scan(
			&s.Rank, &s.Player, &s.MatchRecord, &s.Points,
			&s.Wins, &s.Losses, &s.Draws, &s.OMWPercent, &s.GWPercent, &s.OGWPercent,
		); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// InsertDecklistCards bulk-inserts decklist card rows in a transaction.
func (db *DB) InsertDecklistCards(eventID int, cards []model.DecklistCard) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO decklist_cards(
			event_id, player, archetype, card, quantity, zone, wins, losses
		) VALUES (?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, c := range cards {
		_, err = stmt.Exec(eventID, c.Player, c.Archetype, c.Card, c.Quantity, c.Zone, c.Wins, c.Losses)
		if err != nil {
			return fmt.Errorf("insert decklist card %q for %q: %w", c.Card, c.Player, err)
		}
	}
	return tx.Commit()
}

// GetDecklistCards returns all decklist card rows for an event, ordered by
// player then zone then card.
func (db *DB) GetDecklistCards(eventID int) ([]model.DecklistCard, error) {
	rows, err := db.conn.Query(`
		SELECT player, archetype, card, quantity, zone, wins, losses
		FROM decklist_cards WHERE event_id = ?
		ORDER BY player, zone, card`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.DecklistCard
	for rows.Next() {
		var c model.DecklistCard
		if err := rows.Scan(&c.Player, &c.Archetype, &c.Card, &c.Quantity, &c.Zone, &c.Wins, &c.Losses); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// UpdateDecklistArchetypes rewrites archetype labels on stored decklist cards.
func (db *DB) UpdateDecklistArchetypes(eventID int, renames map[string]string) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		UPDATE decklist_cards SET archetype = ?
		WHERE event_id = ? AND archetype = ?`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for from, to := range renames {
		if _, err := stmt.Exec(to, eventID, from); err != nil {
			return fmt.Errorf("rename archetype %q: %w", from, err)
		}
	}
	return tx.Commit()
}
