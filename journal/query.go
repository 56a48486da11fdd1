package journal

import (
	"database/sql"
	"fmt"
	"time"
)

// GetEntry returns a single recorded trade by id.
func (j *SQLite) GetEntry(entryID string) (Entry, error) {
	var (
		e    Entry
		side string
	)

	row := j.db.QueryRow(`
		SELECT id, time, side, symbol, qty, price, total
		FROM trades
		WHERE id = ?`, entryID)

	err := row.Scan(&e.ID, &e.Time, &side, &e.Symbol, &e.Qty, &e.Price, &e.Total)
	if err != nil {
		if err == sql.ErrNoRows {
			return Entry{}, fmt.Errorf("trade %q not found", entryID)
		}
		return Entry{}, err
	}
	e.Side = Side(side)
	return e, nil
}

// ListBetween returns trades executed within [start, end), oldest first.
func (j *SQLite) ListBetween(start, end time.Time) ([]Entry, error) {
	rows, err := j.db.Query(`
		SELECT id, time, side, symbol, qty, price, total
		FROM trades
		WHERE time >= ? AND time < ?
		ORDER BY time ASC`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			e    Entry
			side string
		)
		if err := rows.Scan(&e.ID, &e.Time, &side, &e.Symbol, &e.Qty, &e.Price, &e.Total); err != nil {
			return nil, err
		}
		e.Side = Side(side)
		out = append(out, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
