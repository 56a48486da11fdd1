package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// SQLite mirrors executed trades into a SQLite database so they can be
// queried across sessions. The flat files remain the load source.
type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) Record(e Entry) error {
	_, err := j.db.Exec(`
		INSERT INTO trades
		(id, time, side, symbol, qty, price, total)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Time, string(e.Side), e.Symbol, e.Qty, e.Price, e.Total,
	)
	return err
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
