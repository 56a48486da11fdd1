// Package journal records executed trades. The in-memory ledger is the
// source of truth; it round-trips through a line-oriented flat file, and
// can additionally be mirrored into SQLite for querying across sessions.
package journal

import (
	"fmt"
	"time"

	"github.com/rustyeddy/papertrade/internal/id"
	"github.com/rustyeddy/papertrade/money"
)

// Side of an executed trade.
type Side string

const (
	Buy  Side = "BUY"
	Sell Side = "SELL"
)

// Entry is an immutable record of one executed trade.
type Entry struct {
	ID     string
	Time   time.Time
	Side   Side
	Symbol string
	Qty    int
	Price  float64 // per share at execution
	Total  float64 // Qty * Price, rounded to cents
}

// New builds an entry for a trade executed at the given time. The id is
// assigned here and is not part of the flat-file format; reloading a
// ledger assigns fresh ids.
func New(side Side, symbol string, qty int, price float64, at time.Time) Entry {
	return Entry{
		ID:     id.New(),
		Time:   at,
		Side:   side,
		Symbol: symbol,
		Qty:    qty,
		Price:  price,
		Total:  money.Total(qty, price),
	}
}

func (e Entry) String() string {
	return fmt.Sprintf("%s %s %d %s @ %.2f = %.2f",
		e.Time.Format("2006-01-02 15:04:05"), e.Side, e.Qty, e.Symbol, e.Price, e.Total)
}

// Journal mirrors executed trades to an external store.
type Journal interface {
	Record(Entry) error
	Close() error
}

// Nop is a Journal that discards everything.
type Nop struct{}

func (Nop) Record(Entry) error { return nil }
func (Nop) Close() error       { return nil }
