// Package portfolio tracks a cash balance, open positions and the trade
// ledger, and persists them to flat files between sessions.
package portfolio

import (
	"fmt"
	"time"

	"github.com/rustyeddy/papertrade/journal"
	"github.com/rustyeddy/papertrade/market"
	"github.com/rustyeddy/papertrade/money"
)

// Portfolio owns the cash balance, open positions and the trade ledger.
// It is not safe for concurrent use; the session owns it exclusively.
type Portfolio struct {
	Cash float64

	positions map[string]*Position
	order     []string // display order, first buy first
	ledger    []journal.Entry

	// Now stamps ledger entries; replace it for deterministic tests.
	Now func() time.Time
}

func New(startingCash float64) *Portfolio {
	return &Portfolio{
		Cash:      startingCash,
		positions: make(map[string]*Position),
		Now:       time.Now,
	}
}

// CanAfford reports whether cash covers a total cost.
func (p *Portfolio) CanAfford(total float64) bool {
	return p.Cash >= total
}

// Buy purchases qty shares at the given per-share price. The rounded
// total is deducted from cash, the position's average cost is recomputed
// as a weighted average, and a BUY entry is appended to the ledger.
// Nothing is mutated when the buy is rejected.
func (p *Portfolio) Buy(symbol string, qty int, price float64) (journal.Entry, error) {
	if qty <= 0 {
		return journal.Entry{}, fmt.Errorf("buy %s: %w", symbol, ErrInvalidQuantity)
	}
	total := money.Total(qty, price)
	if !p.CanAfford(total) {
		return journal.Entry{}, fmt.Errorf("buy %d %s for %.2f with cash %.2f: %w",
			qty, symbol, total, p.Cash, ErrInsufficientFunds)
	}

	p.Cash = money.Round2(p.Cash - total)

	if pos, ok := p.positions[symbol]; ok {
		pos.AvgCost = money.WeightedAvgCost(pos.AvgCost, pos.Qty, total, qty)
		pos.Qty += qty
	} else {
		p.positions[symbol] = &Position{Symbol: symbol, Qty: qty, AvgCost: money.Round4(price)}
		p.order = append(p.order, symbol)
	}

	e := journal.New(journal.Buy, symbol, qty, price, p.Now())
	p.ledger = append(p.ledger, e)
	return e, nil
}

// Sell disposes qty shares at the given per-share price. The rounded
// proceeds are added to cash and a SELL entry is appended. The average
// cost is never adjusted by a sell; a position sold down to zero is
// removed, discarding its cost basis. Nothing is mutated when the sell
// is rejected.
func (p *Portfolio) Sell(symbol string, qty int, price float64) (journal.Entry, error) {
	if qty <= 0 {
		return journal.Entry{}, fmt.Errorf("sell %s: %w", symbol, ErrInvalidQuantity)
	}
	pos, ok := p.positions[symbol]
	if !ok || pos.Qty < qty {
		held := 0
		if ok {
			held = pos.Qty
		}
		return journal.Entry{}, fmt.Errorf("sell %d %s with %d held: %w",
			qty, symbol, held, ErrInsufficientShares)
	}

	pos.Qty -= qty
	if pos.Qty == 0 {
		delete(p.positions, symbol)
		p.removeFromOrder(symbol)
	}
	p.Cash = money.Round2(p.Cash + money.Total(qty, price))

	e := journal.New(journal.Sell, symbol, qty, price, p.Now())
	p.ledger = append(p.ledger, e)
	return e, nil
}

func (p *Portfolio) removeFromOrder(symbol string) {
	for i, sym := range p.order {
		if sym == symbol {
			p.order = append(p.order[:i], p.order[i+1:]...)
			return
		}
	}
}

// MarketValue sums the current worth of all held positions. Symbols no
// longer quoted by the market contribute nothing.
func (p *Portfolio) MarketValue(m *market.Market) float64 {
	mv := 0.0
	for _, sym := range p.order {
		if s, ok := m.Lookup(sym); ok {
			mv += float64(p.positions[sym].Qty) * s.Price
		}
	}
	return money.Round2(mv)
}

// TotalEquity is cash plus the market value of all held positions.
func (p *Portfolio) TotalEquity(m *market.Market) float64 {
	return money.Round2(p.Cash + p.MarketValue(m))
}

// Position returns the open position for a symbol, if any.
func (p *Portfolio) Position(symbol string) (Position, bool) {
	pos, ok := p.positions[symbol]
	if !ok {
		return Position{}, false
	}
	return *pos, true
}

// Positions returns the open positions in first-buy order.
func (p *Portfolio) Positions() []Position {
	out := make([]Position, 0, len(p.order))
	for _, sym := range p.order {
		out = append(out, *p.positions[sym])
	}
	return out
}

// Ledger returns every recorded trade, oldest first.
func (p *Portfolio) Ledger() []journal.Entry {
	out := make([]journal.Entry, len(p.ledger))
	copy(out, p.ledger)
	return out
}
