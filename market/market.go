// Package market simulates a small stock market: a fixed list of
// instruments whose prices follow a bounded random walk.
package market

import (
	"math/rand"
	"strings"
)

// seed is the fixed list of instruments every market starts with.
var seed = []Instrument{
	{Symbol: "AAPL", Name: "Apple Inc.", Price: 170.00},
	{Symbol: "GOOG", Name: "Alphabet Inc.", Price: 135.00},
	{Symbol: "MSFT", Name: "Microsoft Corp.", Price: 330.00},
	{Symbol: "AMZN", Name: "Amazon.com Inc.", Price: 140.00},
	{Symbol: "TSLA", Name: "Tesla Inc.", Price: 260.00},
	{Symbol: "INFY", Name: "Infosys Ltd.", Price: 18.50},
	{Symbol: "TCS", Name: "Tata Consultancy", Price: 42.00},
	{Symbol: "RELI", Name: "Reliance Industries", Price: 225.00},
	{Symbol: "BPCL", Name: "BPCL", Price: 120.00},
	{Symbol: "SBIN", Name: "State Bank of India", Price: 700.00},
}

// Quote is a display-only view of one instrument.
type Quote struct {
	Symbol        string
	Name          string
	Price         float64
	ChangePercent float64
}

// Market is an insertion-ordered collection of instruments. It lives for
// the process lifetime and is never persisted.
type Market struct {
	rng   *rand.Rand
	bySym map[string]*Instrument
	order []string
}

// New builds a market seeded with the fixed instrument list. The random
// source drives every price movement, so tests can pass a seeded one.
func New(rng *rand.Rand) *Market {
	m := &Market{
		rng:   rng,
		bySym: make(map[string]*Instrument, len(seed)),
	}
	for _, s := range seed {
		s := s
		s.LastPrice = s.Price
		m.bySym[s.Symbol] = &s
		m.order = append(m.order, s.Symbol)
	}
	return m
}

// Lookup finds an instrument by symbol. Symbols are matched on their
// uppercase form, so "aapl" and "AAPL" name the same instrument.
func (m *Market) Lookup(symbol string) (*Instrument, bool) {
	s, ok := m.bySym[strings.ToUpper(strings.TrimSpace(symbol))]
	return s, ok
}

// Tick advances every instrument's price, in market order.
func (m *Market) Tick(boundPct float64) {
	for _, sym := range m.order {
		m.bySym[sym].Advance(m.rng, boundPct)
	}
}

// Quotes returns the current prices in market order.
func (m *Market) Quotes() []Quote {
	out := make([]Quote, 0, len(m.order))
	for _, sym := range m.order {
		s := m.bySym[sym]
		out = append(out, Quote{
			Symbol:        s.Symbol,
			Name:          s.Name,
			Price:         s.Price,
			ChangePercent: s.ChangePercent(),
		})
	}
	return out
}

// Len reports how many instruments are listed.
func (m *Market) Len() int { return len(m.order) }
