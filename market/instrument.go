package market

import (
	"math/rand"

	"github.com/rustyeddy/papertrade/money"
)

// Instrument is one tradable symbol with a simulated price.
type Instrument struct {
	Symbol    string
	Name      string
	Price     float64 // current price, rounded to cents
	LastPrice float64 // price before the most recent update
}

// ChangePercent returns the percent move since the previous price.
// It is zero when there is no previous price to compare against.
func (s *Instrument) ChangePercent() float64 {
	if s.LastPrice == 0 {
		return 0
	}
	return (s.Price - s.LastPrice) / s.LastPrice * 100.0
}

// Advance moves the price by a uniform random percentage drawn from
// [-boundPct, +boundPct]. The result is rounded to cents and never
// drops below 0.01.
func (s *Instrument) Advance(rng *rand.Rand, boundPct float64) {
	s.LastPrice = s.Price
	pct := (rng.Float64() * 2 * boundPct) - boundPct
	s.Price = money.Round2(s.Price * (1 + pct/100.0))
	if s.Price < 0.01 {
		s.Price = 0.01
	}
}
