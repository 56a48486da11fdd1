package portfolio

import "github.com/rustyeddy/papertrade/money"

// Position is a held quantity of one instrument with its average cost
// basis. A position exists only while its quantity is positive; selling
// down to zero removes it entirely.
type Position struct {
	Symbol  string
	Qty     int
	AvgCost float64 // per share, 4 decimal places
}

// UnrealizedPL is the open profit or loss against a mark price.
func (p Position) UnrealizedPL(markPrice float64) float64 {
	return money.Round2((markPrice - p.AvgCost) * float64(p.Qty))
}
