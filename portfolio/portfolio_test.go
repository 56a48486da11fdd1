package portfolio

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/papertrade/journal"
	"github.com/rustyeddy/papertrade/market"
)

func newTestPortfolio(cash float64) *Portfolio {
	p := New(cash)
	at := time.Date(2026, 1, 2, 9, 30, 0, 0, time.UTC)
	p.Now = func() time.Time {
		at = at.Add(time.Minute)
		return at
	}
	return p
}

func TestBuySellScenario(t *testing.T) {
	t.Parallel()

	p := newTestPortfolio(10000)

	// Buy 10 AAPL @ 170.
	_, err := p.Buy("AAPL", 10, 170.00)
	require.NoError(t, err)
	assert.Equal(t, 8300.00, p.Cash)

	pos, ok := p.Position("AAPL")
	require.True(t, ok)
	assert.Equal(t, 10, pos.Qty)
	assert.Equal(t, 170.00, pos.AvgCost)

	ledger := p.Ledger()
	require.Len(t, ledger, 1)
	assert.Equal(t, journal.Buy, ledger[0].Side)
	assert.Equal(t, 1700.00, ledger[0].Total)

	// Buy 5 more @ 180: weighted average cost.
	_, err = p.Buy("AAPL", 5, 180.00)
	require.NoError(t, err)
	assert.Equal(t, 7400.00, p.Cash)

	pos, _ = p.Position("AAPL")
	assert.Equal(t, 15, pos.Qty)
	assert.Equal(t, 173.3333, pos.AvgCost)

	// Sell everything @ 190: position removed, proceeds added.
	_, err = p.Sell("AAPL", 15, 190.00)
	require.NoError(t, err)
	assert.Equal(t, 10250.00, p.Cash)

	_, ok = p.Position("AAPL")
	assert.False(t, ok)
	assert.Empty(t, p.Positions())

	ledger = p.Ledger()
	require.Len(t, ledger, 3)
	assert.Equal(t, journal.Buy, ledger[0].Side)
	assert.Equal(t, journal.Buy, ledger[1].Side)
	assert.Equal(t, journal.Sell, ledger[2].Side)
	assert.Equal(t, 2850.00, ledger[2].Total)
}

func TestBuyInsufficientFunds(t *testing.T) {
	t.Parallel()

	p := newTestPortfolio(100)

	_, err := p.Buy("AAPL", 1, 170.00)
	require.ErrorIs(t, err, ErrInsufficientFunds)

	assert.Equal(t, 100.00, p.Cash)
	assert.Empty(t, p.Positions())
	assert.Empty(t, p.Ledger())
}

func TestSellUnheldSymbol(t *testing.T) {
	t.Parallel()

	p := newTestPortfolio(10000)

	_, err := p.Sell("AAPL", 1, 170.00)
	require.ErrorIs(t, err, ErrInsufficientShares)

	assert.Equal(t, 10000.00, p.Cash)
	assert.Empty(t, p.Ledger())
}

func TestSellMoreThanHeld(t *testing.T) {
	t.Parallel()

	p := newTestPortfolio(10000)
	_, err := p.Buy("AAPL", 5, 170.00)
	require.NoError(t, err)

	_, err = p.Sell("AAPL", 10, 190.00)
	require.ErrorIs(t, err, ErrInsufficientShares)

	pos, ok := p.Position("AAPL")
	require.True(t, ok)
	assert.Equal(t, 5, pos.Qty)
	assert.Equal(t, 9150.00, p.Cash)
	assert.Len(t, p.Ledger(), 1)
}

func TestInvalidQuantity(t *testing.T) {
	t.Parallel()

	p := newTestPortfolio(10000)

	_, err := p.Buy("AAPL", 0, 170.00)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = p.Sell("AAPL", -5, 170.00)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	assert.Equal(t, 10000.00, p.Cash)
	assert.Empty(t, p.Ledger())
}

func TestSellLeavesAvgCostUnchanged(t *testing.T) {
	t.Parallel()

	p := newTestPortfolio(10000)
	_, err := p.Buy("MSFT", 10, 100.00)
	require.NoError(t, err)

	_, err = p.Sell("MSFT", 4, 120.00)
	require.NoError(t, err)

	pos, ok := p.Position("MSFT")
	require.True(t, ok)
	assert.Equal(t, 6, pos.Qty)
	assert.Equal(t, 100.00, pos.AvgCost)
}

func TestMarketValueAndEquity(t *testing.T) {
	t.Parallel()

	m := market.New(rand.New(rand.NewSource(1)))
	p := newTestPortfolio(10000)

	// Freshly seeded market prices are fixed until the first tick.
	_, err := p.Buy("AAPL", 10, 170.00)
	require.NoError(t, err)

	assert.Equal(t, 1700.00, p.MarketValue(m))
	assert.Equal(t, 10000.00, p.TotalEquity(m))

	// A held symbol the market no longer quotes contributes nothing.
	_, err = p.Buy("GONE", 3, 10.00)
	require.NoError(t, err)
	assert.Equal(t, 1700.00, p.MarketValue(m))
}

func TestViewsAreIdempotent(t *testing.T) {
	t.Parallel()

	m := market.New(rand.New(rand.NewSource(1)))
	p := newTestPortfolio(10000)
	_, err := p.Buy("AAPL", 10, 170.00)
	require.NoError(t, err)

	assert.Equal(t, p.MarketValue(m), p.MarketValue(m))
	assert.Equal(t, p.TotalEquity(m), p.TotalEquity(m))
	assert.Equal(t, p.Positions(), p.Positions())
	assert.Equal(t, p.Ledger(), p.Ledger())
}

func TestPositionUnrealizedPL(t *testing.T) {
	t.Parallel()

	pos := Position{Symbol: "AAPL", Qty: 10, AvgCost: 170.00}
	assert.Equal(t, 200.00, pos.UnrealizedPL(190.00))
	assert.Equal(t, -100.00, pos.UnrealizedPL(160.00))
}
