package market

import (
	"math"
	"math/rand"
	"testing"
)

func newTestMarket(t *testing.T) *Market {
	t.Helper()
	return New(rand.New(rand.NewSource(42)))
}

func TestNewSeedsFixedList(t *testing.T) {
	m := newTestMarket(t)

	if m.Len() != 10 {
		t.Fatalf("market size: got %d want 10", m.Len())
	}

	quotes := m.Quotes()
	if quotes[0].Symbol != "AAPL" || quotes[0].Price != 170.00 {
		t.Fatalf("first quote: got %s @ %.2f", quotes[0].Symbol, quotes[0].Price)
	}
	if quotes[9].Symbol != "SBIN" || quotes[9].Price != 700.00 {
		t.Fatalf("last quote: got %s @ %.2f", quotes[9].Symbol, quotes[9].Price)
	}
	for _, q := range quotes {
		if q.ChangePercent != 0 {
			t.Fatalf("fresh market should show no change, %s shows %.2f%%", q.Symbol, q.ChangePercent)
		}
	}
}

func TestLookupNormalizesSymbol(t *testing.T) {
	m := newTestMarket(t)

	for _, sym := range []string{"AAPL", "aapl", " aApL "} {
		s, ok := m.Lookup(sym)
		if !ok {
			t.Fatalf("lookup %q: not found", sym)
		}
		if s.Symbol != "AAPL" {
			t.Fatalf("lookup %q: got %s", sym, s.Symbol)
		}
	}

	if _, ok := m.Lookup("ZZZZ"); ok {
		t.Fatal("lookup ZZZZ: should not be found")
	}
}

func TestAdvanceStaysWithinBound(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := &Instrument{Symbol: "TEST", Name: "Test", Price: 100.00, LastPrice: 100.00}

	const bound = 5.0
	for i := 0; i < 1000; i++ {
		prev := s.Price
		s.Advance(rng, bound)

		if s.LastPrice != prev {
			t.Fatalf("iteration %d: LastPrice %.2f want %.2f", i, s.LastPrice, prev)
		}
		// Rounding to cents can push the price half a cent past the bound.
		lo := prev*(1-bound/100) - 0.005
		hi := prev*(1+bound/100) + 0.005
		if s.Price < math.Max(lo, 0.01) || s.Price > hi {
			t.Fatalf("iteration %d: price %.2f outside [%.4f, %.4f]", i, s.Price, lo, hi)
		}
	}
}

func TestAdvanceFloorsAtOneCent(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	s := &Instrument{Symbol: "PENNY", Name: "Penny", Price: 0.01, LastPrice: 0.01}

	for i := 0; i < 1000; i++ {
		s.Advance(rng, 99.0)
		if s.Price < 0.01 {
			t.Fatalf("iteration %d: price %.4f below floor", i, s.Price)
		}
	}
}

func TestChangePercent(t *testing.T) {
	s := &Instrument{Price: 110, LastPrice: 100}
	if got := s.ChangePercent(); math.Abs(got-10.0) > 1e-9 {
		t.Fatalf("change percent: got %.4f want 10", got)
	}

	s = &Instrument{Price: 110, LastPrice: 0}
	if got := s.ChangePercent(); got != 0 {
		t.Fatalf("change percent with no previous price: got %.4f want 0", got)
	}
}

func TestTickAdvancesAllInstruments(t *testing.T) {
	m := newTestMarket(t)

	before := map[string]float64{}
	for _, q := range m.Quotes() {
		before[q.Symbol] = q.Price
	}

	m.Tick(5.0)

	for _, q := range m.Quotes() {
		s, _ := m.Lookup(q.Symbol)
		if s.LastPrice != before[q.Symbol] {
			t.Fatalf("%s: LastPrice %.2f want seed price %.2f", q.Symbol, s.LastPrice, before[q.Symbol])
		}
		if s.Price < 0.01 {
			t.Fatalf("%s: price %.2f below floor", q.Symbol, s.Price)
		}
	}
}
