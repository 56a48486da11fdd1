package portfolio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rustyeddy/papertrade/journal"
)

// positionsHeader is the sentinel line separating the cash section from
// the position rows in the snapshot file.
const positionsHeader = "symbol,qty,avgCost"

// Save writes the portfolio snapshot and the trade ledger to their flat
// files. Last write wins; there is no partial-write recovery beyond the
// error returned to the caller.
func Save(p *Portfolio, snapshotPath, ledgerPath string) error {
	f, err := os.Create(snapshotPath)
	if err != nil {
		return fmt.Errorf("save portfolio: %w", err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "cash")
	fmt.Fprintln(w, strconv.FormatFloat(p.Cash, 'f', 2, 64))
	fmt.Fprintln(w, positionsHeader)
	for _, pos := range p.Positions() {
		fmt.Fprintf(w, "%s,%d,%s\n", pos.Symbol, pos.Qty, strconv.FormatFloat(pos.AvgCost, 'f', 4, 64))
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("save portfolio: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("save portfolio: %w", err)
	}

	if err := journal.WriteFile(ledgerPath, p.ledger); err != nil {
		return fmt.Errorf("save ledger: %w", err)
	}
	return nil
}

// Load rebuilds a portfolio from its flat files. A missing snapshot
// yields an empty portfolio with zero cash (the caller decides whether
// to grant a starting balance). A malformed cash line falls back to
// zero, and malformed rows are skipped. The ledger file is parsed
// independently with the same tolerance.
func Load(snapshotPath, ledgerPath string) (*Portfolio, error) {
	p := New(0)

	f, err := os.Open(snapshotPath)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return nil, fmt.Errorf("load portfolio: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)

	// First two lines: the "cash" header, then the balance.
	if sc.Scan() && sc.Scan() {
		if cash, err := strconv.ParseFloat(strings.TrimSpace(sc.Text()), 64); err == nil {
			p.Cash = cash
		}
	}

	// Skip forward to the positions sentinel.
	for sc.Scan() {
		if strings.EqualFold(strings.TrimSpace(sc.Text()), positionsHeader) {
			break
		}
	}

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) < 3 {
			continue
		}
		sym := strings.TrimSpace(parts[0])
		qty, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil || qty <= 0 {
			continue
		}
		avg, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
		if err != nil {
			continue
		}
		if _, ok := p.positions[sym]; ok {
			continue
		}
		p.positions[sym] = &Position{Symbol: sym, Qty: qty, AvgCost: avg}
		p.order = append(p.order, sym)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("load portfolio: %w", err)
	}

	entries, err := journal.ReadFile(ledgerPath)
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}
	p.ledger = entries

	return p, nil
}
