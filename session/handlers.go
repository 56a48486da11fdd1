package session

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/rustyeddy/papertrade/journal"
	"github.com/rustyeddy/papertrade/money"
	"github.com/rustyeddy/papertrade/portfolio"
)

func (c *Controller) handleBuy() error {
	sym, ok := c.prompt("Enter symbol to buy: ")
	if !ok {
		return nil
	}
	sym = strings.ToUpper(sym)
	instr, found := c.market.Lookup(sym)
	if !found {
		fmt.Fprintln(c.out, "Symbol not found.")
		return nil
	}
	fmt.Fprintf(c.out, "Price: %.2f\n", instr.Price)

	qty, ok, err := c.promptQty("Enter quantity: ")
	if !ok || err != nil {
		return err
	}

	cost := money.Total(qty, instr.Price)
	confirmed, ok := c.confirm(fmt.Sprintf("Total cost: %.2f. Proceed? (y/n): ", cost))
	if !ok {
		return nil
	}
	if !confirmed {
		fmt.Fprintln(c.out, "Cancelled.")
		return nil
	}

	entry, err := c.pf.Buy(sym, qty, instr.Price)
	if err != nil {
		return err
	}
	c.recordTrade(entry)

	fmt.Fprintf(c.out, "Bought %d of %s @ %.2f\n", qty, sym, instr.Price)
	return nil
}

func (c *Controller) handleSell() error {
	sym, ok := c.prompt("Enter symbol to sell: ")
	if !ok {
		return nil
	}
	sym = strings.ToUpper(sym)
	instr, found := c.market.Lookup(sym)
	if !found {
		fmt.Fprintln(c.out, "Symbol not found.")
		return nil
	}
	pos, held := c.pf.Position(sym)
	if !held {
		fmt.Fprintf(c.out, "You don't own any shares of %s\n", sym)
		return nil
	}
	fmt.Fprintf(c.out, "You own: %d shares. Avg cost: %.4f\n", pos.Qty, pos.AvgCost)

	qty, ok, err := c.promptQty("Enter quantity to sell: ")
	if !ok || err != nil {
		return err
	}

	proceeds := money.Total(qty, instr.Price)
	confirmed, ok := c.confirm(fmt.Sprintf("Proceeds: %.2f. Proceed? (y/n): ", proceeds))
	if !ok {
		return nil
	}
	if !confirmed {
		fmt.Fprintln(c.out, "Cancelled.")
		return nil
	}

	entry, err := c.pf.Sell(sym, qty, instr.Price)
	if err != nil {
		return err
	}
	c.recordTrade(entry)

	fmt.Fprintf(c.out, "Sold %d of %s @ %.2f\n", qty, sym, instr.Price)
	return nil
}

// promptQty reads a share quantity. Non-numeric or non-positive input is
// an InvalidQuantity error for the loop to report.
func (c *Controller) promptQty(label string) (int, bool, error) {
	raw, ok := c.prompt(label)
	if !ok {
		return 0, false, nil
	}
	qty, err := strconv.Atoi(raw)
	if err != nil || qty <= 0 {
		return 0, true, fmt.Errorf("quantity %q: %w", raw, portfolio.ErrInvalidQuantity)
	}
	return qty, true, nil
}

// confirm asks for an explicit affirmative reply. Anything but "y" is a
// decline.
func (c *Controller) confirm(label string) (confirmed, ok bool) {
	reply, ok := c.prompt(label)
	if !ok {
		return false, false
	}
	return strings.EqualFold(reply, "y"), true
}

// recordTrade mirrors an executed trade to the journal and session log.
// Mirror failures are logged, not surfaced; the ledger already has the
// entry.
func (c *Controller) recordTrade(e journal.Entry) {
	if err := c.jrnl.Record(e); err != nil {
		c.log.Warn("journal mirror failed", zap.String("id", e.ID), zap.Error(err))
	}
	c.log.Info("trade executed",
		zap.String("id", e.ID),
		zap.String("side", string(e.Side)),
		zap.String("symbol", e.Symbol),
		zap.Int("qty", e.Qty),
		zap.Float64("price", e.Price),
		zap.Float64("total", e.Total),
		zap.Float64("cash", c.pf.Cash),
	)
}

func (c *Controller) handleSave() error {
	if err := portfolio.Save(c.pf, c.opts.SnapshotPath, c.opts.LedgerPath); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Saved %s and %s\n", c.opts.SnapshotPath, c.opts.LedgerPath)
	c.log.Info("portfolio saved",
		zap.String("snapshot", c.opts.SnapshotPath),
		zap.String("ledger", c.opts.LedgerPath))
	return nil
}

func (c *Controller) handleLoad() error {
	pf, err := portfolio.Load(c.opts.SnapshotPath, c.opts.LedgerPath)
	if err != nil {
		return err
	}
	c.pf = pf
	fmt.Fprintf(c.out, "Loaded portfolio. Cash: %.2f\n", pf.Cash)
	c.log.Info("portfolio loaded", zap.Float64("cash", pf.Cash))
	return nil
}
