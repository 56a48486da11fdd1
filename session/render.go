package session

import "fmt"

func (c *Controller) renderMenu() {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "Menu:")
	fmt.Fprintln(c.out, "1) View Market (updates prices)")
	fmt.Fprintln(c.out, "2) View Market (no update)")
	fmt.Fprintln(c.out, "3) Buy")
	fmt.Fprintln(c.out, "4) Sell")
	fmt.Fprintln(c.out, "5) View Portfolio")
	fmt.Fprintln(c.out, "6) View Transactions")
	fmt.Fprintln(c.out, "7) Save Portfolio")
	fmt.Fprintln(c.out, "8) Load Portfolio")
	fmt.Fprintln(c.out, "9) Advance Market (tick)")
	fmt.Fprintln(c.out, "0) Exit")
	fmt.Fprint(c.out, "Choose: ")
}

func (c *Controller) renderMarket() {
	fmt.Fprintln(c.out, headerStyle.Render("===== Market ====="))
	fmt.Fprintf(c.out, "%-6s %-20s %-10s %-8s\n", "Symbol", "Name", "Price", "Change%")
	for _, q := range c.market.Quotes() {
		fmt.Fprintf(c.out, "%-6s %-20s %-10.2f %7.2f%%\n", q.Symbol, q.Name, q.Price, q.ChangePercent)
	}
}

func (c *Controller) renderSummary() {
	fmt.Fprintln(c.out, headerStyle.Render("===== Portfolio Summary ====="))
	fmt.Fprintf(c.out, "Cash balance: %.2f\n", c.pf.Cash)
	fmt.Fprintf(c.out, "Market value of holdings: %.2f\n", c.pf.MarketValue(c.market))
	fmt.Fprintf(c.out, "Total equity: %.2f\n", c.pf.TotalEquity(c.market))
	fmt.Fprintln(c.out, "Positions:")

	positions := c.pf.Positions()
	if len(positions) == 0 {
		fmt.Fprintln(c.out, "  (no positions)")
		return
	}
	fmt.Fprintf(c.out, "%-8s %-6s %-10s %-12s %-10s\n", "Symbol", "Qty", "AvgCost", "MktPrice", "UnrealP/L")
	for _, pos := range positions {
		mkt := 0.0
		if s, ok := c.market.Lookup(pos.Symbol); ok {
			mkt = s.Price
		}
		fmt.Fprintf(c.out, "%-8s %-6d %-10.4f %-12.2f %-10.2f\n",
			pos.Symbol, pos.Qty, pos.AvgCost, mkt, pos.UnrealizedPL(mkt))
	}
}

func (c *Controller) renderTransactions() {
	fmt.Fprintln(c.out, headerStyle.Render("===== Transactions ====="))
	entries := c.pf.Ledger()
	if len(entries) == 0 {
		fmt.Fprintln(c.out, "  (no transactions)")
		return
	}
	for _, e := range entries {
		fmt.Fprintln(c.out, e.String())
	}
}
