// Package session drives the interactive menu loop over one market and
// one portfolio. It is strictly single-threaded: each iteration reads a
// line, dispatches, and renders; domain-rule violations are reported and
// the loop continues. Only a closed input stream ends the session.
package session

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/rustyeddy/papertrade/journal"
	"github.com/rustyeddy/papertrade/market"
	"github.com/rustyeddy/papertrade/portfolio"
)

// Options configure a Controller.
type Options struct {
	SnapshotPath string
	LedgerPath   string

	// ViewBoundPercent is the price movement applied when viewing the
	// market; TickBoundPercent when explicitly advancing a tick.
	ViewBoundPercent float64
	TickBoundPercent float64

	Journal journal.Journal // mirror for executed trades; nil disables
	Logger  *zap.Logger     // session log; nil disables
}

// Controller owns the market and portfolio for one interactive session.
type Controller struct {
	market *market.Market
	pf     *portfolio.Portfolio
	in     *bufio.Scanner
	out    io.Writer
	opts   Options
	jrnl   journal.Journal
	log    *zap.Logger
}

func NewController(m *market.Market, p *portfolio.Portfolio, in io.Reader, out io.Writer, opts Options) *Controller {
	if opts.ViewBoundPercent <= 0 {
		opts.ViewBoundPercent = 5.0
	}
	if opts.TickBoundPercent <= 0 {
		opts.TickBoundPercent = 2.0
	}
	jrnl := opts.Journal
	if jrnl == nil {
		jrnl = journal.Nop{}
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		market: m,
		pf:     p,
		in:     bufio.NewScanner(in),
		out:    out,
		opts:   opts,
		jrnl:   jrnl,
		log:    log,
	}
}

// Portfolio returns the portfolio the session currently operates on.
func (c *Controller) Portfolio() *portfolio.Portfolio { return c.pf }

// Run drives the session until the exit command or the input stream
// closes. The portfolio is saved best-effort on the way out; a failed
// save is reported but never blocks termination.
func (c *Controller) Run() {
	for {
		c.renderMenu()
		line, ok := c.readLine()
		if !ok {
			break
		}
		cmd := ParseCommand(line)
		if cmd == CmdExit {
			break
		}
		if err := c.dispatch(cmd); err != nil {
			c.reportError(err)
		}
	}
	c.saveBestEffort()
}

func (c *Controller) dispatch(cmd Command) error {
	switch cmd {
	case CmdRefreshMarket:
		c.market.Tick(c.opts.ViewBoundPercent)
		c.renderMarket()
	case CmdViewMarket:
		c.renderMarket()
	case CmdBuy:
		return c.handleBuy()
	case CmdSell:
		return c.handleSell()
	case CmdViewPortfolio:
		c.renderSummary()
	case CmdViewTransactions:
		c.renderTransactions()
	case CmdSave:
		return c.handleSave()
	case CmdLoad:
		return c.handleLoad()
	case CmdTick:
		c.market.Tick(c.opts.TickBoundPercent)
		fmt.Fprintln(c.out, "Market tick advanced (small random movements).")
	default:
		fmt.Fprintln(c.out, "Unknown option.")
	}
	return nil
}

// readLine reads and trims the next input line. The second return is
// false once the input stream is closed.
func (c *Controller) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// prompt prints a label and reads one line of input.
func (c *Controller) prompt(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	return c.readLine()
}

func (c *Controller) reportError(err error) {
	fmt.Fprintln(c.out, errorStyle.Render("Error: "+err.Error()))
	c.log.Warn("command failed", zap.Error(err))
}

func (c *Controller) saveBestEffort() {
	if err := portfolio.Save(c.pf, c.opts.SnapshotPath, c.opts.LedgerPath); err != nil {
		fmt.Fprintln(c.out, errorStyle.Render("Could not save portfolio: "+err.Error()))
		c.log.Error("final save failed", zap.Error(err))
		return
	}
	fmt.Fprintln(c.out, "Portfolio saved. Goodbye.")
	c.log.Info("portfolio saved on exit",
		zap.String("snapshot", c.opts.SnapshotPath),
		zap.String("ledger", c.opts.LedgerPath))
}
