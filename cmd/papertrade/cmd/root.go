package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "papertrade",
	Short: "A console paper-trading simulator with a simulated market",
	Long: `Papertrade is a single-user console stock trading simulator.

It provides:
  - A small simulated market whose prices follow a bounded random walk
  - Buying and selling positions against a cash balance
  - Weighted-average cost basis and unrealized P/L per position
  - Flat-file persistence of the portfolio and trade ledger
  - An optional SQLite trade journal for querying past sessions

Running papertrade with no arguments starts an interactive session.`,
	RunE: runPlay,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
