package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rustyeddy/papertrade/config"
	"github.com/rustyeddy/papertrade/journal"
	"github.com/rustyeddy/papertrade/market"
	"github.com/rustyeddy/papertrade/portfolio"
	"github.com/rustyeddy/papertrade/session"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start an interactive trading session",
	Long: `Start the menu-driven trading session.

The portfolio is loaded from the flat files named in the configuration
(or the defaults) and saved back on exit.

Example:
  papertrade play --config papertrade.yaml`,
	RunE: runPlay,
}

var (
	playConfigPath string
	playSeed       int64
)

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().StringVarP(&playConfigPath, "config", "f", "", "path to config file (YAML or JSON)")
	playCmd.Flags().Int64Var(&playSeed, "seed", 0, "seed for the price random walk (0 = time-based)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if playConfigPath != "" {
		var err error
		cfg, err = config.LoadFromFile(playConfigPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	}

	seed := playSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	m := market.New(rand.New(rand.NewSource(seed)))

	fmt.Println(session.Banner())

	pf, err := portfolio.Load(cfg.Files.Snapshot, cfg.Files.Ledger)
	if err != nil {
		fmt.Printf("Could not load portfolio: %v\n", err)
		pf = portfolio.New(cfg.Account.StartingCash)
		fmt.Printf("Starting new portfolio with %.2f cash.\n", pf.Cash)
	} else {
		// A fresh or fully spent portfolio gets the configured stake.
		if pf.Cash <= 0 {
			pf.Cash = cfg.Account.StartingCash
		}
		fmt.Printf("Portfolio loaded. Cash: %.2f\n", pf.Cash)
	}

	var jrnl journal.Journal = journal.Nop{}
	if cfg.Journal.Type == "sqlite" {
		jrnl, err = journal.NewSQLite(cfg.Journal.DBPath)
		if err != nil {
			return fmt.Errorf("open journal: %w", err)
		}
	}
	defer jrnl.Close()

	logger, err := newLogger(cfg.Log.File)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logger.Sync()

	ctrl := session.NewController(m, pf, os.Stdin, os.Stdout, session.Options{
		SnapshotPath:     cfg.Files.Snapshot,
		LedgerPath:       cfg.Files.Ledger,
		ViewBoundPercent: cfg.Market.ViewBoundPercent,
		TickBoundPercent: cfg.Market.TickBoundPercent,
		Journal:          jrnl,
		Logger:           logger,
	})
	ctrl.Run()
	return nil
}

// newLogger writes the structured session log to a file so the console
// stays clean for the interactive menu.
func newLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	zcfg := zap.NewProductionConfig()
	zcfg.OutputPaths = []string{path}
	zcfg.ErrorOutputPaths = []string{path}
	return zcfg.Build()
}
