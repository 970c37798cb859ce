package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/config"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// Command-line flags
var (
	// Rules
	strictCastling = flag.Bool("strict-castling", true, "Refuse castling out of or through check")
	autoPromote    = flag.Bool("auto-promote", true, "Promote without asking (the choice can be changed with 'promote X')")
	promoteTo      = flag.String("promote", "Q", "Default promotion piece: Q, R, B or N")

	// Display
	noHighlight = flag.Bool("nohighlight", false, "Don't mark reachable squares after choosing a piece")
	noCaptured  = flag.Bool("nocaptured", false, "Don't list captured pieces")

	// Logging
	verbosity = flag.Int("v", 1, "Verbosity level (0 = quiet, 2 = move commentary)")
	logFile   = flag.String("l", "", "Write log to file (default: stderr)")

	// Perft mode
	perftDepth = flag.Int("perft", 0, "Count legal move paths of depth N from the start position and exit")
	divide     = flag.Bool("divide", false, "With -perft, list the count below each root move")
	workers    = flag.Int("workers", 0, "Worker goroutines for -divide (0 = number of CPUs)")

	// Help
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyRuleFlags(cfg); err != nil {
		return err
	}
	applyDisplayFlags(cfg)
	cfg.Verbosity = *verbosity
	if *workers > 0 {
		cfg.Workers = *workers
	}
	return nil
}

// applyRuleFlags configures the rule variants.
func applyRuleFlags(cfg *config.Config) error {
	cfg.Rules.StrictCastling = *strictCastling
	cfg.Rules.AutoPromote = *autoPromote

	kind, ok := chess.ParseKind(*promoteTo)
	if !ok || !chess.IsPromotionKind(kind) {
		return errors.Wrapf(errors.ErrInvalidPromotionType, "-promote %q", *promoteTo)
	}
	cfg.Rules.PromotionKind = kind
	return nil
}

// applyDisplayFlags configures the console display.
func applyDisplayFlags(cfg *config.Config) {
	cfg.Display.HighlightMoves = !*noHighlight
	cfg.Display.ShowCaptured = !*noCaptured
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}
