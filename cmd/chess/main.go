// chess is a two-player console chess game. With -perft it counts move
// paths from the start position instead.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chessmatch-go/internal/config"
	"github.com/lgbarn/chessmatch-go/internal/engine"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessmatch-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	setupLogFile(cfg)

	if *perftDepth > 0 {
		if err := runPerft(cfg, *perftDepth, *divide); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	c := newConsole(engine.NewMatch(cfg), os.Stdin, cfg.OutputFile)
	if err := c.run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
}

// runPerft prints the perft count of the start position, optionally
// divided by root move.
func runPerft(cfg *config.Config, depth int, divide bool) error {
	m := engine.NewMatch(cfg)

	if !divide {
		nodes, err := m.Perft(depth)
		if err != nil {
			return err
		}
		fmt.Fprintf(cfg.OutputFile, "perft(%d) = %d\n", depth, nodes)
		return nil
	}

	entries, err := m.PerftDivide(depth, cfg.Workers)
	if err != nil {
		return err
	}
	var total uint64
	for _, e := range entries {
		fmt.Fprintf(cfg.OutputFile, "%s: %d\n", e.Move(), e.Nodes)
		total += e.Nodes
	}
	fmt.Fprintf(cfg.OutputFile, "\n%d moves, %d nodes\n", len(entries), total)
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess [options]\n\n")
	fmt.Fprintf(os.Stderr, "Two players take turns at one console. Enter squares such as e2,\n")
	fmt.Fprintf(os.Stderr, "first the piece to move and then its destination.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nCommands at the source prompt:\n")
	fmt.Fprintf(os.Stderr, "  promote X  Change the last promotion to X (Q, R, B or N)\n")
	fmt.Fprintf(os.Stderr, "  quit       Leave the game\n")
}
