// Package config provides configuration for the chess match engine and its front end.
package config

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	// Rules variations applied by the match engine.
	Rules *RulesConfig

	// Display settings for the console front end.
	Display *DisplayConfig

	// Verbosity: 0=nothing, 1=results only, 2=running commentary.
	Verbosity int

	// Workers is the number of goroutines used by perft.
	Workers int

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// RulesConfig holds the rule choices the engine leaves open.
type RulesConfig struct {
	// StrictCastling refuses castling out of check or across an attacked
	// square. When false only the post-move self-check test applies.
	StrictCastling bool

	// AutoPromote promotes a pawn as soon as it reaches the last rank.
	// The caller may still replace the piece with ChoosePromotion.
	AutoPromote bool

	// PromotionKind is the piece chosen by auto-promotion.
	PromotionKind chess.Kind
}

// DisplayConfig holds settings for rendering the board.
type DisplayConfig struct {
	// ShowCaptured lists captured pieces under the board.
	ShowCaptured bool

	// HighlightMoves marks reachable squares after a source is chosen.
	HighlightMoves bool
}

// NewRulesConfig returns standard rules.
func NewRulesConfig() *RulesConfig {
	return &RulesConfig{
		StrictCastling: true,
		AutoPromote:    true,
		PromotionKind:  chess.Queen,
	}
}

// NewDisplayConfig returns the default display settings.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		ShowCaptured:   true,
		HighlightMoves: true,
	}
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Rules:      NewRulesConfig(),
		Display:    NewDisplayConfig(),
		Verbosity:  1,
		Workers:    runtime.NumCPU(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	if c.Rules == nil || c.Display == nil {
		return fmt.Errorf("missing section: %w", errors.ErrInvalidConfig)
	}
	if !chess.IsPromotionKind(c.Rules.PromotionKind) {
		return fmt.Errorf("promotion kind %v: %w", c.Rules.PromotionKind, errors.ErrInvalidConfig)
	}
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers %d: %w", c.Workers, errors.ErrInvalidConfig)
	}
	return nil
}

// Logf writes a log line when the configured verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}
