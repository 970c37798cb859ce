package config

import (
	"io"

	"github.com/lgbarn/chessmatch-go/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithStrictCastling controls whether castling through check is refused.
func (b *ConfigBuilder) WithStrictCastling(strict bool) *ConfigBuilder {
	b.cfg.Rules.StrictCastling = strict
	return b
}

// WithAutoPromote enables or disables automatic promotion.
func (b *ConfigBuilder) WithAutoPromote(enabled bool) *ConfigBuilder {
	b.cfg.Rules.AutoPromote = enabled
	return b
}

// WithPromotionKind sets the piece chosen by automatic promotion.
func (b *ConfigBuilder) WithPromotionKind(kind chess.Kind) *ConfigBuilder {
	b.cfg.Rules.PromotionKind = kind
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithWorkers sets the perft worker count.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// ShowCaptured controls whether captured pieces are listed.
func (b *ConfigBuilder) ShowCaptured(show bool) *ConfigBuilder {
	b.cfg.Display.ShowCaptured = show
	return b
}

// HighlightMoves controls whether reachable squares are marked.
func (b *ConfigBuilder) HighlightMoves(highlight bool) *ConfigBuilder {
	b.cfg.Display.HighlightMoves = highlight
	return b
}
