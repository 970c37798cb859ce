package engine

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/config"
	"github.com/lgbarn/chessmatch-go/internal/testutil"
)

// quietConfig returns default rules with logging silenced.
func quietConfig() *config.Config {
	return config.NewConfigBuilder().WithLog(io.Discard).WithVerbosity(0).Build()
}

// newTestMatch builds a match from a layout such as "4k3/8/8/8/8/8/8/4K3".
func newTestMatch(t *testing.T, layout string, toMove chess.Colour, cfg *config.Config) *Match {
	t.Helper()
	if cfg == nil {
		cfg = quietConfig()
	}
	m := NewEmptyMatch(cfg)
	placeLayout(t, m, layout)
	if err := m.SetCurrentPlayer(toMove); err != nil {
		t.Fatalf("SetCurrentPlayer(%v) error: %v", toMove, err)
	}
	return m
}

// placeLayout puts every piece of layout on m without choosing a player.
func placeLayout(t *testing.T, m *Match, layout string) {
	t.Helper()
	for _, pl := range testutil.MustParseLayout(t, layout) {
		if _, err := m.PlacePiece(pl.Square, pl.Kind, pl.Colour); err != nil {
			t.Fatalf("PlacePiece(%v) error: %v", pl.Square, err)
		}
	}
}

// newTestBoard places a layout on a bare board for move generation tests.
func newTestBoard(t *testing.T, layout string) *chess.Board {
	t.Helper()
	b := chess.NewBoard()
	for _, pl := range testutil.MustParseLayout(t, layout) {
		b.Place(chess.NewPiece(pl.Kind, pl.Colour), pl.Square.Position())
	}
	return b
}

// sq is shorthand for chess.MustSquare.
func sq(s string) chess.Square {
	return chess.MustSquare(s)
}

// play executes moves given as "e2e4" and fails the test on the first error.
func play(t *testing.T, m *Match, moves ...string) {
	t.Helper()
	for _, mv := range moves {
		if _, err := m.ExecuteMove(sq(mv[:2]), sq(mv[2:4])); err != nil {
			t.Fatalf("ExecuteMove(%s) error: %v", mv, err)
		}
	}
}

// squares lists the cells of a move matrix in algebraic form.
func squares(mm MoveMatrix) []string {
	var out []string
	for _, pos := range mm.Positions() {
		out = append(out, pos.String())
	}
	return out
}

// snapshot renders the board with every piece's move count, so that two
// snapshots differ whenever a position or counter differs.
func snapshot(m *Match) string {
	var sb strings.Builder
	sb.WriteString(m.String())
	grid := m.Pieces()
	for row := range grid {
		for col, p := range grid[row] {
			if p != nil {
				fmt.Fprintf(&sb, "%v:%c%d ", chess.Position{Row: row, Col: col}, p.Letter(), p.MoveCount())
			}
		}
	}
	return sb.String()
}
