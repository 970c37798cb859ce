package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/lgbarn/chessmatch-go/internal/chess"
)

// Placement is one piece of a test position.
type Placement struct {
	Square chess.Square
	Kind   chess.Kind
	Colour chess.Colour
}

// ParseLayout reads a board diagram written rank 8 first, ranks separated
// by '/', digits for runs of empty squares and piece letters (upper case
// White, lower case Black), e.g. "4k3/8/8/8/8/8/8/4K2R".
func ParseLayout(layout string) ([]Placement, error) {
	ranks := strings.Split(layout, "/")
	if len(ranks) != chess.BoardSize {
		return nil, fmt.Errorf("layout %q: want %d ranks, got %d", layout, chess.BoardSize, len(ranks))
	}

	var out []Placement
	for i, rank := range ranks {
		col := 0
		for _, c := range rank {
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}
			kind, ok := chess.ParseKind(string(c))
			if !ok {
				return nil, fmt.Errorf("layout %q: bad piece %q", layout, c)
			}
			colour := chess.White
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
			}
			if col >= chess.BoardSize {
				return nil, fmt.Errorf("layout %q: rank %d too long", layout, chess.BoardSize-i)
			}
			out = append(out, Placement{
				Square: chess.SquareOf(chess.Position{Row: i, Col: col}),
				Kind:   kind,
				Colour: colour,
			})
			col++
		}
		if col != chess.BoardSize {
			return nil, fmt.Errorf("layout %q: rank %d has %d files", layout, chess.BoardSize-i, col)
		}
	}
	return out, nil
}

// MustParseLayout parses a layout and calls t.Fatal if it is malformed.
func MustParseLayout(t *testing.T, layout string) []Placement {
	t.Helper()
	placements, err := ParseLayout(layout)
	if err != nil {
		t.Fatalf("failed to parse layout: %v", err)
	}
	return placements
}

// StartLayout is the standard starting position.
const StartLayout = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"
