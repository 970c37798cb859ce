// Package chess provides core chess types and operations.
package chess

import (
	"fmt"

	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Kind represents a chess piece type.
type Kind int

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// ParseKind converts a piece letter (either case) to its kind.
func ParseKind(letter string) (Kind, bool) {
	if len(letter) != 1 {
		return NoKind, false
	}
	c := letter[0]
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	for k := Pawn; k < NumKinds; k++ {
		if k.Letter() == c {
			return k, true
		}
	}
	return NoKind, false
}

// IsPromotionKind reports whether a pawn may be promoted to k.
func IsPromotionKind(k Kind) bool {
	switch k {
	case Bishop, Knight, Queen, Rook:
		return true
	default:
		return false
	}
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	FirstFile = 'a'
	LastFile  = FirstFile + BoardSize - 1
	FirstRank = 1
	LastRank  = FirstRank + BoardSize - 1
)

// Position is a zero-based (row, column) grid coordinate.
// Row 0 is rank 8 and column 0 is the a-file.
type Position struct {
	Row int
	Col int
}

// Valid reports whether the position lies on the board.
func (p Position) Valid() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// Offset returns the position shifted by dr rows and dc columns.
func (p Position) Offset(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// String returns the algebraic name of the position, or the raw pair when off board.
func (p Position) String() string {
	if !p.Valid() {
		return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
	}
	return SquareOf(p).String()
}

// Square is an algebraic coordinate: file 'a'-'h' and rank 1-8.
type Square struct {
	File byte
	Rank int
}

// NewSquare validates a file and rank pair.
func NewSquare(file byte, rank int) (Square, error) {
	if file < FirstFile || file > LastFile || rank < FirstRank || rank > LastRank {
		return Square{}, fmt.Errorf("%c%d: %w", file, rank, errors.ErrCoordinateFormat)
	}
	return Square{File: file, Rank: rank}, nil
}

// ParseSquare parses text such as "e2". The file letter may be upper case.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("%q: %w", s, errors.ErrCoordinateFormat)
	}
	file := s[0]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	if s[1] < '0' || s[1] > '9' {
		return Square{}, fmt.Errorf("%q: %w", s, errors.ErrCoordinateFormat)
	}
	return NewSquare(file, int(s[1]-'0'))
}

// MustSquare is like ParseSquare but panics on malformed input.
// It is intended for fixed coordinates in setup code and tests.
func MustSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// Position converts the square to grid coordinates.
func (s Square) Position() Position {
	return Position{Row: BoardSize - s.Rank, Col: int(s.File - FirstFile)}
}

// SquareOf converts grid coordinates back to an algebraic square.
func SquareOf(p Position) Square {
	return Square{File: byte(FirstFile + p.Col), Rank: BoardSize - p.Row}
}

// String returns the square in algebraic form.
func (s Square) String() string {
	return fmt.Sprintf("%c%d", s.File, s.Rank)
}

// ForwardDir returns the row delta of a forward pawn step: -1 for White, +1 for Black.
func ForwardDir(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}

// HomeRow returns the back-rank row of the given colour.
func HomeRow(colour Colour) int {
	if colour == White {
		return BoardSize - 1
	}
	return 0
}

// PawnRow returns the starting row of the given colour's pawns.
func PawnRow(colour Colour) int {
	return HomeRow(colour) + ForwardDir(colour)
}

// PromotionRow returns the farthest row for the given colour's pawns.
func PromotionRow(colour Colour) int {
	return HomeRow(colour.Opposite())
}
