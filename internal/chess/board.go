package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// Board is an 8x8 grid holding at most one piece per cell.
// It carries no chess rules.
type Board struct {
	squares [BoardSize][BoardSize]*Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// Place puts piece on an empty cell and records the position on the piece.
// Placing off the board or onto an occupied cell is a programming error.
func (b *Board) Place(piece *Piece, pos Position) {
	if !pos.Valid() {
		panic(&errors.BoundsError{Row: pos.Row, Col: pos.Col})
	}
	if b.squares[pos.Row][pos.Col] != nil {
		panic(fmt.Sprintf("chess: place %v on occupied square %v", piece, pos))
	}
	b.squares[pos.Row][pos.Col] = piece
	piece.pos = pos
	piece.placed = true
}

// RemovePiece clears the cell and returns the piece that was there, if any.
func (b *Board) RemovePiece(pos Position) *Piece {
	if !pos.Valid() {
		return nil
	}
	p := b.squares[pos.Row][pos.Col]
	if p == nil {
		return nil
	}
	b.squares[pos.Row][pos.Col] = nil
	p.pos = Position{}
	p.placed = false
	return p
}

// PieceAt returns the piece on pos, or nil for an empty cell.
func (b *Board) PieceAt(pos Position) (*Piece, error) {
	if !pos.Valid() {
		return nil, &errors.BoundsError{Row: pos.Row, Col: pos.Col}
	}
	return b.squares[pos.Row][pos.Col], nil
}

// IsOccupied reports whether a piece stands on pos.
func (b *Board) IsOccupied(pos Position) (bool, error) {
	p, err := b.PieceAt(pos)
	if err != nil {
		return false, err
	}
	return p != nil, nil
}

// At returns the piece on pos, or nil when the cell is empty or off the board.
func (b *Board) At(pos Position) *Piece {
	if !pos.Valid() {
		return nil
	}
	return b.squares[pos.Row][pos.Col]
}

// Pieces returns the pieces of the given colour in row-major order.
func (b *Board) Pieces(colour Colour) []*Piece {
	var pieces []*Piece
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if p := b.squares[row][col]; p != nil && p.Colour == colour {
				pieces = append(pieces, p)
			}
		}
	}
	return pieces
}

// Find returns the first piece of the given kind and colour, or nil.
func (b *Board) Find(kind Kind, colour Colour) *Piece {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if p := b.squares[row][col]; p != nil && p.Kind == kind && p.Colour == colour {
				return p
			}
		}
	}
	return nil
}

// String draws the board from White's side, one rank per line.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		fmt.Fprintf(&sb, "%d ", BoardSize-row)
		for col := 0; col < BoardSize; col++ {
			if p := b.squares[row][col]; p != nil {
				sb.WriteByte(p.Letter())
			} else {
				sb.WriteByte('-')
			}
			if col < BoardSize-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
