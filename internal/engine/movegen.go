// Package engine provides chess move generation and the match state machine.
package engine

import "github.com/lgbarn/chessmatch-go/internal/chess"

// MoveMatrix marks every cell a piece can reach.
type MoveMatrix [chess.BoardSize][chess.BoardSize]bool

// Has reports whether pos is reachable.
func (m *MoveMatrix) Has(pos chess.Position) bool {
	return pos.Valid() && m[pos.Row][pos.Col]
}

// Any reports whether at least one cell is reachable.
func (m *MoveMatrix) Any() bool {
	for row := range m {
		for col := range m[row] {
			if m[row][col] {
				return true
			}
		}
	}
	return false
}

// Count returns the number of reachable cells.
func (m *MoveMatrix) Count() int {
	n := 0
	for row := range m {
		for col := range m[row] {
			if m[row][col] {
				n++
			}
		}
	}
	return n
}

// Positions lists the reachable cells in row-major order.
func (m *MoveMatrix) Positions() []chess.Position {
	var out []chess.Position
	for row := range m {
		for col := range m[row] {
			if m[row][col] {
				out = append(out, chess.Position{Row: row, Col: col})
			}
		}
	}
	return out
}

// set marks pos when it is on the board.
func (m *MoveMatrix) set(pos chess.Position) {
	if pos.Valid() {
		m[pos.Row][pos.Col] = true
	}
}

func (m *MoveMatrix) clear(pos chess.Position) {
	if pos.Valid() {
		m[pos.Row][pos.Col] = false
	}
}

// CastlingMode selects how king moves treat castling.
type CastlingMode int

const (
	// NoCastling omits castling, used when only attacks matter.
	NoCastling CastlingMode = iota
	// SimpleCastling checks unmoved pieces and empty squares only.
	SimpleCastling
	// StrictCastling also refuses castling out of or across check.
	StrictCastling
)

// MoveOptions carries the match state that move generation depends on.
type MoveOptions struct {
	// EnPassant is the pawn that may be captured en passant this half-move.
	EnPassant *chess.Piece
	Castling  CastlingMode
}

var (
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	allDirs       = append(append([][2]int{}, diagonalDirs...), straightDirs...)
)

// Moves computes every square piece can reach from its current position,
// without testing whether the move would expose its own king.
// An unplaced piece has no moves.
func Moves(board *chess.Board, piece *chess.Piece, opts MoveOptions) MoveMatrix {
	var m MoveMatrix
	from, placed := piece.Position()
	if !placed {
		return m
	}

	switch piece.Kind {
	case chess.Pawn:
		pawnMoves(board, piece, from, opts.EnPassant, &m)
	case chess.Knight:
		stepMoves(board, piece, from, knightOffsets, &m)
	case chess.Bishop:
		slideMoves(board, piece, from, diagonalDirs, &m)
	case chess.Rook:
		slideMoves(board, piece, from, straightDirs, &m)
	case chess.Queen:
		slideMoves(board, piece, from, allDirs, &m)
	case chess.King:
		stepMoves(board, piece, from, kingOffsets, &m)
		if opts.Castling != NoCastling {
			castlingMoves(board, piece, from, opts.Castling, &m)
		}
	}
	return m
}

// canLand reports whether piece may finish on pos: empty or held by an opponent.
func canLand(board *chess.Board, piece *chess.Piece, pos chess.Position) bool {
	if !pos.Valid() {
		return false
	}
	occupant := board.At(pos)
	return occupant == nil || occupant.Colour != piece.Colour
}

// stepMoves handles the fixed-offset pieces (knight and king).
func stepMoves(board *chess.Board, piece *chess.Piece, from chess.Position, offsets [][2]int, m *MoveMatrix) {
	for _, off := range offsets {
		to := from.Offset(off[0], off[1])
		if canLand(board, piece, to) {
			m.set(to)
		}
	}
}
