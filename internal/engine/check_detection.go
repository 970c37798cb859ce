package engine

import (
	"fmt"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// IsInCheck returns true if the given colour's king is attacked by any
// opposing piece's current move set.
func (m *Match) IsInCheck(colour chess.Colour) (bool, error) {
	king := m.board.Find(chess.King, colour)
	if king == nil {
		return false, fmt.Errorf("%v: %w", colour, errors.ErrMissingKing)
	}
	return m.kingAttacked(king), nil
}

// isInCheck is IsInCheck for callers that have already verified both kings exist.
func (m *Match) isInCheck(colour chess.Colour) bool {
	king := m.board.Find(chess.King, colour)
	if king == nil {
		panic(fmt.Errorf("%v: %w", colour, errors.ErrMissingKing))
	}
	return m.kingAttacked(king)
}

// kingAttacked tests the king's square against every opposing move matrix.
// Castling is never generated here; it cannot capture.
func (m *Match) kingAttacked(king *chess.Piece) bool {
	kingPos, _ := king.Position()
	opts := MoveOptions{EnPassant: m.enPassant, Castling: NoCastling}
	for _, p := range m.board.Pieces(king.Colour.Opposite()) {
		moves := Moves(m.board, p, opts)
		if moves.Has(kingPos) {
			return true
		}
	}
	return false
}

// IsCheckMate returns true if colour is in check and no move of its own
// pieces removes the check. Every candidate is tried with make/undo.
func (m *Match) IsCheckMate(colour chess.Colour) (bool, error) {
	inCheck, err := m.IsInCheck(colour)
	if err != nil || !inCheck {
		return false, err
	}
	return !m.hasEscape(colour), nil
}

// hasEscape reports whether any pseudo-legal move leaves colour's king safe.
func (m *Match) hasEscape(colour chess.Colour) bool {
	for _, p := range m.board.Pieces(colour) {
		from, _ := p.Position()
		moves := m.moves(p)
		for _, to := range moves.Positions() {
			rec := m.makeMove(from, to)
			inCheck := m.isInCheck(colour)
			m.undoMove(rec)
			if !inCheck {
				return true
			}
		}
	}
	return false
}

// isSquareAttacked returns true if the square is attacked by the given colour,
// whether or not it is occupied.
func isSquareAttacked(board *chess.Board, pos chess.Position, byColour chess.Colour) bool {
	// Check pawn attacks
	pawnRow := pos.Row - chess.ForwardDir(byColour)
	for dc := -1; dc <= 1; dc += 2 {
		if p := board.At(chess.Position{Row: pawnRow, Col: pos.Col + dc}); isPiece(p, chess.Pawn, byColour) {
			return true
		}
	}

	// Check knight attacks
	for _, off := range knightOffsets {
		if isPiece(board.At(pos.Offset(off[0], off[1])), chess.Knight, byColour) {
			return true
		}
	}

	// Check king attacks
	for _, off := range kingOffsets {
		if isPiece(board.At(pos.Offset(off[0], off[1])), chess.King, byColour) {
			return true
		}
	}

	// Check sliding pieces along diagonals and straight lines
	if rayAttacked(board, pos, byColour, diagonalDirs, chess.Bishop) {
		return true
	}
	return rayAttacked(board, pos, byColour, straightDirs, chess.Rook)
}

// rayAttacked looks along each direction for the first piece and reports
// whether it is a slider of byColour (the given kind or a queen).
func rayAttacked(board *chess.Board, pos chess.Position, byColour chess.Colour, dirs [][2]int, kind chess.Kind) bool {
	for _, dir := range dirs {
		to := pos.Offset(dir[0], dir[1])
		for to.Valid() {
			if p := board.At(to); p != nil {
				if p.Colour == byColour && (p.Kind == kind || p.Kind == chess.Queen) {
					return true
				}
				break // Blocked
			}
			to = to.Offset(dir[0], dir[1])
		}
	}
	return false
}

// isPiece reports whether p is non-nil and of the given kind and colour.
func isPiece(p *chess.Piece, kind chess.Kind, colour chess.Colour) bool {
	return p != nil && p.Kind == kind && p.Colour == colour
}
