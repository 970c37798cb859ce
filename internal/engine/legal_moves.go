package engine

import (
	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// LegalMoves is LegalDestinations with every move that would leave the
// player's own king in check removed.
func (m *Match) LegalMoves(source chess.Square) (MoveMatrix, error) {
	if !m.hasKings() {
		return MoveMatrix{}, errors.ErrMissingKing
	}
	p, err := m.validateSource(source)
	if err != nil {
		return MoveMatrix{}, err
	}
	return m.safeMoves(p), nil
}

// safeMoves filters the move matrix of p with make/test/undo.
func (m *Match) safeMoves(p *chess.Piece) MoveMatrix {
	var safe MoveMatrix
	from, _ := p.Position()
	moves := m.moves(p)
	for _, to := range moves.Positions() {
		rec := m.makeMove(from, to)
		if !m.isInCheck(p.Colour) {
			safe.set(to)
		}
		m.undoMove(rec)
	}
	return safe
}

// HasLegalMove reports whether colour has at least one move that does not
// leave its king in check.
func (m *Match) HasLegalMove(colour chess.Colour) bool {
	if !m.hasKings() {
		return false
	}
	return m.hasEscape(colour)
}

// Stalemate reports whether the player to move is not in check and has no
// legal move. The match has no stalemate state; this is informational.
func (m *Match) Stalemate() bool {
	if m.checkMate || m.check || !m.hasKings() {
		return false
	}
	return !m.hasEscape(m.current)
}

// hasKings reports whether both colours have a king on the board.
func (m *Match) hasKings() bool {
	return m.board.Find(chess.King, chess.White) != nil && m.board.Find(chess.King, chess.Black) != nil
}
