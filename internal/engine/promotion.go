package engine

import (
	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// ChoosePromotion replaces the piece awaiting promotion with a new piece of
// the given kind and returns it. A kind other than Bishop, Knight, Queen or
// Rook leaves the pending piece in place and returns it unchanged, so the
// caller can ask again. The check and checkmate state is recomputed for the
// new piece.
func (m *Match) ChoosePromotion(kind chess.Kind) (*chess.Piece, error) {
	if m.promoted == nil {
		return nil, errors.ErrNoPendingPromotion
	}
	if !chess.IsPromotionKind(kind) {
		return m.promoted, nil
	}

	promoter := m.promoted.Colour
	m.promoted = m.replacePromoted(kind)
	m.reassess(promoter)
	return m.promoted, nil
}

// ChoosePromotionLetter is ChoosePromotion for a piece letter such as "N".
func (m *Match) ChoosePromotionLetter(letter string) (*chess.Piece, error) {
	kind, _ := chess.ParseKind(letter)
	return m.ChoosePromotion(kind)
}

// replacePromoted swaps the pending piece for a fresh one of kind, keeping
// its colour, square and move count.
func (m *Match) replacePromoted(kind chess.Kind) *chess.Piece {
	old := m.promoted
	pos, _ := old.Position()
	m.board.RemovePiece(pos)

	p := chess.NewPiece(kind, old.Colour)
	p.SetMoveCount(old.MoveCount())
	m.board.Place(p, pos)
	return p
}

// reassess recomputes check and checkmate after the promoting player's
// piece changed, moving the match into or out of the terminal state.
func (m *Match) reassess(promoter chess.Colour) {
	opponent := promoter.Opposite()
	wasMate := m.checkMate

	m.check = m.isInCheck(opponent)
	mate := m.check && !m.hasEscape(opponent)

	switch {
	case mate && !wasMate:
		m.checkMate = true
		m.turn--
		m.current = promoter
		m.cfg.Logf(1, "checkmate: %v wins on turn %d", promoter, m.turn)
	case !mate && wasMate:
		m.checkMate = false
		m.nextTurn()
	}
}
