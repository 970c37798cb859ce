package engine

import "github.com/lgbarn/chessmatch-go/internal/chess"

// pawnMoves adds pushes, diagonal captures and the en passant capture.
func pawnMoves(board *chess.Board, pawn *chess.Piece, from chess.Position, ep *chess.Piece, m *MoveMatrix) {
	dir := chess.ForwardDir(pawn.Colour)

	// Forward move
	one := from.Offset(dir, 0)
	if one.Valid() && board.At(one) == nil {
		m.set(one)
		// Double push from starting rank
		two := from.Offset(2*dir, 0)
		if from.Row == chess.PawnRow(pawn.Colour) && !pawn.HasMoved() && two.Valid() && board.At(two) == nil {
			m.set(two)
		}
	}

	// Captures
	for dc := -1; dc <= 1; dc += 2 {
		to := from.Offset(dir, dc)
		if !to.Valid() {
			continue
		}
		if target := board.At(to); target != nil && target.Colour != pawn.Colour {
			m.set(to)
		}
	}

	// En passant
	if ep == nil || ep.Colour == pawn.Colour || from.Row != enPassantRow(pawn.Colour) {
		return
	}
	epPos, placed := ep.Position()
	if !placed || epPos.Row != from.Row || abs(epPos.Col-from.Col) != 1 {
		return
	}
	if board.At(epPos) != ep {
		return
	}
	m.set(epPos.Offset(dir, 0))
}

// enPassantRow is the row a pawn must stand on to capture en passant:
// rank 5 for White and rank 4 for Black.
func enPassantRow(colour chess.Colour) int {
	return chess.PromotionRow(colour) - 3*chess.ForwardDir(colour)
}

// isDoubleStep reports whether the recorded move advanced a pawn two rows.
func isDoubleStep(rec *moveRecord) bool {
	return rec.piece.Kind == chess.Pawn && abs(rec.to.Row-rec.from.Row) == 2
}

// reachesLastRank reports whether the recorded move put a pawn on its promotion row.
func reachesLastRank(rec *moveRecord) bool {
	return rec.piece.Kind == chess.Pawn && rec.to.Row == chess.PromotionRow(rec.piece.Colour)
}
