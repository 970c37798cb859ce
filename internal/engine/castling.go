package engine

import "github.com/lgbarn/chessmatch-go/internal/chess"

// Castling geometry on the home row, by column.
const (
	kingHomeCol      = 4
	kingsideRookCol  = chess.BoardSize - 1
	queensideRookCol = 0
)

// castlingMoves adds the kingside and queenside castling targets.
func castlingMoves(board *chess.Board, king *chess.Piece, from chess.Position, mode CastlingMode, m *MoveMatrix) {
	home := chess.HomeRow(king.Colour)
	if king.HasMoved() || from.Row != home || from.Col != kingHomeCol {
		return
	}

	strict := mode == StrictCastling
	if strict && isSquareAttacked(board, from, king.Colour.Opposite()) {
		return
	}

	for _, kingside := range []bool{true, false} {
		rookFrom, _ := castlingRookSquares(from, kingside)
		rook := board.At(rookFrom)
		if rook == nil || rook.Kind != chess.Rook || rook.Colour != king.Colour || rook.HasMoved() {
			continue
		}
		if !isPathClear(board, from, rookFrom) {
			continue
		}
		step := -1
		if kingside {
			step = 1
		}
		if strict && isSquareAttacked(board, from.Offset(0, step), king.Colour.Opposite()) {
			continue
		}
		m.set(from.Offset(0, 2*step))
	}
}

// castlingRookSquares returns where the rook starts and lands when the
// king on kingFrom castles to the given side.
func castlingRookSquares(kingFrom chess.Position, kingside bool) (from, to chess.Position) {
	if kingside {
		return chess.Position{Row: kingFrom.Row, Col: kingsideRookCol}, kingFrom.Offset(0, 1)
	}
	return chess.Position{Row: kingFrom.Row, Col: queensideRookCol}, kingFrom.Offset(0, -1)
}
