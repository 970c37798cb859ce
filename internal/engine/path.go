package engine

import "github.com/lgbarn/chessmatch-go/internal/chess"

// slideMoves casts a ray in each direction, stopping at the first occupied
// cell. That cell is included only when it holds an opponent.
func slideMoves(board *chess.Board, piece *chess.Piece, from chess.Position, dirs [][2]int, m *MoveMatrix) {
	for _, dir := range dirs {
		to := from.Offset(dir[0], dir[1])
		for to.Valid() {
			occupant := board.At(to)
			if occupant != nil {
				if occupant.Colour != piece.Colour {
					m.set(to)
				}
				break // Blocked
			}
			m.set(to)
			to = to.Offset(dir[0], dir[1])
		}
	}
}

// isPathClear reports whether every cell strictly between from and to on
// the same row is empty.
func isPathClear(board *chess.Board, from, to chess.Position) bool {
	if from.Row != to.Row {
		return false
	}
	step := sign(to.Col - from.Col)
	for col := from.Col + step; col != to.Col; col += step {
		if board.At(chess.Position{Row: from.Row, Col: col}) != nil {
			return false
		}
	}
	return true
}
