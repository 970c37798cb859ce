package engine

import "github.com/lgbarn/chessmatch-go/internal/chess"

// moveRecord holds everything needed to reverse a move exactly.
type moveRecord struct {
	piece *chess.Piece
	from  chess.Position
	to    chess.Position

	// The piece captured (nil if none) and the square it stood on, which
	// differs from to for en passant.
	captured   *chess.Piece
	capturedAt chess.Position
	enPassant  bool

	// The rook moved by castling (nil otherwise).
	rook     *chess.Piece
	rookFrom chess.Position
	rookTo   chess.Position
}

// makeMove moves the piece on from to to, including the rook of a castling
// move and the pawn taken en passant. It does not validate the move and
// does not touch turn or registry bookkeeping.
func (m *Match) makeMove(from, to chess.Position) *moveRecord {
	p := m.board.RemovePiece(from)
	p.IncreaseMoveCount()
	captured := m.board.RemovePiece(to)
	m.board.Place(p, to)

	rec := &moveRecord{piece: p, from: from, to: to, captured: captured, capturedAt: to}

	// Castling
	if p.Kind == chess.King && abs(to.Col-from.Col) == 2 {
		rookFrom, rookTo := castlingRookSquares(from, to.Col > from.Col)
		rook := m.board.RemovePiece(rookFrom)
		m.board.Place(rook, rookTo)
		rook.IncreaseMoveCount()
		rec.rook, rec.rookFrom, rec.rookTo = rook, rookFrom, rookTo
	}

	// En passant: a diagonal pawn move onto an empty square
	if p.Kind == chess.Pawn && from.Col != to.Col && captured == nil {
		pawnPos := to.Offset(-chess.ForwardDir(p.Colour), 0)
		rec.captured = m.board.RemovePiece(pawnPos)
		rec.capturedAt = pawnPos
		rec.enPassant = true
	}

	return rec
}

// undoMove reverses makeMove, restoring positions and move counters.
func (m *Match) undoMove(rec *moveRecord) {
	p := m.board.RemovePiece(rec.to)
	p.DecreaseMoveCount()
	m.board.Place(p, rec.from)

	if rec.captured != nil {
		m.board.Place(rec.captured, rec.capturedAt)
	}

	if rec.rook != nil {
		rook := m.board.RemovePiece(rec.rookTo)
		m.board.Place(rook, rec.rookFrom)
		rook.DecreaseMoveCount()
	}
}
