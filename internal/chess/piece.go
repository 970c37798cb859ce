package chess

// Piece is a single chess piece. Its position is kept in step with the
// board cell holding it; a piece never refers back to the board.
type Piece struct {
	Kind   Kind
	Colour Colour

	pos       Position
	placed    bool
	moveCount int
}

// NewPiece creates an unplaced piece.
func NewPiece(kind Kind, colour Colour) *Piece {
	return &Piece{Kind: kind, Colour: colour}
}

// Position returns the square the piece occupies and whether it is on the board.
func (p *Piece) Position() (Position, bool) {
	return p.pos, p.placed
}

// MoveCount returns how many moves the piece has made.
func (p *Piece) MoveCount() int {
	return p.moveCount
}

// HasMoved reports whether the piece has ever moved.
func (p *Piece) HasMoved() bool {
	return p.moveCount > 0
}

// IncreaseMoveCount records a move made by the piece.
func (p *Piece) IncreaseMoveCount() {
	p.moveCount++
}

// DecreaseMoveCount reverts IncreaseMoveCount.
func (p *Piece) DecreaseMoveCount() {
	p.moveCount--
}

// SetMoveCount overwrites the counter, used when a promoted piece inherits the pawn's history.
func (p *Piece) SetMoveCount(n int) {
	p.moveCount = n
}

// Letter returns the piece letter: uppercase for White, lowercase for Black.
func (p *Piece) Letter() byte {
	l := p.Kind.Letter()
	if p.Colour == Black {
		l += 'a' - 'A'
	}
	return l
}

// String returns e.g. "White Knight".
func (p *Piece) String() string {
	return p.Colour.String() + " " + p.Kind.String()
}
