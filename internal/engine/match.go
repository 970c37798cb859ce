package engine

import (
	"fmt"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/config"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// Match owns the board and drives a single game. It is not safe for
// concurrent use; callers serialize access per match.
type Match struct {
	cfg   *config.Config
	board *chess.Board

	turn      int
	current   chess.Colour
	check     bool
	checkMate bool

	// The pawn that just advanced two squares, capturable this half-move only.
	enPassant *chess.Piece

	// The piece awaiting a promotion choice.
	promoted *chess.Piece

	captured []*chess.Piece
	started  bool
}

// NewMatch creates a match with the standard starting position.
// A nil cfg uses the defaults.
func NewMatch(cfg *config.Config) *Match {
	m := NewEmptyMatch(cfg)
	m.initialSetup()
	return m
}

// NewEmptyMatch creates a match with an empty board, for building custom
// positions with PlacePiece before the first move.
func NewEmptyMatch(cfg *config.Config) *Match {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Match{
		cfg:     cfg,
		board:   chess.NewBoard(),
		turn:    1,
		current: chess.White,
	}
}

// backRank is the standard piece order from the a-file to the h-file.
var backRank = []chess.Kind{
	chess.Rook, chess.Knight, chess.Bishop, chess.Queen,
	chess.King, chess.Bishop, chess.Knight, chess.Rook,
}

func (m *Match) initialSetup() {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		home := chess.HomeRow(colour)
		pawns := chess.PawnRow(colour)
		for col, kind := range backRank {
			m.board.Place(chess.NewPiece(kind, colour), chess.Position{Row: home, Col: col})
			m.board.Place(chess.NewPiece(chess.Pawn, colour), chess.Position{Row: pawns, Col: col})
		}
	}
}

// PlacePiece puts a new piece on an empty square. It is only allowed
// before the first move.
func (m *Match) PlacePiece(sq chess.Square, kind chess.Kind, colour chess.Colour) (*chess.Piece, error) {
	if m.started {
		return nil, fmt.Errorf("place %v on %v after the first move: %w", kind, sq, errors.ErrInvalidConfig)
	}
	if kind <= chess.NoKind || kind >= chess.NumKinds {
		return nil, fmt.Errorf("piece kind %d: %w", kind, errors.ErrInvalidConfig)
	}
	pos := sq.Position()
	occupied, err := m.board.IsOccupied(pos)
	if err != nil {
		return nil, err
	}
	if occupied {
		return nil, fmt.Errorf("square %v is occupied: %w", sq, errors.ErrInvalidConfig)
	}
	p := chess.NewPiece(kind, colour)
	m.board.Place(p, pos)
	return p, nil
}

// SetCurrentPlayer chooses who moves first in a custom position and
// recomputes the check flag for that side.
func (m *Match) SetCurrentPlayer(colour chess.Colour) error {
	if m.started {
		return fmt.Errorf("set player after the first move: %w", errors.ErrInvalidConfig)
	}
	inCheck, err := m.IsInCheck(colour)
	if err != nil {
		return err
	}
	waitingInCheck, err := m.IsInCheck(colour.Opposite())
	if err != nil {
		return err
	}
	if waitingInCheck {
		return fmt.Errorf("%v to move while %v is in check: %w", colour, colour.Opposite(), errors.ErrInvalidConfig)
	}
	m.current = colour
	m.check = inCheck
	return nil
}

// Turn returns the current turn number, starting at 1.
func (m *Match) Turn() int {
	return m.turn
}

// CurrentPlayer returns the colour to move.
func (m *Match) CurrentPlayer() chess.Colour {
	return m.current
}

// Check reports whether the player to move is in check.
func (m *Match) Check() bool {
	return m.check
}

// CheckMate reports whether the match has ended in checkmate.
// A ChoosePromotion call before the next move may set or clear it.
func (m *Match) CheckMate() bool {
	return m.checkMate
}

// EnPassantVulnerable returns the pawn capturable en passant, or nil.
func (m *Match) EnPassantVulnerable() *chess.Piece {
	return m.enPassant
}

// Promoted returns the piece awaiting a promotion choice, or nil.
func (m *Match) Promoted() *chess.Piece {
	return m.promoted
}

// Captured returns the captured pieces in capture order.
func (m *Match) Captured() []*chess.Piece {
	out := make([]*chess.Piece, len(m.captured))
	copy(out, m.captured)
	return out
}

// OnBoard returns the pieces of colour currently on the board.
func (m *Match) OnBoard(colour chess.Colour) []*chess.Piece {
	return m.board.Pieces(colour)
}

// PieceAt returns the piece on sq, or nil.
func (m *Match) PieceAt(sq chess.Square) *chess.Piece {
	return m.board.At(sq.Position())
}

// Pieces returns a snapshot of the grid indexed by row then column.
func (m *Match) Pieces() [chess.BoardSize][chess.BoardSize]*chess.Piece {
	var grid [chess.BoardSize][chess.BoardSize]*chess.Piece
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			grid[row][col] = m.board.At(chess.Position{Row: row, Col: col})
		}
	}
	return grid
}

// String draws the board.
func (m *Match) String() string {
	return m.board.String()
}

// Config returns the configuration the match was created with.
func (m *Match) Config() *config.Config {
	return m.cfg
}

// castlingMode maps the rules configuration onto move generation.
func (m *Match) castlingMode() CastlingMode {
	if m.cfg.Rules.StrictCastling {
		return StrictCastling
	}
	return SimpleCastling
}

// moves computes the move matrix of p in the current match state.
// The enemy king's square is never a destination.
func (m *Match) moves(p *chess.Piece) MoveMatrix {
	mm := Moves(m.board, p, MoveOptions{EnPassant: m.enPassant, Castling: m.castlingMode()})
	if king := m.board.Find(chess.King, p.Colour.Opposite()); king != nil {
		pos, _ := king.Position()
		mm.clear(pos)
	}
	return mm
}

// LegalDestinations validates that source holds a movable piece of the
// player to move and returns its move matrix. Moves that would leave the
// king in check are still included; ExecuteMove rejects them.
func (m *Match) LegalDestinations(source chess.Square) (MoveMatrix, error) {
	p, err := m.validateSource(source)
	if err != nil {
		return MoveMatrix{}, err
	}
	return m.moves(p), nil
}

// validateSource returns the piece on source or a *errors.SquareError.
func (m *Match) validateSource(source chess.Square) (*chess.Piece, error) {
	p := m.board.At(source.Position())
	if p == nil {
		return nil, &errors.SquareError{Err: errors.ErrEmptySource, Square: source.String()}
	}
	if p.Colour != m.current {
		return nil, &errors.SquareError{Err: errors.ErrWrongOwner, Square: source.String()}
	}
	moves := m.moves(p)
	if !moves.Any() {
		return nil, &errors.SquareError{Err: errors.ErrNoMoves, Square: source.String()}
	}
	return p, nil
}

// ExecuteMove validates and plays a move for the player to move. It
// returns the captured piece, or nil. On error the match is unchanged.
func (m *Match) ExecuteMove(source, destination chess.Square) (*chess.Piece, error) {
	moveErr := func(err error) error {
		return &errors.MoveError{Err: err, From: source.String(), To: destination.String(), Turn: m.turn}
	}

	if m.checkMate {
		return nil, moveErr(errors.ErrGameOver)
	}
	if !m.hasKings() {
		return nil, moveErr(errors.ErrMissingKing)
	}

	p, err := m.validateSource(source)
	if err != nil {
		return nil, moveErr(err)
	}
	moves := m.moves(p)
	if !moves.Has(destination.Position()) {
		return nil, moveErr(errors.ErrIllegalTarget)
	}

	rec := m.makeMove(source.Position(), destination.Position())
	if m.isInCheck(m.current) {
		m.undoMove(rec)
		return nil, moveErr(errors.ErrSelfCheck)
	}

	m.commit(rec)
	return rec.captured, nil
}

// commit finishes a move that has already been made and found safe.
func (m *Match) commit(rec *moveRecord) {
	mover := m.current
	opponent := mover.Opposite()
	m.started = true
	m.promoted = nil

	if rec.captured != nil {
		m.captured = append(m.captured, rec.captured)
	}

	if reachesLastRank(rec) {
		m.promoted = rec.piece
		if m.cfg.Rules.AutoPromote {
			m.promoted = m.replacePromoted(m.cfg.Rules.PromotionKind)
		}
	}

	// The escape search below must see the new en passant target.
	m.enPassant = nil
	if isDoubleStep(rec) {
		m.enPassant = rec.piece
	}

	m.check = m.isInCheck(opponent)
	m.cfg.Logf(2, "%d. %v %v %v-%v%s", m.turn, mover, rec.piece.Kind, rec.from, rec.to, captureNote(rec))

	if m.check && !m.hasEscape(opponent) {
		m.checkMate = true
		m.cfg.Logf(1, "checkmate: %v wins on turn %d", mover, m.turn)
		return
	}
	if m.check {
		m.cfg.Logf(2, "%v is in check", opponent)
	}
	m.nextTurn()
}

func (m *Match) nextTurn() {
	m.turn++
	m.current = m.current.Opposite()
}

// captureNote describes the capture of a move for the log.
func captureNote(rec *moveRecord) string {
	switch {
	case rec.captured == nil:
		return ""
	case rec.enPassant:
		return fmt.Sprintf(" takes %v en passant", rec.captured.Kind)
	default:
		return fmt.Sprintf(" takes %v", rec.captured.Kind)
	}
}
