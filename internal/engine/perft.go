package engine

import (
	"fmt"
	"sort"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
	"github.com/lgbarn/chessmatch-go/internal/worker"
)

// promotionKinds are the pieces a pawn can become, each counted as its own move.
var promotionKinds = []chess.Kind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// Perft counts the legal move paths of the given depth from the current
// position. Promotions count once per promotion kind. The match is left
// unchanged.
func (m *Match) Perft(depth int) (uint64, error) {
	if !m.hasKings() {
		return 0, errors.ErrMissingKing
	}
	if depth < 0 {
		return 0, fmt.Errorf("perft depth %d: %w", depth, errors.ErrInvalidConfig)
	}
	if m.checkMate {
		return 0, nil
	}
	return m.perft(m.current, depth), nil
}

func (m *Match) perft(colour chess.Colour, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	var nodes uint64
	m.forEachLegalMove(colour, func(rec *moveRecord) {
		nodes += m.perftAfter(rec, colour, depth)
	})
	return nodes
}

// perftAfter counts the subtree below a move that has already been made.
func (m *Match) perftAfter(rec *moveRecord, colour chess.Colour, depth int) uint64 {
	savedEP := m.enPassant
	m.enPassant = nil
	if isDoubleStep(rec) {
		m.enPassant = rec.piece
	}
	defer func() { m.enPassant = savedEP }()

	if !reachesLastRank(rec) {
		return m.perft(colour.Opposite(), depth-1)
	}

	var nodes uint64
	for _, kind := range promotionKinds {
		rec.piece.Kind = kind
		nodes += m.perft(colour.Opposite(), depth-1)
	}
	rec.piece.Kind = chess.Pawn
	return nodes
}

// forEachLegalMove makes every legal move of colour in turn, calls fn while
// the move is on the board, and undoes it.
func (m *Match) forEachLegalMove(colour chess.Colour, fn func(rec *moveRecord)) {
	for _, p := range m.board.Pieces(colour) {
		from, _ := p.Position()
		moves := m.moves(p)
		for _, to := range moves.Positions() {
			rec := m.makeMove(from, to)
			if !m.isInCheck(colour) {
				fn(rec)
			}
			m.undoMove(rec)
		}
	}
}

// DivideEntry is the perft count below one root move.
type DivideEntry struct {
	From  chess.Square
	To    chess.Square
	Nodes uint64
}

// Move returns the entry's move in long algebraic form, e.g. "e2e4".
func (d DivideEntry) Move() string {
	return d.From.String() + d.To.String()
}

// PerftDivide runs Perft(depth-1) below each legal root move on a pool of
// workers. Each root move gets its own copy of the match. Entries are
// sorted by move text.
func (m *Match) PerftDivide(depth, workers int) ([]DivideEntry, error) {
	if !m.hasKings() {
		return nil, errors.ErrMissingKing
	}
	if depth < 1 {
		return nil, fmt.Errorf("perft divide depth %d: %w", depth, errors.ErrInvalidConfig)
	}

	type rootMove struct {
		from, to chess.Square
	}
	var roots []rootMove
	m.forEachLegalMove(m.current, func(rec *moveRecord) {
		roots = append(roots, rootMove{chess.SquareOf(rec.from), chess.SquareOf(rec.to)})
	})

	process := func(item worker.WorkItem[rootMove]) worker.ProcessResult[DivideEntry] {
		root := item.Payload
		clone := m.Clone()
		from, to := root.from.Position(), root.to.Position()
		rec := clone.makeMove(from, to)
		nodes := clone.perftAfter(rec, clone.current, depth)
		clone.undoMove(rec)
		return worker.ProcessResult[DivideEntry]{
			Value: DivideEntry{From: root.from, To: root.to, Nodes: nodes},
			Index: item.Index,
		}
	}

	entries, err := worker.Run(workers, roots, process)
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Move() < entries[j].Move() })
	m.cfg.Logf(2, "perft divide %d: %d root moves", depth, len(entries))
	return entries, nil
}

// Clone returns an independent deep copy of the match.
func (m *Match) Clone() *Match {
	c := &Match{
		cfg:       m.cfg,
		board:     chess.NewBoard(),
		turn:      m.turn,
		current:   m.current,
		check:     m.check,
		checkMate: m.checkMate,
		started:   m.started,
	}

	copies := make(map[*chess.Piece]*chess.Piece)
	dup := func(p *chess.Piece) *chess.Piece {
		if p == nil {
			return nil
		}
		if q, ok := copies[p]; ok {
			return q
		}
		q := chess.NewPiece(p.Kind, p.Colour)
		q.SetMoveCount(p.MoveCount())
		copies[p] = q
		return q
	}

	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			pos := chess.Position{Row: row, Col: col}
			if p := m.board.At(pos); p != nil {
				c.board.Place(dup(p), pos)
			}
		}
	}
	c.enPassant = dup(m.enPassant)
	c.promoted = dup(m.promoted)
	for _, p := range m.captured {
		c.captured = append(c.captured, dup(p))
	}
	return c
}
