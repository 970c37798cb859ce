package engine

import (
	"bytes"
	"errors"
	"testing"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/config"
	chesserrors "github.com/lgbarn/chessmatch-go/internal/errors"
	"github.com/lgbarn/chessmatch-go/internal/testutil"
)

func TestNewMatch(t *testing.T) {
	m := NewMatch(nil)

	testutil.AssertEqual(t, m.Turn(), 1)
	testutil.AssertEqual(t, m.CurrentPlayer(), chess.White)
	testutil.AssertFalse(t, m.Check())
	testutil.AssertFalse(t, m.CheckMate())
	testutil.AssertNil(t, m.EnPassantVulnerable())
	testutil.AssertNil(t, m.Promoted())
	testutil.AssertEqual(t, len(m.Captured()), 0)
	testutil.AssertEqual(t, len(m.OnBoard(chess.White)), 16)
	testutil.AssertEqual(t, len(m.OnBoard(chess.Black)), 16)
	testutil.AssertNotNil(t, m.Config())

	want := "8 r n b q k b n r\n" +
		"7 p p p p p p p p\n" +
		"6 - - - - - - - -\n" +
		"5 - - - - - - - -\n" +
		"4 - - - - - - - -\n" +
		"3 - - - - - - - -\n" +
		"2 P P P P P P P P\n" +
		"1 R N B Q K B N R\n" +
		"  a b c d e f g h\n"
	testutil.AssertEqual(t, m.String(), want)
}

func TestLegalDestinations_SourceErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   error
	}{
		{"empty square", "e4", chesserrors.ErrEmptySource},
		{"opponent piece", "e7", chesserrors.ErrWrongOwner},
		{"no moves", "a1", chesserrors.ErrNoMoves},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMatch(quietConfig())
			_, err := m.LegalDestinations(sq(tt.source))

			testutil.AssertErrorIs(t, err, tt.want)
			testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidSource)

			var sqErr *chesserrors.SquareError
			if !errors.As(err, &sqErr) {
				t.Fatalf("error %v is not a *SquareError", err)
			}
			testutil.AssertEqual(t, sqErr.Square, tt.source)
		})
	}
}

func TestLegalDestinations(t *testing.T) {
	m := NewMatch(quietConfig())

	got, err := m.LegalDestinations(sq("b1"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, squares(got), []string{"a3", "c3"})

	got, err = m.LegalDestinations(sq("e2"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, squares(got), []string{"e4", "e3"})
}

func TestLegalDestinations_IncludesSelfCheck(t *testing.T) {
	// The pinned bishop still reports its raw moves.
	m := newTestMatch(t, "4k3/4r3/8/8/8/8/4B3/4K3", chess.White, nil)

	raw, err := m.LegalDestinations(sq("e2"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, raw.Count(), 9)

	safe, err := m.LegalMoves(sq("e2"))
	testutil.AssertNoError(t, err)
	testutil.AssertFalse(t, safe.Any(), "pinned bishop has no legal move")
}

func TestExecuteMove(t *testing.T) {
	m := NewMatch(quietConfig())

	captured, err := m.ExecuteMove(sq("e2"), sq("e4"))
	testutil.AssertNoError(t, err)
	testutil.AssertNil(t, captured)

	testutil.AssertNil(t, m.PieceAt(sq("e2")))
	pawn := m.PieceAt(sq("e4"))
	testutil.AssertNotNil(t, pawn)
	testutil.AssertEqual(t, pawn.MoveCount(), 1)
	testutil.AssertEqual(t, m.Turn(), 2)
	testutil.AssertEqual(t, m.CurrentPlayer(), chess.Black)
	testutil.AssertTrue(t, m.EnPassantVulnerable() == pawn, "double step marks the pawn")

	play(t, m, "d7d5")
	captured, err = m.ExecuteMove(sq("e4"), sq("d5"))
	testutil.AssertNoError(t, err)
	testutil.AssertNotNil(t, captured)
	testutil.AssertEqual(t, captured.Kind, chess.Pawn)
	testutil.AssertEqual(t, captured.Colour, chess.Black)
	testutil.AssertEqual(t, len(m.Captured()), 1)
	testutil.AssertEqual(t, len(m.OnBoard(chess.Black)), 15)
	testutil.AssertNil(t, m.EnPassantVulnerable())

	_, placed := captured.Position()
	testutil.AssertFalse(t, placed, "captured piece must leave the board")
}

func TestExecuteMove_Errors(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		want     error
		message  string
	}{
		{"illegal target", "e2", "e5", chesserrors.ErrIllegalTarget, "turn 1, move e2-e5: the chosen piece can't move to target position"},
		{"empty source", "e3", "e4", chesserrors.ErrEmptySource, ""},
		{"wrong owner", "e7", "e5", chesserrors.ErrWrongOwner, ""},
		{"no moves", "h1", "h3", chesserrors.ErrNoMoves, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMatch(quietConfig())
			before := snapshot(m)

			captured, err := m.ExecuteMove(sq(tt.from), sq(tt.to))
			testutil.AssertNil(t, captured)
			testutil.AssertErrorIs(t, err, tt.want)
			if tt.message != "" {
				testutil.AssertEqual(t, err.Error(), tt.message)
			}

			var moveErr *chesserrors.MoveError
			if !errors.As(err, &moveErr) {
				t.Fatalf("error %v is not a *MoveError", err)
			}
			testutil.AssertEqual(t, moveErr.From, tt.from)
			testutil.AssertEqual(t, moveErr.To, tt.to)

			testutil.AssertEqual(t, snapshot(m), before)
			testutil.AssertEqual(t, m.Turn(), 1)
			testutil.AssertEqual(t, m.CurrentPlayer(), chess.White)
		})
	}
}

func TestExecuteMove_SelfCheckIsAtomic(t *testing.T) {
	tests := []struct {
		name     string
		layout   string
		from, to string
	}{
		{"pinned bishop", "4k3/4r3/8/8/8/8/4B3/4K3", "e2", "d3"},
		{"king takes protected rook", "3rk3/8/8/8/8/8/3r4/4K3", "e1", "d2"},
		{"king walks into check", "4k3/8/8/8/8/8/8/3rK3", "e1", "d2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMatch(t, tt.layout, chess.White, nil)
			before := snapshot(m)
			inCheck := m.Check()

			_, err := m.ExecuteMove(sq(tt.from), sq(tt.to))
			testutil.AssertErrorIs(t, err, chesserrors.ErrSelfCheck)

			testutil.AssertEqual(t, snapshot(m), before)
			testutil.AssertEqual(t, m.Turn(), 1)
			testutil.AssertEqual(t, m.CurrentPlayer(), chess.White)
			testutil.AssertEqual(t, m.Check(), inCheck)
			testutil.AssertEqual(t, len(m.Captured()), 0)
		})
	}
}

func TestExecuteMove_MissingKing(t *testing.T) {
	m := NewEmptyMatch(quietConfig())
	if _, err := m.PlacePiece(sq("e1"), chess.King, chess.White); err != nil {
		t.Fatal(err)
	}
	if _, err := m.PlacePiece(sq("a2"), chess.Pawn, chess.White); err != nil {
		t.Fatal(err)
	}

	_, err := m.ExecuteMove(sq("a2"), sq("a3"))
	testutil.AssertErrorIs(t, err, chesserrors.ErrMissingKing)
	testutil.AssertNotNil(t, m.PieceAt(sq("a2")))

	_, err = m.LegalMoves(sq("a2"))
	testutil.AssertErrorIs(t, err, chesserrors.ErrMissingKing)
	testutil.AssertFalse(t, m.HasLegalMove(chess.White))
	testutil.AssertFalse(t, m.Stalemate())
}

func TestSetCurrentPlayer_WaitingSideInCheck(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		toMove chess.Colour
	}{
		{"rook gives check", "4k3/8/8/8/8/8/4R3/K7", chess.White},
		{"knight gives check", "4k3/8/8/8/8/1n6/8/K7", chess.Black},
		{"adjacent kings", "8/8/8/8/8/8/3k4/4K3", chess.White},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewEmptyMatch(quietConfig())
			placeLayout(t, m, tt.layout)
			before := m.CurrentPlayer()

			err := m.SetCurrentPlayer(tt.toMove)
			testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidConfig)
			testutil.AssertEqual(t, m.CurrentPlayer(), before)
		})
	}
}

func TestExecuteMove_KingIsNeverCaptured(t *testing.T) {
	m := NewEmptyMatch(quietConfig())
	placeLayout(t, m, "4k3/8/8/8/8/8/4R3/K7")

	dests, err := m.LegalDestinations(sq("e2"))
	testutil.AssertNoError(t, err)
	testutil.AssertFalse(t, dests.Has(sq("e8").Position()), "e8 holds the black king")
	testutil.AssertTrue(t, dests.Has(sq("e7").Position()))

	_, err = m.ExecuteMove(sq("e2"), sq("e8"))
	testutil.AssertErrorIs(t, err, chesserrors.ErrIllegalTarget)
	testutil.AssertNotNil(t, m.PieceAt(sq("e8")))
	testutil.AssertEqual(t, m.Turn(), 1)

	n, err := m.Perft(2)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, n > 0)
}

func TestPlacePiece_Errors(t *testing.T) {
	m := newTestMatch(t, "4k3/8/8/8/8/8/8/4K3", chess.White, nil)

	_, err := m.PlacePiece(sq("e1"), chess.Queen, chess.White)
	testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidConfig)

	_, err = m.PlacePiece(sq("d1"), chess.NoKind, chess.White)
	testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidConfig)

	play(t, m, "e1d1")

	_, err = m.PlacePiece(sq("a1"), chess.Rook, chess.White)
	testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidConfig)
	testutil.AssertErrorIs(t, m.SetCurrentPlayer(chess.White), chesserrors.ErrInvalidConfig)
}

func TestStalemate(t *testing.T) {
	m := newTestMatch(t, "k7/8/1Q6/8/8/8/8/7K", chess.Black, nil)

	testutil.AssertTrue(t, m.Stalemate())
	testutil.AssertFalse(t, m.Check())
	testutil.AssertFalse(t, m.CheckMate())
	testutil.AssertFalse(t, m.HasLegalMove(chess.Black))
	testutil.AssertTrue(t, m.HasLegalMove(chess.White))

	mated, err := m.IsCheckMate(chess.Black)
	testutil.AssertNoError(t, err)
	testutil.AssertFalse(t, mated)

	// Stalemate is informational: the match keeps Black to move.
	testutil.AssertEqual(t, m.CurrentPlayer(), chess.Black)
}

func TestStalemate_ReachedByMove(t *testing.T) {
	m := newTestMatch(t, "k7/8/8/2Q5/8/8/8/7K", chess.White, nil)

	testutil.AssertFalse(t, m.Stalemate())
	play(t, m, "c5b6")
	testutil.AssertTrue(t, m.Stalemate())
	testutil.AssertFalse(t, m.CheckMate())
}

func TestCommit_Logging(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := config.NewConfigBuilder().WithLog(buf).WithVerbosity(2).Build()
	m := NewMatch(cfg)

	play(t, m, "f2f3", "e7e5", "g2g4", "d8h4")

	testutil.AssertContains(t, buf.String(), "1. White Pawn f2-f3")
	testutil.AssertContains(t, buf.String(), "checkmate: Black wins on turn 4")
}

func TestClone(t *testing.T) {
	m := NewMatch(quietConfig())
	play(t, m, "e2e4")

	c := m.Clone()
	testutil.AssertEqual(t, snapshot(c), snapshot(m))
	testutil.AssertEqual(t, c.Turn(), m.Turn())
	testutil.AssertTrue(t, c.EnPassantVulnerable() == c.PieceAt(sq("e4")), "clone keeps its own en passant pawn")
	testutil.AssertTrue(t, c.PieceAt(sq("e4")) != m.PieceAt(sq("e4")), "clone must not share pieces")

	play(t, c, "d7d5", "e4d5")

	testutil.AssertEqual(t, m.Turn(), 2)
	testutil.AssertNotNil(t, m.PieceAt(sq("d7")))
	testutil.AssertEqual(t, len(m.Captured()), 0)
	testutil.AssertEqual(t, len(c.Captured()), 1)
}
