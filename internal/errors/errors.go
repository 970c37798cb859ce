// Package errors provides sentinel errors and error types for the chess engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrCoordinateFormat indicates an algebraic coordinate outside a1-h8.
	ErrCoordinateFormat = errors.New("invalid coordinate: valid values are a1 to h8")

	// ErrOutOfBounds indicates a board position outside the grid.
	ErrOutOfBounds = errors.New("position not on the board")

	// ErrInvalidSource is the parent of every source-square validation failure.
	ErrInvalidSource = errors.New("invalid source")

	// ErrEmptySource indicates there is no piece on the source square.
	ErrEmptySource = fmt.Errorf("%w: there is no piece on source position", ErrInvalidSource)

	// ErrWrongOwner indicates the piece on the source square belongs to the opponent.
	ErrWrongOwner = fmt.Errorf("%w: the chosen piece is not yours", ErrInvalidSource)

	// ErrNoMoves indicates the chosen piece has no reachable destination.
	ErrNoMoves = fmt.Errorf("%w: there are no possible moves for the chosen piece", ErrInvalidSource)

	// ErrIllegalTarget indicates the destination is not reachable by the chosen piece.
	ErrIllegalTarget = errors.New("the chosen piece can't move to target position")

	// ErrSelfCheck indicates the move would leave the mover's own king in check.
	ErrSelfCheck = errors.New("you can't put yourself in check")

	// ErrNoPendingPromotion indicates a promotion choice was made with no pawn to promote.
	ErrNoPendingPromotion = errors.New("there is no piece to be promoted")

	// ErrInvalidPromotionType indicates a promotion kind outside B, N, Q, R.
	ErrInvalidPromotionType = errors.New("invalid promotion type")

	// ErrMissingKing indicates a colour has no king on the board.
	// It means the engine's own setup is inconsistent, never a user mistake.
	ErrMissingKing = errors.New("there is no king on the board")

	// ErrGameOver indicates a move was attempted after checkmate.
	ErrGameOver = errors.New("the match is over")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// SquareError wraps a validation failure with the square it concerns.
type SquareError struct {
	Err    error  // The underlying error
	Square string // Algebraic square, e.g. "e2"
}

// Error returns the square followed by the underlying message.
func (e *SquareError) Error() string {
	if e.Square == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Square, e.Err)
}

// Unwrap returns the underlying error.
func (e *SquareError) Unwrap() error {
	return e.Err
}

// MoveError wraps errors with move context, including the turn number and
// both squares. It supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err  error  // The underlying error
	From string // Source square
	To   string // Destination square
	Turn int    // Turn number when the move was attempted (0 if unknown)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Turn > 0 {
		parts = append(parts, fmt.Sprintf("turn %d", e.Turn))
	}
	if e.From != "" || e.To != "" {
		parts = append(parts, fmt.Sprintf("move %s-%s", e.From, e.To))
	}

	context := strings.Join(parts, ", ")
	if e.Err == nil {
		return context
	}
	if context == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", context, e.Err)
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// BoundsError reports a grid position outside the board.
type BoundsError struct {
	Row int
	Col int
}

// Error returns the offending position.
func (e *BoundsError) Error() string {
	return fmt.Sprintf("(%d, %d): %v", e.Row, e.Col, ErrOutOfBounds)
}

// Unwrap returns ErrOutOfBounds so callers can test with errors.Is().
func (e *BoundsError) Unwrap() error {
	return ErrOutOfBounds
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
