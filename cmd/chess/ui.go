package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/config"
	"github.com/lgbarn/chessmatch-go/internal/engine"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// console runs a match from line-oriented text input.
type console struct {
	m   *engine.Match
	cfg *config.Config
	in  *bufio.Scanner
	out io.Writer
}

func newConsole(m *engine.Match, in io.Reader, out io.Writer) *console {
	return &console{
		m:   m,
		cfg: m.Config(),
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// run plays until checkmate, stalemate, "quit" or the end of input.
func (c *console) run() error {
	for {
		if c.m.CheckMate() {
			fmt.Fprint(c.out, render(c.m, nil))
			fmt.Fprintf(c.out, "Checkmate! %v wins.\n", c.m.CurrentPlayer())
			return nil
		}
		if c.m.Stalemate() {
			fmt.Fprint(c.out, render(c.m, nil))
			fmt.Fprintf(c.out, "Stalemate: %v has no legal move.\n", c.m.CurrentPlayer())
			return nil
		}

		done, err := c.turn()
		if done || err != nil {
			return err
		}
	}
}

// turn reads one source/target pair. It returns true when the game should stop.
func (c *console) turn() (bool, error) {
	c.status()
	fmt.Fprint(c.out, render(c.m, nil))

	line, ok := c.prompt("Source: ")
	if !ok {
		return true, c.in.Err()
	}
	switch {
	case line == "quit" || line == "exit":
		return true, nil
	case strings.HasPrefix(line, "promote "):
		c.choosePromotion(strings.TrimSpace(strings.TrimPrefix(line, "promote ")))
		return false, nil
	}

	source, err := chess.ParseSquare(line)
	if err != nil {
		c.report(err)
		return false, nil
	}
	moves, err := c.m.LegalDestinations(source)
	if err != nil {
		c.report(err)
		return false, nil
	}
	if c.cfg.Display.HighlightMoves {
		fmt.Fprint(c.out, render(c.m, &moves))
	}

	line, ok = c.prompt("Target: ")
	if !ok {
		return true, c.in.Err()
	}
	target, err := chess.ParseSquare(line)
	if err != nil {
		c.report(err)
		return false, nil
	}
	captured, err := c.m.ExecuteMove(source, target)
	if err != nil {
		c.report(err)
		return false, nil
	}
	if captured != nil {
		fmt.Fprintf(c.out, "%v captured.\n", captured)
	}
	return c.promotion()
}

// promotion handles a pawn that has just reached the last rank.
func (c *console) promotion() (bool, error) {
	p := c.m.Promoted()
	if p == nil {
		return false, nil
	}
	if c.cfg.Rules.AutoPromote {
		fmt.Fprintf(c.out, "Pawn promoted to %v. Enter 'promote B|N|Q|R' before the next move to change it.\n", p.Kind)
		return false, nil
	}

	for c.m.Promoted().Kind == chess.Pawn {
		line, ok := c.prompt("Promote to (B, N, Q, R): ")
		if !ok {
			return true, c.in.Err()
		}
		c.choosePromotion(line)
	}
	return false, nil
}

// choosePromotion applies a promotion letter typed by the user.
func (c *console) choosePromotion(letter string) {
	kind, ok := chess.ParseKind(letter)
	if !ok || !chess.IsPromotionKind(kind) {
		c.report(errors.Wrapf(errors.ErrInvalidPromotionType, "%q", letter))
		return
	}
	p, err := c.m.ChoosePromotion(kind)
	if err != nil {
		c.report(err)
		return
	}
	fmt.Fprintf(c.out, "Promoted to %v.\n", p.Kind)
}

// status prints whose turn it is, check and the captured pieces.
func (c *console) status() {
	fmt.Fprintf(c.out, "\nTurn %d: %v to move", c.m.Turn(), c.m.CurrentPlayer())
	if c.m.Check() {
		fmt.Fprint(c.out, " (check!)")
	}
	fmt.Fprintln(c.out)

	captured := c.m.Captured()
	if !c.cfg.Display.ShowCaptured || len(captured) == 0 {
		return
	}
	letters := make([]string, len(captured))
	for i, p := range captured {
		letters[i] = string(p.Letter())
	}
	fmt.Fprintf(c.out, "Captured: %s\n", strings.Join(letters, " "))
}

// prompt writes the prompt and reads one trimmed line.
func (c *console) prompt(text string) (string, bool) {
	fmt.Fprint(c.out, text)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *console) report(err error) {
	fmt.Fprintf(c.out, "Error: %v\n", err)
}

// render draws the board from White's side. Reachable empty squares are
// shown as '*' and reachable occupied squares as 'x'.
func render(m *engine.Match, highlight *engine.MoveMatrix) string {
	var sb strings.Builder
	grid := m.Pieces()
	for row := 0; row < chess.BoardSize; row++ {
		fmt.Fprintf(&sb, "%d ", chess.BoardSize-row)
		for col := 0; col < chess.BoardSize; col++ {
			pos := chess.Position{Row: row, Col: col}
			p := grid[row][col]
			switch {
			case highlight != nil && highlight.Has(pos) && p != nil:
				sb.WriteByte('x')
			case highlight != nil && highlight.Has(pos):
				sb.WriteByte('*')
			case p != nil:
				sb.WriteByte(p.Letter())
			default:
				sb.WriteByte('-')
			}
			if col < chess.BoardSize-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
