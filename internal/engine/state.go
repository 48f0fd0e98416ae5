package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// State is a complete, detached copy of a game: everything needed to
// resume it. It is the unit the snapshot package persists.
type State struct {
	Board    *chess.Board
	ToMove   chess.Colour
	History  []chess.Move
	GameOver bool
	Outcome  chess.Outcome
	Pending  *PendingPromotion
}

// State returns a deep copy of the game's state.
func (g *Game) State() State {
	s := State{
		Board:    g.board.Copy(),
		ToMove:   g.toMove,
		History:  append([]chess.Move(nil), g.history...),
		GameOver: g.over,
		Outcome:  g.outcome,
	}
	if g.pending != nil {
		p := *g.pending
		s.Pending = &p
	}
	return s
}

// Restore replaces the game's state with s. The state is validated first;
// on error the game is left untouched.
func (g *Game) Restore(s State) error {
	if err := ValidateState(s); err != nil {
		return err
	}

	g.board = s.Board.Copy()
	g.toMove = s.ToMove
	g.history = append([]chess.Move(nil), s.History...)
	g.over = s.GameOver
	g.outcome = s.Outcome
	g.pending = nil
	if s.Pending != nil {
		p := *s.Pending
		g.pending = &p
	}
	g.logf(1, "restored game: %s to move after %d moves\n", g.toMove, len(g.history))
	return nil
}

// CheckInvariants validates the game's own state.
func (g *Game) CheckInvariants() error {
	return ValidateState(g.State())
}

// ValidateState checks the board invariants of s: exactly one king per
// colour, the king cache pointing at it, each piece's position matching its
// square, and every history entry lying on the board. Errors wrap
// ErrInvalidState.
func ValidateState(s State) error {
	if s.Board == nil {
		return errors.Wrap(errors.ErrInvalidState, "no board")
	}
	if err := ValidateBoard(s.Board); err != nil {
		return err
	}
	if s.ToMove != chess.White && s.ToMove != chess.Black {
		return errors.Wrapf(errors.ErrInvalidState, "side to move %d", int(s.ToMove))
	}
	for i, m := range s.History {
		if !m.From.IsValid() || !m.To.IsValid() {
			return errors.Wrapf(errors.ErrInvalidState, "history entry %d off the board", i)
		}
	}
	if s.GameOver != (s.Outcome != chess.None) {
		return errors.Wrapf(errors.ErrInvalidState, "game over %v with outcome %s", s.GameOver, s.Outcome)
	}
	if p := s.Pending; p != nil {
		pawn := s.Board.At(p.To)
		if !p.To.IsValid() || pawn == nil || pawn.Kind != chess.Pawn || !isLastRank(p.To) {
			return errors.Wrapf(errors.ErrInvalidState, "no pawn awaiting promotion on %s", p.To)
		}
	}
	return nil
}

// ValidateBoard checks the grid against the king cache and piece positions.
func ValidateBoard(board *chess.Board) error {
	kings := [2]int{}
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			pos := chess.Pos(row, col)
			p := board.At(pos)
			if p == nil {
				continue
			}
			if p.Pos != pos {
				return errors.Wrapf(errors.ErrInvalidState, "%s on %s records position %s", p, pos, p.Pos)
			}
			if p.Kind == chess.NoKind || p.Kind > chess.King {
				return errors.Wrapf(errors.ErrInvalidState, "unknown piece kind on %s", pos)
			}
			if p.Colour != chess.White && p.Colour != chess.Black {
				return errors.Wrapf(errors.ErrInvalidState, "unknown piece colour on %s", pos)
			}
			if p.Kind == chess.King {
				kings[p.Colour]++
			}
		}
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if kings[colour] != 1 {
			return fmt.Errorf("%d %s kings: %w", kings[colour], colour, errors.ErrInvalidState)
		}
		if found, cached := board.FindKing(colour), board.KingSquare(colour); found != cached {
			return fmt.Errorf("%s king on %s but cached on %s: %w", colour, found, cached, errors.ErrInvalidState)
		}
	}
	return nil
}
