// Package engine provides chess move validation and game state management.
package engine

import (
	"fmt"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Game is a chess game in progress: the board, side to move, move history
// and terminal state. It is mutated only through MovePiece, the promotion
// calls, SetPiece, SwitchTurn, Reset and Restore. A Game is not safe for
// concurrent use.
type Game struct {
	board   *chess.Board
	toMove  chess.Colour
	history []chess.Move

	// Latched once a committed move ends the game.
	over    bool
	outcome chess.Outcome

	// Set while a pawn on the last rank waits for its replacement.
	pending *PendingPromotion

	log       io.Writer
	verbosity int
}

// Option configures a Game.
type Option func(*Game)

// WithLog sets the writer diagnostics are written to.
func WithLog(w io.Writer) Option {
	return func(g *Game) {
		if w != nil {
			g.log = w
		}
	}
}

// WithVerbosity sets the diagnostic level: 0 nothing, 1 game events,
// 2 running commentary on refused moves.
func WithVerbosity(v int) Option {
	return func(g *Game) {
		g.verbosity = v
	}
}

// NewGame creates a game set up in the standard starting position.
func NewGame(opts ...Option) *Game {
	g := &Game{log: io.Discard}
	for _, opt := range opts {
		opt(g)
	}
	g.Reset()
	return g
}

// Reset reinitializes to the standard starting position, clears the
// history and sets White to move.
func (g *Game) Reset() {
	g.board = chess.NewInitialBoard()
	g.toMove = chess.White
	g.history = nil
	g.over = false
	g.outcome = chess.None
	g.pending = nil
}

// logf writes a diagnostic if the verbosity is at least level.
func (g *Game) logf(level int, format string, args ...interface{}) {
	if g.verbosity >= level {
		fmt.Fprintf(g.log, format, args...)
	}
}

// MovePiece attempts to move the piece on from to to. It returns whether
// the move was applied; an illegal move returns false and changes nothing.
// The only error is an out-of-bounds position.
func (g *Game) MovePiece(from, to chess.Position) (bool, error) {
	if g.over {
		return false, nil
	}
	if !from.IsValid() {
		return false, &errors.PositionError{Op: "move", Row: from.Row, Col: from.Col}
	}
	if !to.IsValid() {
		return false, &errors.PositionError{Op: "move", Row: to.Row, Col: to.Col}
	}
	if g.pending != nil {
		g.logf(2, "%s%s refused: promotion on %s pending\n", from, to, g.pending.To)
		return false, nil
	}

	mover := g.board.At(from)
	if mover == nil {
		return false, nil
	}

	if applied, applicable := g.tryEnPassant(from, to); applicable {
		return applied, nil
	}

	if mover.Kind == chess.King && abs(to.Col-from.Col) == 2 {
		return g.castle(from, to), nil
	}

	if !IsPseudoLegal(g.board, from, to) {
		g.logf(2, "%s%s refused: not a %s move\n", from, to, mover.Kind)
		return false, nil
	}
	if mover.Colour != g.toMove {
		g.logf(2, "%s%s refused: %s to move\n", from, to, g.toMove)
		return false, nil
	}

	// Simulate, then keep the result only if the mover's king is safe.
	d := simulate(g.board, from, to, to)
	if IsInCheck(g.board, mover.Colour) {
		d.undo(g.board)
		g.logf(2, "%s%s refused: king would be in check\n", from, to)
		return false, nil
	}

	captured := chess.NoKind
	if d.captured != nil {
		captured = d.captured.Kind
		d.captured.Pos = chess.OffBoard
	}

	if mover.Kind == chess.Pawn && isLastRank(to) {
		// The turn passes once the caller supplies the promoted piece.
		g.pending = &PendingPromotion{From: from, To: to, Captured: captured}
		g.logf(1, "%s pawn on %s awaits promotion\n", mover.Colour, to)
		return true, nil
	}

	mover.MarkMoved()
	g.commit(chess.Move{
		From:     from,
		To:       to,
		Kind:     mover.Kind,
		Colour:   mover.Colour,
		Captured: captured,
	})
	return true, nil
}

// commit records a finished move, passes the turn and latches the terminal
// state if the move ended the game.
func (g *Game) commit(m chess.Move) {
	g.history = append(g.history, m)
	g.SwitchTurn()

	if outcome := g.CheckForGameOver(); outcome != chess.None {
		g.over = true
		g.outcome = outcome
		g.logf(1, "%s! Game over.\n", outcome)
	}
}

// SwitchTurn passes the move to the other side. Callers finishing a
// promotion with SetPiece use it as the second half of the move.
func (g *Game) SwitchTurn() {
	g.toMove = g.toMove.Opposite()
	g.pending = nil
}

// GetPiece returns the piece at pos, or nil if the square is empty.
func (g *Game) GetPiece(pos chess.Position) (*chess.Piece, error) {
	return g.board.Get(pos)
}

// SetPiece places piece at pos (nil empties it). It is how a caller
// finalizes a pending promotion and how arbitrary positions are built.
func (g *Game) SetPiece(pos chess.Position, piece *chess.Piece) error {
	return g.board.Set(pos, piece)
}

// IsValidPosition returns true if pos is on the board.
func (g *Game) IsValidPosition(pos chess.Position) bool {
	return g.board.IsValidPosition(pos)
}

// IsKingInCheck returns true if pos is attacked by the side not to move.
func (g *Game) IsKingInCheck(pos chess.Position) bool {
	return IsSquareAttacked(g.board, pos, g.toMove.Opposite())
}

// InCheck returns true if the given colour's king is attacked.
func (g *Game) InCheck(colour chess.Colour) bool {
	return IsInCheck(g.board, colour)
}

// IsSquareAttacked returns true if any piece of byColour attacks sq.
func (g *Game) IsSquareAttacked(sq chess.Position, byColour chess.Colour) bool {
	return IsSquareAttacked(g.board, sq, byColour)
}

// IsWhiteTurn returns true if White is to move.
func (g *Game) IsWhiteTurn() bool {
	return g.toMove == chess.White
}

// ToMove returns the side to move.
func (g *Game) ToMove() chess.Colour {
	return g.toMove
}

// IsGameOver returns true once a committed move has ended the game.
func (g *Game) IsGameOver() bool {
	return g.over
}

// Outcome returns how the game ended, or None while it is in progress.
func (g *Game) Outcome() chess.Outcome {
	return g.outcome
}

// KingPosition returns the cached square of the given colour's king.
func (g *Game) KingPosition(colour chess.Colour) chess.Position {
	return g.board.KingSquare(colour)
}

// History returns a copy of the moves played so far.
func (g *Game) History() []chess.Move {
	return append([]chess.Move(nil), g.history...)
}

// PlyCount returns the number of moves in the history.
func (g *Game) PlyCount() int {
	return len(g.history)
}

// LastMove returns the most recent move in the history.
func (g *Game) LastMove() (chess.Move, bool) {
	if len(g.history) == 0 {
		return chess.Move{}, false
	}
	return g.history[len(g.history)-1], true
}

// Board returns a deep copy of the board for display.
func (g *Game) Board() *chess.Board {
	return g.board.Copy()
}
