package engine

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// canPawnMove checks the pawn's pseudo-legal moves: one step forward onto
// an empty square, two steps from an unmoved pawn over an empty square, or
// a diagonal step onto an enemy piece. En passant is handled separately.
func canPawnMove(board *chess.Board, pawn *chess.Piece, from, to chess.Position, target *chess.Piece) bool {
	dir := pawn.Colour.Forward()
	rowDiff := to.Row - from.Row
	colDiff := to.Col - from.Col

	switch {
	case colDiff == 0 && rowDiff == dir:
		return target == nil

	case colDiff == 0 && rowDiff == 2*dir:
		if pawn.Moved || target != nil {
			return false
		}
		return board.At(from.Offset(dir, 0)) == nil

	case abs(colDiff) == 1 && rowDiff == dir:
		return target != nil && target.Colour != pawn.Colour
	}

	return false
}

// enPassantVictim returns the square of the pawn captured if the pawn on
// from moves to to en passant. The previous move must have been an enemy
// pawn's double step landing beside from, on to's file.
func (g *Game) enPassantVictim(from, to chess.Position) (chess.Position, bool) {
	pawn := g.board.At(from)
	if pawn == nil || pawn.Kind != chess.Pawn {
		return chess.OffBoard, false
	}
	if to.Row-from.Row != pawn.Colour.Forward() || abs(to.Col-from.Col) != 1 || !g.board.IsEmpty(to) {
		return chess.OffBoard, false
	}

	last, ok := g.LastMove()
	if !ok || !last.IsDoublePawnPush() || last.Colour == pawn.Colour {
		return chess.OffBoard, false
	}

	victimSq := chess.Pos(from.Row, to.Col)
	if last.To != victimSq {
		return chess.OffBoard, false
	}
	victim := g.board.At(victimSq)
	if !victim.Is(pawn.Colour.Opposite(), chess.Pawn) {
		return chess.OffBoard, false
	}
	return victimSq, true
}

// tryEnPassant attempts an en passant capture. applicable reports whether
// the move had en passant shape at all; applied whether it was committed.
func (g *Game) tryEnPassant(from, to chess.Position) (applied, applicable bool) {
	victimSq, ok := g.enPassantVictim(from, to)
	if !ok {
		return false, false
	}
	pawn := g.board.At(from)
	if pawn.Colour != g.toMove {
		return false, false
	}

	d := simulate(g.board, from, to, victimSq)
	if IsInCheck(g.board, pawn.Colour) {
		d.undo(g.board)
		g.logf(2, "en passant %s%s refused: king would be in check\n", from, to)
		return false, true
	}

	d.captured.Pos = chess.OffBoard
	pawn.MarkMoved()
	g.commit(chess.Move{
		From:     from,
		To:       to,
		Kind:     chess.Pawn,
		Colour:   pawn.Colour,
		Captured: chess.Pawn,
		Class:    chess.EnPassant,
	})
	return true, true
}

// PendingPromotion describes a pawn that reached the last rank and is
// waiting for the caller to choose its replacement.
type PendingPromotion struct {
	From     chess.Position
	To       chess.Position
	Captured chess.Kind
}

// IsPawnPromotion returns true if a pawn stands on the first or last row.
func (g *Game) IsPawnPromotion(pos chess.Position) bool {
	piece := g.board.At(pos)
	return piece != nil && piece.Kind == chess.Pawn && isLastRank(pos)
}

// PendingPromotion returns the square of a pawn awaiting promotion.
func (g *Game) PendingPromotion() (chess.Position, bool) {
	if g.pending == nil {
		return chess.OffBoard, false
	}
	return g.pending.To, true
}

// CompletePromotion finishes a pending promotion: the pawn is replaced by a
// piece of the chosen kind, the move is recorded, the turn passes and the
// terminal state is evaluated. It is equivalent to SetPiece followed by
// SwitchTurn, with the history entry and game-over check those skip.
func (g *Game) CompletePromotion(kind chess.Kind) error {
	if g.pending == nil {
		return errors.Wrap(errors.ErrInvalidPromotion, "no promotion pending")
	}
	if !slices.Contains(chess.PromotionKinds, kind) {
		return fmt.Errorf("cannot promote to %s: %w", kind, errors.ErrInvalidPromotion)
	}

	p := *g.pending
	pawn := g.board.At(p.To)
	if pawn == nil || pawn.Kind != chess.Pawn {
		return fmt.Errorf("no pawn on %s: %w", p.To, errors.ErrInvalidPromotion)
	}

	promoted := chess.NewPiece(kind, pawn.Colour)
	promoted.MarkMoved()
	pawn.Pos = chess.OffBoard
	g.board.Place(p.To, promoted)

	g.commit(chess.Move{
		From:     p.From,
		To:       p.To,
		Kind:     chess.Pawn,
		Colour:   promoted.Colour,
		Captured: p.Captured,
		Class:    chess.Promotion,
		Promoted: kind,
	})
	return nil
}
