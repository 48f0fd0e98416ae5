package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Reasons a castling attempt is refused. They wrap ErrIllegalMove and are
// only reported through the log.
var (
	errCastleShape     = errors.Wrap(errors.ErrIllegalMove, "castling: king must move two files along its rank")
	errCastleKingMoved = errors.Wrap(errors.ErrIllegalMove, "castling: king has moved")
	errCastleNoRook    = errors.Wrap(errors.ErrIllegalMove, "castling: no rook in the corner")
	errCastleRookMoved = errors.Wrap(errors.ErrIllegalMove, "castling: rook has moved")
	errCastleBlocked   = errors.Wrap(errors.ErrIllegalMove, "castling: path between king and rook is not clear")
	errCastleCheck     = errors.Wrap(errors.ErrIllegalMove, "castling: king passes through or into check")
)

// checkCastle validates a castling attempt by the king on from towards to
// and returns the square of the rook involved.
func checkCastle(board *chess.Board, from, to chess.Position) (chess.Position, error) {
	king := board.At(from)
	if king == nil || king.Kind != chess.King {
		return chess.OffBoard, errCastleShape
	}
	if !to.IsValid() || to.Row != from.Row || abs(to.Col-from.Col) != 2 {
		return chess.OffBoard, errCastleShape
	}
	if king.Moved {
		return chess.OffBoard, errCastleKingMoved
	}

	row := from.Row
	dir := sign(to.Col - from.Col)
	rookSq := chess.Pos(row, 0)
	if dir > 0 {
		rookSq = chess.Pos(row, chess.BoardSize-1)
	}

	rook := board.At(rookSq)
	if !rook.Is(king.Colour, chess.Rook) {
		return chess.OffBoard, errCastleNoRook
	}
	if rook.Moved {
		return chess.OffBoard, errCastleRookMoved
	}

	// Check for empty squares between the king and rook
	for col := min(from.Col, rookSq.Col) + 1; col < max(from.Col, rookSq.Col); col++ {
		if board.At(chess.Pos(row, col)) != nil {
			return chess.OffBoard, errCastleBlocked
		}
	}

	// The king's square, the square it crosses and its destination
	for col := from.Col; col != to.Col+dir; col += dir {
		if IsSquareAttacked(board, chess.Pos(row, col), king.Colour.Opposite()) {
			return chess.OffBoard, errCastleCheck
		}
	}

	return rookSq, nil
}

// castle performs a castling move for the side to move. A refused attempt
// changes nothing.
func (g *Game) castle(from, to chess.Position) bool {
	king := g.board.At(from)
	if king == nil || king.Colour != g.toMove {
		return false
	}

	rookSq, err := checkCastle(g.board, from, to)
	if err != nil {
		g.logf(2, "%s%s refused: %v\n", from, to, err)
		return false
	}

	dir := sign(to.Col - from.Col)
	rookTo := chess.Pos(from.Row, from.Col+dir)
	rook := g.board.At(rookSq)

	g.board.Place(from, nil)
	g.board.Place(rookSq, nil)
	g.board.Place(to, king)
	g.board.Place(rookTo, rook)

	king.MarkMoved()
	rook.MarkMoved()

	class := chess.KingsideCastle
	if dir < 0 {
		class = chess.QueensideCastle
	}
	g.commit(chess.Move{
		From:   from,
		To:     to,
		Kind:   chess.King,
		Colour: king.Colour,
		Class:  class,
	})
	return true
}
