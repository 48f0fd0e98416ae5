package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

// isLastRank returns true if a pawn standing on pos must promote.
func isLastRank(pos chess.Position) bool {
	return pos.Row == 0 || pos.Row == chess.BoardSize-1
}

// delta is a reversible board change: one piece moved and at most one
// piece removed. capturedAt equals to except for en passant.
type delta struct {
	from, to   chess.Position
	capturedAt chess.Position
	mover      *chess.Piece
	captured   *chess.Piece
}

// simulate applies the move to the grid, piece positions and king cache.
func simulate(board *chess.Board, from, to, capturedAt chess.Position) delta {
	d := delta{
		from:       from,
		to:         to,
		capturedAt: capturedAt,
		mover:      board.At(from),
		captured:   board.At(capturedAt),
	}
	board.Place(capturedAt, nil)
	board.Place(from, nil)
	board.Place(to, d.mover)
	return d
}

// undo reverses simulate exactly.
func (d delta) undo(board *chess.Board) {
	board.Place(d.to, nil)
	board.Place(d.from, d.mover)
	if d.captured != nil {
		board.Place(d.capturedAt, d.captured)
	}
}

// leavesKingSafe reports whether moving from->to (removing the piece on
// capturedAt) leaves colour's king unattacked. The board is unchanged on
// return.
func leavesKingSafe(board *chess.Board, colour chess.Colour, from, to, capturedAt chess.Position) bool {
	d := simulate(board, from, to, capturedAt)
	safe := !IsInCheck(board, colour)
	d.undo(board)
	return safe
}
