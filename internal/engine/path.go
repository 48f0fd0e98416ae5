package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsPseudoLegal reports whether the piece on from could move to to under
// its movement geometry and the path/occupancy rules, without regard to
// whether the move exposes its own king. Two-file king moves are never
// pseudo-legal; they are castling attempts and handled separately.
func IsPseudoLegal(board *chess.Board, from, to chess.Position) bool {
	piece := board.At(from)
	if piece == nil || !to.IsValid() || from == to {
		return false
	}

	target := board.At(to)
	if target != nil && target.Colour == piece.Colour {
		return false
	}

	if piece.Kind == chess.Pawn {
		return canPawnMove(board, piece, from, to, target)
	}
	return canPieceReach(board, piece.Kind, from, to)
}

// Attacks reports whether the piece on from attacks sq. The occupant of sq
// is ignored, and a pawn attacks both forward diagonals whether or not they
// are occupied.
func Attacks(board *chess.Board, from, sq chess.Position) bool {
	piece := board.At(from)
	if piece == nil || !sq.IsValid() || from == sq {
		return false
	}

	if piece.Kind == chess.Pawn {
		return sq.Row-from.Row == piece.Colour.Forward() && abs(sq.Col-from.Col) == 1
	}
	return canPieceReach(board, piece.Kind, from, sq)
}

// canPieceReach checks if a non-pawn piece can move from one square to another.
func canPieceReach(board *chess.Board, kind chess.Kind, from, to chess.Position) bool {
	rowDiff := abs(to.Row - from.Row)
	colDiff := abs(to.Col - from.Col)

	switch kind {
	case chess.Knight:
		return (rowDiff == 1 && colDiff == 2) || (rowDiff == 2 && colDiff == 1)

	case chess.Bishop:
		if rowDiff != colDiff || rowDiff == 0 {
			return false
		}
		return isPathClear(board, from, to)

	case chess.Rook:
		if (rowDiff == 0) == (colDiff == 0) {
			return false
		}
		return isPathClear(board, from, to)

	case chess.Queen:
		if rowDiff == colDiff || rowDiff == 0 || colDiff == 0 {
			return isPathClear(board, from, to)
		}
		return false

	case chess.King:
		return rowDiff <= 1 && colDiff <= 1
	}

	return false
}

// isPathClear walks unit steps from from towards to, exclusive of both
// endpoints, and reports whether every square passed is empty.
func isPathClear(board *chess.Board, from, to chess.Position) bool {
	rowDir := sign(to.Row - from.Row)
	colDir := sign(to.Col - from.Col)

	sq := from.Offset(rowDir, colDir)
	for sq != to {
		if board.At(sq) != nil {
			return false
		}
		sq = sq.Offset(rowDir, colDir)
	}

	return true
}
