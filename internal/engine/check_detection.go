package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsInCheck returns true if the given colour's king is attacked.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	kingSq := board.KingSquare(colour)

	// If king position not tracked, search for it
	if !kingSq.IsValid() {
		kingSq = board.FindKing(colour)
		if !kingSq.IsValid() {
			return false // No king found
		}
	}

	return IsSquareAttacked(board, kingSq, colour.Opposite())
}

// IsSquareAttacked returns true if any piece of byColour attacks sq.
// All 64 squares are scanned; the board is small and fixed, so no attack
// maps are kept.
func IsSquareAttacked(board *chess.Board, sq chess.Position, byColour chess.Colour) bool {
	if !sq.IsValid() {
		return false
	}
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			from := chess.Pos(row, col)
			piece := board.At(from)
			if piece == nil || piece.Colour != byColour {
				continue
			}
			if Attacks(board, from, sq) {
				return true
			}
		}
	}
	return false
}
