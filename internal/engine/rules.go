package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// HasInsufficientMaterial returns true if the pieces left are deemed unable
// to force mate. Insufficient material is:
//   - K vs K
//   - K+B vs K, K+N vs K
//   - K+B vs K+B with the bishops on opposite-coloured squares
//
// The last case deliberately differs from the textbook rule, which draws
// same-coloured bishops.
func HasInsufficientMaterial(board *chess.Board) bool {
	whitePieces := board.Count(chess.White)
	blackPieces := board.Count(chess.Black)

	switch {
	case whitePieces == 1 && blackPieces == 1:
		return true

	case whitePieces == 2 && blackPieces == 1, whitePieces == 1 && blackPieces == 2:
		return hasOnlyKingAndMinorPiece(board, chess.White) || hasOnlyKingAndMinorPiece(board, chess.Black)

	case whitePieces == 2 && blackPieces == 2:
		return hasOnlyKingAndMinorPiece(board, chess.White) &&
			hasOnlyKingAndMinorPiece(board, chess.Black) &&
			hasOppositeColouredBishops(board)
	}

	return false
}

// hasOnlyKingAndMinorPiece returns true if colour has exactly a king and
// one bishop or knight.
func hasOnlyKingAndMinorPiece(board *chess.Board, colour chess.Colour) bool {
	pieces := board.Pieces(colour)
	if len(pieces) != 2 {
		return false
	}
	hasKing, hasMinor := false, false
	for _, p := range pieces {
		switch {
		case p.Kind == chess.King:
			hasKing = true
		case p.Kind.IsMinor():
			hasMinor = true
		}
	}
	return hasKing && hasMinor
}

// hasOppositeColouredBishops returns true if each side has exactly one
// bishop and the two stand on squares of different colours.
func hasOppositeColouredBishops(board *chess.Board) bool {
	var whiteBishop, blackBishop *chess.Piece

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, p := range board.Pieces(colour) {
			if p.Kind != chess.Bishop {
				continue
			}
			switch {
			case colour == chess.White && whiteBishop == nil:
				whiteBishop = p
			case colour == chess.Black && blackBishop == nil:
				blackBishop = p
			default:
				return false
			}
		}
	}

	if whiteBishop == nil || blackBishop == nil {
		return false
	}
	return whiteBishop.Pos.IsLight() != blackBishop.Pos.IsLight()
}
