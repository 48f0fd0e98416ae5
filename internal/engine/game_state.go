package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// CheckForGameOver evaluates the position for the side to move.
// Checkmate and stalemate take precedence over insufficient material.
func (g *Game) CheckForGameOver() chess.Outcome {
	colour := g.toMove
	if !g.HasValidMoves(colour) {
		if g.InCheck(colour) {
			return chess.Checkmate
		}
		return chess.Stalemate
	}
	if HasInsufficientMaterial(g.board) {
		return chess.InsufficientMaterial
	}
	return chess.None
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func (g *Game) IsCheckmate() bool {
	colour := g.toMove
	return g.InCheck(colour) && !g.HasValidMoves(colour)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func (g *Game) IsStalemate() bool {
	colour := g.toMove
	return !g.InCheck(colour) && !g.HasValidMoves(colour)
}
