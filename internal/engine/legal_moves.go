package engine

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// HasValidMoves returns true if the given colour has at least one legal move.
func (g *Game) HasValidMoves(colour chess.Colour) bool {
	found := false
	g.forEachLegalMove(colour, func(chess.Move) bool {
		found = true
		return false
	})
	return found
}

// LegalMoves returns every legal move of the given colour, castling and en
// passant included. A promotion appears once, with Class Promotion and no
// Promoted kind.
func (g *Game) LegalMoves(colour chess.Colour) []chess.Move {
	var moves []chess.Move
	g.forEachLegalMove(colour, func(m chess.Move) bool {
		moves = append(moves, m)
		return true
	})
	return moves
}

// LegalTargets returns the squares the piece on from may legally move to.
func (g *Game) LegalTargets(from chess.Position) []chess.Position {
	piece := g.board.At(from)
	if piece == nil {
		return nil
	}
	var targets []chess.Position
	for _, m := range g.LegalMoves(piece.Colour) {
		if m.From == from && !slices.Contains(targets, m.To) {
			targets = append(targets, m.To)
		}
	}
	return targets
}

// forEachLegalMove calls fn for each legal move of colour until fn returns
// false. Every pseudo-legal target of every piece is simulated and undone
// against the king-safety check, so the board is unchanged on return.
func (g *Game) forEachLegalMove(colour chess.Colour, fn func(chess.Move) bool) {
	board := g.board
	for _, piece := range board.Pieces(colour) {
		from := piece.Pos

		for row := 0; row < chess.BoardSize; row++ {
			for col := 0; col < chess.BoardSize; col++ {
				to := chess.Pos(row, col)
				if !IsPseudoLegal(board, from, to) {
					continue
				}
				if !leavesKingSafe(board, colour, from, to, to) {
					continue
				}
				m := chess.Move{From: from, To: to, Kind: piece.Kind, Colour: colour}
				if target := board.At(to); target != nil {
					m.Captured = target.Kind
				}
				if piece.Kind == chess.Pawn && isLastRank(to) {
					m.Class = chess.Promotion
				}
				if !fn(m) {
					return
				}
			}
		}

		switch piece.Kind {
		case chess.Pawn:
			for _, dc := range []int{-1, 1} {
				to := from.Offset(colour.Forward(), dc)
				victimSq, ok := g.enPassantVictim(from, to)
				if !ok || !leavesKingSafe(board, colour, from, to, victimSq) {
					continue
				}
				m := chess.Move{From: from, To: to, Kind: chess.Pawn, Colour: colour, Captured: chess.Pawn, Class: chess.EnPassant}
				if !fn(m) {
					return
				}
			}

		case chess.King:
			for _, dc := range []int{2, -2} {
				to := from.Offset(0, dc)
				if _, err := checkCastle(board, from, to); err != nil {
					continue
				}
				m := chess.Move{From: from, To: to, Kind: chess.King, Colour: colour, Class: chess.KingsideCastle}
				if dc < 0 {
					m.Class = chess.QueensideCastle
				}
				if !fn(m) {
					return
				}
			}
		}
	}
}
