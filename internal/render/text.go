// Package render draws boards as plain text and SVG diagrams.
package render

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Glyph returns the symbol drawn for a piece.
type Glyph func(kind chess.Kind, colour chess.Colour) rune

// Letters draws pieces by letter, uppercase for White.
func Letters(kind chess.Kind, colour chess.Colour) rune {
	r := rune(kind.Letter())
	if colour == chess.Black {
		r += 'a' - 'A'
	}
	return r
}

// Text returns an ASCII diagram of the board with rank 8 at the top, e.g.
//
//	8 r n b q k b n r
//	...
//	1 R N B Q K B N R
//	  a b c d e f g h
func Text(board *chess.Board) string {
	return TextWith(board, Letters)
}

// TextWith is Text drawing pieces with glyph. Empty squares are '.'.
func TextWith(board *chess.Board, glyph Glyph) string {
	if glyph == nil {
		glyph = Letters
	}

	var sb strings.Builder
	for row := 0; row < chess.BoardSize; row++ {
		sb.WriteByte(byte('8' - row))
		for col := 0; col < chess.BoardSize; col++ {
			sb.WriteByte(' ')
			p := board.At(chess.Pos(row, col))
			if p == nil {
				sb.WriteByte('.')
				continue
			}
			sb.WriteRune(glyph(p.Kind, p.Colour))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
