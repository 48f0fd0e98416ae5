// Package testutil provides shared test utilities for the chess-rules-go project.
// These utilities reduce code duplication across test files and provide
// consistent test setup helpers.
package testutil

import (
	"fmt"
	"strings"
	"testing"
	"unicode"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// ParsePlacement builds a board from the piece-placement field of a FEN
// record, e.g. "4k3/8/8/8/8/8/8/4K3". Moved flags are inferred: pawns on
// their starting row and kings and rooks on their home squares are
// unmoved, other pawns, kings and rooks are marked moved. The flag is
// irrelevant to the remaining kinds and left false.
func ParsePlacement(placement string) (*chess.Board, error) {
	board := chess.NewBoard()
	rows := strings.Split(placement, "/")
	if len(rows) != chess.BoardSize {
		return nil, fmt.Errorf("placement %q: want %d rows, got %d", placement, chess.BoardSize, len(rows))
	}

	for row, field := range rows {
		col := 0
		for _, c := range field {
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}
			kind := chess.KindFromLetter(byte(c))
			if kind == chess.NoKind {
				return nil, fmt.Errorf("placement %q: invalid piece character %q", placement, c)
			}
			if col >= chess.BoardSize {
				return nil, fmt.Errorf("placement %q: row %d overflows", placement, row)
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			piece := chess.NewPiece(kind, colour)
			piece.Moved = hasLeftHome(kind, colour, chess.Pos(row, col))
			board.Place(chess.Pos(row, col), piece)
			col++
		}
		if col != chess.BoardSize {
			return nil, fmt.Errorf("placement %q: row %d has %d squares", placement, row, col)
		}
	}
	return board, nil
}

// MustParsePlacement is like ParsePlacement but calls t.Fatal on error.
func MustParsePlacement(t *testing.T, placement string) *chess.Board {
	t.Helper()
	board, err := ParsePlacement(placement)
	if err != nil {
		t.Fatalf("ParsePlacement: %v", err)
	}
	return board
}

// hasLeftHome reports whether a pawn, king or rook on pos cannot be on
// its starting square.
func hasLeftHome(kind chess.Kind, colour chess.Colour, pos chess.Position) bool {
	home := colour.HomeRow()
	switch kind {
	case chess.Pawn:
		return pos.Row != home+colour.Forward()
	case chess.King:
		return pos != chess.Pos(home, 4)
	case chess.Rook:
		return pos != chess.Pos(home, 0) && pos != chess.Pos(home, chess.BoardSize-1)
	}
	return false
}

// Placement renders the piece-placement field of a FEN record.
func Placement(board *chess.Board) string {
	var sb strings.Builder
	for row := 0; row < chess.BoardSize; row++ {
		empty := 0
		for col := 0; col < chess.BoardSize; col++ {
			p := board.At(chess.Pos(row, col))
			if p == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			letter := p.Kind.Letter()
			if p.Colour == chess.Black {
				letter = byte(unicode.ToLower(rune(letter)))
			}
			sb.WriteByte(letter)
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// FEN renders a complete FEN record for board. Castling rights come from
// the Moved flags of the kings and corner rooks; epTarget is the square
// passed over by a pawn's double step, or OffBoard. Clocks are always
// "0 1".
func FEN(board *chess.Board, toMove chess.Colour, epTarget chess.Position) string {
	side := "w"
	if toMove == chess.Black {
		side = "b"
	}

	var rights strings.Builder
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		home := colour.HomeRow()
		king := board.At(chess.Pos(home, 4))
		if !king.Is(colour, chess.King) || king.Moved {
			continue
		}
		for _, corner := range []struct {
			col    int
			letter byte
		}{{chess.BoardSize - 1, 'K'}, {0, 'Q'}} {
			rook := board.At(chess.Pos(home, corner.col))
			if !rook.Is(colour, chess.Rook) || rook.Moved {
				continue
			}
			letter := corner.letter
			if colour == chess.Black {
				letter = byte(unicode.ToLower(rune(letter)))
			}
			rights.WriteByte(letter)
		}
	}
	castling := rights.String()
	if castling == "" {
		castling = "-"
	}

	return fmt.Sprintf("%s %s %s %s 0 1", Placement(board), side, castling, epTarget)
}
