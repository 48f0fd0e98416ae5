package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Position is a board coordinate. Row 0 is Black's back rank (rank 8),
// column 0 is the a-file.
type Position struct {
	Row int
	Col int
}

// OffBoard is where a captured piece is parked.
var OffBoard = Position{Row: -1, Col: -1}

// Pos creates a position.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// IsValid returns true if the position lies on the 8x8 board.
func (p Position) IsValid() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// Hash returns an injective integer key for on-board positions.
func (p Position) Hash() int {
	return 11*p.Row + p.Col
}

// IsLight returns true if the square is a light square.
// a8 (row 0, col 0) is light.
func (p Position) IsLight() bool {
	return (p.Row+p.Col)%2 == 0
}

// Offset returns the position shifted by the given deltas.
func (p Position) Offset(dRow, dCol int) Position {
	return Position{Row: p.Row + dRow, Col: p.Col + dCol}
}

// String returns the algebraic name of the square (e.g. "e2").
func (p Position) String() string {
	if !p.IsValid() {
		return "-"
	}
	return string([]byte{byte('a' + p.Col), byte('8' - p.Row)})
}

// ParseSquare converts an algebraic square name such as "e2" to a Position.
func ParseSquare(s string) (Position, error) {
	if len(s) != 2 {
		return OffBoard, fmt.Errorf("square %q: %w", s, errors.ErrInvalidSquare)
	}
	file, rank := s[0], s[1]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return OffBoard, fmt.Errorf("square %q: %w", s, errors.ErrInvalidSquare)
	}
	return Position{Row: int('8' - rank), Col: int(file - 'a')}, nil
}

// MustParseSquare is like ParseSquare but panics on malformed input.
// Intended for constants and tests.
func MustParseSquare(s string) Position {
	p, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return p
}
