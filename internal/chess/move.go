package chess

import "fmt"

// Move is one executed move as recorded in the game history.
// Moves are values; once appended to history they are never changed.
type Move struct {
	From Position
	To   Position

	// The piece that moved.
	Kind   Kind
	Colour Colour

	// The piece captured (NoKind if no capture). Always of the opposite colour.
	Captured Kind

	// Class of move (normal, castle, en passant, promotion).
	Class MoveClass

	// The piece promoted to (NoKind if not a promotion).
	Promoted Kind
}

// IsCapture returns true if this move captured a piece.
func (m Move) IsCapture() bool {
	return m.Captured != NoKind
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	switch m.Class {
	case KingsideCastle, QueensideCastle:
		return true
	default:
		return false
	}
}

// IsDoublePawnPush returns true if a pawn advanced two ranks.
func (m Move) IsDoublePawnPush() bool {
	return m.Kind == Pawn && abs(m.To.Row-m.From.Row) == 2 && m.From.Col == m.To.Col
}

// UCI returns the move in long algebraic form, e.g. "e2e4" or "e7e8q".
func (m Move) UCI() string {
	s := m.From.String() + m.To.String()
	if m.Promoted != NoKind {
		s += string(m.Promoted.Letter() + 'a' - 'A')
	}
	return s
}

// String describes the move in words.
func (m Move) String() string {
	switch m.Class {
	case KingsideCastle:
		return "Castling kingside"
	case QueensideCastle:
		return "Castling queenside"
	}

	s := fmt.Sprintf("%s %s moved from %s to %s", m.Colour, m.Kind, m.From, m.To)
	if m.IsCapture() {
		s += fmt.Sprintf(" capturing %s %s", m.Colour.Opposite(), m.Captured)
	}
	if m.Class == EnPassant {
		s += " en passant"
	}
	if m.Promoted != NoKind {
		s += fmt.Sprintf(" promoting to %s", m.Promoted)
	}
	return s
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
