package chess

import (
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Board holds the 8x8 grid and the king-square cache.
type Board struct {
	// The board squares, squares[row][col]; nil marks an empty square.
	squares [BoardSize][BoardSize]*Piece

	// Keep track of where the two kings are for check detection,
	// indexed by Colour.
	kings [2]Position
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{kings: [2]Position{OffBoard, OffBoard}}
}

// NewInitialBoard creates a board set up with the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Place(Pos(0, col), NewPiece(backRank[col], Black))
		b.Place(Pos(1, col), NewPiece(Pawn, Black))
		b.Place(Pos(6, col), NewPiece(Pawn, White))
		b.Place(Pos(7, col), NewPiece(backRank[col], White))
	}
}

// Clear removes every piece and forgets the king squares.
func (b *Board) Clear() {
	b.squares = [BoardSize][BoardSize]*Piece{}
	b.kings = [2]Position{OffBoard, OffBoard}
}

// IsValidPosition returns true if pos is on the board.
func (b *Board) IsValidPosition(pos Position) bool {
	return pos.IsValid()
}

// Get returns the piece at pos, or nil if the square is empty.
func (b *Board) Get(pos Position) (*Piece, error) {
	if !pos.IsValid() {
		return nil, &errors.PositionError{Op: "get", Row: pos.Row, Col: pos.Col}
	}
	return b.squares[pos.Row][pos.Col], nil
}

// Set places piece at pos (nil empties the square). The piece's position
// is updated, and so is the king-square cache when the piece is a King.
func (b *Board) Set(pos Position, piece *Piece) error {
	if !pos.IsValid() {
		return &errors.PositionError{Op: "set", Row: pos.Row, Col: pos.Col}
	}
	b.Place(pos, piece)
	return nil
}

// At returns the piece at pos without error reporting: nil for an empty
// square or an off-board position.
func (b *Board) At(pos Position) *Piece {
	if !pos.IsValid() {
		return nil
	}
	return b.squares[pos.Row][pos.Col]
}

// IsEmpty returns true if pos is on the board and holds no piece.
func (b *Board) IsEmpty(pos Position) bool {
	return pos.IsValid() && b.squares[pos.Row][pos.Col] == nil
}

// Place is Set for positions already known to be valid. It is the
// unchecked counterpart used by the engine's simulate/undo; an off-board
// position panics.
func (b *Board) Place(pos Position, piece *Piece) {
	b.squares[pos.Row][pos.Col] = piece
	if piece != nil {
		piece.Pos = pos
		if piece.Kind == King {
			b.kings[piece.Colour] = pos
		}
	}
}

// KingSquare returns the cached square of the given colour's king.
func (b *Board) KingSquare(colour Colour) Position {
	return b.kings[colour]
}

// Pieces returns the pieces of the given colour in row-major order.
func (b *Board) Pieces(colour Colour) []*Piece {
	var pieces []*Piece
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if p := b.squares[row][col]; p != nil && p.Colour == colour {
				pieces = append(pieces, p)
			}
		}
	}
	return pieces
}

// Count returns the number of pieces of the given colour, king included.
func (b *Board) Count(colour Colour) int {
	n := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if p := b.squares[row][col]; p != nil && p.Colour == colour {
				n++
			}
		}
	}
	return n
}

// FindKing scans the grid for the given colour's king.
// Returns OffBoard if there is none.
func (b *Board) FindKing(colour Colour) Position {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if p := b.squares[row][col]; p.Is(colour, King) {
				return Pos(row, col)
			}
		}
	}
	return OffBoard
}

// Copy creates a deep copy of the board; pieces are cloned.
func (b *Board) Copy() *Board {
	newBoard := &Board{kings: b.kings}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if p := b.squares[row][col]; p != nil {
				newBoard.squares[row][col] = p.Clone()
			}
		}
	}
	return newBoard
}

// SetKingSquare overrides the king-square cache. It exists for restoring
// saved state, where the cache is stored independently of the grid.
func (b *Board) SetKingSquare(colour Colour, pos Position) {
	b.kings[colour] = pos
}
