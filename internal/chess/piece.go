package chess

// Piece is a piece standing on the board.
type Piece struct {
	Kind   Kind
	Colour Colour

	// Pos always equals the cell holding the piece, or OffBoard once captured.
	Pos Position

	// Moved is set once the piece has ever moved. It governs the pawn
	// double step and castling eligibility.
	Moved bool
}

// NewPiece creates an unmoved piece. Its position is assigned when it is
// placed on a board.
func NewPiece(kind Kind, colour Colour) *Piece {
	return &Piece{Kind: kind, Colour: colour, Pos: OffBoard}
}

// MarkMoved records that the piece has moved.
func (p *Piece) MarkMoved() {
	p.Moved = true
}

// Clone returns a copy of the piece.
func (p *Piece) Clone() *Piece {
	c := *p
	return &c
}

// Is reports whether the piece has the given colour and kind.
func (p *Piece) Is(colour Colour, kind Kind) bool {
	return p != nil && p.Colour == colour && p.Kind == kind
}

// String returns e.g. "White Pawn".
func (p *Piece) String() string {
	if p == nil {
		return "empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}
