// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the row step of a pawn of this colour.
// White advances towards row 0, Black towards row 7.
func (c Colour) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// HomeRow returns the back-rank row of this colour.
func (c Colour) HomeRow() int {
	if c == White {
		return BoardSize - 1
	}
	return 0
}

// Kind represents a chess piece type.
type Kind int

const (
	NoKind Kind = iota // Absent piece (empty square, no capture, no promotion)
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// IsMinor returns true for bishops and knights.
func (k Kind) IsMinor() bool {
	return k == Bishop || k == Knight
}

// KindFromLetter converts a piece letter (either case) to a Kind.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoKind
	}
}

// PromotionKinds lists the kinds a pawn may promote to, in prompt order.
var PromotionKinds = []Kind{Queen, Rook, Bishop, Knight}

// MoveClass categorizes different types of chess moves.
type MoveClass int

const (
	NormalMove MoveClass = iota
	KingsideCastle
	QueensideCastle
	EnPassant
	Promotion
)

// String returns the string representation of a move class.
func (c MoveClass) String() string {
	switch c {
	case NormalMove:
		return "normal"
	case KingsideCastle:
		return "kingside-castle"
	case QueensideCastle:
		return "queenside-castle"
	case EnPassant:
		return "en-passant"
	case Promotion:
		return "promotion"
	default:
		return "unknown"
	}
}

// Outcome is the result of evaluating a position for game termination.
type Outcome int

const (
	None Outcome = iota
	Checkmate
	Stalemate
	InsufficientMaterial
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	case InsufficientMaterial:
		return "Draw by insufficient material"
	default:
		return "None"
	}
}

// IsDraw returns true for the drawn outcomes.
func (o Outcome) IsDraw() bool {
	return o == Stalemate || o == InsufficientMaterial
}

// BoardSize is the number of rows and columns of the board.
const BoardSize = 8
