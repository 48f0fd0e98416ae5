package config

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Colors are terminal colour numbers (0-255) used by the board view.
type Colors struct {
	Light       int `json:"light"`
	Dark        int `json:"dark"`
	WhitePiece  int `json:"white_piece"`
	BlackPiece  int `json:"black_piece"`
	Cursor      int `json:"cursor"`
	Selected    int `json:"selected"`
	Target      int `json:"target"`
	LastMove    int `json:"last_move"`
	CheckSquare int `json:"check"`
}

// Glyphs are the symbols drawn for each piece, in the order pawn, knight,
// bishop, rook, queen, king.
type Glyphs struct {
	White string `json:"white"`
	Black string `json:"black"`
}

// Theme holds settings related to drawing the board.
type Theme struct {
	// ShowCoordinates draws rank and file labels around the board.
	ShowCoordinates bool `json:"show_coordinates"`

	// HighlightTargets marks the legal destinations of the selected piece.
	HighlightTargets bool `json:"highlight_targets"`

	Colors Colors `json:"colors"`
	Glyphs Glyphs `json:"glyphs"`
}

// UnicodeGlyphs draws pieces with the Unicode chess symbols.
var UnicodeGlyphs = Glyphs{White: "♙♘♗♖♕♔", Black: "♟♞♝♜♛♚"}

// LetterGlyphs draws pieces with their letters, uppercase for White.
var LetterGlyphs = Glyphs{White: "PNBRQK", Black: "pnbrqk"}

// DefaultTheme returns the theme used when no config file overrides it.
func DefaultTheme() Theme {
	return Theme{
		ShowCoordinates:  true,
		HighlightTargets: true,
		Colors: Colors{
			Light:       180,
			Dark:        94,
			WhitePiece:  231,
			BlackPiece:  16,
			Cursor:      33,
			Selected:    71,
			Target:      107,
			LastMove:    143,
			CheckSquare: 160,
		},
		Glyphs: UnicodeGlyphs,
	}
}

// Glyph returns the symbol for a piece of the given kind and colour.
func (t Theme) Glyph(kind chess.Kind, colour chess.Colour) rune {
	set := t.Glyphs.White
	if colour == chess.Black {
		set = t.Glyphs.Black
	}
	runes := []rune(set)
	i := int(kind) - int(chess.Pawn)
	if i < 0 || i >= len(runes) {
		return '?'
	}
	return runes[i]
}

// Validate rejects glyph sets of the wrong length or containing control
// characters, and colours outside the 256-colour palette.
func (t Theme) Validate() error {
	for _, set := range []string{t.Glyphs.White, t.Glyphs.Black} {
		runes := []rune(set)
		if len(runes) != 6 {
			return errors.Wrapf(errors.ErrInvalidConfig, "glyph set %q must have 6 symbols", set)
		}
		for _, r := range runes {
			if r < 32 || (r >= 127 && r <= 159) {
				return errors.Wrap(errors.ErrInvalidConfig, "unicode characters 1-31 and 127-159 are not allowed")
			}
		}
	}

	c := t.Colors
	for _, v := range []int{c.Light, c.Dark, c.WhitePiece, c.BlackPiece, c.Cursor, c.Selected, c.Target, c.LastMove, c.CheckSquare} {
		if v < 0 || v > 255 {
			return errors.Wrapf(errors.ErrInvalidConfig, "colour %d not in 0..255", v)
		}
	}
	return nil
}
