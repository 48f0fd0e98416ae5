package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// SVGOptions controls the SVG diagram.
type SVGOptions struct {
	SquareSize  int    // pixels per square
	Light       string // fill colours, any CSS colour
	Dark        string
	Highlight   string
	Coordinates bool // draw file letters and rank numbers in a margin

	// Marked squares are filled with Highlight, e.g. the last move.
	Marked []chess.Position

	Glyph Glyph
	Title string
}

// DefaultSVGOptions returns the options used by `chess -svg`.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		SquareSize:  45,
		Light:       "#f0d9b5",
		Dark:        "#b58863",
		Highlight:   "#cdd26a",
		Coordinates: true,
		Glyph:       Unicode,
	}
}

// Unicode draws pieces with the Unicode chess symbols.
func Unicode(kind chess.Kind, colour chess.Colour) rune {
	white := []rune("♙♘♗♖♕♔")
	black := []rune("♟♞♝♜♛♚")
	i := int(kind) - int(chess.Pawn)
	if i < 0 || i >= len(white) {
		return '?'
	}
	if colour == chess.Black {
		return black[i]
	}
	return white[i]
}

// WriteSVG writes an SVG diagram of the board to w.
func WriteSVG(w io.Writer, board *chess.Board, opts SVGOptions) error {
	if opts.SquareSize <= 0 {
		return fmt.Errorf("square size %d must be positive", opts.SquareSize)
	}
	if opts.Glyph == nil {
		opts.Glyph = Unicode
	}

	size := opts.SquareSize
	margin := 0
	if opts.Coordinates {
		margin = size / 2
	}
	side := margin + chess.BoardSize*size

	marked := make(map[chess.Position]bool, len(opts.Marked))
	for _, pos := range opts.Marked {
		marked[pos] = true
	}

	canvas := svg.New(w)
	canvas.Start(side, side+margin)
	if opts.Title != "" {
		canvas.Title(opts.Title)
	}

	fontSize := size * 4 / 5
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			pos := chess.Pos(row, col)
			x, y := margin+col*size, row*size

			fill := opts.Dark
			if pos.IsLight() {
				fill = opts.Light
			}
			if marked[pos] {
				fill = opts.Highlight
			}
			canvas.Rect(x, y, size, size, "fill:"+fill)

			if p := board.At(pos); p != nil {
				canvas.Text(x+size/2, y+size*3/4, string(opts.Glyph(p.Kind, p.Colour)),
					fmt.Sprintf("text-anchor:middle;font-size:%dpx", fontSize))
			}
		}
	}

	if opts.Coordinates {
		labelStyle := fmt.Sprintf("text-anchor:middle;font-size:%dpx;fill:#555", size/3)
		for i := 0; i < chess.BoardSize; i++ {
			canvas.Text(margin/2, i*size+size/2+size/8, string(rune('8'-i)), labelStyle)
			canvas.Text(margin+i*size+size/2, chess.BoardSize*size+margin*3/4, string(rune('a'+i)), labelStyle)
		}
	}

	canvas.End()
	return nil
}
