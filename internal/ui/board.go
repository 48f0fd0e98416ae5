// Package ui provides a tview board control for playing chess in the terminal.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Board layout inside the Box: a rank label column, then two screen
// columns per square.
const (
	labelWidth  = 2
	squareWidth = 2
)

// BoardUI draws a game and turns cursor keys and mouse clicks into moves.
// All methods must run on the tview event goroutine.
type BoardUI struct {
	Box  *tview.Box
	game *engine.Game
	cfg  *config.Config

	cursor   chess.Position
	selected chess.Position
	targets  []chess.Position
	message  string

	styles boardStyles

	// OnPromotion is called when a move leaves a pawn awaiting promotion.
	OnPromotion func()

	// OnChange is called after every state change so status views can refresh.
	OnChange func()
}

type boardStyles struct {
	light, dark, whitePiece, blackPiece        tcell.Color
	cursor, selected, target, lastMove, inCheck tcell.Color
}

// NewBoardUI creates a board control for g.
func NewBoardUI(g *engine.Game, c *config.Config) *BoardUI {
	b := &BoardUI{
		Box:      tview.NewBox(),
		game:     g,
		cursor:   chess.MustParseSquare("e2"),
		selected: chess.OffBoard,
	}
	b.SetConfig(c)
	b.Box.SetDrawFunc(b.draw)
	return b
}

// SetConfig applies the theme colours and glyphs.
func (b *BoardUI) SetConfig(c *config.Config) {
	colors := c.Theme.Colors
	b.styles = boardStyles{
		light:      tcell.PaletteColor(colors.Light),
		dark:       tcell.PaletteColor(colors.Dark),
		whitePiece: tcell.PaletteColor(colors.WhitePiece),
		blackPiece: tcell.PaletteColor(colors.BlackPiece),
		cursor:     tcell.PaletteColor(colors.Cursor),
		selected:   tcell.PaletteColor(colors.Selected),
		target:     tcell.PaletteColor(colors.Target),
		lastMove:   tcell.PaletteColor(colors.LastMove),
		inCheck:    tcell.PaletteColor(colors.CheckSquare),
	}
	b.cfg = c
}

// Game returns the game being shown.
func (b *BoardUI) Game() *engine.Game {
	return b.game
}

// Cursor returns the square under the keyboard cursor.
func (b *BoardUI) Cursor() chess.Position {
	return b.cursor
}

// Selected returns the selected square, or OffBoard.
func (b *BoardUI) Selected() chess.Position {
	return b.selected
}

// Targets returns the legal destinations of the selected piece.
func (b *BoardUI) Targets() []chess.Position {
	return b.targets
}

// Message returns the last user-facing notice, e.g. a refused move.
func (b *BoardUI) Message() string {
	return b.message
}

// MoveCursor moves the cursor by the given rows and columns, staying on
// the board.
func (b *BoardUI) MoveCursor(dRow, dCol int) {
	next := b.cursor.Offset(dRow, dCol)
	if next.IsValid() {
		b.cursor = next
	}
}

// SquareAt maps a screen cell to the square drawn there.
func (b *BoardUI) SquareAt(x, y int) (chess.Position, bool) {
	left, top, _, _ := b.Box.GetInnerRect()
	return squareAt(x-left, y-top)
}

// squareAt maps a cell relative to the board's origin to a square.
func squareAt(x, y int) (chess.Position, bool) {
	if x < labelWidth || y < 0 {
		return chess.OffBoard, false
	}
	pos := chess.Pos(y, (x-labelWidth)/squareWidth)
	if !pos.IsValid() {
		return chess.OffBoard, false
	}
	return pos, true
}

// ActivateCursor acts on the square under the cursor.
func (b *BoardUI) ActivateCursor() {
	b.Activate(b.cursor)
}

// Activate is the select-then-move handler shared by Enter and mouse
// clicks. The first activation selects a piece of the side to move; the
// second moves it, reselects another own piece, or deselects.
func (b *BoardUI) Activate(pos chess.Position) {
	defer b.changed()
	b.cursor = pos
	b.message = ""

	if b.game.IsGameOver() {
		b.message = "The game is over. Press n for a new game."
		return
	}
	if _, pending := b.game.PendingPromotion(); pending {
		b.promptPromotion()
		return
	}

	piece, err := b.game.GetPiece(pos)
	if err != nil {
		return
	}

	if b.selected == chess.OffBoard || piece != nil && piece.Colour == b.game.ToMove() {
		b.selectSquare(pos, piece)
		return
	}

	from := b.selected
	b.clearSelection()
	ok, err := b.game.MovePiece(from, pos)
	switch {
	case err != nil:
		b.message = err.Error()
	case !ok:
		b.message = fmt.Sprintf("%s%s is not a legal move.", from, pos)
	default:
		if _, pending := b.game.PendingPromotion(); pending {
			b.promptPromotion()
		}
	}
}

func (b *BoardUI) selectSquare(pos chess.Position, piece *chess.Piece) {
	if pos == b.selected {
		b.clearSelection()
		return
	}
	if piece == nil || piece.Colour != b.game.ToMove() {
		b.clearSelection()
		b.message = fmt.Sprintf("Select a %s piece.", b.game.ToMove())
		return
	}
	b.selected = pos
	b.targets = b.game.LegalTargets(pos)
}

func (b *BoardUI) clearSelection() {
	b.selected = chess.OffBoard
	b.targets = nil
}

// Deselect drops the current selection.
func (b *BoardUI) Deselect() {
	b.clearSelection()
	b.changed()
}

func (b *BoardUI) promptPromotion() {
	if b.OnPromotion != nil {
		b.OnPromotion()
	}
}

// Promote completes a pending promotion with the chosen kind.
func (b *BoardUI) Promote(kind chess.Kind) error {
	defer b.changed()
	if err := b.game.CompletePromotion(kind); err != nil {
		b.message = err.Error()
		return err
	}
	return nil
}

// NewGame resets the game to the starting position.
func (b *BoardUI) NewGame() {
	b.game.Reset()
	b.clearSelection()
	b.message = "New game."
	b.changed()
}

// Notify shows a message in the status panel.
func (b *BoardUI) Notify(msg string) {
	b.message = msg
	b.changed()
}

func (b *BoardUI) changed() {
	if b.OnChange != nil {
		b.OnChange()
	}
}

// Status describes the game for the status panel, using only the game's
// query methods.
func (b *BoardUI) Status() string {
	g := b.game
	var status string
	switch g.Outcome() {
	case chess.Checkmate:
		status = fmt.Sprintf("Checkmate! %s wins.", g.ToMove().Opposite())
	case chess.Stalemate:
		status = "Stalemate. The game is drawn."
	case chess.InsufficientMaterial:
		status = "Draw by insufficient material."
	default:
		if pos, ok := g.PendingPromotion(); ok {
			status = fmt.Sprintf("Choose a piece for the pawn on %s.", pos)
		} else {
			status = fmt.Sprintf("%s to move.", g.ToMove())
			if g.InCheck(g.ToMove()) {
				status += " Check!"
			}
		}
	}

	if m, ok := g.LastMove(); ok {
		status += "\nLast move: " + m.String()
	}
	if b.message != "" {
		status += "\n" + b.message
	}
	return status
}

func (b *BoardUI) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	board := b.game.Board()
	last, hasLast := b.game.LastMove()
	checked := chess.OffBoard
	if b.game.InCheck(b.game.ToMove()) {
		checked = b.game.KingPosition(b.game.ToMove())
	}

	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			pos := chess.Pos(row, col)

			bg := b.styles.dark
			if pos.IsLight() {
				bg = b.styles.light
			}
			switch {
			case pos == b.cursor:
				bg = b.styles.cursor
			case pos == b.selected:
				bg = b.styles.selected
			case pos == checked:
				bg = b.styles.inCheck
			case b.cfg.Theme.HighlightTargets && slices.Contains(b.targets, pos):
				bg = b.styles.target
			case hasLast && (pos == last.From || pos == last.To):
				bg = b.styles.lastMove
			}

			style := tcell.StyleDefault.Background(bg)
			r := ' '
			if p := board.At(pos); p != nil {
				fg := b.styles.whitePiece
				if p.Colour == chess.Black {
					fg = b.styles.blackPiece
				}
				style = style.Foreground(fg)
				r = b.cfg.Theme.Glyph(p.Kind, p.Colour)
			}
			cx := x + labelWidth + col*squareWidth
			screen.SetContent(cx, y+row, r, nil, style)
			screen.SetContent(cx+1, y+row, ' ', nil, style)
		}
	}

	if b.cfg.Theme.ShowCoordinates {
		for i := 0; i < chess.BoardSize; i++ {
			screen.SetContent(x, y+i, rune('8'-i), nil, tcell.StyleDefault)
			screen.SetContent(x+labelWidth+i*squareWidth, y+chess.BoardSize, rune('a'+i), nil, tcell.StyleDefault)
		}
	}
	return x, y, width, height
}
