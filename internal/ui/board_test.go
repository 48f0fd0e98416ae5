package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func sq(s string) chess.Position {
	return chess.MustParseSquare(s)
}

func newBoard(t *testing.T) *BoardUI {
	t.Helper()
	return NewBoardUI(engine.NewGame(), config.NewConfig())
}

// click selects from and then activates to.
func click(b *BoardUI, squares ...string) {
	for _, s := range squares {
		b.Activate(sq(s))
	}
}

func TestSquareAt(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want string
		ok   bool
	}{
		{"a8 left column", labelWidth, 0, "a8", true},
		{"a8 right column", labelWidth + 1, 0, "a8", true},
		{"h1", labelWidth + 7*squareWidth + 1, 7, "h1", true},
		{"e4", labelWidth + 4*squareWidth, 4, "e4", true},
		{"rank label", 0, 3, "", false},
		{"file label row", labelWidth, 8, "", false},
		{"right of board", labelWidth + 8*squareWidth, 0, "", false},
		{"above board", labelWidth, -1, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := squareAt(tt.x, tt.y)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, sq(tt.want), got)
			}
		})
	}
}

func TestBoardUI_SquareAtUsesBoxOrigin(t *testing.T) {
	b := newBoard(t)
	b.Box.SetRect(10, 5, 20, 10)

	pos, ok := b.SquareAt(10+labelWidth+4*squareWidth, 5+6)
	require.True(t, ok)
	assert.Equal(t, sq("e2"), pos)

	_, ok = b.SquareAt(0, 0)
	assert.False(t, ok)
}

func TestBoardUI_MoveCursor(t *testing.T) {
	b := newBoard(t)
	require.Equal(t, sq("e2"), b.Cursor())

	b.MoveCursor(-1, 0)
	assert.Equal(t, sq("e3"), b.Cursor())

	for i := 0; i < 10; i++ {
		b.MoveCursor(0, 1)
	}
	assert.Equal(t, sq("h3"), b.Cursor(), "cursor stays on the board")
}

func TestBoardUI_SelectThenMove(t *testing.T) {
	b := newBoard(t)
	changes := 0
	b.OnChange = func() { changes++ }

	b.Activate(sq("e2"))
	assert.Equal(t, sq("e2"), b.Selected())
	assert.ElementsMatch(t, []chess.Position{sq("e3"), sq("e4")}, b.Targets())

	b.Activate(sq("e4"))
	assert.Equal(t, chess.OffBoard, b.Selected())
	assert.Empty(t, b.Targets())
	assert.Equal(t, chess.Black, b.Game().ToMove())
	assert.True(t, b.Game().Board().At(sq("e4")).Is(chess.White, chess.Pawn))
	assert.Equal(t, 2, changes)
}

func TestBoardUI_Selection(t *testing.T) {
	tests := []struct {
		name         string
		clicks       []string
		wantSelected chess.Position
		wantMessage  string
	}{
		{"empty square", []string{"e4"}, chess.OffBoard, "Select a White piece."},
		{"opponent piece", []string{"e7"}, chess.OffBoard, "Select a White piece."},
		{"same square twice deselects", []string{"g1", "g1"}, chess.OffBoard, ""},
		{"reselect own piece", []string{"g1", "b1"}, sq("b1"), ""},
		{"illegal move", []string{"e2", "e5"}, chess.OffBoard, "e2e5 is not a legal move."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBoard(t)
			click(b, tt.clicks...)
			assert.Equal(t, tt.wantSelected, b.Selected())
			assert.Equal(t, tt.wantMessage, b.Message())
			assert.Equal(t, 0, b.Game().PlyCount())
		})
	}
}

func TestBoardUI_Promotion(t *testing.T) {
	g := engine.NewGame()
	board := testutil.MustParsePlacement(t, "7k/P7/8/8/8/8/8/4K3")
	require.NoError(t, g.Restore(engine.State{Board: board, ToMove: chess.White}))

	b := NewBoardUI(g, config.NewConfig())
	prompts := 0
	b.OnPromotion = func() { prompts++ }

	click(b, "a7", "a8")
	assert.Equal(t, 1, prompts)
	assert.Contains(t, b.Status(), "Choose a piece for the pawn on a8")

	// Clicking elsewhere while the choice is pending prompts again.
	click(b, "e1")
	assert.Equal(t, 2, prompts)
	assert.Equal(t, chess.White, g.ToMove())

	require.NoError(t, b.Promote(chess.Knight))
	assert.True(t, g.Board().At(sq("a8")).Is(chess.White, chess.Knight))
	assert.Equal(t, chess.Black, g.ToMove())

	assert.Error(t, b.Promote(chess.Queen), "no promotion pending")
}

func TestBoardUI_Status(t *testing.T) {
	tests := []struct {
		name  string
		moves []string
		want  []string
	}{
		{"start", nil, []string{"White to move."}},
		{"check", []string{"e2e4", "f7f6", "d1h5"}, []string{"Black to move. Check!", "Last move: White Queen moved from d1 to h5"}},
		{"checkmate", []string{"f2f3", "e7e5", "g2g4", "d8h4"}, []string{"Checkmate! Black wins."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBoard(t)
			for _, m := range tt.moves {
				click(b, m[:2], m[2:])
			}
			status := b.Status()
			for _, s := range tt.want {
				assert.Contains(t, status, s)
			}
		})
	}
}

func TestBoardUI_GameOverRefusesInput(t *testing.T) {
	b := newBoard(t)
	for _, m := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		click(b, m[:2], m[2:])
	}
	require.True(t, b.Game().IsGameOver())

	click(b, "a2")
	assert.Equal(t, chess.OffBoard, b.Selected())
	assert.Contains(t, b.Message(), "game is over")

	b.NewGame()
	assert.False(t, b.Game().IsGameOver())
	assert.Equal(t, 0, b.Game().PlyCount())
}

func TestBoardUI_Draw(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(40, 12)

	b := newBoard(t)
	b.Box.SetRect(0, 0, labelWidth+chess.BoardSize*squareWidth, chess.BoardSize+1)
	b.Box.Draw(screen)

	cell := func(x, y int) rune {
		r, _, _, _ := screen.GetContent(x, y)
		return r
	}
	assert.Equal(t, '♔', cell(labelWidth+4*squareWidth, 7), "white king on e1")
	assert.Equal(t, '♜', cell(labelWidth, 0), "black rook on a8")
	assert.Equal(t, '8', cell(0, 0))
	assert.Equal(t, 'h', cell(labelWidth+7*squareWidth, 8))

	_, _, style, _ := screen.GetContent(labelWidth+4*squareWidth, 6)
	_, bg, _ := style.Decompose()
	assert.Equal(t, tcell.PaletteColor(config.DefaultTheme().Colors.Cursor), bg, "cursor on e2")
}
