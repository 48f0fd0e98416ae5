package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// sq converts an algebraic square name for test tables.
func sq(s string) chess.Position {
	return chess.MustParseSquare(s)
}

// newGameFromPlacement creates a game with the given FEN placement and side
// to move and an empty history.
func newGameFromPlacement(t *testing.T, placement string, toMove chess.Colour, opts ...Option) *Game {
	t.Helper()
	g := NewGame(opts...)
	board := testutil.MustParsePlacement(t, placement)
	if err := g.Restore(State{Board: board, ToMove: toMove}); err != nil {
		t.Fatalf("Restore(%q): %v", placement, err)
	}
	return g
}

// play applies moves in long algebraic form ("e2e4") and fails the test if
// any is refused.
func play(t *testing.T, g *Game, moves ...string) {
	t.Helper()
	for _, m := range moves {
		ok, err := g.MovePiece(sq(m[:2]), sq(m[2:4]))
		if err != nil {
			t.Fatalf("MovePiece(%s): %v", m, err)
		}
		if !ok {
			t.Fatalf("MovePiece(%s) refused\n%s", m, testutil.Placement(g.Board()))
		}
	}
}

// snapshotOf captures the observable state a refused move must not change.
type snapshotOf struct {
	Placement string
	ToMove    chess.Colour
	Plies     int
	Kings     [2]chess.Position
	Over      bool
}

func observe(g *Game) snapshotOf {
	return snapshotOf{
		Placement: testutil.Placement(g.Board()),
		ToMove:    g.ToMove(),
		Plies:     g.PlyCount(),
		Kings:     [2]chess.Position{g.KingPosition(chess.White), g.KingPosition(chess.Black)},
		Over:      g.IsGameOver(),
	}
}
