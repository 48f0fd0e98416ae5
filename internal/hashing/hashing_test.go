package hashing

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func play(t *testing.T, moves ...string) *engine.Game {
	t.Helper()
	g := engine.NewGame()
	for _, m := range moves {
		ok, err := g.MovePiece(chess.MustParseSquare(m[:2]), chess.MustParseSquare(m[2:]))
		if err != nil || !ok {
			t.Fatalf("MovePiece(%s) = %v, %v", m, ok, err)
		}
	}
	return g
}

func TestZobristHashConsistency(t *testing.T) {
	board1 := chess.NewInitialBoard()
	board2 := chess.NewInitialBoard()

	hash1 := GenerateZobristHash(board1, chess.White)
	hash2 := GenerateZobristHash(board2, chess.White)
	if hash1 != hash2 {
		t.Errorf("Identical boards produced different hashes: %x != %x", hash1, hash2)
	}
}

func TestZobristHashDifferentPositions(t *testing.T) {
	tests := []struct {
		name string
		a, b *engine.Game
	}{
		{"pawn moved", play(t), play(t, "e2e4")},
		{"knight developed", play(t, "g1f3"), play(t, "b1c3")},
		// Same squares; only the kings' moved flags differ.
		{"castling rights", play(t, "e2e4", "e7e5", "g1f3", "g8f6", "f3g1", "f6g8"), play(t, "e2e4", "e7e5", "e1e2", "e8e7", "e2e1", "e7e8")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hashA := GenerateZobristHash(tt.a.Board(), tt.a.ToMove())
			hashB := GenerateZobristHash(tt.b.Board(), tt.b.ToMove())
			if hashA == hashB {
				t.Errorf("Different positions produced the same hash %x", hashA)
			}
		})
	}
}

func TestZobristHashSideToMove(t *testing.T) {
	board := chess.NewInitialBoard()
	if GenerateZobristHash(board, chess.White) == GenerateZobristHash(board, chess.Black) {
		t.Error("Side to move does not affect the hash")
	}
}

func TestZobristHashTransposition(t *testing.T) {
	a := play(t, "g1f3", "g8f6", "b1c3")
	b := play(t, "b1c3", "g8f6", "g1f3")

	if GenerateZobristHash(a.Board(), a.ToMove()) != GenerateZobristHash(b.Board(), b.ToMove()) {
		t.Error("Transposed move orders produced different hashes")
	}
}

func TestWeakHash(t *testing.T) {
	initial := WeakHash(chess.NewInitialBoard())
	if got := WeakHash(play(t, "e2e4", "d7d5").Board()); got != initial {
		t.Errorf("WeakHash changed without a capture: %x != %x", got, initial)
	}
	if got := WeakHash(play(t, "e2e4", "d7d5", "e4d5").Board()); got == initial {
		t.Error("WeakHash unchanged after a capture")
	}

	kk := testutil.MustParsePlacement(t, "4k3/8/8/8/8/8/8/4K3")
	kkn := testutil.MustParsePlacement(t, "4k3/8/8/8/8/8/8/4KN2")
	if WeakHash(kk) == WeakHash(kkn) {
		t.Error("WeakHash ignores a knight")
	}
}

func TestDuplicateDetector(t *testing.T) {
	d := NewDuplicateDetector(false)

	if _, dup := d.CheckAndAdd("a.json", play(t, "e2e4", "e7e5")); dup {
		t.Error("First game reported as duplicate")
	}
	if _, dup := d.CheckAndAdd("b.json", play(t, "d2d4")); dup {
		t.Error("Different game reported as duplicate")
	}

	first, dup := d.CheckAndAdd("c.json", play(t, "e2e4", "e7e5"))
	if !dup {
		t.Fatal("Same position not reported as duplicate")
	}
	if first.Source != "a.json" {
		t.Errorf("Duplicate of %q; want a.json", first.Source)
	}

	if d.DuplicateCount() != 1 {
		t.Errorf("DuplicateCount() = %d; want 1", d.DuplicateCount())
	}
	if d.UniqueCount() != 2 {
		t.Errorf("UniqueCount() = %d; want 2", d.UniqueCount())
	}

	d.Reset()
	if d.DuplicateCount() != 0 || d.UniqueCount() != 0 {
		t.Error("Reset() did not clear the detector")
	}
}

func TestDuplicateDetector_ExactMatch(t *testing.T) {
	// Both reach the initial position, the second after four plies.
	short := play(t)
	long := play(t, "g1f3", "g8f6", "f3g1", "f6g8")

	loose := NewDuplicateDetector(false)
	loose.CheckAndAdd("short", short)
	if _, dup := loose.CheckAndAdd("long", long); !dup {
		t.Error("Loose matching should ignore the move count")
	}

	exact := NewDuplicateDetector(true)
	exact.CheckAndAdd("short", short)
	if _, dup := exact.CheckAndAdd("long", long); dup {
		t.Error("Exact matching should compare the move count")
	}
}

func BenchmarkGenerateZobristHash(b *testing.B) {
	board := chess.NewInitialBoard()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GenerateZobristHash(board, chess.White)
	}
}
