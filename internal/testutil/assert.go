package testutil

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// cmpOptions lets cmp.Diff compare boards, whose squares are unexported.
var cmpOptions = []cmp.Option{
	cmp.Comparer(boardsEqual),
}

// boardsEqual compares kind, colour and moved flag square by square.
func boardsEqual(a, b *chess.Board) bool {
	if a == nil || b == nil {
		return a == b
	}
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			pa, pb := a.At(chess.Pos(row, col)), b.At(chess.Pos(row, col))
			if (pa == nil) != (pb == nil) {
				return false
			}
			if pa != nil && (pa.Kind != pb.Kind || pa.Colour != pb.Colour || pa.Moved != pb.Moved) {
				return false
			}
		}
	}
	return true
}

// fail reports a failure, prefixed by the optional caller message.
func fail(t testing.TB, msgAndArgs []interface{}, format string, args ...interface{}) {
	t.Helper()
	text := fmt.Sprintf(format, args...)
	if msg := formatMessage(msgAndArgs...); msg != "" {
		text = msg + ": " + text
	}
	t.Errorf("%s", text)
}

// AssertEqual compares got and want using cmp.Diff and reports differences.
// Boards compare by placement and moved flags.
func AssertEqual(t testing.TB, got, want interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpOptions...); diff != "" {
		fail(t, msgAndArgs, "mismatch (-want +got):\n%s", diff)
	}
}

// AssertNoError fails if err is not nil.
func AssertNoError(t testing.TB, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err != nil {
		fail(t, msgAndArgs, "unexpected error: %v", err)
	}
}

// AssertError fails if err is nil.
func AssertError(t testing.TB, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err == nil {
		fail(t, msgAndArgs, "expected error but got nil")
	}
}

// AssertErrorIs fails unless errors.Is(err, target).
func AssertErrorIs(t testing.TB, err, target error, msgAndArgs ...interface{}) {
	t.Helper()
	if !stderrors.Is(err, target) {
		fail(t, msgAndArgs, "error %v is not %v", err, target)
	}
}

// AssertContains fails if substr is not found in got.
func AssertContains(t testing.TB, got, substr string, msgAndArgs ...interface{}) {
	t.Helper()
	if !strings.Contains(got, substr) {
		fail(t, msgAndArgs, "%q does not contain %q", got, substr)
	}
}

// AssertNotContains fails if substr is found in got.
func AssertNotContains(t testing.TB, got, substr string, msgAndArgs ...interface{}) {
	t.Helper()
	if strings.Contains(got, substr) {
		fail(t, msgAndArgs, "%q should not contain %q", got, substr)
	}
}

// AssertTrue fails if condition is false.
func AssertTrue(t testing.TB, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if !condition {
		fail(t, msgAndArgs, "expected true but got false")
	}
}

// AssertFalse fails if condition is true.
func AssertFalse(t testing.TB, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if condition {
		fail(t, msgAndArgs, "expected false but got true")
	}
}

// AssertPiece fails unless square holds a piece of the given colour and
// kind. Kind NoKind asserts the square is empty.
func AssertPiece(t testing.TB, board *chess.Board, square string, colour chess.Colour, kind chess.Kind, msgAndArgs ...interface{}) {
	t.Helper()
	got := board.At(chess.MustParseSquare(square))
	switch {
	case kind == chess.NoKind && got != nil:
		fail(t, msgAndArgs, "%s: want empty, got %v", square, got)
	case kind != chess.NoKind && !got.Is(colour, kind):
		fail(t, msgAndArgs, "%s: want %v %v, got %v", square, colour, kind, got)
	}
}

// AssertPlacement fails unless board's FEN piece placement equals want.
func AssertPlacement(t testing.TB, board *chess.Board, want string, msgAndArgs ...interface{}) {
	t.Helper()
	if got := Placement(board); got != want {
		fail(t, msgAndArgs, "placement\n got %s\nwant %s", got, want)
	}
}

// formatMessage formats optional message arguments: a single value, or a
// format string followed by its arguments.
func formatMessage(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	s, ok := msgAndArgs[0].(string)
	if !ok {
		return fmt.Sprintf("%v", msgAndArgs[0])
	}
	if len(msgAndArgs) == 1 {
		return s
	}
	return fmt.Sprintf(s, msgAndArgs[1:]...)
}
