package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"
)

// TestSentinelErrors verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrOutOfBounds", ErrOutOfBounds, ErrOutOfBounds},
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrInvalidSquare", ErrInvalidSquare, ErrInvalidSquare},
		{"ErrInvalidPromotion", ErrInvalidPromotion, ErrInvalidPromotion},
		{"ErrInvalidState", ErrInvalidState, ErrInvalidState},
		{"ErrLoadFailure", ErrLoadFailure, ErrLoadFailure},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("restoring game: %w", ErrInvalidState)

	if !errors.Is(wrapped, ErrInvalidState) {
		t.Errorf("errors.Is(wrapped, ErrInvalidState) = false, want true")
	}
	if errors.Is(wrapped, ErrLoadFailure) {
		t.Errorf("errors.Is(wrapped, ErrLoadFailure) = true, want false")
	}
}

// TestPositionError verifies the message and unwrapping of PositionError
func TestPositionError(t *testing.T) {
	err := &PositionError{Op: "get", Row: 8, Col: -1}

	msg := err.Error()
	for _, s := range []string{"get", "(8,-1)", "out of bounds"} {
		if !containsIgnoreCase(msg, s) {
			t.Errorf("PositionError.Error() = %q, should contain %q", msg, s)
		}
	}

	if !errors.Is(err, ErrOutOfBounds) {
		t.Error("errors.Is(err, ErrOutOfBounds) = false, want true")
	}

	wrapped := fmt.Errorf("line mode: %w", err)
	var extracted *PositionError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract PositionError")
	}
	if extracted.Row != 8 || extracted.Col != -1 {
		t.Errorf("extracted = %+v, want row 8 col -1", extracted)
	}
}

// TestLoadError verifies LoadError matches ErrLoadFailure and its cause
func TestLoadError(t *testing.T) {
	tests := []struct {
		name     string
		err      *LoadError
		cause    error
		contains []string
	}{
		{
			name:     "missing file",
			err:      &LoadError{Path: "/tmp/save.json", Err: fs.ErrNotExist},
			cause:    fs.ErrNotExist,
			contains: []string{"/tmp/save.json", "failed to load", "not exist"},
		},
		{
			name:     "invalid state from a stream",
			err:      &LoadError{Err: Wrap(ErrInvalidState, "two white kings")},
			cause:    ErrInvalidState,
			contains: []string{"failed to load", "two white kings"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, ErrLoadFailure) {
				t.Error("errors.Is(err, ErrLoadFailure) = false, want true")
			}
			if !errors.Is(tt.err, tt.cause) {
				t.Errorf("errors.Is(err, %v) = false, want true", tt.cause)
			}
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("LoadError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidPromotion, "no promotion pending")

	if !errors.Is(wrapped, ErrInvalidPromotion) {
		t.Error("Wrap should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "no promotion pending") {
		t.Errorf("Wrap should include context, got %q", msg)
	}

	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should be nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrIllegalMove, "move %d: %s", 15, "e2e5")

	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("Wrapf should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "move 15: e2e5") {
		t.Errorf("Wrapf should include formatted context, got %q", msg)
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
