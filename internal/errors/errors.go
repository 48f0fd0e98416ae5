// Package errors provides sentinel errors and error types for the chess engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrOutOfBounds indicates a position outside the 8x8 board.
	// It is a programming error, never produced by correctly bounded callers.
	ErrOutOfBounds = errors.New("position out of bounds")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidSquare indicates a malformed square name such as "z9".
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidPromotion indicates a promotion that cannot be completed.
	ErrInvalidPromotion = errors.New("invalid promotion")

	// ErrInvalidState indicates game state that breaks a board invariant.
	ErrInvalidState = errors.New("invalid game state")

	// ErrLoadFailure indicates a saved game could not be restored.
	ErrLoadFailure = errors.New("failed to load game state")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// PositionError reports an out-of-bounds coordinate passed to a board
// operation. It unwraps to ErrOutOfBounds.
type PositionError struct {
	Op  string // The operation attempted ("get", "set", "move")
	Row int
	Col int
}

// Error returns a formatted error message.
func (e *PositionError) Error() string {
	return fmt.Sprintf("%s (%d,%d): %v", e.Op, e.Row, e.Col, ErrOutOfBounds)
}

// Unwrap returns ErrOutOfBounds.
func (e *PositionError) Unwrap() error {
	return ErrOutOfBounds
}

// LoadError wraps a persistence read failure with the source it came from.
// It always matches ErrLoadFailure with errors.Is(), and also unwraps to the
// underlying cause.
type LoadError struct {
	Path string // Source file name (empty for streams)
	Err  error  // The underlying error
}

// Error returns a formatted error message including the source path.
func (e *LoadError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %v: %v", e.Path, ErrLoadFailure, e.Err)
	}
	return fmt.Sprintf("%v: %v", ErrLoadFailure, e.Err)
}

// Unwrap returns the underlying error.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrLoadFailure.
func (e *LoadError) Is(target error) bool {
	return target == ErrLoadFailure
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
