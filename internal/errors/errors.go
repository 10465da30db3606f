// Package errors provides sentinel errors and error types for the move
// generator. It defines common error conditions and structured error types
// that preserve context while allowing error inspection with errors.Is() and
// errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrCapturedPieceAccess indicates a caller asked a captured piece for
	// its position or type. It is a programming error, not a user error.
	ErrCapturedPieceAccess = errors.New("captured piece has no position or type")

	// ErrIllegalMove indicates a destination outside the piece's legal moves.
	ErrIllegalMove = errors.New("illegal move")

	// ErrWrongSide indicates a move or query for a piece of the side not to move.
	ErrWrongSide = errors.New("piece belongs to the other side")

	// ErrEmptySquare indicates a square with no piece on it.
	ErrEmptySquare = errors.New("no piece on square")

	// ErrInvalidSquare indicates a malformed or off-board square name.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps a rejected move with the squares and side involved.
// It implements the error interface and supports unwrapping via errors.Is()
// and errors.As().
type MoveError struct {
	Err    error  // The underlying error
	Piece  string // Piece description, e.g. "White Pawn"
	From   string // Origin square (if known)
	To     string // Destination square (if known)
	Reason string // Extra detail (if any)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Piece != "" {
		parts = append(parts, e.Piece)
	}
	if e.From != "" && e.To != "" {
		parts = append(parts, fmt.Sprintf("%s -> %s", e.From, e.To))
	} else if e.To != "" {
		parts = append(parts, "-> "+e.To)
	}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	context := strings.Join(parts, ", ")

	switch {
	case e.Err != nil && context != "":
		return fmt.Sprintf("%s: %v", context, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case context != "":
		return context
	}
	return "move rejected"
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a parsing error with input location context.
// It's used for FEN and square-name parsing errors.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // The text being parsed
	Column   int    // Column number (1-based, 0 if unknown)
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Input != "" {
		loc := fmt.Sprintf("%q", e.Input)
		if e.Column > 0 {
			loc += fmt.Sprintf(":%d", e.Column)
		}
		parts = append(parts, loc)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
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

// Is reports whether any error in err's chain matches target.
// It re-exports errors.Is so callers need only this package.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
