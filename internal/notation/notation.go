// Package notation converts between algebraic square names ("e2") and
// board positions. File a is column 0; rank 1 is row 7.
package notation

import (
	"strings"

	"github.com/lgbarn/chess-movegen-go/internal/chess"
	"github.com/lgbarn/chess-movegen-go/internal/errors"
)

// ParseSquare parses a square name such as "e2" or "E2".
func ParseSquare(name string) (chess.Position, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	if len(s) != 2 {
		return chess.Position{}, &errors.ParseError{
			Err:      errors.ErrInvalidSquare,
			Input:    name,
			Expected: "file and rank",
		}
	}

	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' {
		return chess.Position{}, &errors.ParseError{
			Err:      errors.ErrInvalidSquare,
			Input:    name,
			Column:   1,
			Expected: "file a-h",
			Got:      string(file),
		}
	}
	if rank < '1' || rank > '8' {
		return chess.Position{}, &errors.ParseError{
			Err:      errors.ErrInvalidSquare,
			Input:    name,
			Column:   2,
			Expected: "rank 1-8",
			Got:      string(rank),
		}
	}

	return sq(int(file-'a'), int(rank-'0')), nil
}

// MustSquare is like ParseSquare but panics on a malformed name.
// It is meant for constants and tests.
func MustSquare(name string) chess.Position {
	pos, err := ParseSquare(name)
	if err != nil {
		panic(err)
	}
	return pos
}

// SquareName returns the algebraic name of an on-board position, or the
// raw "(row,col)" form for an off-board one.
func SquareName(pos chess.Position) string {
	if pos.OffBoard() {
		return pos.String()
	}
	file := byte('a' + pos.Col)
	rank := byte('0' + chess.BoardSize - pos.Row)
	return string([]byte{file, rank})
}

// SquareNames converts a list of positions to their names.
func SquareNames(positions []chess.Position) []string {
	names := make([]string, len(positions))
	for i, pos := range positions {
		names[i] = SquareName(pos)
	}
	return names
}
