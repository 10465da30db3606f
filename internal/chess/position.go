package chess

import "fmt"

// Position is a zero-based (row, col) board coordinate.
// Arithmetic on a Position is never clamped, so a Position may lie off the
// board; callers must check OnBoard before using one to index the grid.
type Position struct {
	Row int
	Col int
}

// NewPosition creates a position from a zero-based row and column.
func NewPosition(row, col int) Position {
	return Position{Row: row, Col: col}
}

// String returns the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// OnBoard reports whether both coordinates lie in [0,7].
func (p Position) OnBoard() bool {
	return !p.OffBoard()
}

// OffBoard reports whether either coordinate lies outside [0,7].
func (p Position) OffBoard() bool {
	return p.Row < 0 || p.Row >= BoardSize || p.Col < 0 || p.Col >= BoardSize
}

// Less orders positions row-major.
func (p Position) Less(other Position) bool {
	if p.Row != other.Row {
		return p.Row < other.Row
	}
	return p.Col < other.Col
}

// IsDiagonalTo reports whether |Δrow| == |Δcol|. A position is diagonal to itself.
func (p Position) IsDiagonalTo(other Position) bool {
	return abs(p.Col-other.Col) == abs(p.Row-other.Row)
}

// IsOrthogonalTo reports whether the positions share a row or a column.
func (p Position) IsOrthogonalTo(other Position) bool {
	return p.Row == other.Row || p.Col == other.Col
}

// IsAdjacentTo reports whether other is one king step away.
func (p Position) IsAdjacentTo(other Position) bool {
	switch {
	case p.IsOrthogonalTo(other):
		return p.orthogonalDistance(other) == 1
	case p.IsDiagonalTo(other):
		return p.diagonalDistance(other) == 1
	default:
		return false
	}
}

// IsKnightMoveFrom reports whether other is a knight's jump away.
func (p Position) IsKnightMoveFrom(other Position) bool {
	dr, dc := abs(p.Row-other.Row), abs(p.Col-other.Col)
	return (dr == 2 && dc == 1) || (dr == 1 && dc == 2)
}

func (p Position) diagonalDistance(other Position) int {
	return abs(p.Col - other.Col)
}

func (p Position) orthogonalDistance(other Position) int {
	return abs(p.Col-other.Col) + abs(p.Row-other.Row)
}

// NextAbove returns the position one row up (row+1). It is not bounds checked.
func (p Position) NextAbove() Position {
	return Position{Row: p.Row + 1, Col: p.Col}
}

// NextBelow returns the position one row down (row-1). It is not bounds checked.
func (p Position) NextBelow() Position {
	return Position{Row: p.Row - 1, Col: p.Col}
}

// NextLeft returns the position one column left. It is not bounds checked.
func (p Position) NextLeft() Position {
	return Position{Row: p.Row, Col: p.Col - 1}
}

// NextRight returns the position one column right. It is not bounds checked.
func (p Position) NextRight() Position {
	return Position{Row: p.Row, Col: p.Col + 1}
}

// Step returns the position one square along d. It is not bounds checked.
func (p Position) Step(d Direction) Position {
	dRow, dCol := d.Delta()
	return Position{Row: p.Row + dRow, Col: p.Col + dCol}
}

// PawnUp returns the next square forward for a pawn of the given colour.
// White pawns advance towards row 0, Black pawns towards row 7.
func (p Position) PawnUp(c Colour) Position {
	if c == White {
		return p.NextBelow()
	}
	return p.NextAbove()
}

// PawnBack returns the next square backward for a pawn of the given colour.
func (p Position) PawnBack(c Colour) Position {
	return p.PawnUp(c.Opposite())
}

// IsStartingPawn reports whether p is on the pawn start row for c.
func (p Position) IsStartingPawn(c Colour) bool {
	if c == White {
		return p.Row == WhitePawnRow
	}
	return p.Row == BlackPawnRow
}

// DiagonalsTo returns the squares from p (exclusive) to to (inclusive)
// along their shared diagonal, nearest first. It returns nil when the two
// positions are not diagonal to each other.
func (p Position) DiagonalsTo(to Position) []Position {
	if !p.IsDiagonalTo(to) {
		return nil
	}
	return p.walk(sign(to.Row-p.Row), sign(to.Col-p.Col), p.diagonalDistance(to))
}

// OrthogonalsTo returns the squares from p (exclusive) to to (inclusive)
// along their shared row or column, nearest first. It returns nil when the
// two positions share neither.
func (p Position) OrthogonalsTo(to Position) []Position {
	if !p.IsOrthogonalTo(to) {
		return nil
	}
	return p.walk(sign(to.Row-p.Row), sign(to.Col-p.Col), p.orthogonalDistance(to))
}

func (p Position) walk(dRow, dCol, n int) []Position {
	if n == 0 {
		return nil
	}
	result := make([]Position, 0, n)
	acc := p
	for i := 0; i < n; i++ {
		acc = Position{Row: acc.Row + dRow, Col: acc.Col + dCol}
		result = append(result, acc)
	}
	return result
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
