// Package chess provides the core board model: coordinates, pieces and the
// occupancy grid.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PieceType represents the kind of a chess piece.
type PieceType int

const (
	Pawn PieceType = iota
	Rook
	Knight
	Bishop
	King
	Queen
)

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"Pawn", "Rook", "Knight", "Bishop", "King", "Queen"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p PieceType) Letter() byte {
	letters := []byte{'P', 'R', 'N', 'B', 'K', 'Q'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// Direction is one of the eight rays a sliding piece can travel along.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
	NE
	NW
	SE
	SW
)

// directionDeltas holds the (row, col) unit step for each direction.
// Up is towards row 7.
var directionDeltas = [...][2]int{
	Up:    {1, 0},
	Down:  {-1, 0},
	Left:  {0, -1},
	Right: {0, 1},
	NE:    {1, 1},
	NW:    {1, -1},
	SE:    {-1, 1},
	SW:    {-1, -1},
}

// Delta returns the row and column step for the direction.
func (d Direction) Delta() (dRow, dCol int) {
	step := directionDeltas[d]
	return step[0], step[1]
}

// IsDiagonal reports whether the direction changes both row and column.
func (d Direction) IsDiagonal() bool {
	dRow, dCol := d.Delta()
	return dRow != 0 && dCol != 0
}

// String returns the short name of the direction.
func (d Direction) String() string {
	names := []string{"UP", "DOWN", "LEFT", "RIGHT", "NE", "NW", "SE", "SW"}
	if d >= 0 && int(d) < len(names) {
		return names[d]
	}
	return "?"
}

// Direction tables in the order move lists are generated.
var (
	Orthogonal = [4]Direction{Up, Down, Left, Right}
	Diagonal   = [4]Direction{NE, NW, SE, SW}
)

// BoardSize is the number of rows and columns on the board.
const BoardSize = 8

// Pawn start rows. White moves towards row 0, Black towards row 7.
const (
	WhitePawnRow = 6
	BlackPawnRow = 1
	WhiteBackRow = 7
	BlackBackRow = 0
)
