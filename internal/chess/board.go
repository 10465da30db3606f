package chess

import (
	"fmt"

	"github.com/lgbarn/chess-movegen-go/internal/errors"
)

// square is one cell of the grid. The cell owns its piece by value.
type square struct {
	piece    Piece
	occupied bool
}

// Board is an 8x8 grid of optional pieces, indexed [row][col].
// A piece stored in a cell always records that cell as its position.
type Board struct {
	squares  [BoardSize][BoardSize]square
	captured []Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewStartingBoard creates a board set up in the standard starting position.
func NewStartingBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
// White occupies rows 6 and 7, Black rows 0 and 1.
func (b *Board) SetupInitialPosition() {
	*b = Board{}

	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.put(NewPiece(backRank[col], White, Position{WhiteBackRow, col}))
		b.put(NewPiece(Pawn, White, Position{WhitePawnRow, col}))
		b.put(NewPiece(Pawn, Black, Position{BlackPawnRow, col}))
		b.put(NewPiece(backRank[col], Black, Position{BlackBackRow, col}))
	}
}

// Get returns the piece at pos. Off-board positions report no piece.
func (b *Board) Get(pos Position) (Piece, bool) {
	if pos.OffBoard() {
		return Piece{}, false
	}
	sq := b.squares[pos.Row][pos.Col]
	return sq.piece, sq.occupied
}

// HasPiece reports whether a piece stands on pos.
func (b *Board) HasPiece(pos Position) bool {
	_, ok := b.Get(pos)
	return ok
}

// HasNoPiece reports whether pos is empty or off the board.
func (b *Board) HasNoPiece(pos Position) bool {
	return !b.HasPiece(pos)
}

// HasEnemyPiece reports whether pos holds a piece of the opposite colour to ally.
func (b *Board) HasEnemyPiece(pos Position, ally Colour) bool {
	p, ok := b.Get(pos)
	return ok && p.Colour() == ally.Opposite()
}

// HasFriendlyPiece reports whether pos holds a piece of colour ally.
func (b *Board) HasFriendlyPiece(pos Position, ally Colour) bool {
	p, ok := b.Get(pos)
	return ok && p.Colour() == ally
}

// Place puts a live piece on the square it records, replacing any occupant.
func (b *Board) Place(p Piece) error {
	pos, err := p.Position()
	if err != nil {
		return err
	}
	if pos.OffBoard() {
		return fmt.Errorf("place %s at %v: %w", p.Name(), pos, errors.ErrInvalidSquare)
	}
	b.put(p)
	return nil
}

func (b *Board) put(p Piece) {
	b.squares[p.pos.Row][p.pos.Col] = square{piece: p, occupied: true}
}

// Remove clears pos. Off-board positions are ignored.
func (b *Board) Remove(pos Position) {
	if pos.OffBoard() {
		return
	}
	b.squares[pos.Row][pos.Col] = square{}
}

// RecordCapture marks p captured and adds it to the captured list.
func (b *Board) RecordCapture(p Piece) {
	p.SetCaptured()
	b.captured = append(b.captured, p)
}

// Captured returns the pieces taken so far, in capture order.
func (b *Board) Captured() []Piece {
	out := make([]Piece, len(b.captured))
	copy(out, b.captured)
	return out
}

// State returns every piece on the board in row-major scan order.
func (b *Board) State() []Piece {
	var pieces []Piece
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if sq := b.squares[row][col]; sq.occupied {
				pieces = append(pieces, sq.piece)
			}
		}
	}
	return pieces
}

// Count returns the number of pieces on the board.
func (b *Board) Count() int {
	n := 0
	for row := range b.squares {
		for col := range b.squares[row] {
			if b.squares[row][col].occupied {
				n++
			}
		}
	}
	return n
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{squares: b.squares}
	if len(b.captured) > 0 {
		newBoard.captured = append([]Piece(nil), b.captured...)
	}
	return newBoard
}

// Equal reports whether both boards hold the same pieces on the same
// squares and the same captured list.
func (b *Board) Equal(other *Board) bool {
	if b == nil || other == nil {
		return b == other
	}
	if b.squares != other.squares || len(b.captured) != len(other.captured) {
		return false
	}
	for i := range b.captured {
		if b.captured[i] != other.captured[i] {
			return false
		}
	}
	return true
}
