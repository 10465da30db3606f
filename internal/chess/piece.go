package chess

import (
	"fmt"
	"unicode"

	"github.com/lgbarn/chess-movegen-go/internal/errors"
)

// Piece is either a live piece (kind, colour, position) or a captured piece
// that keeps only its colour. The zero value is not meaningful; build pieces
// with NewPiece or Captured.
type Piece struct {
	kind     PieceType
	colour   Colour
	pos      Position
	captured bool
}

// NewPiece creates a live piece.
func NewPiece(kind PieceType, colour Colour, pos Position) Piece {
	return Piece{kind: kind, colour: colour, pos: pos}
}

// Captured creates a captured piece of the given colour.
func Captured(colour Colour) Piece {
	return Piece{colour: colour, captured: true}
}

// IsCaptured reports whether the piece has been captured.
func (p Piece) IsCaptured() bool {
	return p.captured
}

// Colour returns the piece colour. Captured pieces keep their colour.
func (p Piece) Colour() Colour {
	return p.colour
}

// Position returns the square the piece stands on.
func (p Piece) Position() (Position, error) {
	if p.captured {
		return Position{}, fmt.Errorf("%s piece: %w", p.colour, errors.ErrCapturedPieceAccess)
	}
	return p.pos, nil
}

// Kind returns the piece type.
func (p Piece) Kind() (PieceType, error) {
	if p.captured {
		return 0, fmt.Errorf("%s piece: %w", p.colour, errors.ErrCapturedPieceAccess)
	}
	return p.kind, nil
}

// Is reports whether p is a live piece of the given kind and colour.
func (p Piece) Is(kind PieceType, colour Colour) bool {
	return !p.captured && p.kind == kind && p.colour == colour
}

// SetCaptured moves the piece into the captured state. Capturing an already
// captured piece does nothing.
func (p *Piece) SetCaptured() {
	if p.captured {
		return
	}
	*p = Captured(p.colour)
}

// SetPosition records a new square for a live piece.
func (p *Piece) SetPosition(pos Position) error {
	if p.captured {
		return fmt.Errorf("set position %v: %w", pos, errors.ErrCapturedPieceAccess)
	}
	p.pos = pos
	return nil
}

// Name returns a description such as "White Knight" or "captured Black piece".
func (p Piece) Name() string {
	if p.captured {
		return "captured " + p.colour.String() + " piece"
	}
	return p.colour.String() + " " + p.kind.String()
}

// Letter returns the FEN letter for the piece: upper case for White,
// lower case for Black, 'x' once captured.
func (p Piece) Letter() byte {
	if p.captured {
		return 'x'
	}
	letter := p.kind.Letter()
	if p.colour == Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// String returns the FEN letter of the piece.
func (p Piece) String() string {
	return string(p.Letter())
}

// Equal reports whether two pieces are identical. It lets go-cmp compare
// pieces despite their unexported fields.
func (p Piece) Equal(other Piece) bool {
	return p == other
}
