package testutil

import (
	"testing"
	"unicode"

	"github.com/lgbarn/chess-movegen-go/internal/chess"
	"github.com/lgbarn/chess-movegen-go/internal/notation"
)

// ParsePlacement parses a placement such as "Ke1" (White king on e1) or
// "pd5" (Black pawn on d5). The letter case gives the colour, as in FEN.
func ParsePlacement(s string) (chess.Piece, bool) {
	if len(s) != 3 {
		return chess.Piece{}, false
	}
	var kind chess.PieceType
	switch unicode.ToUpper(rune(s[0])) {
	case 'K':
		kind = chess.King
	case 'Q':
		kind = chess.Queen
	case 'R':
		kind = chess.Rook
	case 'B':
		kind = chess.Bishop
	case 'N':
		kind = chess.Knight
	case 'P':
		kind = chess.Pawn
	default:
		return chess.Piece{}, false
	}
	pos, err := notation.ParseSquare(s[1:])
	if err != nil {
		return chess.Piece{}, false
	}
	colour := chess.White
	if unicode.IsLower(rune(s[0])) {
		colour = chess.Black
	}
	return chess.NewPiece(kind, colour, pos), true
}

// NewBoard builds a board holding only the given placements.
// It calls t.Fatal on a malformed placement.
func NewBoard(t *testing.T, placements ...string) *chess.Board {
	t.Helper()
	b := chess.NewBoard()
	for _, s := range placements {
		p, ok := ParsePlacement(s)
		if !ok {
			t.Fatalf("bad placement %q", s)
		}
		if err := b.Place(p); err != nil {
			t.Fatalf("placing %q: %v", s, err)
		}
	}
	return b
}

// PieceAt returns the piece on the named square, calling t.Fatal if the
// square is empty.
func PieceAt(t *testing.T, b *chess.Board, square string) chess.Piece {
	t.Helper()
	p, ok := b.Get(notation.MustSquare(square))
	if !ok {
		t.Fatalf("no piece on %s", square)
	}
	return p
}
