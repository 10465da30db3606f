// Package engine generates pseudo-legal destinations for pieces and applies
// moves to a board.
package engine

import (
	"github.com/lgbarn/chess-movegen-go/internal/chess"
)

// Move is a source-destination square pair.
type Move struct {
	From chess.Position
	To   chess.Position
}

// knightOffsets are the (row, col) jumps in generation order.
var knightOffsets = [8][2]int{
	{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
	{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
}

// LegalMoves returns the pseudo-legal destinations of p on board.
//
// Order: pawns give [double push, push, left capture, right capture];
// sliding pieces follow their direction table, near to far along each ray;
// kings and knights follow their fixed offset tables. King safety is not
// considered. A captured piece yields ErrCapturedPieceAccess.
func LegalMoves(p chess.Piece, board *chess.Board) ([]chess.Position, error) {
	kind, err := p.Kind()
	if err != nil {
		return nil, err
	}
	from, _ := p.Position()
	ally := p.Colour()

	var result []chess.Position
	switch kind {
	case chess.Pawn:
		result = pawnMoves(result, board, from, ally)
	case chess.King:
		result = kingMoves(result, board, from, ally)
	case chess.Knight:
		result = knightMoves(result, board, from, ally)
	case chess.Rook:
		result = slidingMoves(result, board, from, ally, chess.Orthogonal[:])
	case chess.Bishop:
		result = slidingMoves(result, board, from, ally, chess.Diagonal[:])
	case chess.Queen:
		result = slidingMoves(result, board, from, ally, chess.Orthogonal[:])
		result = slidingMoves(result, board, from, ally, chess.Diagonal[:])
	}
	return result, nil
}

// IsLegalMove reports whether to is among p's legal destinations.
func IsLegalMove(p chess.Piece, board *chess.Board, to chess.Position) bool {
	moves, err := LegalMoves(p, board)
	if err != nil {
		return false
	}
	for _, m := range moves {
		if m == to {
			return true
		}
	}
	return false
}

// AllMoves returns every pseudo-legal move for colour, pieces taken in
// row-major order.
func AllMoves(board *chess.Board, colour chess.Colour) []Move {
	var moves []Move
	for _, p := range board.State() {
		if p.Colour() != colour {
			continue
		}
		from, _ := p.Position()
		targets, _ := LegalMoves(p, board)
		for _, to := range targets {
			moves = append(moves, Move{From: from, To: to})
		}
	}
	return moves
}

func kingMoves(result []chess.Position, board *chess.Board, from chess.Position, ally chess.Colour) []chess.Position {
	for _, to := range [...]chess.Position{
		from.NextAbove(),
		from.NextBelow(),
		from.NextLeft(),
		from.NextRight(),
		from.NextAbove().NextLeft(),
		from.NextAbove().NextRight(),
		from.NextBelow().NextLeft(),
		from.NextBelow().NextRight(),
	} {
		if to.OnBoard() && !board.HasFriendlyPiece(to, ally) {
			result = append(result, to)
		}
	}
	return result
}

func knightMoves(result []chess.Position, board *chess.Board, from chess.Position, ally chess.Colour) []chess.Position {
	for _, offset := range knightOffsets {
		to := chess.NewPosition(from.Row+offset[0], from.Col+offset[1])
		if to.OnBoard() && !board.HasFriendlyPiece(to, ally) {
			result = append(result, to)
		}
	}
	return result
}
