package engine

import "github.com/lgbarn/chess-movegen-go/internal/chess"

// MaxTravel returns the furthest square a sliding piece of colour ally can
// reach from `from` along dir. Empty squares extend the reach; the first
// occupied square stops it and is included only when it holds an enemy
// piece. The board edge also stops the walk. When the first square is
// blocked by a friendly piece (or lies off the board) the result is from.
func MaxTravel(board *chess.Board, from chess.Position, ally chess.Colour, dir chess.Direction) chess.Position {
	reach := from
	for next := from.Step(dir); next.OnBoard(); next = next.Step(dir) {
		if board.HasNoPiece(next) {
			reach = next
			continue
		}
		if board.HasEnemyPiece(next, ally) {
			reach = next
		}
		break
	}
	return reach
}

// RayTo returns the squares from `from` (exclusive) to `to` (inclusive),
// using the orthogonal or diagonal walk that joins them.
func RayTo(from, to chess.Position) []chess.Position {
	if from.IsOrthogonalTo(to) {
		return from.OrthogonalsTo(to)
	}
	return from.DiagonalsTo(to)
}

// slidingMoves appends every square along each direction up to its max
// travel, skipping squares held by friendly pieces.
func slidingMoves(result []chess.Position, board *chess.Board, from chess.Position, ally chess.Colour, dirs []chess.Direction) []chess.Position {
	for _, dir := range dirs {
		limit := MaxTravel(board, from, ally, dir)
		for _, sq := range RayTo(from, limit) {
			if sq.OnBoard() && !board.HasFriendlyPiece(sq, ally) {
				result = append(result, sq)
			}
		}
	}
	return result
}
