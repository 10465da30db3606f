package engine

import "github.com/lgbarn/chess-movegen-go/internal/chess"

// pawnMoves generates pushes and diagonal captures. En passant and
// promotion are not generated.
func pawnMoves(result []chess.Position, board *chess.Board, from chess.Position, ally chess.Colour) []chess.Position {
	up := from.PawnUp(ally)
	doubleUp := up.PawnUp(ally)
	upLeft := up.NextLeft()
	upRight := up.NextRight()

	if doubleUp.OnBoard() &&
		from.IsStartingPawn(ally) &&
		board.HasNoPiece(up) &&
		board.HasNoPiece(doubleUp) {
		result = append(result, doubleUp)
	}

	if up.OnBoard() && board.HasNoPiece(up) {
		result = append(result, up)
	}

	// A capture needs an enemy on the landing square.
	if upLeft.OnBoard() && board.HasEnemyPiece(upLeft, ally) {
		result = append(result, upLeft)
	}
	if upRight.OnBoard() && board.HasEnemyPiece(upRight, ally) {
		result = append(result, upRight)
	}

	return result
}
