package engine

import (
	"github.com/lgbarn/chess-movegen-go/internal/chess"
	"github.com/lgbarn/chess-movegen-go/internal/errors"
	"github.com/lgbarn/chess-movegen-go/internal/notation"
)

// MovePiece moves p to `to` on behalf of mover and returns the piece as it
// now stands. The destination is re-checked against LegalMoves; a rejected
// move returns a *errors.MoveError and leaves the board untouched.
// An enemy piece on the destination is recorded as captured.
func MovePiece(board *chess.Board, p chess.Piece, to chess.Position, mover chess.Colour) (chess.Piece, error) {
	from, err := p.Position()
	if err != nil {
		return p, err
	}

	reject := func(cause error, reason string) (chess.Piece, error) {
		return p, &errors.MoveError{
			Err:    cause,
			Piece:  p.Name(),
			From:   notation.SquareName(from),
			To:     notation.SquareName(to),
			Reason: reason,
		}
	}

	if p.Colour() != mover {
		return reject(errors.ErrWrongSide, mover.String()+" to move")
	}

	// The piece must still stand where it says it does.
	if occupant, ok := board.Get(from); !ok || !occupant.Equal(p) {
		return reject(errors.ErrIllegalMove, "piece is not on its square")
	}

	if !IsLegalMove(p, board, to) {
		return reject(errors.ErrIllegalMove, "not a legal destination")
	}

	if target, ok := board.Get(to); ok && board.HasEnemyPiece(to, mover) {
		board.RecordCapture(target)
	}

	board.Remove(from)
	if err := p.SetPosition(to); err != nil {
		return p, err
	}
	if err := board.Place(p); err != nil {
		return p, err
	}
	return p, nil
}

// MoveFrom looks up the piece on from and moves it to `to`.
func MoveFrom(board *chess.Board, from, to chess.Position, mover chess.Colour) (chess.Piece, error) {
	p, ok := board.Get(from)
	if !ok {
		return p, &errors.MoveError{
			Err:  errors.ErrEmptySquare,
			From: notation.SquareName(from),
			To:   notation.SquareName(to),
		}
	}
	return MovePiece(board, p, to, mover)
}
