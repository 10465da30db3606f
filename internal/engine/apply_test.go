package engine

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/chess-movegen-go/internal/chess"
	"github.com/lgbarn/chess-movegen-go/internal/errors"
	"github.com/lgbarn/chess-movegen-go/internal/notation"
	"github.com/lgbarn/chess-movegen-go/internal/testutil"
)

func TestMovePiece_Quiet(t *testing.T) {
	b := chess.NewStartingBoard()
	knight := testutil.PieceAt(t, b, "g1")

	moved, err := MovePiece(b, knight, notation.F3, chess.White)
	testutil.AssertNoError(t, err)

	pos, err := moved.Position()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, pos, notation.F3)
	testutil.AssertFalse(t, b.HasPiece(notation.G1), "origin should be empty")
	testutil.AssertEqual(t, testutil.PieceAt(t, b, "f3"), moved)
	testutil.AssertEqual(t, b.Count(), 32)
	testutil.AssertEqual(t, len(b.Captured()), 0)
}

func TestMovePiece_Capture(t *testing.T) {
	b := testutil.NewBoard(t, "Rd4", "pd7", "ke8")
	rook := testutil.PieceAt(t, b, "d4")

	moved, err := MovePiece(b, rook, notation.D7, chess.White)
	testutil.AssertNoError(t, err)

	testutil.AssertTrue(t, moved.Is(chess.Rook, chess.White))
	testutil.AssertEqual(t, testutil.PieceAt(t, b, "d7"), moved)
	testutil.AssertEqual(t, b.Count(), 2)
	testutil.AssertEqual(t, b.Captured(), []chess.Piece{chess.Captured(chess.Black)})
}

func TestMovePiece_Sequence(t *testing.T) {
	b := chess.NewStartingBoard()
	steps := []struct {
		from, to string
		mover    chess.Colour
	}{
		{"e2", "e4", chess.White},
		{"d7", "d5", chess.Black},
		{"e4", "d5", chess.White},
		{"d8", "d5", chess.Black},
		{"b1", "c3", chess.White},
	}

	for _, s := range steps {
		_, err := MoveFrom(b, notation.MustSquare(s.from), notation.MustSquare(s.to), s.mover)
		testutil.AssertNoError(t, err, "%s-%s", s.from, s.to)
	}

	testutil.AssertEqual(t, b.Count(), 30)
	testutil.AssertEqual(t, b.Captured(), []chess.Piece{chess.Captured(chess.Black), chess.Captured(chess.White)})
	testutil.AssertTrue(t, testutil.PieceAt(t, b, "d5").Is(chess.Queen, chess.Black))
	testutil.AssertTrue(t, testutil.PieceAt(t, b, "c3").Is(chess.Knight, chess.White))
	testutil.AssertEqual(t, BoardToFEN(b, chess.Black), "rnb1kbnr/ppp1pppp/8/3q4/8/2N5/PPPP1PPP/R1BQKBNR b - - 0 1")
}

func TestMovePiece_RejectionsLeaveBoardUnchanged(t *testing.T) {
	tests := []struct {
		name   string
		from   string
		to     string
		mover  chess.Colour
		target error
	}{
		{"pawn three squares", "e2", "e5", chess.White, errors.ErrIllegalMove},
		{"rook through pawn", "a1", "a4", chess.White, errors.ErrIllegalMove},
		{"knight onto friendly", "b1", "d2", chess.White, errors.ErrIllegalMove},
		{"bishop off its diagonal", "c1", "c3", chess.White, errors.ErrIllegalMove},
		{"off the board", "h2", "h0", chess.White, errors.ErrIllegalMove},
		{"wrong side", "e7", "e5", chess.White, errors.ErrWrongSide},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := chess.NewStartingBoard()
			before := b.Copy()

			from := notation.MustSquare(tt.from)
			to := chess.NewPosition(-1, -1)
			if parsed, err := notation.ParseSquare(tt.to); err == nil {
				to = parsed
			}

			_, err := MoveFrom(b, from, to, tt.mover)
			testutil.AssertErrorIs(t, err, tt.target)

			var moveErr *errors.MoveError
			if !stderrors.As(err, &moveErr) {
				t.Fatalf("error %v is not a MoveError", err)
			}
			testutil.AssertEqual(t, moveErr.From, tt.from)
			testutil.AssertTrue(t, b.Equal(before), "board changed after rejected move")
		})
	}
}

func TestMovePiece_StalePiece(t *testing.T) {
	b := chess.NewStartingBoard()
	pawn := testutil.PieceAt(t, b, "e2")

	_, err := MovePiece(b, pawn, notation.E4, chess.White)
	testutil.AssertNoError(t, err)

	before := b.Copy()
	// The old value still claims e2, which is now empty.
	_, err = MovePiece(b, pawn, notation.E3, chess.White)
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
	testutil.AssertTrue(t, b.Equal(before))
}

func TestMovePiece_Forged(t *testing.T) {
	b := chess.NewStartingBoard()
	forged := chess.NewPiece(chess.Queen, chess.White, notation.E2)

	_, err := MovePiece(b, forged, notation.E5, chess.White)
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
	testutil.AssertTrue(t, b.Equal(chess.NewStartingBoard()))
}

func TestMovePiece_CapturedPiece(t *testing.T) {
	b := chess.NewStartingBoard()
	_, err := MovePiece(b, chess.Captured(chess.White), notation.E4, chess.White)
	testutil.AssertErrorIs(t, err, errors.ErrCapturedPieceAccess)
}

func TestMoveFrom_EmptySquare(t *testing.T) {
	b := chess.NewStartingBoard()
	_, err := MoveFrom(b, notation.E4, notation.E5, chess.White)
	testutil.AssertErrorIs(t, err, errors.ErrEmptySquare)
}

func TestMovePiece_EveryLegalMoveRoundTrips(t *testing.T) {
	start, _, err := NewBoardFromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w - - 0 1")
	testutil.AssertNoError(t, err)

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, m := range AllMoves(start, colour) {
			b := start.Copy()
			p, _ := b.Get(m.From)
			hadEnemy := b.HasEnemyPiece(m.To, colour)

			moved, err := MovePiece(b, p, m.To, colour)
			if err != nil {
				t.Fatalf("%s %s-%s: %v", p.Name(), notation.SquareName(m.From), notation.SquareName(m.To), err)
			}

			pos, _ := moved.Position()
			testutil.AssertEqual(t, pos, m.To)
			testutil.AssertFalse(t, b.HasPiece(m.From))

			wantCount := start.Count()
			if hadEnemy {
				wantCount--
			}
			testutil.AssertEqual(t, b.Count(), wantCount)
		}
	}
}
