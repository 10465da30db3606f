package notation

import "github.com/lgbarn/chess-movegen-go/internal/chess"

// sq converts a zero-based file and a one-based rank to a board position.
func sq(file, rank int) chess.Position {
	return chess.NewPosition(chess.BoardSize-rank, file)
}

// Named squares. Rank 1 is row 7, where the White pieces start.
var (
	A1, A2, A3, A4, A5, A6, A7, A8 = sq(0, 1), sq(0, 2), sq(0, 3), sq(0, 4), sq(0, 5), sq(0, 6), sq(0, 7), sq(0, 8)
	B1, B2, B3, B4, B5, B6, B7, B8 = sq(1, 1), sq(1, 2), sq(1, 3), sq(1, 4), sq(1, 5), sq(1, 6), sq(1, 7), sq(1, 8)
	C1, C2, C3, C4, C5, C6, C7, C8 = sq(2, 1), sq(2, 2), sq(2, 3), sq(2, 4), sq(2, 5), sq(2, 6), sq(2, 7), sq(2, 8)
	D1, D2, D3, D4, D5, D6, D7, D8 = sq(3, 1), sq(3, 2), sq(3, 3), sq(3, 4), sq(3, 5), sq(3, 6), sq(3, 7), sq(3, 8)
	E1, E2, E3, E4, E5, E6, E7, E8 = sq(4, 1), sq(4, 2), sq(4, 3), sq(4, 4), sq(4, 5), sq(4, 6), sq(4, 7), sq(4, 8)
	F1, F2, F3, F4, F5, F6, F7, F8 = sq(5, 1), sq(5, 2), sq(5, 3), sq(5, 4), sq(5, 5), sq(5, 6), sq(5, 7), sq(5, 8)
	G1, G2, G3, G4, G5, G6, G7, G8 = sq(6, 1), sq(6, 2), sq(6, 3), sq(6, 4), sq(6, 5), sq(6, 6), sq(6, 7), sq(6, 8)
	H1, H2, H3, H4, H5, H6, H7, H8 = sq(7, 1), sq(7, 2), sq(7, 3), sq(7, 4), sq(7, 5), sq(7, 6), sq(7, 7), sq(7, 8)
)
