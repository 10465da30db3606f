package hashing

import (
	"math/rand"

	"github.com/lgbarn/chess-movegen-go/internal/chess"
)

const numSquares = chess.BoardSize * chess.BoardSize

var (
	pieceKeys   [2][6][numSquares]uint64
	blackToMove uint64
)

// A fixed seed keeps hashes stable between runs.
func init() {
	rnd := rand.New(rand.NewSource(0x5EED))
	for c := range pieceKeys {
		for k := range pieceKeys[c] {
			for sq := range pieceKeys[c][k] {
				pieceKeys[c][k][sq] = rnd.Uint64()
			}
		}
	}
	blackToMove = rnd.Uint64()
}

func squareIndex(pos chess.Position) int {
	return pos.Row*chess.BoardSize + pos.Col
}

// GenerateZobristHash hashes the placement and the side to move.
// Captured pieces and move history do not contribute.
func GenerateZobristHash(board *chess.Board, toMove chess.Colour) uint64 {
	var hash uint64
	for _, p := range board.State() {
		kind, _ := p.Kind()
		pos, _ := p.Position()
		hash ^= pieceKeys[p.Colour()][kind][squareIndex(pos)]
	}
	if toMove == chess.Black {
		hash ^= blackToMove
	}
	return hash
}

// WeakHash is a cheap placement checksum used to confirm Zobrist matches.
func WeakHash(board *chess.Board) uint64 {
	var sum uint64
	for _, p := range board.State() {
		kind, _ := p.Kind()
		pos, _ := p.Position()
		code := uint64(p.Colour())*6 + uint64(kind) + 1
		sum += code * uint64(squareIndex(pos)+1) * 0x100000001B3
	}
	return sum
}
