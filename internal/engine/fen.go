package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-movegen-go/internal/chess"
	"github.com/lgbarn/chess-movegen-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

// ConvertFENCharToPiece converts a FEN character to a piece type.
func ConvertFENCharToPiece(c byte) (chess.PieceType, bool) {
	switch c {
	case 'K', 'k':
		return chess.King, true
	case 'Q', 'q':
		return chess.Queen, true
	case 'R', 'r':
		return chess.Rook, true
	case 'N', 'n':
		return chess.Knight, true
	case 'B', 'b':
		return chess.Bishop, true
	case 'P', 'p':
		return chess.Pawn, true
	default:
		return 0, false
	}
}

// NewBoardFromFEN creates a board from a FEN string and returns it with the
// side to move. Only the placement and side-to-move fields are read;
// castling, en passant and clock fields are accepted and ignored.
func NewBoardFromFEN(fen string) (*chess.Board, chess.Colour, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, chess.White, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()
	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, chess.White, err
	}

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return nil, chess.White, err
	}
	return board, toMove, nil
}

// parsePiecePositions parses the piece placement field. The first rank
// listed (rank 8) is row 0.
func parsePiecePositions(board *chess.Board, placement string) error {
	row, col := 0, 0

	for i := 0; i < len(placement); i++ {
		c := placement[i]
		switch {
		case c == '/':
			if col != chess.BoardSize {
				return fenError(placement, i, "8 files per rank", fmt.Sprintf("%d", col))
			}
			row++
			col = 0
		case c >= '1' && c <= '8':
			col += int(c - '0')
		default:
			kind, ok := ConvertFENCharToPiece(c)
			if !ok {
				return fenError(placement, i, "piece letter", string(c))
			}
			pos := chess.NewPosition(row, col)
			if pos.OffBoard() {
				return fenError(placement, i, "square on the board", pos.String())
			}

			colour := chess.White
			if unicode.IsLower(rune(c)) {
				colour = chess.Black
			}
			if err := board.Place(chess.NewPiece(kind, colour, pos)); err != nil {
				return err
			}
			col++
		}
		if col > chess.BoardSize {
			return fenError(placement, i, "8 files per rank", fmt.Sprintf("%d", col))
		}
	}

	if row != chess.BoardSize-1 || col != chess.BoardSize {
		return fenError(placement, len(placement)-1, "8 complete ranks", fmt.Sprintf("%d ranks", row+1))
	}
	return nil
}

// parseSideToMove parses the side to move field. A missing field means White.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
}

func fenError(placement string, index int, expected, got string) error {
	return &errors.ParseError{
		Err:      errors.ErrInvalidFEN,
		Input:    placement,
		Column:   index + 1,
		Expected: expected,
		Got:      got,
	}
}

// BoardToFEN renders the board placement and side to move as FEN.
// Castling and en passant are always "-".
func BoardToFEN(board *chess.Board, toMove chess.Colour) string {
	var sb strings.Builder
	for row := 0; row < chess.BoardSize; row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for col := 0; col < chess.BoardSize; col++ {
			p, ok := board.Get(chess.NewPosition(row, col))
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}

	side := "w"
	if toMove == chess.Black {
		side = "b"
	}
	return sb.String() + " " + side + " - - 0 1"
}
