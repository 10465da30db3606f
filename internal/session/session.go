// Package session runs an interactive game over the move generator: it
// tracks the side to move and turns text commands into queries and moves.
package session

import (
	stderrors "errors"
	"fmt"
	"strings"

	uuid "github.com/satori/go.uuid"

	"github.com/lgbarn/chess-movegen-go/internal/chess"
	"github.com/lgbarn/chess-movegen-go/internal/config"
	"github.com/lgbarn/chess-movegen-go/internal/engine"
	"github.com/lgbarn/chess-movegen-go/internal/errors"
	"github.com/lgbarn/chess-movegen-go/internal/notation"
	"github.com/lgbarn/chess-movegen-go/internal/render"
)

var (
	// ErrQuit is returned by Handle when the user ends the session.
	ErrQuit = stderrors.New("quit")

	// ErrUnknownCommand is returned by Handle for unrecognised input.
	ErrUnknownCommand = stderrors.New("unknown command")
)

// Session is one game: a board, the side to move and a ply counter.
// It is not safe for concurrent use.
type Session struct {
	ID uuid.UUID

	board    *chess.Board
	toMove   chess.Colour
	ply      int
	cfg      *config.Config
	renderer render.Renderer
}

// New starts a session from cfg.StartFEN, or from the standard layout when
// it is empty.
func New(cfg *config.Config) (*Session, error) {
	board := chess.NewStartingBoard()
	toMove := chess.White
	if cfg.StartFEN != "" {
		var err error
		board, toMove, err = engine.NewBoardFromFEN(cfg.StartFEN)
		if err != nil {
			return nil, errors.Wrap(err, "start position")
		}
	}

	s := &Session{
		ID:     uuid.NewV4(),
		board:  board,
		toMove: toMove,
		cfg:    cfg,
		renderer: render.Renderer{
			Colour: cfg.Display.Colour,
			Glyphs: cfg.Display.Glyphs,
		},
	}
	cfg.Logf(2, "session %s: started, %s to move", s.ID, toMove)
	return s, nil
}

// Board returns a copy of the current board.
func (s *Session) Board() *chess.Board {
	return s.board.Copy()
}

// ToMove returns the side whose turn it is.
func (s *Session) ToMove() chess.Colour {
	return s.toMove
}

// Ply returns the number of moves played in this session.
func (s *Session) Ply() int {
	return s.ply
}

// FEN returns the current position.
func (s *Session) FEN() string {
	return engine.BoardToFEN(s.board, s.toMove)
}

// Moves returns the legal destinations of the piece on square, which must
// belong to the side to move.
func (s *Session) Moves(square string) ([]chess.Position, error) {
	p, err := s.pieceAt(square)
	if err != nil {
		return nil, err
	}
	return engine.LegalMoves(p, s.board)
}

func (s *Session) pieceAt(square string) (chess.Piece, error) {
	pos, err := notation.ParseSquare(square)
	if err != nil {
		return chess.Piece{}, err
	}
	p, ok := s.board.Get(pos)
	if !ok {
		return p, errors.Wrapf(errors.ErrEmptySquare, "%s", notation.SquareName(pos))
	}
	if p.Colour() != s.toMove {
		return p, errors.Wrapf(errors.ErrWrongSide, "%s on %s, %s to move", p.Name(), notation.SquareName(pos), s.toMove)
	}
	return p, nil
}

// Move plays from-to for the side to move. A rejected move is logged and
// leaves the session unchanged.
func (s *Session) Move(from, to string) error {
	_, err := s.move(from, to)
	return err
}

func (s *Session) move(from, to string) (chess.Piece, error) {
	origin, err := notation.ParseSquare(from)
	if err != nil {
		return chess.Piece{}, err
	}
	target, err := notation.ParseSquare(to)
	if err != nil {
		return chess.Piece{}, err
	}

	moved, err := engine.MoveFrom(s.board, origin, target, s.toMove)
	if err != nil {
		s.cfg.Logf(1, "session %s: rejected %s-%s: %v", s.ID, from, to, err)
		return moved, err
	}

	s.cfg.Logf(2, "session %s: ply %d %s %s-%s", s.ID, s.ply+1, moved.Name(),
		notation.SquareName(origin), notation.SquareName(target))
	s.toMove = s.toMove.Opposite()
	s.ply++
	return moved, nil
}

const helpText = `commands:
  <square>           list the legal moves of the piece on square (e2)
  <from> <to>        move a piece (e2 e4, or e2e4)
  board              draw the board
  fen                print the position as FEN
  captured           count captured pieces
  help               show this text
  quit               end the session
`

// Handle runs one line of input and returns the text to show the user.
func (s *Session) Handle(line string) (string, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return "", nil
	}

	switch fields[0] {
	case "help", "?":
		return helpText, nil
	case "quit", "exit":
		return "", ErrQuit
	case "board":
		return s.renderer.String(s.board), nil
	case "fen":
		return s.FEN() + "\n", nil
	case "captured":
		return s.capturedSummary(), nil
	}

	switch {
	case len(fields) == 1 && len(fields[0]) == 2:
		return s.handleSelect(fields[0])
	case len(fields) == 1 && len(fields[0]) == 4:
		return s.handleMove(fields[0][:2], fields[0][2:])
	case len(fields) == 2:
		return s.handleMove(fields[0], fields[1])
	}
	return "", fmt.Errorf("%q: %w", line, ErrUnknownCommand)
}

func (s *Session) handleSelect(square string) (string, error) {
	p, err := s.pieceAt(square)
	if err != nil {
		return "", err
	}
	moves, err := engine.LegalMoves(p, s.board)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	if s.cfg.Display.ShowBoard {
		_ = s.renderer.Render(&sb, s.board, moves)
	}
	pos, _ := p.Position()
	fmt.Fprintf(&sb, "%s %s:", p.Name(), notation.SquareName(pos))
	if len(moves) == 0 {
		sb.WriteString(" no moves")
	}
	for _, name := range notation.SquareNames(moves) {
		sb.WriteString(" " + name)
	}
	sb.WriteByte('\n')
	return sb.String(), nil
}

func (s *Session) handleMove(from, to string) (string, error) {
	before := len(s.board.Captured())
	moved, err := s.move(from, to)
	if err != nil {
		return "", err
	}

	sep := "-"
	if len(s.board.Captured()) > before {
		sep = "x"
	}

	var sb strings.Builder
	if s.cfg.Display.ShowBoard {
		_ = s.renderer.Render(&sb, s.board, nil)
	}
	fmt.Fprintf(&sb, "%d. %s %s%s%s, %s to move\n", s.ply, moved.Name(), from, sep, to, s.toMove)
	return sb.String(), nil
}

func (s *Session) capturedSummary() string {
	var white, black int
	for _, p := range s.board.Captured() {
		if p.Colour() == chess.White {
			white++
		} else {
			black++
		}
	}
	if white+black == 0 {
		return "captured: none\n"
	}
	return fmt.Sprintf("captured: White %d, Black %d\n", white, black)
}
