// Package render draws a board as text, optionally with terminal colours.
package render

import (
	"bufio"
	"bytes"
	"io"

	"github.com/fatih/color"

	"github.com/lgbarn/chess-movegen-go/internal/chess"
)

// glyphs indexed by [colour][piece type].
var glyphs = [2][6]string{
	chess.Black: {"♟", "♜", "♞", "♝", "♚", "♛"},
	chess.White: {"♙", "♖", "♘", "♗", "♔", "♕"},
}

const fileLabels = "  a b c d e f g h"

// Renderer writes a board eight ranks high with rank 8 at the top.
type Renderer struct {
	// Colour tints pieces by side and paints highlighted squares.
	Colour bool
	// Glyphs selects Unicode chess symbols instead of FEN letters.
	Glyphs bool
}

// Render writes b to w. Squares in highlight are marked, usually the legal
// destinations of a selected piece.
func (r Renderer) Render(w io.Writer, b *chess.Board, highlight []chess.Position) error {
	marked := make(map[chess.Position]bool, len(highlight))
	for _, pos := range highlight {
		marked[pos] = true
	}

	pal := r.palette()
	bw := bufio.NewWriter(w)

	for row := 0; row < chess.BoardSize; row++ {
		bw.WriteByte(byte('8' - row))
		for col := 0; col < chess.BoardSize; col++ {
			pos := chess.NewPosition(row, col)
			bw.WriteByte(' ')
			bw.WriteString(r.cell(pal, b, pos, marked[pos]))
		}
		bw.WriteByte('\n')
	}
	bw.WriteString(fileLabels)
	bw.WriteByte('\n')

	return bw.Flush()
}

// String renders b without highlights.
func (r Renderer) String(b *chess.Board) string {
	var buf bytes.Buffer
	_ = r.Render(&buf, b, nil)
	return buf.String()
}

func (r Renderer) cell(pal *palette, b *chess.Board, pos chess.Position, marked bool) string {
	p, ok := b.Get(pos)
	if !ok {
		s := r.emptyMark(pos)
		if marked {
			if pal == nil {
				return "*"
			}
			return pal.target.Sprint(s)
		}
		return s
	}

	s := r.pieceMark(p)
	if pal == nil {
		return s
	}
	if marked {
		return pal.capture.Sprint(s)
	}
	if p.Colour() == chess.White {
		return pal.white.Sprint(s)
	}
	return pal.black.Sprint(s)
}

func (r Renderer) pieceMark(p chess.Piece) string {
	if !r.Glyphs {
		return string(p.Letter())
	}
	kind, err := p.Kind()
	if err != nil {
		return "x"
	}
	return glyphs[p.Colour()][kind]
}

// a1 is a dark square.
func (r Renderer) emptyMark(pos chess.Position) string {
	dark := (pos.Row+pos.Col)%2 == 1
	switch {
	case r.Glyphs && dark:
		return "■"
	case r.Glyphs:
		return "□"
	case dark:
		return "+"
	default:
		return "."
	}
}

type palette struct {
	white   *color.Color
	black   *color.Color
	target  *color.Color
	capture *color.Color
}

// palette returns nil when colour is off. Colours are forced on so the
// caller's choice wins over terminal detection.
func (r Renderer) palette() *palette {
	if !r.Colour {
		return nil
	}
	pal := &palette{
		white:   color.New(color.FgHiWhite, color.Bold),
		black:   color.New(color.FgHiBlue, color.Bold),
		target:  color.New(color.FgGreen),
		capture: color.New(color.BgRed, color.FgHiWhite),
	}
	for _, c := range []*color.Color{pal.white, pal.black, pal.target, pal.capture} {
		c.EnableColor()
	}
	return pal
}
