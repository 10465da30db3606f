package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lgbarn/chess-movegen-go/internal/chess"
	"github.com/lgbarn/chess-movegen-go/internal/notation"
	"github.com/lgbarn/chess-movegen-go/internal/testutil"
)

func TestRender_Letters(t *testing.T) {
	want := strings.Join([]string{
		"8 r n b q k b n r",
		"7 p p p p p p p p",
		"6 . + . + . + . +",
		"5 + . + . + . + .",
		"4 . + . + . + . +",
		"3 + . + . + . + .",
		"2 P P P P P P P P",
		"1 R N B Q K B N R",
		"  a b c d e f g h",
		"",
	}, "\n")

	testutil.AssertEqual(t, Renderer{}.String(chess.NewStartingBoard()), want)
}

func TestRender_Glyphs(t *testing.T) {
	out := Renderer{Glyphs: true}.String(chess.NewStartingBoard())
	lines := strings.Split(out, "\n")

	testutil.AssertEqual(t, lines[0], "8 ♜ ♞ ♝ ♛ ♚ ♝ ♞ ♜")
	testutil.AssertEqual(t, lines[1], "7 ♟ ♟ ♟ ♟ ♟ ♟ ♟ ♟")
	testutil.AssertEqual(t, lines[2], "6 □ ■ □ ■ □ ■ □ ■")
	testutil.AssertEqual(t, lines[6], "2 ♙ ♙ ♙ ♙ ♙ ♙ ♙ ♙")
	testutil.AssertEqual(t, lines[7], "1 ♖ ♘ ♗ ♕ ♔ ♗ ♘ ♖")
}

func TestRender_HighlightWithoutColour(t *testing.T) {
	var buf bytes.Buffer
	err := Renderer{}.Render(&buf, chess.NewStartingBoard(), []chess.Position{notation.E3, notation.E4})
	testutil.AssertNoError(t, err)

	lines := strings.Split(buf.String(), "\n")
	testutil.AssertEqual(t, lines[4], "4 . + . + * + . +")
	testutil.AssertEqual(t, lines[5], "3 + . + . * . + .")
	testutil.AssertFalse(t, strings.Contains(buf.String(), "\x1b["), "unexpected escape codes")
}

func TestRender_Colour(t *testing.T) {
	b := testutil.NewBoard(t, "Ke1", "ke8", "Rd4", "pd7")

	var buf bytes.Buffer
	err := Renderer{Colour: true}.Render(&buf, b, []chess.Position{notation.E3, notation.D7})
	testutil.AssertNoError(t, err)

	out := buf.String()
	testutil.AssertContains(t, out, "\x1b[32m+\x1b[0m")
	testutil.AssertContains(t, out, "\x1b[41;97mp\x1b[0m")
	testutil.AssertContains(t, out, "\x1b[97;1mK\x1b[0m")
	testutil.AssertContains(t, out, "\x1b[94;1mk\x1b[0m")
}

func TestRender_EmptyBoard(t *testing.T) {
	out := Renderer{Glyphs: true}.String(chess.NewBoard())
	for _, glyph := range []string{"♙", "♟", "♔", "♚"} {
		testutil.AssertFalse(t, strings.Contains(out, glyph), "glyph %s on empty board", glyph)
	}
	testutil.AssertEqual(t, strings.Count(out, "□")+strings.Count(out, "■"), 64)
}
