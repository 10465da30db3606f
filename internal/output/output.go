// Package output formats batch enumeration results as text or JSON.
package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chess-movegen-go/internal/engine"
	"github.com/lgbarn/chess-movegen-go/internal/notation"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		// Check if we need a new line
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine ends the current line if anything was written on it.
func (o *OutputWriter) NewLine() {
	if o.lineLength == 0 {
		return
	}
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// MoveText returns a move in long algebraic form, e.g. "e2e4".
func MoveText(m engine.Move) string {
	return notation.SquareName(m.From) + notation.SquareName(m.To)
}

// WriteMoveList writes moves separated by spaces, wrapping lines at the
// writer's maximum length, and ends the last line.
func WriteMoveList(o *OutputWriter, moves []engine.Move) {
	for _, m := range moves {
		o.Write(MoveText(m))
	}
	o.NewLine()
}
