package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/chess-movegen-go/internal/config"
	"github.com/lgbarn/chess-movegen-go/internal/worker"
)

// ResultWriter is the interface for writing batch results.
// Different implementations handle different output formats (text, JSON).
type ResultWriter interface {
	// WriteResult writes a single result to the output.
	WriteResult(r worker.ProcessResult) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewResultWriter picks the writer matching the batch configuration.
func NewResultWriter(w io.Writer, cfg *config.BatchConfig) ResultWriter {
	if cfg.JSONFormat {
		return NewJSONWriter(w, cfg)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes one tab-separated line per position:
// index, move count (or "-" on error) and FEN.
type TextWriter struct {
	w   io.Writer
	cfg *config.BatchConfig
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.BatchConfig) *TextWriter {
	return &TextWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteResult writes a result line, followed by the wrapped move list when
// ListMoves is set.
func (tw *TextWriter) WriteResult(r worker.ProcessResult) error {
	count := "-"
	if r.Err == nil {
		count = fmt.Sprint(len(r.Moves))
	}
	if _, err := fmt.Fprintf(tw.w, "%d\t%s\t%s\n", r.Index, count, r.FEN); err != nil {
		return err
	}

	if tw.cfg.ListMoves && r.Err == nil {
		WriteMoveList(NewOutputWriter(tw.w, int(tw.cfg.MaxLineLength)), r.Moves)
	}
	return nil
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes results in JSON format.
// It buffers results and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	cfg     *config.BatchConfig
	results []*JSONResult
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer, cfg *config.BatchConfig) *JSONWriter {
	return &JSONWriter{
		w:       w,
		cfg:     cfg,
		results: make([]*JSONResult, 0),
	}
}

// WriteResult buffers a result for JSON output.
func (jw *JSONWriter) WriteResult(r worker.ProcessResult) error {
	jw.results = append(jw.results, ResultToJSON(r, jw.cfg.ListMoves))
	return nil
}

// Flush writes all buffered results as a JSON array.
func (jw *JSONWriter) Flush() error {
	if len(jw.results) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Results: jw.results})

	// Clear buffer after writing
	jw.results = jw.results[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
