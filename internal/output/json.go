package output

import (
	"strings"

	"github.com/lgbarn/chess-movegen-go/internal/notation"
	"github.com/lgbarn/chess-movegen-go/internal/worker"
)

// JSONResult represents one enumerated position in JSON format.
type JSONResult struct {
	Index  int        `json:"index"`
	FEN    string     `json:"fen"`
	ToMove string     `json:"toMove,omitempty"` // "white" or "black"
	Count  int        `json:"count"`
	Moves  []JSONMove `json:"moves,omitempty"`
	Error  string     `json:"error,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	From string `json:"from"`
	To   string `json:"to"`
	UCI  string `json:"uci"`
}

// JSONOutput holds multiple results for array output.
type JSONOutput struct {
	Results []*JSONResult `json:"results"`
}

// ResultToJSON converts a batch result to JSON form. Moves are included
// only when withMoves is set.
func ResultToJSON(r worker.ProcessResult, withMoves bool) *JSONResult {
	jr := &JSONResult{
		Index: r.Index,
		FEN:   r.FEN,
	}
	if r.Err != nil {
		jr.Error = r.Err.Error()
		return jr
	}

	jr.ToMove = strings.ToLower(r.ToMove.String())
	jr.Count = len(r.Moves)

	if withMoves {
		jr.Moves = make([]JSONMove, 0, len(r.Moves))
		for _, m := range r.Moves {
			jr.Moves = append(jr.Moves, JSONMove{
				From: notation.SquareName(m.From),
				To:   notation.SquareName(m.To),
				UCI:  MoveText(m),
			})
		}
	}
	return jr
}
