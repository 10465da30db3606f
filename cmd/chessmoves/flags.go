// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-movegen-go/internal/config"
)

var (
	// Position
	startFEN = flag.String("fen", "", "Start from this FEN instead of the standard layout")

	// Display options
	colour  = flag.Bool("color", false, "Colour pieces and highlight legal moves")
	ascii   = flag.Bool("ascii", false, "Draw pieces as FEN letters instead of chess symbols")
	noBoard = flag.Bool("noboard", false, "Don't redraw the board after each move")

	// Batch mode
	batchFile  = flag.String("batch", "", "File with one FEN per line; print move counts (- for stdin)")
	workers    = flag.Int("j", 0, "Number of batch workers (0 = auto-detect based on CPU cores)")
	jsonOutput = flag.Bool("J", false, "Write batch results in JSON format")
	listMoves  = flag.Bool("moves", false, "Include every move in batch results")
	lineLength = flag.Int("w", 80, "Maximum line length for move lists")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress positions repeated in the batch input")
	duplicateCapacity  = flag.Int("duplicate-capacity", 0, "Maximum duplicate hash table entries (0 = unlimited)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbose   = flag.Bool("v", false, "Log every accepted move")

	// Other options
	quiet   = flag.Bool("q", false, "Quiet mode (no prompt or summary)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	cfg.StartFEN = *startFEN
	applyDisplayFlags(cfg)
	applyBatchFlags(cfg)

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
}

// applyDisplayFlags configures board drawing.
func applyDisplayFlags(cfg *config.Config) {
	cfg.Display.Colour = *colour
	cfg.Display.Glyphs = !*ascii
	cfg.Display.ShowBoard = !*noBoard
}

// applyBatchFlags configures batch enumeration.
func applyBatchFlags(cfg *config.Config) {
	cfg.Batch.File = *batchFile
	cfg.Batch.Workers = *workers
	cfg.Batch.JSONFormat = *jsonOutput
	cfg.Batch.ListMoves = *listMoves
	cfg.Batch.SuppressDuplicates = *suppressDuplicates
	cfg.Batch.DuplicateCapacity = *duplicateCapacity
	if *lineLength > 0 {
		cfg.Batch.MaxLineLength = uint(*lineLength)
	}
}
