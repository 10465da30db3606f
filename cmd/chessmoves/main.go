// chessmoves lists and plays chess moves from the terminal, or enumerates
// moves for a file of positions.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-movegen-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessmoves version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	setupLogFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.Batch.File != "" {
		runBatchFile(cfg)
		return
	}

	if err := runInteractive(cfg, os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// runBatchFile opens the batch input and reports statistics.
func runBatchFile(cfg *config.Config) {
	var in io.Reader = os.Stdin
	if cfg.Batch.File != "-" {
		file, err := os.Open(cfg.Batch.File) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening file %s: %v\n", cfg.Batch.File, err)
			os.Exit(1)
		}
		defer file.Close()
		in = file
	}

	stats, err := runBatch(cfg, in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", cfg.Batch.File, err)
		os.Exit(1)
	}

	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "%d position(s), %d move(s), %d rejected, %d duplicate(s).\n",
			stats.positions, stats.moves, stats.rejected, stats.duplicates)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessmoves [options]\n\n")
	fmt.Fprintf(os.Stderr, "Lists legal moves and plays them on a text board.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nInteractive commands:\n")
	fmt.Fprintf(os.Stderr, "  e2       list the moves of the piece on e2\n")
	fmt.Fprintf(os.Stderr, "  e2 e4    move it (e2e4 also works)\n")
	fmt.Fprintf(os.Stderr, "  board, fen, captured, help, quit\n")
}
