package main

import (
	"bufio"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/lgbarn/chess-movegen-go/internal/config"
	"github.com/lgbarn/chess-movegen-go/internal/errors"
	"github.com/lgbarn/chess-movegen-go/internal/hashing"
	"github.com/lgbarn/chess-movegen-go/internal/output"
	"github.com/lgbarn/chess-movegen-go/internal/session"
	"github.com/lgbarn/chess-movegen-go/internal/worker"
)

type batchStats struct {
	positions  int
	moves      int
	rejected   int
	duplicates int
}

// readFENLines returns the non-blank lines of r, skipping # comments.
func readFENLines(r io.Reader) ([]string, error) {
	var fens []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fens = append(fens, line)
	}
	return fens, scanner.Err()
}

// runBatch enumerates moves for every FEN in r on a worker pool and writes
// the results in input order.
//
// Workers only parse and enumerate; each builds its own board. Results are
// written from this goroutine alone, so the writers need no locking.
func runBatch(cfg *config.Config, r io.Reader) (batchStats, error) {
	var stats batchStats

	fens, err := readFENLines(r)
	if err != nil {
		return stats, err
	}

	numWorkers := cfg.Batch.Workers
	if numWorkers == 0 {
		numWorkers = runtime.NumCPU()
	}
	bufferSize := cfg.Batch.BufferSize
	if bufferSize == 0 {
		bufferSize = len(fens)
		if bufferSize > 100 {
			bufferSize = 100
		}
	}

	pool := worker.NewPoolWithOptions(worker.EnumerateMoves,
		worker.WithWorkers(numWorkers), worker.WithBufferSize(bufferSize))
	pool.Start()

	go func() {
		for i, fen := range fens {
			pool.Submit(worker.WorkItem{FEN: fen, Index: i})
		}
		pool.Close()
	}()

	var detector *hashing.DuplicateDetector
	if cfg.Batch.SuppressDuplicates {
		detector = hashing.NewDuplicateDetector(cfg.Batch.DuplicateCapacity)
	}

	writer := output.NewResultWriter(cfg.OutputFile, cfg.Batch)
	for _, result := range pool.CollectOrdered() {
		stats.positions++
		if detector != nil && result.Err == nil && detector.CheckAndAddSignature(result.Signature) {
			stats.duplicates++
			cfg.Logf(2, "position %d: duplicate", result.Index)
			continue
		}
		if result.Err != nil {
			stats.rejected++
			cfg.Logf(1, "position %d: %v", result.Index, result.Err)
		} else {
			stats.moves += len(result.Moves)
		}
		if err := writer.WriteResult(result); err != nil {
			return stats, err
		}
	}
	return stats, writer.Close()
}

// runInteractive reads commands from in until it is exhausted or the user
// quits. Rejected commands are reported on the output stream and the loop
// carries on; the session itself logs rejected moves.
func runInteractive(cfg *config.Config, in io.Reader) error {
	s, err := session.New(cfg)
	if err != nil {
		return err
	}

	out := cfg.OutputFile
	if cfg.Display.ShowBoard {
		if text, err := s.Handle("board"); err == nil {
			fmt.Fprint(out, text)
		}
	}

	scanner := bufio.NewScanner(in)
	for {
		if cfg.Verbosity > 0 {
			fmt.Fprintf(out, "%s> ", s.ToMove())
		}
		if !scanner.Scan() {
			break
		}

		text, err := s.Handle(scanner.Text())
		if errors.Is(err, session.ErrQuit) {
			break
		}
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		fmt.Fprint(out, text)
	}

	if cfg.Verbosity > 0 {
		fmt.Fprintln(out)
	}
	return scanner.Err()
}
