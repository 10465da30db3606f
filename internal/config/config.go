// Package config provides configuration for the chessmoves driver.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-movegen-go/internal/engine"
	"github.com/lgbarn/chess-movegen-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summaries, 2=running commentary

	// StartFEN is the position a session starts from. Empty means the
	// standard starting layout.
	StartFEN string

	Display *DisplayConfig
	Batch   *BatchConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Display:    NewDisplayConfig(),
		Batch:      NewBatchConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the stream for boards, move lists and batch results.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the stream for diagnostics.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Logf writes a diagnostic line when the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}

// Validate checks the configuration and its sections.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d is negative: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.StartFEN != "" {
		if _, _, err := engine.NewBoardFromFEN(c.StartFEN); err != nil {
			return fmt.Errorf("start position: %w: %w", errors.ErrInvalidConfig, err)
		}
	}
	if c.Batch != nil {
		if err := c.Batch.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// DisplayConfig holds settings for drawing the board.
type DisplayConfig struct {
	// Colour enables ANSI colours
	Colour bool

	// Glyphs draws Unicode chess symbols instead of FEN letters
	Glyphs bool

	// ShowBoard redraws the board after every accepted move
	ShowBoard bool
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		Glyphs:    true,
		ShowBoard: true,
	}
}

// BatchConfig holds settings for enumerating moves over a file of FENs.
type BatchConfig struct {
	// File is the input, one FEN per line. Empty disables batch mode.
	File string

	// Workers is the pool size; 0 uses one worker per CPU.
	Workers int

	// BufferSize bounds the job and result channels; 0 picks a default.
	BufferSize int

	// JSONFormat writes results as a JSON array instead of text lines
	JSONFormat bool

	// ListMoves appends each position's moves to its result line
	ListMoves bool

	// MaxLineLength wraps move lists in text output
	MaxLineLength uint

	// SuppressDuplicates drops positions already seen earlier in the input
	SuppressDuplicates bool

	// DuplicateCapacity bounds the duplicate table; 0 means unlimited
	DuplicateCapacity int
}

// NewBatchConfig creates a BatchConfig with default values.
func NewBatchConfig() *BatchConfig {
	return &BatchConfig{
		MaxLineLength: 80,
	}
}

// Validate checks that the batch configuration is valid.
func (b *BatchConfig) Validate() error {
	if b.Workers < 0 {
		return fmt.Errorf("worker count %d is negative: %w", b.Workers, errors.ErrInvalidConfig)
	}
	if b.BufferSize < 0 {
		return fmt.Errorf("buffer size %d is negative: %w", b.BufferSize, errors.ErrInvalidConfig)
	}
	if b.DuplicateCapacity < 0 {
		return fmt.Errorf("duplicate capacity %d is negative: %w", b.DuplicateCapacity, errors.ErrInvalidConfig)
	}
	if b.MaxLineLength > 0 && b.MaxLineLength < 10 {
		return fmt.Errorf("line length %d is too short: %w", b.MaxLineLength, errors.ErrInvalidConfig)
	}
	return nil
}
