package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithStartFEN sets the position sessions start from.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithColour enables ANSI colours.
func (b *ConfigBuilder) WithColour(enabled bool) *ConfigBuilder {
	b.cfg.Display.Colour = enabled
	return b
}

// WithGlyphs selects Unicode symbols or FEN letters.
func (b *ConfigBuilder) WithGlyphs(enabled bool) *ConfigBuilder {
	b.cfg.Display.Glyphs = enabled
	return b
}

// WithShowBoard controls whether the board is redrawn after each move.
func (b *ConfigBuilder) WithShowBoard(enabled bool) *ConfigBuilder {
	b.cfg.Display.ShowBoard = enabled
	return b
}

// WithBatchFile enables batch mode over a file of FENs.
func (b *ConfigBuilder) WithBatchFile(path string) *ConfigBuilder {
	b.cfg.Batch.File = path
	return b
}

// WithWorkers sets the batch worker count.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Batch.Workers = n
	return b
}

// WithJSONOutput enables JSON batch output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Batch.JSONFormat = enabled
	return b
}

// WithMoveList includes each position's moves in batch output.
func (b *ConfigBuilder) WithMoveList(enabled bool) *ConfigBuilder {
	b.cfg.Batch.ListMoves = enabled
	return b
}

// WithDuplicateSuppression drops repeated positions in batch mode.
func (b *ConfigBuilder) WithDuplicateSuppression(enabled bool, capacity int) *ConfigBuilder {
	b.cfg.Batch.SuppressDuplicates = enabled
	b.cfg.Batch.DuplicateCapacity = capacity
	return b
}

// WithMaxLineLength sets the maximum line length.
func (b *ConfigBuilder) WithMaxLineLength(length uint) *ConfigBuilder {
	b.cfg.Batch.MaxLineLength = length
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
