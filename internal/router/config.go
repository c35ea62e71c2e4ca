package router

import (
	"fmt"

	"github.com/Team-01-DAMG-7245/Automated-Financial-Concept-Note-Generator/internal/classifier"
	"github.com/Team-01-DAMG-7245/Automated-Financial-Concept-Note-Generator/pkg/types"
)

// Defaults for the chunking configuration surface.
const (
	DefaultChunkSize         = 1000
	DefaultChunkOverlap      = 200
	DefaultMinChunkSize      = 100
	DefaultMaxChunkSize      = 2000
	DefaultMaxCodeChunkSize  = 2000
	DefaultContextParagraphs = 2
)

// Config is the full configuration surface for the router and its
// splitters. Start from DefaultConfig and adjust; out-of-range values
// fail validation before any span is processed.
type Config struct {
	// Splitting sizes, in characters
	ChunkSize         int
	ChunkOverlap      int
	MinChunkSize      int
	MaxChunkSize      int
	MaxCodeChunkSize  int
	ContextParagraphs int

	// Routing thresholds
	CodeThreshold    float64
	FormulaThreshold float64
	HeadingThreshold float64
	MixedThreshold   float64

	// LogRouting enables a structured log line per routing decision.
	LogRouting bool
}

// DefaultConfig returns the standard chunking configuration.
func DefaultConfig() Config {
	t := classifier.DefaultThresholds()
	return Config{
		ChunkSize:         DefaultChunkSize,
		ChunkOverlap:      DefaultChunkOverlap,
		MinChunkSize:      DefaultMinChunkSize,
		MaxChunkSize:      DefaultMaxChunkSize,
		MaxCodeChunkSize:  DefaultMaxCodeChunkSize,
		ContextParagraphs: DefaultContextParagraphs,
		CodeThreshold:     t.Code,
		FormulaThreshold:  t.Formula,
		HeadingThreshold:  t.Heading,
		MixedThreshold:    t.Mixed,
		LogRouting:        true,
	}
}

// Validate checks the size relationships. Threshold ranges are validated
// by the classifier.
func (c Config) Validate() error {
	if c.ChunkSize <= 0 {
		return fmt.Errorf("%w: chunk_size must be positive, got %d", types.ErrInvalidConfig, c.ChunkSize)
	}
	if c.ChunkOverlap < 0 {
		return fmt.Errorf("%w: chunk_overlap cannot be negative, got %d", types.ErrInvalidConfig, c.ChunkOverlap)
	}
	if c.ChunkOverlap >= c.ChunkSize {
		return fmt.Errorf("%w: chunk_overlap %d must be smaller than chunk_size %d",
			types.ErrInvalidConfig, c.ChunkOverlap, c.ChunkSize)
	}
	if c.MinChunkSize < 0 {
		return fmt.Errorf("%w: min_chunk_size cannot be negative, got %d", types.ErrInvalidConfig, c.MinChunkSize)
	}
	if c.MinChunkSize > c.MaxChunkSize {
		return fmt.Errorf("%w: min_chunk_size %d exceeds max_chunk_size %d",
			types.ErrInvalidConfig, c.MinChunkSize, c.MaxChunkSize)
	}
	if c.ChunkSize > c.MaxChunkSize {
		return fmt.Errorf("%w: chunk_size %d exceeds max_chunk_size %d",
			types.ErrInvalidConfig, c.ChunkSize, c.MaxChunkSize)
	}
	if c.MaxCodeChunkSize <= 0 {
		return fmt.Errorf("%w: max_code_chunk_size must be positive, got %d",
			types.ErrInvalidConfig, c.MaxCodeChunkSize)
	}
	if c.ContextParagraphs < 0 {
		return fmt.Errorf("%w: context_paragraphs cannot be negative, got %d",
			types.ErrInvalidConfig, c.ContextParagraphs)
	}
	return nil
}

// thresholds extracts the classifier threshold set.
func (c Config) thresholds() classifier.Thresholds {
	return classifier.Thresholds{
		Code:    c.CodeThreshold,
		Formula: c.FormulaThreshold,
		Heading: c.HeadingThreshold,
		Mixed:   c.MixedThreshold,
	}
}
