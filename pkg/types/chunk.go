package types

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
)

// Chunk is the unit of output: a contiguous, non-empty substring of exactly
// one input span, enriched with routing metadata. Chunks are created by a
// splitter, enriched by the router, validated, and then handed off
// immutably to downstream embedding and storage stages.
type Chunk struct {
	// Identification
	ID string `json:"id"`

	// Content
	Content string `json:"content"`

	// Provenance
	Source       string `json:"source"`
	Page         int    `json:"page"`
	SectionTitle string `json:"section_title,omitempty"`

	// Routing metadata
	Strategy   ContentType `json:"routing_strategy"`
	Confidence float64     `json:"routing_confidence"`
	Scores     TypeScores  `json:"routing_scores"`

	// Position within the parent span. SpanIndex is the ordinal of the
	// parent span within the run, assigned by the pipeline; a single page
	// can hold several spans, so source and page alone do not identify
	// the parent.
	SpanIndex   int `json:"span_index"`
	Index       int `json:"chunk_index"`
	TotalChunks int `json:"total_chunks"`

	// Overlap is the number of leading characters duplicated from the end
	// of the previous chunk in the same span. Zero for the first chunk.
	Overlap int `json:"overlap"`

	// Content flags, computed on the chunk's own text
	HasCode    bool `json:"has_code"`
	HasFormula bool `json:"has_formula"`
	HasHeading bool `json:"has_heading"`

	TokenCount int `json:"token_count"`

	// Degraded marks chunks produced by a last-resort splitting rule
	// (hard cut or unterminated fence recovery) rather than a
	// boundary-aware rule.
	Degraded bool `json:"degraded,omitempty"`

	// Oversize marks an atomic unit (one fence, one formula block) that
	// exceeds the size ceiling and was emitted whole rather than broken.
	Oversize bool `json:"oversize,omitempty"`

	// Embedding is filled by the external embedding stage, never by the
	// chunking core.
	Embedding []float32 `json:"embedding,omitempty"`
}

// ContentHash returns the hex-encoded SHA-256 hash of the chunk content.
func (c *Chunk) ContentHash() string {
	sum := sha256.Sum256([]byte(c.Content))
	return hex.EncodeToString(sum[:])
}

// ComputeID derives the stable chunk identifier from the splitter name,
// the chunk's sequence index, and its content hash. Identical input always
// produces an identical ID.
func (c *Chunk) ComputeID(splitterName string) {
	c.ID = fmt.Sprintf("%s_%04d_%s", splitterName, c.Index, c.ContentHash()[:12])
}

// Validate performs basic integrity checks on the chunk.
func (c *Chunk) Validate() error {
	if c.Content == "" {
		return errors.New("chunk content cannot be empty")
	}
	if c.ID == "" {
		return errors.New("chunk ID must be computed")
	}
	if !c.Strategy.Valid() {
		return errors.New("chunk has unknown routing strategy")
	}
	if c.Index < 0 {
		return errors.New("chunk index cannot be negative")
	}
	if c.TotalChunks <= c.Index {
		return errors.New("total chunks must exceed chunk index")
	}
	if c.Overlap < 0 || c.Overlap > len(c.Content) {
		return errors.New("chunk overlap out of range")
	}
	return nil
}
