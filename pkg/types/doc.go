// Package types provides shared type definitions for the chunking pipeline.
//
// This package defines the domain types used across the chunking components:
// spans, content-type scores, routing decisions, and chunks.
//
// # Core Types
//
// Span represents a contiguous piece of source text with provenance,
// produced by an upstream document parser:
//
//	span := types.Span{
//	    Source:       "fintbx.pdf",
//	    Page:         42,
//	    SectionTitle: "Duration",
//	    Content:      sectionText,
//	}
//
// Chunk represents the final retrieval unit produced by a splitter,
// carrying content plus routing metadata:
//
//	chunk := types.Chunk{
//	    Content:    text,
//	    Strategy:   types.ContentCode,
//	    Index:      0,
//	    HasCode:    true,
//	    TokenCount: 180,
//	}
//
// # Content Types
//
// The four content-type labels form a closed enum. Routing always selects
// one of these; free-form strings are rejected by validation so a typo can
// never create an uncategorized routing path:
//
//	types.ContentNarrative
//	types.ContentCode
//	types.ContentFormula
//	types.ContentMixed
//
// # Identity
//
// Chunk identity is deterministic: strategy name, sequence index, and a
// SHA-256 content hash. Re-running the pipeline on identical input yields
// identical IDs, which makes downstream upserts idempotent and supports
// parallel processing of independent spans.
package types
