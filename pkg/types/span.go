package types

import "strings"

// Span is a contiguous piece of source text plus its provenance. Spans are
// produced upstream (PDF extraction, markdown sectioning) and consumed by
// the classifier and splitters. They are treated as immutable: no component
// in the chunking core modifies a span after creation.
type Span struct {
	// Source identifies the originating document, e.g. a file name.
	Source string

	// Page is the 1-based page number the span was extracted from, or 0
	// when the source has no page structure.
	Page int

	// SectionTitle is the pre-existing heading path for the span, if the
	// upstream parser tracked one. Optional.
	SectionTitle string

	// Content is the raw section text. Empty content is valid and yields
	// an empty chunk list, not an error.
	Content string
}

// Empty reports whether the span carries no routable content. Whitespace
// alone does not count.
func (s Span) Empty() bool {
	return strings.TrimSpace(s.Content) == ""
}
