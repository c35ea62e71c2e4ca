package types

import "errors"

// ContentType labels the dominant content kind of a span. It is a closed
// enum: routing dispatches on these values and Valid rejects anything else.
type ContentType string

const (
	ContentNarrative ContentType = "narrative"
	ContentCode      ContentType = "code"
	ContentFormula   ContentType = "formula"
	ContentMixed     ContentType = "mixed"
)

// Valid reports whether the content type is one of the four known labels.
func (c ContentType) Valid() bool {
	switch c {
	case ContentNarrative, ContentCode, ContentFormula, ContentMixed:
		return true
	default:
		return false
	}
}

// TypeScores holds the per-type pattern ratios computed for one span.
// Ratios are matched-pattern-length over total-length, so they are
// independent and can individually exceed 1 when patterns overlap (a
// code-like line inside a formula block counts toward both).
type TypeScores struct {
	Code      float64 `json:"code"`
	Formula   float64 `json:"formula"`
	Heading   float64 `json:"heading"`
	Narrative float64 `json:"narrative"`
	Mixed     float64 `json:"mixed"`
}

// RoutingDecision records the classifier's outcome for one span: the
// selected label, the ratio that triggered it, and the full score vector
// kept for diagnostics.
type RoutingDecision struct {
	Type       ContentType
	Confidence float64
	Scores     TypeScores
}

// Validate checks that the decision carries a known label and a
// non-negative confidence.
func (d RoutingDecision) Validate() error {
	if !d.Type.Valid() {
		return errors.New("routing decision has unknown content type")
	}
	if d.Confidence < 0 {
		return errors.New("routing confidence cannot be negative")
	}
	return nil
}
