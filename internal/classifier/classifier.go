// Package classifier computes per-type content ratios for a span and
// decides which chunking strategy should handle it.
package classifier

import (
	"fmt"

	"github.com/Team-01-DAMG-7245/Automated-Financial-Concept-Note-Generator/internal/patterns"
	"github.com/Team-01-DAMG-7245/Automated-Financial-Concept-Note-Generator/pkg/types"
)

// Default decision thresholds.
const (
	DefaultCodeThreshold    = 0.15
	DefaultFormulaThreshold = 0.10
	DefaultHeadingThreshold = 0.05
	DefaultMixedThreshold   = 0.20
)

// Thresholds guards each branch of the routing decision.
type Thresholds struct {
	Code    float64
	Formula float64
	Heading float64
	Mixed   float64
}

// DefaultThresholds returns the standard decision thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Code:    DefaultCodeThreshold,
		Formula: DefaultFormulaThreshold,
		Heading: DefaultHeadingThreshold,
		Mixed:   DefaultMixedThreshold,
	}
}

// Validate checks threshold ranges. The three single-type thresholds are
// ratios in [0, 1]; the mixed threshold is a sum of ratios and only needs
// to be non-negative.
func (t Thresholds) Validate() error {
	for _, th := range []struct {
		name  string
		value float64
	}{
		{"code_threshold", t.Code},
		{"formula_threshold", t.Formula},
		{"heading_threshold", t.Heading},
	} {
		if th.value < 0 || th.value > 1 {
			return fmt.Errorf("%w: %s %.3f outside [0, 1]", types.ErrInvalidConfig, th.name, th.value)
		}
	}
	if t.Mixed < 0 {
		return fmt.Errorf("%w: mixed_threshold %.3f is negative", types.ErrInvalidConfig, t.Mixed)
	}
	return nil
}

// Classifier decides the content type of a span from pattern ratios. It is
// a pure function of its input plus immutable thresholds, so a single
// instance is safe for concurrent use.
type Classifier struct {
	thresholds Thresholds
}

// New creates a Classifier. Returns an error if the thresholds are outside
// their valid ranges.
func New(thresholds Thresholds) (*Classifier, error) {
	if err := thresholds.Validate(); err != nil {
		return nil, err
	}
	return &Classifier{thresholds: thresholds}, nil
}

// Classify computes the score vector for a span and selects a content
// type.
//
// The decision proceeds in fixed priority order: code, then formula, then
// heading (structured narrative), then mixed, then unstructured narrative.
// The order is deterministic and independent of relative ratio magnitude;
// a span whose code ratio clears its threshold routes to code even when
// the formula ratio is numerically larger.
func (c *Classifier) Classify(span types.Span) types.RoutingDecision {
	scores := c.Scores(span.Content)

	t := c.thresholds
	switch {
	case scores.Code >= t.Code:
		return types.RoutingDecision{Type: types.ContentCode, Confidence: scores.Code, Scores: scores}
	case scores.Formula >= t.Formula:
		return types.RoutingDecision{Type: types.ContentFormula, Confidence: scores.Formula, Scores: scores}
	case scores.Heading >= t.Heading:
		// Structured narrative: headings present, prose dominates.
		return types.RoutingDecision{Type: types.ContentNarrative, Confidence: scores.Heading, Scores: scores}
	case scores.Mixed >= t.Mixed:
		return types.RoutingDecision{Type: types.ContentMixed, Confidence: scores.Mixed, Scores: scores}
	default:
		return types.RoutingDecision{Type: types.ContentNarrative, Confidence: scores.Narrative, Scores: scores}
	}
}

// Scores computes the per-type ratio vector for a piece of text. Each
// ratio is the summed length of that family's matches over the total text
// length; ratios are independent and their sum is unbounded. The mixed
// score is the sum of code and formula ratios and is used only for the
// mixed-content branch.
func (c *Classifier) Scores(text string) types.TypeScores {
	length := len(text)
	if length == 0 {
		return types.TypeScores{Narrative: 1}
	}

	code := ratio(patterns.Code(text), length)
	formula := ratio(patterns.Formula(text), length)
	heading := ratio(patterns.Heading(text), length)

	narrative := 1 - (code + formula)
	if narrative < 0 {
		narrative = 0
	}

	return types.TypeScores{
		Code:      code,
		Formula:   formula,
		Heading:   heading,
		Narrative: narrative,
		Mixed:     code + formula,
	}
}

func ratio(matches []patterns.Match, total int) float64 {
	if total < 1 {
		total = 1
	}
	return float64(patterns.MatchedLen(matches)) / float64(total)
}
