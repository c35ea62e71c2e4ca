package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Team-01-DAMG-7245/Automated-Financial-Concept-Note-Generator/pkg/types"
)

func span(content string) types.Span {
	return types.Span{Source: "notes.md", Page: 1, Content: content}
}

func TestClassify_CodeDominant(t *testing.T) {
	c, err := New(DefaultThresholds())
	require.NoError(t, err)

	text := "Simulate returns, where $r$ drifts:\n\n```matlab\nx = rand(10);\ny = x * 2;\nplot(x, y)\n```\n\nClosing note."
	decision := c.Classify(span(text))

	// Code clears its threshold first even though formula also matched.
	assert.Equal(t, types.ContentCode, decision.Type)
	assert.Greater(t, decision.Scores.Formula, 0.0)
	assert.Equal(t, decision.Scores.Code, decision.Confidence)
}

func TestClassify_FormulaHeavy(t *testing.T) {
	c, err := New(DefaultThresholds())
	require.NoError(t, err)

	text := "The discount factor is $d = \\frac{1}{(1+r)^n}$ for n periods.\n\nApply it per period."
	decision := c.Classify(span(text))

	assert.Equal(t, types.ContentFormula, decision.Type)
	assert.GreaterOrEqual(t, decision.Confidence, DefaultFormulaThreshold)
}

func TestClassify_StructuredNarrative(t *testing.T) {
	c, err := New(DefaultThresholds())
	require.NoError(t, err)

	text := "# Portfolio Theory\n\nDiversification lowers risk when returns are imperfectly correlated. The efficient frontier collects portfolios that maximize return for a given risk level."
	decision := c.Classify(span(text))

	assert.Equal(t, types.ContentNarrative, decision.Type)
	assert.Equal(t, decision.Scores.Heading, decision.Confidence)
	assert.GreaterOrEqual(t, decision.Scores.Heading, DefaultHeadingThreshold)
}

func TestClassify_MixedContent(t *testing.T) {
	c, err := New(Thresholds{Code: 0.6, Formula: 0.6, Heading: 0.9, Mixed: 0.2})
	require.NoError(t, err)

	text := "Prose here.\n\n```\nx = 1\n```\n\nvalue $r$ moves.\n\nMore prose follows here."
	decision := c.Classify(span(text))

	assert.Equal(t, types.ContentMixed, decision.Type)
	assert.Equal(t, decision.Scores.Code+decision.Scores.Formula, decision.Confidence)
}

func TestClassify_PlainProse(t *testing.T) {
	c, err := New(DefaultThresholds())
	require.NoError(t, err)

	decision := c.Classify(span("Interest accrues daily and compounds at month end without exception."))

	assert.Equal(t, types.ContentNarrative, decision.Type)
	assert.Equal(t, 1.0, decision.Scores.Narrative)
	assert.Equal(t, 0.0, decision.Scores.Code)
}

func TestClassify_Deterministic(t *testing.T) {
	c, err := New(DefaultThresholds())
	require.NoError(t, err)

	s := span("# Yield Curves\n\nSpot rates bootstrap from $P = \\frac{C}{(1+r)^t}$ across maturities.")
	first := c.Classify(s)
	second := c.Classify(s)
	assert.Equal(t, first, second)
}

func TestScores_EmptyText(t *testing.T) {
	c, err := New(DefaultThresholds())
	require.NoError(t, err)

	scores := c.Scores("")
	assert.Equal(t, 1.0, scores.Narrative)
	assert.Equal(t, 0.0, scores.Code)
	assert.Equal(t, 0.0, scores.Formula)
}

func TestScores_NarrativeClamped(t *testing.T) {
	c, err := New(DefaultThresholds())
	require.NoError(t, err)

	// Fence plus overlapping inline math can push code+formula past 1.
	scores := c.Scores("```\n$a$ $b$ $c$\n```")
	assert.GreaterOrEqual(t, scores.Narrative, 0.0)
}

func TestThresholds_Validate(t *testing.T) {
	assert.NoError(t, DefaultThresholds().Validate())

	bad := DefaultThresholds()
	bad.Code = 1.5
	err := bad.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrInvalidConfig)

	bad = DefaultThresholds()
	bad.Mixed = -0.1
	assert.ErrorIs(t, bad.Validate(), types.ErrInvalidConfig)
}

func TestNew_RejectsInvalidThresholds(t *testing.T) {
	_, err := New(Thresholds{Code: -1})
	assert.ErrorIs(t, err, types.ErrInvalidConfig)
}
