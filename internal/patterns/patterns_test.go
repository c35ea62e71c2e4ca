package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCode_FencedBlock(t *testing.T) {
	text := "Before.\n\n```matlab\nx = rand(10);\n```\n\nAfter."
	matches := Code(text)
	require.NotEmpty(t, matches)
	assert.Equal(t, "```matlab\nx = rand(10);\n```", text[matches[0].Start:matches[0].End])
}

func TestCode_PromptLines(t *testing.T) {
	text := "Run it:\n>> pv = 100 / 1.05\n"
	assert.NotEmpty(t, Code(text))
}

func TestCode_FunctionDefinition(t *testing.T) {
	assert.NotEmpty(t, Code("function discount(rate) returns a factor"))
}

func TestCode_BracketedAssignment(t *testing.T) {
	assert.NotEmpty(t, Code("rates = [0.01 0.02 0.03]"))
	assert.Empty(t, Code("the rate was 0.03 last year"))
}

func TestFormula_BlockAndInline(t *testing.T) {
	assert.NotEmpty(t, Formula("$$PV = \\frac{FV}{(1+r)^n}$$"))
	assert.NotEmpty(t, Formula("the value $PV$ discounts"))
	assert.NotEmpty(t, Formula("\\frac{FV}{(1+r)^n}"))
	assert.Empty(t, Formula("costs $5 today"))
}

func TestHeading_MarkdownLevels(t *testing.T) {
	assert.NotEmpty(t, Heading("# Bonds"))
	assert.NotEmpty(t, Heading("#### Duration"))
	assert.Empty(t, Heading("##### Too deep"))
	assert.Empty(t, Heading("#NoSpace"))
}

func TestHeading_AllCapsLine(t *testing.T) {
	assert.NotEmpty(t, Heading("CHAPTER 3: FIXED INCOME"))
	// below the minimum length
	assert.Empty(t, Heading("CH 3"))
}

func TestDetectFlags(t *testing.T) {
	flags := DetectFlags("# Pricing\n\n```\nx = 1\n```\n\nvalue $PV$ here")
	assert.True(t, flags.HasCode)
	assert.True(t, flags.HasFormula)
	assert.True(t, flags.HasHeading)

	flags = DetectFlags("plain prose only")
	assert.False(t, flags.HasCode)
	assert.False(t, flags.HasFormula)
	assert.False(t, flags.HasHeading)
}

func TestDetectFlags_LoneFenceMarkerIsCode(t *testing.T) {
	// An opening marker with no close still marks the text as code.
	assert.True(t, DetectFlags("```python\nprint(1)").HasCode)
}

func TestBalancedFences(t *testing.T) {
	assert.True(t, BalancedFences("no fences at all"))
	assert.True(t, BalancedFences("```\ncode\n```"))
	assert.False(t, BalancedFences("```\ncode without close"))
}

func TestFenceRegions_Paired(t *testing.T) {
	text := "a\n```\nfirst\n```\nb\n```\nsecond\n```\nc"
	regions, unterminated := FenceRegions(text)
	require.Len(t, regions, 2)
	assert.False(t, unterminated)
	assert.Equal(t, "```\nfirst\n```", text[regions[0].Start:regions[0].End])
	assert.Equal(t, "```\nsecond\n```", text[regions[1].Start:regions[1].End])
}

func TestFenceRegions_Unterminated(t *testing.T) {
	text := "prose\n```matlab\nx = 1\n"
	regions, unterminated := FenceRegions(text)
	require.Len(t, regions, 1)
	assert.True(t, unterminated)
	assert.Equal(t, len(text), regions[0].End)
}

func TestFenceRegions_None(t *testing.T) {
	regions, unterminated := FenceRegions("just prose")
	assert.Empty(t, regions)
	assert.False(t, unterminated)
}

func TestMatchedLen(t *testing.T) {
	matches := []Match{{Start: 0, End: 4}, {Start: 10, End: 13}}
	assert.Equal(t, 7, MatchedLen(matches))
	assert.Equal(t, 0, MatchedLen(nil))
}
