package evaluator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Team-01-DAMG-7245/Automated-Financial-Concept-Note-Generator/internal/router"
	"github.com/Team-01-DAMG-7245/Automated-Financial-Concept-Note-Generator/pkg/types"
)

func TestCompare_ReportsEveryStrategy(t *testing.T) {
	spans := []types.Span{
		{Source: "notes.md", Page: 1, Content: "# Bonds\n\n" + strings.Repeat("Coupons pay on a fixed schedule. ", 60)},
		{Source: "notes.md", Page: 2, Content: "Setup.\n\n```matlab\npv = fv / (1 + r)^n\n```\n\nResult discussion."},
	}

	reports := New(router.DefaultConfig()).Compare(spans)
	require.Len(t, reports, 4)

	names := make(map[string]Report, len(reports))
	for _, r := range reports {
		names[r.Strategy] = r
	}
	for _, want := range []string{"character_window", "header_hierarchy", "code_preserving", "semantic_section"} {
		r, ok := names[want]
		require.True(t, ok, want)
		assert.Greater(t, r.Chunks, 0)
		assert.Greater(t, r.MeanSize, 0.0)
		assert.LessOrEqual(t, float64(r.MinSize), r.MedianSize)
		assert.LessOrEqual(t, r.MedianSize, float64(r.MaxSize))
		assert.Greater(t, r.MeanTokens, 0.0)
	}

	// Fences survive intact under the code-preserving strategy.
	assert.Equal(t, 0, names["code_preserving"].BrokenFences)
}

func TestCompare_EmptySpans(t *testing.T) {
	reports := New(router.DefaultConfig()).Compare(nil)
	require.Len(t, reports, 4)
	for _, r := range reports {
		assert.Equal(t, 0, r.Chunks)
		assert.Equal(t, 0.0, r.MeanSize)
	}
}
