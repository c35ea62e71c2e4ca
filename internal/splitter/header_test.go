package splitter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeader_SplitsAtHeadings(t *testing.T) {
	text := "Preamble before any heading.\n\n# Bonds\n\nBond bodies here.\n\n## Equities\n\nEquity bodies here.\n"
	pieces := NewHeader(200, 0, 0).Split(text)
	require.Len(t, pieces, 3)

	assert.Equal(t, "", pieces[0].SectionTitle)
	assert.Equal(t, "Bonds", pieces[1].SectionTitle)
	assert.Equal(t, "Equities", pieces[2].SectionTitle)

	// Heading lines stay in their own section body.
	assert.True(t, strings.HasPrefix(pieces[1].Text, "# Bonds"))
	assert.Equal(t, text, reconstruct(pieces))
}

func TestHeader_HeadingFirstLine(t *testing.T) {
	text := "# Swaps\n\nFixed for floating."
	pieces := NewHeader(200, 0, 0).Split(text)
	require.Len(t, pieces, 1)
	assert.Equal(t, "Swaps", pieces[0].SectionTitle)
	assert.Equal(t, text, pieces[0].Text)
}

func TestHeader_OversizedSectionSubdivided(t *testing.T) {
	body := strings.Repeat("Duration measures rate sensitivity. ", 20)
	text := "## Duration\n\n" + body
	pieces := NewHeader(100, 20, 0).Split(text)
	require.Greater(t, len(pieces), 1)

	for _, p := range pieces {
		assert.Equal(t, "Duration", p.SectionTitle)
	}
	assert.Equal(t, text, reconstruct(pieces))
}

func TestHeader_SubdivisionRespectsMinimum(t *testing.T) {
	text := "# Beta\n\n" + strings.Repeat("Beta measures systematic risk exposure. ", 40)
	pieces := NewHeader(100, 0, 30).Split(text)
	require.Greater(t, len(pieces), 1)

	for i, p := range pieces[:len(pieces)-1] {
		assert.GreaterOrEqual(t, len(p.Text), 30, "piece %d", i)
	}
	assert.Equal(t, text, reconstruct(pieces))
}

func TestHeader_NoHeadingsSingleSection(t *testing.T) {
	text := "No headings appear in this text at all."
	pieces := NewHeader(200, 0, 0).Split(text)
	require.Len(t, pieces, 1)
	assert.Equal(t, "", pieces[0].SectionTitle)
	assert.Equal(t, text, pieces[0].Text)
}

func TestHeader_EmptyInput(t *testing.T) {
	assert.Nil(t, NewHeader(200, 0, 0).Split(""))
}
