package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Team-01-DAMG-7245/Automated-Financial-Concept-Note-Generator/internal/router"
	"github.com/Team-01-DAMG-7245/Automated-Financial-Concept-Note-Generator/internal/token"
	"github.com/Team-01-DAMG-7245/Automated-Financial-Concept-Note-Generator/internal/validator"
	"github.com/Team-01-DAMG-7245/Automated-Financial-Concept-Note-Generator/pkg/types"
)

func newTestPipeline(t *testing.T, opts ...Option) *Pipeline {
	t.Helper()
	cfg := router.DefaultConfig()
	cfg.LogRouting = false
	rt, err := router.New(cfg, router.WithEstimator(token.Heuristic{}))
	require.NoError(t, err)
	val := validator.New(validator.Policy{MinSize: cfg.MinChunkSize, MaxSize: cfg.MaxChunkSize})
	return New(rt, val, opts...)
}

func testSpans(n int) []types.Span {
	spans := make([]types.Span, 0, n)
	for i := 0; i < n; i++ {
		spans = append(spans, types.Span{
			Source:  "notes.md",
			Page:    i + 1,
			Content: fmt.Sprintf("Section %d discusses settlement conventions at modest length.", i),
		})
	}
	return spans
}

func TestRun_OrderPreserved(t *testing.T) {
	p := newTestPipeline(t, WithWorkers(4))

	chunks, stats, err := p.Run(context.Background(), testSpans(12))
	require.NoError(t, err)
	require.NotEmpty(t, chunks)

	assert.Equal(t, 12, stats.SpansProcessed)
	assert.Equal(t, 0, stats.SpansFailed)

	// Output follows input span order regardless of worker scheduling.
	lastPage := 0
	for _, c := range chunks {
		assert.GreaterOrEqual(t, c.Page, lastPage)
		lastPage = c.Page
	}
}

func TestRun_Statistics(t *testing.T) {
	p := newTestPipeline(t)

	chunks, stats, err := p.Run(context.Background(), testSpans(3))
	require.NoError(t, err)

	assert.NotEmpty(t, stats.RunID)
	assert.Equal(t, len(chunks), stats.ChunksCreated)
	assert.Greater(t, stats.Duration.Nanoseconds(), int64(0))
}

func TestRun_EmptySpansSkipped(t *testing.T) {
	p := newTestPipeline(t)

	spans := []types.Span{
		{Source: "notes.md", Page: 1, Content: "Real content for the first page."},
		{Source: "notes.md", Page: 2, Content: ""},
	}
	chunks, stats, err := p.Run(context.Background(), spans)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.SpansProcessed)
	for _, c := range chunks {
		assert.Equal(t, 1, c.Page)
	}
}

func TestRun_MultipleSpansPerPage(t *testing.T) {
	p := newTestPipeline(t)

	// Two sections split out of one page; each gets its own index
	// sequence, which must not register as validation violations.
	spans := []types.Span{
		{Source: "notes.md", Page: 1, SectionTitle: "Forwards",
			Content: "Forwards lock in a delivery price today."},
		{Source: "notes.md", Page: 1, SectionTitle: "Equities",
			Content: "# Equities\n\n" + strings.Repeat("Equity holders bear residual risk in the capital structure. ", 40)},
	}

	chunks, stats, err := p.Run(context.Background(), spans)
	require.NoError(t, err)
	require.Greater(t, len(chunks), 2)

	assert.Equal(t, 0, stats.Violations)
	assert.Equal(t, 0, chunks[0].SpanIndex)
	assert.Equal(t, 1, chunks[len(chunks)-1].SpanIndex)
}

type recordingEmbedder struct {
	calls int
	fail  bool
}

func (e *recordingEmbedder) Embed(_ context.Context, chunks []types.Chunk) error {
	e.calls++
	if e.fail {
		return errors.New("embedding backend unavailable")
	}
	for i := range chunks {
		chunks[i].Embedding = []float32{0.1, 0.2}
	}
	return nil
}

func TestRun_EmbedderInvoked(t *testing.T) {
	emb := &recordingEmbedder{}
	p := newTestPipeline(t, WithEmbedder(emb))

	chunks, _, err := p.Run(context.Background(), testSpans(2))
	require.NoError(t, err)
	assert.Equal(t, 1, emb.calls)
	for _, c := range chunks {
		assert.NotEmpty(t, c.Embedding)
	}
}

func TestRun_EmbedderFailureAborts(t *testing.T) {
	p := newTestPipeline(t, WithEmbedder(&recordingEmbedder{fail: true}))

	_, _, err := p.Run(context.Background(), testSpans(2))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "embedding stage")
}

func TestRun_CancelledContext(t *testing.T) {
	p := newTestPipeline(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := p.Run(ctx, testSpans(50))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestJSONL_RoundTrip(t *testing.T) {
	p := newTestPipeline(t)
	chunks, _, err := p.Run(context.Background(), testSpans(2))
	require.NoError(t, err)
	require.NotEmpty(t, chunks)

	var buf bytes.Buffer
	require.NoError(t, WriteJSONL(&buf, chunks))
	assert.Equal(t, len(chunks), strings.Count(buf.String(), "\n"))

	back, err := ReadJSONL(&buf)
	require.NoError(t, err)
	require.Equal(t, len(chunks), len(back))
	assert.Equal(t, chunks[0].ID, back[0].ID)
	assert.Equal(t, chunks[0].Content, back[0].Content)
	assert.Equal(t, chunks[0].Strategy, back[0].Strategy)
}
