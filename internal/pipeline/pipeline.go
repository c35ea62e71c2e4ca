// Package pipeline coordinates the chunking run: route spans
// concurrently, merge short tails, validate, and optionally embed.
package pipeline

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Team-01-DAMG-7245/Automated-Financial-Concept-Note-Generator/internal/router"
	"github.com/Team-01-DAMG-7245/Automated-Financial-Concept-Note-Generator/internal/token"
	"github.com/Team-01-DAMG-7245/Automated-Financial-Concept-Note-Generator/internal/validator"
	"github.com/Team-01-DAMG-7245/Automated-Financial-Concept-Note-Generator/pkg/types"
)

// Embedder fills chunk embeddings in place. The chunking core never
// implements this itself; it is the seam to the external embedding
// stage.
type Embedder interface {
	Embed(ctx context.Context, chunks []types.Chunk) error
}

// Statistics summarizes a pipeline run.
type Statistics struct {
	RunID          string        `json:"run_id"`
	SpansProcessed int           `json:"spans_processed"`
	SpansFailed    int           `json:"spans_failed"`
	ChunksCreated  int           `json:"chunks_created"`
	Violations     int           `json:"violations"`
	Duration       time.Duration `json:"duration"`
	ErrorMessages  []string      `json:"error_messages,omitempty"`
}

// Pipeline runs spans through the router with a bounded worker pool.
type Pipeline struct {
	router    *router.Router
	validator *validator.Validator
	estimator token.Estimator
	embedder  Embedder
	workers   int
	log       *charmlog.Logger
}

// Option configures optional Pipeline collaborators.
type Option func(*Pipeline)

// WithWorkers sets the number of concurrent routing workers.
func WithWorkers(n int) Option {
	return func(p *Pipeline) { p.workers = n }
}

// WithEmbedder attaches an embedding stage to run after validation.
func WithEmbedder(e Embedder) Option {
	return func(p *Pipeline) { p.embedder = e }
}

// WithLogger attaches a structured logger for run progress.
func WithLogger(logger *charmlog.Logger) Option {
	return func(p *Pipeline) { p.log = logger }
}

// New creates a Pipeline. Workers default to the CPU count.
func New(r *router.Router, v *validator.Validator, opts ...Option) *Pipeline {
	p := &Pipeline{
		router:    r,
		validator: v,
		estimator: token.Default(),
		workers:   runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.workers <= 0 {
		p.workers = runtime.NumCPU()
	}
	return p
}

// Run routes every span and returns the chunks in span order. A span
// that fails routing is recorded in the statistics and skipped; the run
// continues. The returned error covers run-level failures only, such as
// context cancellation or a failed embedding stage.
func (p *Pipeline) Run(ctx context.Context, spans []types.Span) ([]types.Chunk, *Statistics, error) {
	start := time.Now()
	stats := &Statistics{RunID: uuid.NewString()}

	if p.log != nil {
		p.log.Info("chunking run started", "run_id", stats.RunID, "spans", len(spans), "workers", p.workers)
	}

	// Results are kept per span index so the output preserves input
	// order regardless of worker scheduling.
	results := make([][]types.Chunk, len(spans))

	var (
		processed atomic.Int32
		failed    atomic.Int32
		mu        sync.Mutex
	)

	semaphore := make(chan struct{}, p.workers)
	g, gctx := errgroup.WithContext(ctx)

	for i, span := range spans {
		i, span := i, span
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case semaphore <- struct{}{}:
			}
			defer func() { <-semaphore }()

			chunks, err := p.router.Route(span)
			if err != nil {
				failed.Add(1)
				mu.Lock()
				stats.ErrorMessages = append(stats.ErrorMessages,
					fmt.Sprintf("%s page %d: %v", span.Source, span.Page, err))
				mu.Unlock()
				return nil
			}
			for j := range chunks {
				chunks[j].SpanIndex = i
			}

			results[i] = p.validator.MergeShortTail(chunks, p.estimator)
			processed.Add(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var chunks []types.Chunk
	for _, r := range results {
		chunks = append(chunks, r...)
	}

	violations := p.validator.Validate(chunks)
	if p.log != nil {
		for _, v := range violations {
			p.log.Warn("chunk validation", "chunk", v.ChunkID, "rule", v.Rule, "detail", v.Detail)
		}
	}

	if p.embedder != nil && len(chunks) > 0 {
		if err := p.embedder.Embed(ctx, chunks); err != nil {
			return nil, nil, fmt.Errorf("embedding stage: %w", err)
		}
	}

	stats.SpansProcessed = int(processed.Load())
	stats.SpansFailed = int(failed.Load())
	stats.ChunksCreated = len(chunks)
	stats.Violations = len(violations)
	stats.Duration = time.Since(start)

	if p.log != nil {
		p.log.Info("chunking run finished",
			"run_id", stats.RunID,
			"chunks", stats.ChunksCreated,
			"failed_spans", stats.SpansFailed,
			"violations", stats.Violations,
			"duration", stats.Duration,
		)
	}

	return chunks, stats, nil
}

// Stats returns the router's cumulative routing statistics.
func (p *Pipeline) Stats() router.Snapshot {
	return p.router.Stats()
}
