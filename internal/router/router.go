package router

import (
	"fmt"

	charmlog "github.com/charmbracelet/log"

	"github.com/Team-01-DAMG-7245/Automated-Financial-Concept-Note-Generator/internal/classifier"
	"github.com/Team-01-DAMG-7245/Automated-Financial-Concept-Note-Generator/internal/patterns"
	"github.com/Team-01-DAMG-7245/Automated-Financial-Concept-Note-Generator/internal/splitter"
	"github.com/Team-01-DAMG-7245/Automated-Financial-Concept-Note-Generator/internal/token"
	"github.com/Team-01-DAMG-7245/Automated-Financial-Concept-Note-Generator/pkg/types"
)

// Router classifies each span and dispatches it to the matching splitting
// strategy, then assembles the resulting pieces into chunks with unified
// metadata. A Router is safe for concurrent use: classification and
// splitting are pure, and the statistics counters are atomic.
type Router struct {
	cfg        Config
	classifier *classifier.Classifier
	splitters  map[types.ContentType]splitter.Splitter
	estimator  token.Estimator
	stats      Stats
	log        *charmlog.Logger
}

// Option configures optional Router collaborators.
type Option func(*Router)

// WithLogger attaches a structured logger for routing decisions. Only
// used when Config.LogRouting is set.
func WithLogger(logger *charmlog.Logger) Option {
	return func(r *Router) { r.log = logger }
}

// WithEstimator overrides the token estimator. The default prefers
// tiktoken and falls back to the chars/4 heuristic.
func WithEstimator(est token.Estimator) Option {
	return func(r *Router) { r.estimator = est }
}

// New creates a Router. Configuration errors are returned here, before
// any span is processed.
func New(cfg Config, opts ...Option) (*Router, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cls, err := classifier.New(cfg.thresholds())
	if err != nil {
		return nil, err
	}

	r := &Router{
		cfg:        cfg,
		classifier: cls,
		splitters: map[types.ContentType]splitter.Splitter{
			types.ContentCode:      splitter.NewCode(cfg.ChunkSize, cfg.ChunkOverlap, cfg.MinChunkSize, cfg.MaxCodeChunkSize, cfg.ContextParagraphs),
			types.ContentFormula:   splitter.NewSemantic(cfg.ChunkSize, cfg.ChunkOverlap, cfg.MinChunkSize, cfg.MaxChunkSize),
			types.ContentNarrative: splitter.NewHeader(cfg.ChunkSize, cfg.ChunkOverlap, cfg.MinChunkSize),
			types.ContentMixed:     splitter.NewWindow(cfg.ChunkSize, cfg.ChunkOverlap, cfg.MinChunkSize),
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.estimator == nil {
		r.estimator = token.Default()
	}
	return r, nil
}

// Route classifies the span, runs the selected splitter, and returns the
// assembled chunks. An empty span yields an empty chunk list and no
// error; a non-empty span always yields at least one chunk.
func (r *Router) Route(span types.Span) ([]types.Chunk, error) {
	if span.Empty() {
		return nil, nil
	}

	decision := r.classifier.Classify(span)
	strat := r.splitters[decision.Type]

	pieces := strat.Split(span.Content)
	if len(pieces) == 0 {
		return nil, fmt.Errorf("%w: %s splitter on %s page %d",
			types.ErrNoChunks, strat.Name(), span.Source, span.Page)
	}

	chunks := make([]types.Chunk, 0, len(pieces))
	for i, piece := range pieces {
		sectionTitle := piece.SectionTitle
		if sectionTitle == "" {
			sectionTitle = span.SectionTitle
		}

		// Flags are chunk-local: re-detected on the piece's own text, not
		// inherited wholesale from the span.
		flags := patterns.DetectFlags(piece.Text)

		chunk := types.Chunk{
			Content:      piece.Text,
			Source:       span.Source,
			Page:         span.Page,
			SectionTitle: sectionTitle,
			Strategy:     decision.Type,
			Confidence:   decision.Confidence,
			Scores:       decision.Scores,
			Index:        i,
			TotalChunks:  len(pieces),
			Overlap:      piece.Overlap,
			HasCode:      flags.HasCode,
			HasFormula:   flags.HasFormula,
			HasHeading:   flags.HasHeading,
			TokenCount:   r.estimator.Count(piece.Text),
			Degraded:     piece.Degraded,
			Oversize:     piece.Oversize,
		}
		chunk.ComputeID(strat.Name())
		chunks = append(chunks, chunk)
	}

	r.stats.add(decision.Type, len(chunks))

	if r.cfg.LogRouting && r.log != nil {
		r.log.Info("routed span",
			"source", span.Source,
			"page", span.Page,
			"type", decision.Type,
			"confidence", fmt.Sprintf("%.2f", decision.Confidence),
			"chunks", len(chunks),
		)
	}

	return chunks, nil
}

// Stats returns a snapshot of the cumulative routing statistics.
func (r *Router) Stats() Snapshot {
	return r.stats.Snapshot()
}
