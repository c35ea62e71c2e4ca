// Package evaluator runs every splitting strategy over the same spans
// and reports comparative chunk statistics, used to tune the size and
// threshold configuration against a document corpus.
package evaluator

import (
	"math"
	"sort"
	"time"

	"github.com/Team-01-DAMG-7245/Automated-Financial-Concept-Note-Generator/internal/patterns"
	"github.com/Team-01-DAMG-7245/Automated-Financial-Concept-Note-Generator/internal/router"
	"github.com/Team-01-DAMG-7245/Automated-Financial-Concept-Note-Generator/internal/splitter"
	"github.com/Team-01-DAMG-7245/Automated-Financial-Concept-Note-Generator/internal/token"
	"github.com/Team-01-DAMG-7245/Automated-Financial-Concept-Note-Generator/pkg/types"
)

// Report holds the chunk statistics for one strategy over a span set.
type Report struct {
	Strategy     string        `json:"strategy"`
	Chunks       int           `json:"chunks"`
	MeanSize     float64       `json:"mean_size"`
	MedianSize   float64       `json:"median_size"`
	MinSize      int           `json:"min_size"`
	MaxSize      int           `json:"max_size"`
	StddevSize   float64       `json:"stddev_size"`
	MeanTokens   float64       `json:"mean_tokens"`
	BrokenFences int           `json:"broken_fences"`
	Elapsed      time.Duration `json:"elapsed"`
}

// Evaluator applies each strategy to the full span set, ignoring
// classification, so strategies are compared on identical input.
type Evaluator struct {
	splitters []splitter.Splitter
	estimator token.Estimator
}

// New builds an Evaluator with all four strategies configured from cfg.
func New(cfg router.Config) *Evaluator {
	return &Evaluator{
		splitters: []splitter.Splitter{
			splitter.NewWindow(cfg.ChunkSize, cfg.ChunkOverlap, cfg.MinChunkSize),
			splitter.NewHeader(cfg.ChunkSize, cfg.ChunkOverlap, cfg.MinChunkSize),
			splitter.NewCode(cfg.ChunkSize, cfg.ChunkOverlap, cfg.MinChunkSize, cfg.MaxCodeChunkSize, cfg.ContextParagraphs),
			splitter.NewSemantic(cfg.ChunkSize, cfg.ChunkOverlap, cfg.MinChunkSize, cfg.MaxChunkSize),
		},
		estimator: token.Default(),
	}
}

// Compare runs each strategy over every span and returns one report per
// strategy, in a fixed order.
func (e *Evaluator) Compare(spans []types.Span) []Report {
	reports := make([]Report, 0, len(e.splitters))
	for _, s := range e.splitters {
		reports = append(reports, e.evaluate(s, spans))
	}
	return reports
}

func (e *Evaluator) evaluate(s splitter.Splitter, spans []types.Span) Report {
	start := time.Now()

	var sizes []int
	var tokens, broken int
	for _, span := range spans {
		for _, piece := range s.Split(span.Content) {
			sizes = append(sizes, len(piece.Text))
			tokens += e.estimator.Count(piece.Text)
			if patterns.DetectFlags(piece.Text).HasCode && !piece.Degraded &&
				!patterns.BalancedFences(piece.Text) {
				broken++
			}
		}
	}

	r := Report{
		Strategy:     s.Name(),
		Chunks:       len(sizes),
		BrokenFences: broken,
		Elapsed:      time.Since(start),
	}
	if len(sizes) == 0 {
		return r
	}

	r.MinSize = sizes[0]
	r.MaxSize = sizes[0]
	sum := 0
	for _, n := range sizes {
		sum += n
		if n < r.MinSize {
			r.MinSize = n
		}
		if n > r.MaxSize {
			r.MaxSize = n
		}
	}
	r.MeanSize = float64(sum) / float64(len(sizes))
	r.MeanTokens = float64(tokens) / float64(len(sizes))
	r.MedianSize = median(sizes)
	r.StddevSize = stddev(sizes, r.MeanSize)
	return r
}

func median(sizes []int) float64 {
	sorted := append([]int(nil), sizes...)
	sort.Ints(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return float64(sorted[mid])
	}
	return float64(sorted[mid-1]+sorted[mid]) / 2
}

func stddev(sizes []int, mean float64) float64 {
	if len(sizes) < 2 {
		return 0
	}
	var ss float64
	for _, n := range sizes {
		d := float64(n) - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(sizes)))
}
