package router

import (
	"sync/atomic"

	"github.com/Team-01-DAMG-7245/Automated-Financial-Concept-Note-Generator/pkg/types"
)

// Stats accumulates routing counters across spans. Counters are monotonic
// and updated atomically, so a single Stats value can be shared by
// concurrent workers; they are never reset mid-run.
type Stats struct {
	narrative   atomic.Int64
	code        atomic.Int64
	formula     atomic.Int64
	mixed       atomic.Int64
	totalChunks atomic.Int64
	spans       atomic.Int64
}

func (s *Stats) add(decision types.ContentType, chunks int) {
	switch decision {
	case types.ContentCode:
		s.code.Add(int64(chunks))
	case types.ContentFormula:
		s.formula.Add(int64(chunks))
	case types.ContentMixed:
		s.mixed.Add(int64(chunks))
	default:
		s.narrative.Add(int64(chunks))
	}
	s.totalChunks.Add(int64(chunks))
	s.spans.Add(1)
}

// Snapshot is a point-in-time copy of the routing statistics.
type Snapshot struct {
	Narrative   int64              `json:"narrative"`
	Code        int64              `json:"code"`
	Formula     int64              `json:"formula"`
	Mixed       int64              `json:"mixed"`
	TotalChunks int64              `json:"total_chunks"`
	Spans       int64              `json:"spans"`
	Percentages map[string]float64 `json:"percentages,omitempty"`
}

// Snapshot returns the current counter values plus per-type percentages
// of the total chunk count.
func (s *Stats) Snapshot() Snapshot {
	snap := Snapshot{
		Narrative:   s.narrative.Load(),
		Code:        s.code.Load(),
		Formula:     s.formula.Load(),
		Mixed:       s.mixed.Load(),
		TotalChunks: s.totalChunks.Load(),
		Spans:       s.spans.Load(),
	}
	if snap.TotalChunks > 0 {
		total := float64(snap.TotalChunks)
		snap.Percentages = map[string]float64{
			string(types.ContentNarrative): float64(snap.Narrative) / total * 100,
			string(types.ContentCode):      float64(snap.Code) / total * 100,
			string(types.ContentFormula):   float64(snap.Formula) / total * 100,
			string(types.ContentMixed):     float64(snap.Mixed) / total * 100,
		}
	}
	return snap
}
