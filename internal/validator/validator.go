// Package validator checks chunk lists against the size policy and the
// structural invariants the downstream embedding stage relies on.
package validator

import (
	"fmt"

	"github.com/Team-01-DAMG-7245/Automated-Financial-Concept-Note-Generator/internal/patterns"
	"github.com/Team-01-DAMG-7245/Automated-Financial-Concept-Note-Generator/internal/token"
	"github.com/Team-01-DAMG-7245/Automated-Financial-Concept-Note-Generator/pkg/types"
)

// Policy bounds chunk sizes in characters.
type Policy struct {
	MinSize int
	MaxSize int
}

// DefaultPolicy returns the standard size bounds.
func DefaultPolicy() Policy {
	return Policy{MinSize: 100, MaxSize: 2000}
}

// Violation describes a single failed check on a chunk.
type Violation struct {
	ChunkID string `json:"chunk_id"`
	Rule    string `json:"rule"`
	Detail  string `json:"detail"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s (%s)", v.ChunkID, v.Rule, v.Detail)
}

// Validator applies a size policy plus structural checks to chunk lists.
type Validator struct {
	policy Policy
}

// New creates a Validator with the given policy.
func New(policy Policy) *Validator {
	return &Validator{policy: policy}
}

// Validate runs every check over the chunk list and returns all
// violations found. An empty result means the list is valid.
//
// Size checks are advisory by design: the final chunk of a span may be
// shorter than the minimum, and chunks flagged oversize are exempt from
// the maximum since breaking them would split an atomic unit.
func (v *Validator) Validate(chunks []types.Chunk) []Violation {
	var out []Violation
	out = append(out, v.checkSizes(chunks)...)
	out = append(out, checkDuplicateIDs(chunks)...)
	out = append(out, checkIndices(chunks)...)
	out = append(out, checkFences(chunks)...)
	return out
}

func (v *Validator) checkSizes(chunks []types.Chunk) []Violation {
	var out []Violation
	for _, c := range chunks {
		n := len(c.Content)
		if n < v.policy.MinSize && c.Index != c.TotalChunks-1 {
			out = append(out, Violation{
				ChunkID: c.ID,
				Rule:    "min_size",
				Detail:  fmt.Sprintf("%d chars below minimum %d", n, v.policy.MinSize),
			})
		}
		if n > v.policy.MaxSize && !c.Oversize {
			out = append(out, Violation{
				ChunkID: c.ID,
				Rule:    "max_size",
				Detail:  fmt.Sprintf("%d chars above maximum %d", n, v.policy.MaxSize),
			})
		}
	}
	return out
}

func checkDuplicateIDs(chunks []types.Chunk) []Violation {
	seen := make(map[string]struct{}, len(chunks))
	var out []Violation
	for _, c := range chunks {
		if _, dup := seen[c.ID]; dup {
			out = append(out, Violation{
				ChunkID: c.ID,
				Rule:    "duplicate_id",
				Detail:  "chunk ID appears more than once",
			})
			continue
		}
		seen[c.ID] = struct{}{}
	}
	return out
}

// checkIndices verifies that within each parent span the chunk indices
// run 0..TotalChunks-1 without gaps and that every chunk agrees on the
// span's total. A span is identified by source, page, and span ordinal;
// one page routinely holds several spans.
func checkIndices(chunks []types.Chunk) []Violation {
	type spanKey struct {
		source string
		page   int
		span   int
	}
	groups := make(map[spanKey][]types.Chunk)
	for _, c := range chunks {
		k := spanKey{c.Source, c.Page, c.SpanIndex}
		groups[k] = append(groups[k], c)
	}

	var out []Violation
	for _, group := range groups {
		total := group[0].TotalChunks
		seen := make(map[int]struct{}, len(group))
		for _, c := range group {
			if c.TotalChunks != total {
				out = append(out, Violation{
					ChunkID: c.ID,
					Rule:    "total_mismatch",
					Detail:  fmt.Sprintf("total_chunks %d disagrees with %d", c.TotalChunks, total),
				})
			}
			if c.Index < 0 || c.Index >= total {
				out = append(out, Violation{
					ChunkID: c.ID,
					Rule:    "index_range",
					Detail:  fmt.Sprintf("index %d outside [0, %d)", c.Index, total),
				})
				continue
			}
			seen[c.Index] = struct{}{}
		}
		if len(group) == total {
			for i := 0; i < total; i++ {
				if _, ok := seen[i]; !ok {
					out = append(out, Violation{
						ChunkID: group[0].ID,
						Rule:    "index_gap",
						Detail:  fmt.Sprintf("span is missing chunk index %d", i),
					})
				}
			}
		}
	}
	return out
}

// checkFences verifies that code chunks carry balanced fence markers.
// Degraded chunks are exempt: unterminated-fence recovery legitimately
// produces an odd marker count.
func checkFences(chunks []types.Chunk) []Violation {
	var out []Violation
	for _, c := range chunks {
		if !c.HasCode || c.Degraded {
			continue
		}
		if !patterns.BalancedFences(c.Content) {
			out = append(out, Violation{
				ChunkID: c.ID,
				Rule:    "unbalanced_fences",
				Detail:  "odd number of code fence markers",
			})
		}
	}
	return out
}

// splitterNames maps each routing strategy to the splitter that produced
// its chunks, for ID recomputation after a merge.
var splitterNames = map[types.ContentType]string{
	types.ContentCode:      "code_preserving",
	types.ContentFormula:   "semantic_section",
	types.ContentNarrative: "header_hierarchy",
	types.ContentMixed:     "character_window",
}

// MergeShortTail merges a final chunk shorter than the policy minimum
// into its predecessor, provided the combined chunk stays within the
// maximum. The chunks must all belong to the same span in index order.
// Returns the input unchanged when no merge applies.
func (v *Validator) MergeShortTail(chunks []types.Chunk, est token.Estimator) []types.Chunk {
	n := len(chunks)
	if n < 2 {
		return chunks
	}
	last := chunks[n-1]
	prev := chunks[n-2]
	if len(last.Content) >= v.policy.MinSize {
		return chunks
	}
	// The tail's overlap prefix duplicates the end of the predecessor;
	// drop it so the merged content has no internal repetition.
	fresh := last.Content[last.Overlap:]
	if len(prev.Content)+len(fresh) > v.policy.MaxSize {
		return chunks
	}

	prev.Content += fresh
	flags := patterns.DetectFlags(prev.Content)
	prev.HasCode = flags.HasCode
	prev.HasFormula = flags.HasFormula
	prev.HasHeading = flags.HasHeading
	prev.Degraded = prev.Degraded || last.Degraded
	prev.Oversize = prev.Oversize || last.Oversize
	if est != nil {
		prev.TokenCount = est.Count(prev.Content)
	}

	merged := append([]types.Chunk(nil), chunks[:n-2]...)
	merged = append(merged, prev)
	for i := range merged {
		merged[i].TotalChunks = n - 1
		merged[i].ComputeID(splitterNames[merged[i].Strategy])
	}
	return merged
}
