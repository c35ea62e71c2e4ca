package splitter

import (
	"regexp"
	"sort"
	"strings"

	"github.com/Team-01-DAMG-7245/Automated-Financial-Concept-Note-Generator/internal/patterns"
)

// semanticMarkers detect concept boundaries: headings, worked-example and
// definition markers, code fences, block formulas, and page-break markers.
var semanticMarkers = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^#{1,4}[ \t]+.+$`),
	regexp.MustCompile(`(?m)^Example[ \t]+\d+:`),
	regexp.MustCompile(`(?m)^Definition[ \t]+\d+:`),
	regexp.MustCompile("(?s)```.*?```"),
	regexp.MustCompile(`(?s)\$\$.*?\$\$`),
	regexp.MustCompile(`<!-- Page: \d+ -->`),
}

// atomicMarkers are the boundary families whose matched region must never
// be cut through: fences and block formulas.
var atomicMarkers = []*regexp.Regexp{
	regexp.MustCompile("(?s)```.*?```"),
	regexp.MustCompile(`(?s)\$\$.*?\$\$`),
}

// Semantic is the semantic-section strategy. It grows a chunk greedily
// from boundary to boundary until the next segment would push it past the
// size ceiling, yielding variable-size chunks that stay concept-complete
// rather than uniform.
type Semantic struct {
	size    int
	maxSize int
	window  *Window
}

// NewSemantic creates a semantic-section splitter. maxChunkSize is the
// greedy-growth ceiling; segments are accumulated until the next one would
// exceed it.
func NewSemantic(size, overlap, minSize, maxChunkSize int) *Semantic {
	if size <= 0 {
		size = 1000
	}
	if maxChunkSize <= 0 {
		maxChunkSize = 2 * size
	}
	return &Semantic{size: size, maxSize: maxChunkSize, window: NewWindow(size, overlap, minSize)}
}

func (s *Semantic) Name() string { return "semantic_section" }

// Split accumulates boundary-delimited segments into chunks of at most
// maxSize characters. A single segment above the ceiling is emitted whole
// and flagged oversize when it contains an atomic unit, or handed to the
// character-window rule otherwise. Text with no boundaries at all falls
// back to the character-window rule entirely.
func (s *Semantic) Split(text string) []Piece {
	if len(text) == 0 {
		return nil
	}

	cuts := s.boundaries(text)
	if len(cuts) == 0 {
		return s.window.Split(text)
	}

	var pieces []Piece
	flush := func(from, to int) {
		if to > from {
			pieces = append(pieces, Piece{
				Text:         text[from:to],
				SectionTitle: leadingHeading(text[from:to]),
			})
		}
	}

	start := 0   // start of the chunk being grown
	segFrom := 0 // start of the current segment
	for _, cut := range append(cuts, len(text)) {
		if cut <= segFrom {
			continue
		}
		segLen := cut - segFrom

		// Would adding this segment overflow the current chunk?
		if segFrom > start && (segFrom-start)+segLen > s.maxSize {
			flush(start, segFrom)
			start = segFrom
		}

		if segLen > s.maxSize && segFrom == start {
			pieces = append(pieces, s.splitOversized(text[segFrom:cut])...)
			start = cut
		}
		segFrom = cut
	}
	flush(start, len(text))

	return pieces
}

// splitOversized handles a single boundary-free segment above the size
// ceiling. Segments containing an atomic unit pass through whole and
// flagged; plain prose degrades to the character-window rule.
func (s *Semantic) splitOversized(segment string) []Piece {
	for _, re := range atomicMarkers {
		if re.MatchString(segment) {
			return []Piece{{
				Text:         segment,
				SectionTitle: leadingHeading(segment),
				Oversize:     true,
			}}
		}
	}
	sub := s.window.Split(segment)
	for i := range sub {
		sub[i].SectionTitle = leadingHeading(segment)
	}
	return sub
}

// boundaries collects the sorted, deduplicated start offsets of all
// semantic markers, excluding any marker that begins inside an atomic
// region (a heading-looking line inside a code fence is not a boundary).
func (s *Semantic) boundaries(text string) []int {
	var atomic []patterns.Match
	for _, re := range atomicMarkers {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			atomic = append(atomic, patterns.Match{Start: loc[0], End: loc[1]})
		}
	}

	seen := make(map[int]struct{})
	var cuts []int
	for _, re := range semanticMarkers {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			pos := loc[0]
			if pos == 0 || insideAtomic(pos, atomic) {
				continue
			}
			if _, dup := seen[pos]; dup {
				continue
			}
			seen[pos] = struct{}{}
			cuts = append(cuts, pos)
		}
	}
	sort.Ints(cuts)
	return cuts
}

// insideAtomic reports whether pos falls strictly inside an atomic region.
func insideAtomic(pos int, regions []patterns.Match) bool {
	for _, r := range regions {
		if pos > r.Start && pos < r.End {
			return true
		}
	}
	return false
}

// leadingHeading returns the heading text when the piece starts with a
// markdown heading line, otherwise "".
func leadingHeading(text string) string {
	trimmed := strings.TrimLeft(text, "\n")
	line, _, _ := strings.Cut(trimmed, "\n")
	if m := headingLine.FindStringSubmatch(line); m != nil {
		return m[2]
	}
	return ""
}
