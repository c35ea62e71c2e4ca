package splitter

import (
	"strings"

	"github.com/Team-01-DAMG-7245/Automated-Financial-Concept-Note-Generator/internal/patterns"
)

// Code is the code-preserving strategy. Fenced regions are located first
// and never cut. Each fence is emitted as one chunk together with up to
// contextParagraphs paragraphs of prose taken from immediately before and
// after it; surrounding prose that is not absorbed as context is split by
// the character-window rule.
type Code struct {
	size     int
	maxCode  int
	ctxParas int
	window   *Window
}

// NewCode creates a code-preserving splitter. maxCodeChunkSize is the
// ceiling for a fence-plus-context chunk; a bare fence larger than the
// ceiling is emitted whole and flagged oversize, never truncated.
func NewCode(size, overlap, minSize, maxCodeChunkSize, contextParagraphs int) *Code {
	if size <= 0 {
		size = 1000
	}
	if maxCodeChunkSize <= 0 {
		maxCodeChunkSize = 2 * size
	}
	if contextParagraphs < 0 {
		contextParagraphs = 0
	}
	return &Code{
		size:     size,
		maxCode:  maxCodeChunkSize,
		ctxParas: contextParagraphs,
		window:   NewWindow(size, overlap, minSize),
	}
}

func (c *Code) Name() string { return "code_preserving" }

type codeSegment struct {
	text     string
	fence    bool
	degraded bool
}

// Split locates fence regions, absorbs adjacent context paragraphs into
// each fence chunk, and window-splits the remaining prose. An opening
// fence with no close extends to the end of the span and its chunk is
// flagged degraded. Context paragraphs move into the fence chunk rather
// than being duplicated, so the pieces still tile the input exactly.
func (c *Code) Split(text string) []Piece {
	if len(text) == 0 {
		return nil
	}

	regions, unterminated := patterns.FenceRegions(text)
	if len(regions) == 0 {
		return c.window.Split(text)
	}

	segs := c.segment(text, regions, unterminated)
	c.absorbContext(segs)

	var pieces []Piece
	for _, seg := range segs {
		if !seg.fence {
			pieces = append(pieces, c.window.Split(seg.text)...)
			continue
		}
		pieces = append(pieces, Piece{
			Text:     seg.text,
			Degraded: seg.degraded,
			Oversize: len(seg.text) > c.maxCode,
		})
	}
	return pieces
}

// segment cuts the text into alternating prose and fence segments.
func (c *Code) segment(text string, regions []patterns.Match, unterminated bool) []*codeSegment {
	var segs []*codeSegment
	pos := 0
	for i, r := range regions {
		if r.Start > pos {
			segs = append(segs, &codeSegment{text: text[pos:r.Start]})
		}
		segs = append(segs, &codeSegment{
			text:     text[r.Start:r.End],
			fence:    true,
			degraded: unterminated && i == len(regions)-1,
		})
		pos = r.End
	}
	if pos < len(text) {
		segs = append(segs, &codeSegment{text: text[pos:]})
	}
	return segs
}

// absorbContext moves up to ctxParas paragraphs from the prose segments
// adjacent to each fence into the fence segment, as long as the combined
// chunk stays within the code chunk ceiling. Absorption is skipped, not
// truncated, when the budget runs out.
func (c *Code) absorbContext(segs []*codeSegment) {
	for i, seg := range segs {
		if !seg.fence {
			continue
		}

		budget := c.maxCode - len(seg.text)

		if i > 0 && !segs[i-1].fence {
			rest, tail := tailParagraphs(segs[i-1].text, c.ctxParas, budget)
			segs[i-1].text = rest
			seg.text = tail + seg.text
			budget -= len(tail)
		}

		if i+1 < len(segs) && !segs[i+1].fence {
			head, rest := headParagraphs(segs[i+1].text, c.ctxParas, budget)
			seg.text += head
			segs[i+1].text = rest
		}
	}
}

// tailParagraphs returns (rest, tail) where tail is up to n trailing
// paragraphs of prose whose combined length fits in budget.
func tailParagraphs(prose string, n, budget int) (string, string) {
	parts := strings.SplitAfter(prose, "\n\n")
	taken := 0
	size := 0
	for i := len(parts) - 1; i >= 0 && taken < n; i-- {
		if size+len(parts[i]) > budget {
			break
		}
		size += len(parts[i])
		// Separator-only parts ride along without consuming the quota.
		if strings.TrimSpace(parts[i]) != "" {
			taken++
		}
	}
	cut := len(prose) - size
	return prose[:cut], prose[cut:]
}

// headParagraphs returns (head, rest) where head is up to n leading
// paragraphs of prose whose combined length fits in budget.
func headParagraphs(prose string, n, budget int) (string, string) {
	parts := strings.SplitAfter(prose, "\n\n")
	size := 0
	taken := 0
	for _, part := range parts {
		if taken >= n || size+len(part) > budget {
			break
		}
		size += len(part)
		if strings.TrimSpace(part) != "" {
			taken++
		}
	}
	return prose[:size], prose[size:]
}
