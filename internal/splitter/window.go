package splitter

import "strings"

// windowSeparators is the boundary priority list: paragraph break, line
// break, sentence end, then hard character cut.
var windowSeparators = []string{"\n\n", "\n", ". "}

// Window is the character-window strategy. It cuts at the highest-priority
// separator that keeps each chunk within the target size and carries a
// trailing overlap from each chunk onto the next.
type Window struct {
	size    int
	overlap int
	min     int
}

// NewWindow creates a character-window splitter with the given target
// size, overlap, and minimum chunk size. The overlap is clamped below the
// size; the minimum is clamped to the size.
func NewWindow(size, overlap, min int) *Window {
	if size <= 0 {
		size = 1000
	}
	if min < 0 {
		min = 0
	}
	if min > size {
		min = size
	}
	return &Window{size: size, overlap: clampOverlap(overlap, size), min: min}
}

func (w *Window) Name() string { return "character_window" }

// Split walks the text emitting chunks of at most size characters. Each
// chunk after the first begins with up to overlap characters copied from
// the end of the previous chunk; the fresh portions tile the input
// exactly, so stripping the overlap prefixes reconstructs it. A separator
// cut that would leave a non-final chunk below the minimum size is
// rejected in favor of the next separator in the priority list, then a
// hard cut.
func (w *Window) Split(text string) []Piece {
	if len(text) == 0 {
		return nil
	}

	var pieces []Piece
	pos := 0
	prev := ""

	for pos < len(text) {
		overlapPrefix := ""
		if prev != "" {
			overlapPrefix = tailOverlap(prev, w.overlap)
		}

		budget := w.size - len(overlapPrefix)
		if budget < 1 {
			budget = 1
		}

		// Floor on the fresh portion so the whole chunk, prefix included,
		// reaches the minimum size.
		floor := w.min - len(overlapPrefix)
		if floor < 1 {
			floor = 1
		}

		remaining := len(text) - pos
		var cut int
		degraded := false
		if remaining <= budget {
			cut = remaining
		} else {
			cut = findCut(text[pos:pos+budget], windowSeparators, floor)
			if cut <= 0 {
				cut = budget
				degraded = true
			}
		}

		content := overlapPrefix + text[pos:pos+cut]
		pieces = append(pieces, Piece{
			Text:     content,
			Overlap:  len(overlapPrefix),
			Degraded: degraded,
		})
		prev = content
		pos += cut
	}

	return pieces
}

// findCut returns the cut position within window using the earliest
// separator in the priority list whose last occurrence cuts at or beyond
// floor, cutting after the separator so it stays with the preceding
// chunk. Returns 0 when no separator yields an acceptable cut.
func findCut(window string, separators []string, floor int) int {
	for _, sep := range separators {
		idx := strings.LastIndex(window, sep)
		if idx <= 0 {
			continue
		}
		if cut := idx + len(sep); cut >= floor {
			return cut
		}
	}
	return 0
}

// tailOverlap returns the last n characters of s, without reaching back
// past the start of the chunk.
func tailOverlap(s string, n int) string {
	if n <= 0 || len(s) == 0 {
		return ""
	}
	if n >= len(s) {
		return s
	}
	return s[len(s)-n:]
}
