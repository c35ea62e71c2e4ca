package splitter

// Piece is one splitter output: a contiguous slice of the input text plus
// the bookkeeping the router needs to build a Chunk from it.
type Piece struct {
	// Text is the piece content, including any overlap prefix.
	Text string

	// Overlap is the number of leading characters duplicated from the end
	// of the previous piece. Zero for the first piece of a span.
	Overlap int

	// SectionTitle is the governing heading for the piece, when the
	// strategy tracks one.
	SectionTitle string

	// Degraded marks pieces produced by a last-resort rule (hard cut,
	// unterminated fence recovery).
	Degraded bool

	// Oversize marks an atomic unit that exceeds its size ceiling and was
	// emitted whole.
	Oversize bool
}

// Splitter turns one span's text into an ordered piece sequence. Split
// returns nil only for empty input; a non-empty input always yields at
// least one piece.
type Splitter interface {
	Name() string
	Split(text string) []Piece
}

// hardCut splits text at fixed character positions. Last resort when no
// boundary of any kind can be found.
func hardCut(text string, size int) []Piece {
	if size <= 0 {
		size = 1
	}
	var pieces []Piece
	for start := 0; start < len(text); start += size {
		end := start + size
		if end > len(text) {
			end = len(text)
		}
		pieces = append(pieces, Piece{Text: text[start:end], Degraded: true})
	}
	return pieces
}

// clampOverlap keeps the overlap strictly below the chunk size so every
// chunk makes forward progress.
func clampOverlap(overlap, size int) int {
	if overlap < 0 {
		return 0
	}
	if overlap >= size {
		return size / 4
	}
	return overlap
}
