package types

import "errors"

// Domain errors shared across the chunking components
var (
	// ErrInvalidConfig indicates thresholds or sizes outside valid
	// ranges. Raised at configuration time, before any span is processed.
	ErrInvalidConfig = errors.New("invalid chunking configuration")

	// ErrNoChunks indicates a splitter produced an empty chunk list for a
	// non-empty span, which violates the splitter contract.
	ErrNoChunks = errors.New("no chunks produced for non-empty span")
)
