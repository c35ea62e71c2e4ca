// Package splitter implements the four boundary-aware splitting
// strategies: character-window, header-hierarchy, code-preserving, and
// semantic-section.
//
// All strategies share one contract: Split turns a span's text into an
// ordered sequence of pieces that tile the input exactly. A piece may
// begin with a declared overlap prefix copied from the end of the previous
// piece; stripping those prefixes and concatenating the remainder
// reconstructs the original text byte for byte. The code-preserving and
// semantic strategies never cut inside a fence or block formula, and an
// atomic unit larger than the size ceiling passes through whole with its
// Oversize flag set rather than being truncated.
//
// Strategies are pure functions over their input plus immutable
// configuration, so one instance can serve concurrent callers. A strategy
// that cannot find any boundary in an oversized region degrades to hard
// character cuts and marks the affected pieces Degraded instead of
// returning an error.
package splitter
