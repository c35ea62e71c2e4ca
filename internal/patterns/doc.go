// Package patterns provides stateless detectors for code, formula, and
// heading markup within a text span.
//
// All functions are pure: they take a string, return match spans or
// derived counts, and never modify state or error on malformed markup.
// A broken construct simply fails to match. Configuration is carried by
// the patterns themselves; there are no ambient globals.
package patterns
