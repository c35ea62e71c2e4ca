// Package router implements hybrid content-aware routing: each span is
// classified by its pattern ratios and dispatched to the splitting
// strategy suited to its content type.
//
// Strategy assignment is fixed:
//
//	code      -> code_preserving
//	formula   -> semantic_section
//	narrative -> header_hierarchy
//	mixed     -> character_window
//
// The router also owns the configuration surface shared by the
// classifier and the splitters, and keeps cumulative routing statistics
// for observability.
package router
