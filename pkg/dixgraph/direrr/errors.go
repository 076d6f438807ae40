// Package direrr collects the sentinel errors shared across dixgraph,
// matching the error taxonomy of spec.md §7.
package direrr

import "errors"

// Sentinel errors for common cases across the translation-inference
// pipeline.
var (
	// ErrNodeNotFound is returned when a query node is absent from a
	// graph. Fatal to the single call that raised it, never fatal to
	// a batch operation iterating many nodes.
	ErrNodeNotFound = errors.New("node not found in graph")

	// ErrMalformedLine marks a record in an input file that failed to
	// parse. The dixfile readers skip such a line without returning
	// this error and without counting the skipped lines; it is never
	// fatal.
	ErrMalformedLine = errors.New("malformed line")

	// ErrEmptySample is returned by the evaluator when no mutually
	// unambiguous pair exists to sample from. The iteration ends
	// without metrics, and pipeline.Eval returns the error to its
	// caller without running further iterations.
	ErrEmptySample = errors.New("no mutually unambiguous pairs to sample")

	// ErrDegenerateMetrics is returned when precision + recall is
	// zero, which would otherwise divide by zero.
	ErrDegenerateMetrics = errors.New("precision and recall are both zero")

	// ErrMissingFile marks an absent lexicon or edge-list file. This
	// is an infrastructure-level error and aborts the run.
	ErrMissingFile = errors.New("missing input file")
)
