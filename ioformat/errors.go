package ioformat

import "errors"

// Sentinel errors for the tabular map formats. Callers branch on these with
// errors.Is, never by string comparison.
var (
	// ErrMalformedRow indicates a CSV row had the wrong number of columns
	// or a non-integer field.
	ErrMalformedRow = errors.New("ioformat: malformed row")

	// ErrVertexNotFound indicates a vertex id read from a fixed-generation
	// or fixed-label file does not exist in the graph it is applied to.
	ErrVertexNotFound = errors.New("ioformat: vertex not found in graph")
)
