// Package metrics computes the per-vertex and per-edge measurements spec.md
// §4.6 names (degree sequence, end-to-end distance, contour length, angles
// between out-edges, and their cosines), plus a supplemented Summarize
// helper that turns any of those measurement maps into summary statistics
// for reporting. Contour-length summation and the statistics in Summarize
// are delegated to gonum (gonum.org/v1/gonum/floats and .../stat) rather
// than hand-rolled loops, the way the rest of the retrieval pack's
// numerically-heavy repos lean on gonum instead of re-deriving it.
package metrics
