// Package graphio reads and writes the human-readable spatial-graph text
// dump spec.md §6 calls out: a node/edge list carrying vertex positions and
// edge polylines. The byte layout is this package's own, since spec.md only
// fixes the information content, not the format.
package graphio
