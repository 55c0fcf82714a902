// Package locate pools vertex positions and edge-interior points from one or
// more spatial graphs into a single point cloud, merges coincident
// positions, and answers nearest-neighbor queries over the merged cloud via
// a gonum kd-tree.
//
// It exists to support comparing graphs produced at different reduction
// levels (lifted, extra-edges-removed, reduced, merged) against each other:
// each merged point id remembers which graph(s) contributed a position to
// it, via a slice holding one Descriptor per contribution, each tagged with
// its GraphIndex. A graph that contributed nothing to a point has no entry
// in that slice; there is no placeholder for it.
package locate
