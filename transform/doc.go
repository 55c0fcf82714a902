// Package transform converts SpatialGraph vertex and edge-point positions
// between index space (voxel coordinates) and physical space, using the
// image affine convention spec.md §4.7 specifies: physical = o + D·(s⊙index),
// index = (Dᵀ·(physical−o))⊘s. Both rewrites mutate the graph in place.
package transform
