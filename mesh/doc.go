// Package mesh emits an unstructured-grid-like container from a spatial
// graph: a point cloud plus either straight-line or full-polyline cells per
// edge, carrying the per-point and per-cell attributes spec.md §4.12 names.
package mesh
