// Package spatial defines the 3-D point primitive and the axis-aligned
// bounding box used throughout sgext, along with their standard query
// operations.
//
// Point3 is an ordered triple of float64 coordinates. BoundingBox is two
// Point3 values, Ini <= End componentwise, with constructors from corners,
// from a center and a cube radius, and from a center with per-axis
// half-sizes.
//
// Nothing here owns resources and nothing here is safe to compare with ==
// for approximate equality; use Point3.Dist or Point3.AlmostEqual for that.
package spatial
