package transform

import (
	"github.com/sgext-go/sgext/graph"
	"github.com/sgext-go/sgext/spatial"
)

// Direction is a 3x3 orthonormal direction-cosine matrix, row-major
// (Direction[row][col]). IdentityDirection returns the common default.
type Direction [3][3]float64

// IdentityDirection returns the 3x3 identity matrix.
func IdentityDirection() Direction {
	return Direction{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Mul applies the matrix to p treated as a column vector: D·p.
func (d Direction) Mul(p spatial.Point3) spatial.Point3 {
	return spatial.Point3{
		X: d[0][0]*p.X + d[0][1]*p.Y + d[0][2]*p.Z,
		Y: d[1][0]*p.X + d[1][1]*p.Y + d[1][2]*p.Z,
		Z: d[2][0]*p.X + d[2][1]*p.Y + d[2][2]*p.Z,
	}
}

// Transpose returns Dᵀ, valid as the inverse of Mul since Direction is
// orthonormal.
func (d Direction) Transpose() Direction {
	var t Direction
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t[j][i] = d[i][j]
		}
	}
	return t
}

// ToPhysical maps an index-space point to physical space: physical =
// origin + D·(spacing⊙index).
func ToPhysical(index, origin, spacing spatial.Point3, d Direction) spatial.Point3 {
	scaled := spatial.Point3{X: index.X * spacing.X, Y: index.Y * spacing.Y, Z: index.Z * spacing.Z}
	return origin.Add(d.Mul(scaled))
}

// ToIndex maps a physical-space point back to index space: index =
// (Dᵀ·(physical−origin))⊘spacing. Valid as ToPhysical's inverse because D
// is orthonormal.
func ToIndex(physical, origin, spacing spatial.Point3, d Direction) spatial.Point3 {
	rotated := d.Transpose().Mul(physical.Sub(origin))
	return spatial.Point3{X: rotated.X / spacing.X, Y: rotated.Y / spacing.Y, Z: rotated.Z / spacing.Z}
}

// ToPhysicalSpace rewrites every vertex position and every edge-point of g
// in place using the forward index→physical map.
func ToPhysicalSpace(g *graph.SpatialGraph, origin, spacing spatial.Point3, d Direction) {
	rewrite(g, func(p spatial.Point3) spatial.Point3 { return ToPhysical(p, origin, spacing, d) })
}

// ToIndexSpace rewrites every vertex position and every edge-point of g in
// place using the inverse physical→index map. Composing ToPhysicalSpace
// then ToIndexSpace (or vice versa) with the same origin/spacing/d is
// idempotent on the graph's geometry; neither function alone is
// idempotent.
func ToIndexSpace(g *graph.SpatialGraph, origin, spacing spatial.Point3, d Direction) {
	rewrite(g, func(p spatial.Point3) spatial.Point3 { return ToIndex(p, origin, spacing, d) })
}

func rewrite(g *graph.SpatialGraph, mapPoint func(spatial.Point3) spatial.Point3) {
	for _, vid := range g.Vertices() {
		v, err := g.GetVertex(vid)
		if err != nil {
			continue
		}
		_ = g.SetVertexPosition(vid, mapPoint(v.Pos))
	}
	for _, e := range g.Edges() {
		if len(e.EdgePoints) == 0 {
			continue
		}
		newPts := make([]spatial.Point3, len(e.EdgePoints))
		for i, p := range e.EdgePoints {
			newPts[i] = mapPoint(p)
		}
		_ = g.SetEdgePoints(e.ID, newPts)
	}
}
