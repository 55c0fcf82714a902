package spatial

import (
	"math"
	"sort"
)

// Epsilon is the default tolerance used by AlmostEqual.
const Epsilon = 1e-9

// Point3 is an ordered triple of double-precision coordinates, used both as
// a position and as a free vector depending on context.
type Point3 struct {
	X, Y, Z float64
}

// NewPoint3 builds a Point3 from three coordinates.
func NewPoint3(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

// Add returns p+q componentwise.
func (p Point3) Add(q Point3) Point3 {
	return Point3{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

// Sub returns p-q componentwise.
func (p Point3) Sub(q Point3) Point3 {
	return Point3{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Scale returns p*s.
func (p Point3) Scale(s float64) Point3 {
	return Point3{p.X * s, p.Y * s, p.Z * s}
}

// Div returns p/s. Division by zero yields +/-Inf or NaN components, the
// same as the underlying float64 division; callers that cannot tolerate
// that must guard s != 0 themselves.
func (p Point3) Div(s float64) Point3 {
	return Point3{p.X / s, p.Y / s, p.Z / s}
}

// Dot returns the dot product p.q.
func (p Point3) Dot(q Point3) float64 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

// Cross returns the cross product p x q.
func (p Point3) Cross(q Point3) Point3 {
	return Point3{
		X: p.Y*q.Z - p.Z*q.Y,
		Y: p.Z*q.X - p.X*q.Z,
		Z: p.X*q.Y - p.Y*q.X,
	}
}

// Norm returns the Euclidean norm (length) of p treated as a vector.
func (p Point3) Norm() float64 {
	return math.Sqrt(p.Dot(p))
}

// Dist returns the Euclidean distance between p and q.
func (p Point3) Dist(q Point3) float64 {
	return p.Sub(q).Norm()
}

// DistSq returns the squared Euclidean distance between p and q, avoiding
// the sqrt call; used by the point locator's radius comparisons.
func (p Point3) DistSq(q Point3) float64 {
	d := p.Sub(q)
	return d.Dot(d)
}

// Angle returns the unsigned angle in radians, in [0, pi], between vectors
// p and q. It uses atan2(|p x q|, p.q) rather than acos(p.q/(|p||q|)): the
// atan2 form stays numerically well-conditioned near 0 and pi, where acos's
// derivative blows up, and it naturally folds the 2-D atan2(cross,dot) and
// 3-D unsigned-acos cases spec.md calls out into a single expression.
func Angle(p, q Point3) float64 {
	return math.Atan2(p.Cross(q).Norm(), p.Dot(q))
}

// AlmostEqual reports whether p and q are within eps of each other on every
// coordinate.
func (p Point3) AlmostEqual(q Point3, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps && math.Abs(p.Z-q.Z) <= eps
}

// Less orders points lexicographically by X, then Y, then Z. It is the
// ordering spec.md §3 specifies for sorting point sequences (used when
// comparing two edge polylines for equality regardless of traversal
// direction).
func (p Point3) Less(q Point3) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.Z < q.Z
}

// SortPoints returns a sorted copy of pts under the Less lexicographic
// order; the input slice is not mutated.
func SortPoints(pts []Point3) []Point3 {
	out := make([]Point3, len(pts))
	copy(out, pts)
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}
