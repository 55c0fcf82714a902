package spatial

import "math"

// BoundingBox is an axis-aligned box with Ini <= End componentwise.
type BoundingBox struct {
	Ini Point3
	End Point3
}

// NewBoundingBox builds a BoundingBox from two corners, normalizing them so
// that Ini <= End on every axis regardless of the order the caller passed
// them in.
func NewBoundingBox(a, b Point3) BoundingBox {
	return BoundingBox{
		Ini: Point3{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y), Z: math.Min(a.Z, b.Z)},
		End: Point3{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y), Z: math.Max(a.Z, b.Z)},
	}
}

// NewBoundingBoxFromCenterRadius builds a cube BoundingBox centered at
// center with half-edge-length radius on every axis.
func NewBoundingBoxFromCenterRadius(center Point3, radius float64) BoundingBox {
	r := Point3{X: radius, Y: radius, Z: radius}
	return BoundingBox{Ini: center.Sub(r), End: center.Add(r)}
}

// NewBoundingBoxFromCenterHalfSizes builds a BoundingBox centered at center.
// If useRadius is true, halfSizes are treated as per-axis half-extents
// (mirrors NewBoundingBoxFromCenterRadius's semantics but per axis);
// if false, halfSizes are treated as full extents and are halved internally.
func NewBoundingBoxFromCenterHalfSizes(center, halfSizes Point3, useRadius bool) BoundingBox {
	h := halfSizes
	if !useRadius {
		h = h.Scale(0.5)
	}
	return BoundingBox{Ini: center.Sub(h), End: center.Add(h)}
}

// Size returns End - Ini.
func (b BoundingBox) Size() Point3 {
	return b.End.Sub(b.Ini)
}

// Center returns the midpoint of the box.
func (b BoundingBox) Center() Point3 {
	return b.Ini.Add(b.End).Scale(0.5)
}

// Contains reports whether p lies within the box, inclusive of the
// boundary.
func (b BoundingBox) Contains(p Point3) bool {
	return p.X >= b.Ini.X && p.X <= b.End.X &&
		p.Y >= b.Ini.Y && p.Y <= b.End.Y &&
		p.Z >= b.Ini.Z && p.Z <= b.End.Z
}

// ContainsBox reports whether b fully contains other.
func (b BoundingBox) ContainsBox(other BoundingBox) bool {
	return b.Contains(other.Ini) && b.Contains(other.End)
}

// Union returns the smallest BoundingBox enclosing both b and other.
func (b BoundingBox) Union(other BoundingBox) BoundingBox {
	return BoundingBox{
		Ini: Point3{
			X: math.Min(b.Ini.X, other.Ini.X),
			Y: math.Min(b.Ini.Y, other.Ini.Y),
			Z: math.Min(b.Ini.Z, other.Ini.Z),
		},
		End: Point3{
			X: math.Max(b.End.X, other.End.X),
			Y: math.Max(b.End.Y, other.End.Y),
			Z: math.Max(b.End.Z, other.End.Z),
		},
	}
}

// EnclosingBox returns the smallest BoundingBox enclosing every box in bs.
// It panics if bs is empty; callers must guard the zero-box case
// themselves, as there is no meaningful "empty" BoundingBox to return.
func EnclosingBox(bs []BoundingBox) BoundingBox {
	if len(bs) == 0 {
		panic("spatial: EnclosingBox requires at least one box")
	}
	out := bs[0]
	for _, b := range bs[1:] {
		out = out.Union(b)
	}
	return out
}

// EnclosingBoxOfPoints returns the smallest BoundingBox enclosing every
// point in pts. It panics if pts is empty.
func EnclosingBoxOfPoints(pts []Point3) BoundingBox {
	if len(pts) == 0 {
		panic("spatial: EnclosingBoxOfPoints requires at least one point")
	}
	out := BoundingBox{Ini: pts[0], End: pts[0]}
	for _, p := range pts[1:] {
		out.Ini = Point3{X: math.Min(out.Ini.X, p.X), Y: math.Min(out.Ini.Y, p.Y), Z: math.Min(out.Ini.Z, p.Z)}
		out.End = Point3{X: math.Max(out.End.X, p.X), Y: math.Max(out.End.Y, p.Y), Z: math.Max(out.End.Z, p.Z)}
	}
	return out
}
