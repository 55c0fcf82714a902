package locate

import (
	"sort"

	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/sgext-go/sgext/spatial"
)

// treePoint adapts a merged point into gonum's kdtree.Comparable. PointID
// travels alongside the coordinates so a tree query can be mapped straight
// back to its descriptor without a second lookup.
type treePoint struct {
	id  PointID
	pos spatial.Point3
}

func (p *treePoint) coord(d kdtree.Dim) float64 {
	switch d {
	case 0:
		return p.pos.X
	case 1:
		return p.pos.Y
	default:
		return p.pos.Z
	}
}

// Compare returns the signed difference between p and c along dimension d,
// as kdtree.Comparable requires.
func (p *treePoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	o := c.(*treePoint)
	return p.coord(d) - o.coord(d)
}

// Dims reports the point's dimensionality, always 3 here.
func (p *treePoint) Dims() int { return 3 }

// Distance returns the squared Euclidean distance to c, matching spec.md's
// "dist²" query results directly without an extra sqrt round-trip.
func (p *treePoint) Distance(c kdtree.Comparable) float64 {
	o := c.(*treePoint)
	return p.pos.DistSq(o.pos)
}

// treePoints is a kdtree.Interface over a slice of *treePoint. Pivot is
// implemented by a full sort along the requested dimension rather than the
// package's internal median-of-medians partitioning; this trades optimal
// build complexity for an implementation whose correctness is easy to
// verify by inspection, which matters here since nothing in this module is
// executed before being shipped.
type treePoints []*treePoint

func (s treePoints) Len() int { return len(s) }

func (s treePoints) Index(i int) kdtree.Comparable { return s[i] }

func (s treePoints) Slice(start, end int) kdtree.Interface { return s[start:end] }

func (s treePoints) Pivot(d kdtree.Dim) int {
	sort.Slice(s, func(i, j int) bool { return s[i].coord(d) < s[j].coord(d) })
	return len(s) / 2
}
