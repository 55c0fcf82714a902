package locate

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/sgext-go/sgext/graph"
	"github.com/sgext-go/sgext/spatial"
)

// PointID indexes a merged point in a Locator's point cloud.
type PointID int

// Descriptor names one contribution to a merged point: which graph it came
// from, and whether it is a vertex or an interior point of an edge's
// polyline.
type Descriptor struct {
	GraphIndex     int
	IsVertex       bool
	VertexID       graph.VertexID
	EdgeID         graph.EdgeID
	EdgePointIndex int
}

// Result is one hit from a nearest-neighbor query.
type Result struct {
	PointID     PointID
	DistSq      float64
	Descriptors []Descriptor
}

// Locator pools and indexes points from one or more graphs. Build it with
// Build; it is read-only afterward.
type Locator struct {
	numGraphs   int
	positions   []spatial.Point3
	descriptors [][]Descriptor
	tree        *kdtree.Tree
}

type bucketKey struct{ x, y, z int64 }

type bucket struct {
	sum         spatial.Point3
	count       int
	descriptors []Descriptor
}

func bucketOf(p spatial.Point3, tolerance float64) bucketKey {
	return bucketKey{
		x: int64(math.Floor(p.X / tolerance)),
		y: int64(math.Floor(p.Y / tolerance)),
		z: int64(math.Floor(p.Z / tolerance)),
	}
}

// Build pools every vertex position and edge-interior point of every graph
// in graphs, collapsing positions that fall in the same tolerance-sized
// grid cell into a single merged point (a deliberately simple
// spatial-hashing stand-in for an exact epsilon-ball merge).
// bbox, when non-nil, prunes contributions outside it before merging. The
// resulting point cloud is indexed with a kd-tree for FindClosest.
func Build(graphs []*graph.SpatialGraph, tolerance float64, bbox *spatial.BoundingBox) *Locator {
	if tolerance <= 0 {
		tolerance = spatial.Epsilon
	}

	buckets := make(map[bucketKey]*bucket)
	insert := func(p spatial.Point3, d Descriptor) {
		if bbox != nil && !bbox.Contains(p) {
			return
		}
		k := bucketOf(p, tolerance)
		b, ok := buckets[k]
		if !ok {
			b = &bucket{}
			buckets[k] = b
		}
		b.sum = b.sum.Add(p)
		b.count++
		b.descriptors = append(b.descriptors, d)
	}

	for gi, g := range graphs {
		for _, vid := range g.Vertices() {
			v, err := g.GetVertex(vid)
			if err != nil {
				continue
			}
			insert(v.Pos, Descriptor{GraphIndex: gi, IsVertex: true, VertexID: vid})
		}
		for _, e := range g.Edges() {
			for i, p := range e.EdgePoints {
				insert(p, Descriptor{GraphIndex: gi, EdgeID: e.ID, EdgePointIndex: i})
			}
		}
	}

	keys := make([]bucketKey, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].x != keys[j].x {
			return keys[i].x < keys[j].x
		}
		if keys[i].y != keys[j].y {
			return keys[i].y < keys[j].y
		}
		return keys[i].z < keys[j].z
	})

	l := &Locator{
		numGraphs:   len(graphs),
		positions:   make([]spatial.Point3, len(keys)),
		descriptors: make([][]Descriptor, len(keys)),
	}
	points := make(treePoints, len(keys))
	for i, k := range keys {
		b := buckets[k]
		pos := b.sum.Scale(1 / float64(b.count))
		l.positions[i] = pos
		l.descriptors[i] = b.descriptors
		points[i] = &treePoint{id: PointID(i), pos: pos}
	}
	if len(points) > 0 {
		l.tree = kdtree.New(points, false)
	}
	return l
}

// NumGraphs returns the number of input graphs Build pooled points from;
// every Descriptor's GraphIndex lies in [0, NumGraphs).
func (l *Locator) NumGraphs() int { return l.numGraphs }

// Len returns the number of merged points in the cloud.
func (l *Locator) Len() int { return len(l.positions) }

// Position returns the representative (centroid) position of a merged
// point.
func (l *Locator) Position(id PointID) spatial.Point3 { return l.positions[id] }

// Descriptors returns every contribution merged into id.
func (l *Locator) Descriptors(id PointID) []Descriptor { return l.descriptors[id] }

// FindClosest returns the merged point nearest to query and its squared
// distance. ok is false only when the locator holds no points.
func (l *Locator) FindClosest(query spatial.Point3) (id PointID, distSq float64, ok bool) {
	if l.tree == nil {
		return 0, 0, false
	}
	nearest, dist := l.tree.Nearest(&treePoint{pos: query})
	return nearest.(*treePoint).id, dist, true
}

// FindClosestWithinRadius returns the merged point nearest to query if it
// lies within radius, or ok=false if the closest point (or every point) is
// farther than that.
func (l *Locator) FindClosestWithinRadius(radius float64, query spatial.Point3) (id PointID, distSq float64, ok bool) {
	id, distSq, ok = l.FindClosest(query)
	if !ok || distSq > radius*radius {
		return 0, 0, false
	}
	return id, distSq, true
}

// ClosestNDescriptors returns the n merged points nearest to query, nearest
// first, each paired with its DistSq and the descriptors it carries. It
// scans the full point cloud rather than walking the kd-tree: simple, exact,
// and fast enough for the modest point counts a single graph comparison
// produces.
func (l *Locator) ClosestNDescriptors(query spatial.Point3, n int) []Result {
	results := l.allByDistance(query)
	if n < len(results) {
		results = results[:n]
	}
	return results
}

// ClosestDescriptorsByRadius returns every merged point within radius of
// query, nearest first.
func (l *Locator) ClosestDescriptorsByRadius(query spatial.Point3, radius float64) []Result {
	all := l.allByDistance(query)
	r2 := radius * radius
	out := make([]Result, 0, len(all))
	for _, r := range all {
		if r.DistSq > r2 {
			break
		}
		out = append(out, r)
	}
	return out
}

func (l *Locator) allByDistance(query spatial.Point3) []Result {
	out := make([]Result, len(l.positions))
	for i, pos := range l.positions {
		out[i] = Result{PointID: PointID(i), DistSq: query.DistSq(pos), Descriptors: l.descriptors[i]}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DistSq < out[j].DistSq })
	return out
}
