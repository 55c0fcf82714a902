package compare

import (
	"sort"

	"github.com/sgext-go/sgext/graph"
	"github.com/sgext-go/sgext/locate"
	"github.com/sgext-go/sgext/spatial"
)

// Comparator pools g0 (low-information) and g1 (high-information) into a
// single locator (g0 at graph-index 0, g1 at graph-index 1) and exposes the
// diff/peninsula/extend operations over that pairing.
type Comparator struct {
	g0, g1      *graph.SpatialGraph
	loc         *locate.Locator
	tolerance   float64
	radiusTouch float64
}

// NewComparator builds the shared locator over g0 and g1. tolerance is the
// merge-point tolerance (spec.md §4.8); radiusTouch is the separate "does
// this count as touching" radius peninsula detection uses (spec.md §4.9),
// which may be looser than the merge tolerance.
func NewComparator(g0, g1 *graph.SpatialGraph, tolerance, radiusTouch float64) *Comparator {
	return &Comparator{
		g0:          g0,
		g1:          g1,
		loc:         locate.Build([]*graph.SpatialGraph{g0, g1}, tolerance, nil),
		tolerance:   tolerance,
		radiusTouch: radiusTouch,
	}
}

// matchG0Vertex reports the g0 vertex at the same merged point as pos, if
// any such vertex exists.
func (c *Comparator) matchG0Vertex(pos spatial.Point3) (graph.VertexID, bool) {
	id, distSq, ok := c.loc.FindClosest(pos)
	if !ok || distSq > c.tolerance*c.tolerance {
		return 0, false
	}
	for _, d := range c.loc.Descriptors(id) {
		if d.GraphIndex == 0 && d.IsVertex {
			return d.VertexID, true
		}
	}
	return 0, false
}

// DiffResult is the output of Diff: the g1 edges/vertices judged spurious
// against g0, plus a g1 view with them removed.
type DiffResult struct {
	EdgesToRemove    []graph.EdgeID
	VerticesToRemove []graph.VertexID
	Filtered         *graph.SpatialGraph
}

// Diff implements spec.md §4.9's edge/vertex diff: for each g1 vertex, find
// the nearest g0 descriptor. A g1 vertex that lands on a g0 edge-interior
// point with no g0 vertex nearby is a spurious branch root, so it and its
// incident g1 edges are marked for removal.
func (c *Comparator) Diff() DiffResult {
	edgesToRemove := make(map[graph.EdgeID]bool)
	verticesToRemove := make(map[graph.VertexID]bool)

	for _, v1 := range c.g1.Vertices() {
		vtx, err := c.g1.GetVertex(v1)
		if err != nil {
			continue
		}
		id, _, ok := c.loc.FindClosest(vtx.Pos)
		if !ok {
			continue
		}
		hasG0Vertex, hasG0EdgePoint := false, false
		for _, d := range c.loc.Descriptors(id) {
			if d.GraphIndex != 0 {
				continue
			}
			if d.IsVertex {
				hasG0Vertex = true
			} else {
				hasG0EdgePoint = true
			}
		}
		if hasG0EdgePoint && !hasG0Vertex {
			verticesToRemove[v1] = true
			for _, e := range c.g1.IncidentEdges(v1) {
				edgesToRemove[e.ID] = true
			}
		}
	}

	filtered := c.g1.Clone()
	for eid := range edgesToRemove {
		_ = filtered.RemoveEdge(eid)
	}
	for vid := range verticesToRemove {
		_ = filtered.RemoveIsolatedVertex(vid)
	}

	return DiffResult{
		EdgesToRemove:    sortedEdgeIDs(edgesToRemove),
		VerticesToRemove: sortedVertexIDs(verticesToRemove),
		Filtered:         filtered,
	}
}

// ExtendLowInfoGraph implements spec.md §4.9's "extend via BFS": for every
// g1 edge whose endpoints both map onto distinct g0 vertices, it replaces
// that g0 edge's edge_points with g1's finer polyline. It never adds or
// removes a vertex or edge of g0 (see the package test asserting the
// invariant spec.md §8 names for this operation).
func (c *Comparator) ExtendLowInfoGraph() *graph.SpatialGraph {
	out := c.g0.Clone()

	for _, e1 := range c.g1.Edges() {
		from1, err := c.g1.GetVertex(e1.From)
		if err != nil {
			continue
		}
		to1, err := c.g1.GetVertex(e1.To)
		if err != nil {
			continue
		}
		u0, ok1 := c.matchG0Vertex(from1.Pos)
		v0, ok2 := c.matchG0Vertex(to1.Pos)
		if !ok1 || !ok2 || u0 == v0 {
			continue
		}
		candidates := out.EdgesBetween(u0, v0)
		if len(candidates) == 0 {
			continue
		}
		pts := make([]spatial.Point3, len(e1.EdgePoints))
		copy(pts, e1.EdgePoints)
		_ = out.SetEdgePoints(candidates[0].ID, pts)
	}

	return out
}

func sortedEdgeIDs(m map[graph.EdgeID]bool) []graph.EdgeID {
	out := make([]graph.EdgeID, 0, len(m))
	for id := range m {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func sortedVertexIDs(m map[graph.VertexID]bool) []graph.VertexID {
	out := make([]graph.VertexID, 0, len(m))
	for id := range m {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
