package topology

import (
	"sort"

	"github.com/sgext-go/sgext/graph"
	"github.com/sgext-go/sgext/spatial"
)

// EdgePair is an unordered pair of parallel edge ids sharing the same
// unordered endpoint pair.
type EdgePair struct {
	E, F graph.EdgeID
}

// GetParallelEdges returns every pair of edges sharing the same unordered
// endpoint pair. With unique=true, (e,f) and (f,e) are not both returned,
// and neither is (e,e).
func GetParallelEdges(g *graph.SpatialGraph, unique bool) []EdgePair {
	type key struct{ u, v graph.VertexID }
	groups := make(map[key][]graph.EdgeID)
	for _, e := range g.Edges() {
		u, v := e.From, e.To
		if u > v {
			u, v = v, u
		}
		groups[key{u, v}] = append(groups[key{u, v}], e.ID)
	}

	var keys []key
	for k, ids := range groups {
		if len(ids) >= 2 {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].u != keys[j].u {
			return keys[i].u < keys[j].u
		}
		return keys[i].v < keys[j].v
	})

	var out []EdgePair
	for _, k := range keys {
		ids := groups[k]
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		for i := 0; i < len(ids); i++ {
			for j := 0; j < len(ids); j++ {
				if i == j || (unique && j < i) {
					continue
				}
				out = append(out, EdgePair{E: ids[i], F: ids[j]})
			}
		}
	}
	return out
}

// GetEqualParallelEdges filters pairs to those whose polylines are
// point-wise equal after independently sorting both edge_points sequences
// under the lexicographic Point3 order (endpoints are excluded from the
// comparison, since they are not part of edge_points).
func GetEqualParallelEdges(pairs []EdgePair, g *graph.SpatialGraph) []EdgePair {
	var out []EdgePair
	for _, p := range pairs {
		e, errE := g.GetEdge(p.E)
		f, errF := g.GetEdge(p.F)
		if errE != nil || errF != nil {
			continue
		}
		if equalSortedPolylines(e.EdgePoints, f.EdgePoints) {
			out = append(out, p)
		}
	}
	return out
}

func equalSortedPolylines(a, b []spatial.Point3) bool {
	if len(a) != len(b) {
		return false
	}
	sa := spatial.SortPoints(a)
	sb := spatial.SortPoints(b)
	for i := range sa {
		if !sa[i].AlmostEqual(sb[i], 1e-9) {
			return false
		}
	}
	return true
}

// contourLength sums consecutive Euclidean distances along
// [from, edge_points..., to].
func contourLength(g *graph.SpatialGraph, e *graph.Edge) float64 {
	from, errF := g.GetVertex(e.From)
	to, errT := g.GetVertex(e.To)
	if errF != nil || errT != nil {
		return 0
	}
	pts := make([]spatial.Point3, 0, len(e.EdgePoints)+2)
	pts = append(pts, from.Pos)
	pts = append(pts, e.EdgePoints...)
	pts = append(pts, to.Pos)

	total := 0.0
	for i := 1; i < len(pts); i++ {
		total += pts[i-1].Dist(pts[i])
	}
	return total
}

// RemoveParallelEdges produces a new graph retaining exactly one
// representative of each unique parallel class (a group of two or more
// edges sharing the same unordered endpoint pair): the greatest-contour-
// length representative if keepLarger, else the shortest. Edges with no
// parallel partner are copied through unchanged.
func RemoveParallelEdges(g *graph.SpatialGraph, keepLarger bool) *graph.SpatialGraph {
	type key struct{ u, v graph.VertexID }
	groups := make(map[key][]graph.EdgeID)
	for _, e := range g.Edges() {
		u, v := e.From, e.To
		if u > v {
			u, v = v, u
		}
		groups[key{u, v}] = append(groups[key{u, v}], e.ID)
	}

	drop := make(map[graph.EdgeID]bool)
	for _, ids := range groups {
		if len(ids) < 2 {
			continue
		}
		bestIdx := 0
		bestLen := -1.0
		for i, eid := range ids {
			e, err := g.GetEdge(eid)
			if err != nil {
				continue
			}
			l := contourLength(g, e)
			if bestLen < 0 {
				bestLen, bestIdx = l, i
				continue
			}
			if keepLarger && l > bestLen {
				bestLen, bestIdx = l, i
			} else if !keepLarger && l < bestLen {
				bestLen, bestIdx = l, i
			}
		}
		for i, eid := range ids {
			if i != bestIdx {
				drop[eid] = true
			}
		}
	}

	out := graph.NewSpatialGraph()
	vmap := make(map[graph.VertexID]graph.VertexID)
	for _, v := range g.Vertices() {
		node, _ := g.GetVertex(v)
		vmap[v] = out.AddVertex(node.Pos)
	}
	for _, e := range g.Edges() {
		if drop[e.ID] {
			continue
		}
		pts := append([]spatial.Point3(nil), e.EdgePoints...)
		_, _ = out.AddEdge(vmap[e.From], vmap[e.To], pts)
	}
	return out
}
