package graph

import "sort"

// Degree returns the number of edge-endpoints incident to v: a self-loop
// counts twice, a parallel edge counts once per occurrence.
// Complexity: O(deg(v)).
func (g *SpatialGraph) Degree(v VertexID) int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	n := 0
	for w, ids := range g.adjacency[v] {
		if w == v {
			n += 2 * len(ids)
		} else {
			n += len(ids)
		}
	}
	return n
}

// IncidentEdges returns every edge touching v (both endpoints for a
// self-loop count as one entry each time it is stored, i.e. a self-loop
// edge appears once in this slice, not twice), sorted by EdgeID.
func (g *SpatialGraph) IncidentEdges(v VertexID) []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	seen := make(map[EdgeID]struct{})
	out := make([]*Edge, 0)
	for _, ids := range g.adjacency[v] {
		for eid := range ids {
			if _, ok := seen[eid]; ok {
				continue
			}
			seen[eid] = struct{}{}
			out = append(out, g.edges[eid])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Neighbors returns the distinct vertex IDs adjacent to v (a vertex
// connected by a parallel edge appears once; a self-loop does not add v to
// its own neighbor list).
func (g *SpatialGraph) Neighbors(v VertexID) []VertexID {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]VertexID, 0, len(g.adjacency[v]))
	for w := range g.adjacency[v] {
		if w == v {
			continue
		}
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// IsSelfLoopVertex reports whether v has at least one self-loop edge.
func (g *SpatialGraph) IsSelfLoopVertex(v VertexID) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	return len(g.adjacency[v][v]) > 0
}

// ConnectedComponents partitions the graph's vertices into connected
// components via plain BFS over the adjacency structure, returning each
// component as a sorted slice of VertexID. Used by invariant checks (the
// DFS reducer must preserve the number of connected components) and by the
// tree labeler's one-root-per-component root selection.
func (g *SpatialGraph) ConnectedComponents() [][]VertexID {
	visited := make(map[VertexID]bool)
	var comps [][]VertexID
	for _, start := range g.Vertices() {
		if visited[start] {
			continue
		}
		queue := []VertexID{start}
		visited[start] = true
		var comp []VertexID
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			comp = append(comp, cur)
			for _, nb := range g.Neighbors(cur) {
				if !visited[nb] {
					visited[nb] = true
					queue = append(queue, nb)
				}
			}
		}
		sort.Slice(comp, func(i, j int) bool { return comp[i] < comp[j] })
		comps = append(comps, comp)
	}
	return comps
}
