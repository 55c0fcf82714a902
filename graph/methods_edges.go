package graph

import (
	"sort"
	"sync/atomic"

	"github.com/sgext-go/sgext/spatial"
)

// AddEdge creates a new edge between from and to carrying edgePoints, and
// returns its graph-assigned EdgeID. Both endpoints must already exist.
// Parallel edges and self-loops are always permitted; SpatialGraph never
// silently deduplicates.
// Complexity: O(1) amortized.
func (g *SpatialGraph) AddEdge(from, to VertexID, edgePoints []spatial.Point3) (EdgeID, error) {
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return 0, ErrVertexNotFound
	}

	eid := EdgeID(atomic.AddUint64(&g.nextEdgeID, 1))
	e := &Edge{ID: eid, From: from, To: to, SpatialEdge: SpatialEdge{EdgePoints: edgePoints}}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	g.edges[eid] = e
	ensureAdjacency(g, from, to)
	g.adjacency[from][to][eid] = struct{}{}
	if from != to {
		ensureAdjacency(g, to, from)
		g.adjacency[to][from][eid] = struct{}{}
	}
	// Self-loops store a single adjacency[v][v][eid] entry; Degree counts
	// each self-loop edge twice explicitly rather than doubling the entry.

	return eid, nil
}

// AddEdgeUnlessExists adds an edge between from and to carrying edgePoints
// only if no edge already connects them (in either direction); otherwise it
// returns ErrEdgeExists and the id of an existing edge. This is the checked
// primitive the object lifter (package lift) uses so that each voxel
// adjacency is only ever represented once.
func (g *SpatialGraph) AddEdgeUnlessExists(from, to VertexID, edgePoints []spatial.Point3) (EdgeID, error) {
	if g.HasEdgeBetween(from, to) {
		existing := g.EdgesBetween(from, to)
		return existing[0].ID, ErrEdgeExists
	}
	return g.AddEdge(from, to, edgePoints)
}

// RemoveEdge deletes one edge by id.
// Complexity: O(1) removal + O(deg) adjacency cleanup.
func (g *SpatialGraph) RemoveEdge(eid EdgeID) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	removeAdjacencyEntry(g, e.From, e.To, eid)
	if e.From != e.To {
		removeAdjacencyEntry(g, e.To, e.From, eid)
	}

	return nil
}

// HasEdgeBetween reports whether at least one edge connects u and v
// (in either order; the graph is undirected).
func (g *SpatialGraph) HasEdgeBetween(u, v VertexID) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	return len(g.adjacency[u][v]) > 0
}

// GetEdge returns the Edge for eid, or ErrEdgeNotFound.
func (g *SpatialGraph) GetEdge(eid EdgeID) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[eid]
	if !ok {
		return nil, ErrEdgeNotFound
	}
	return e, nil
}

// EdgesBetween returns every edge connecting u and v (in either order);
// with multigraph semantics this can have length > 1.
func (g *SpatialGraph) EdgesBetween(u, v VertexID) []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	ids := g.adjacency[u][v]
	out := make([]*Edge, 0, len(ids))
	for eid := range ids {
		out = append(out, g.edges[eid])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// SetEdgePoints overwrites the edge_points polyline of eid in place. Used
// by package transform to rewrite every edge-interior point when converting
// between index and physical space, and by package compare's
// ExtendLowInfoGraph when it replaces a g0 polyline with g1's finer one.
func (g *SpatialGraph) SetEdgePoints(eid EdgeID, points []spatial.Point3) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	e.EdgePoints = points
	return nil
}

// EdgeCount returns the total number of edges.
func (g *SpatialGraph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	return len(g.edges)
}

// Edges returns all edges sorted by EdgeID ascending (deterministic,
// mirrors core.Graph.Edges).
func (g *SpatialGraph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ensureAdjacency lazily creates the inner maps for adjacency[from][to].
// Callers must already hold muEdgeAdj for writing.
func ensureAdjacency(g *SpatialGraph, from, to VertexID) {
	if g.adjacency[from] == nil {
		g.adjacency[from] = make(map[VertexID]map[EdgeID]struct{})
	}
	if g.adjacency[from][to] == nil {
		g.adjacency[from][to] = make(map[EdgeID]struct{})
	}
}

// removeAdjacencyEntry deletes a single edge id from adjacency[from][to],
// pruning the inner map when it becomes empty. Callers must already hold
// muEdgeAdj for writing.
func removeAdjacencyEntry(g *SpatialGraph, from, to VertexID, eid EdgeID) {
	inner := g.adjacency[from][to]
	if inner == nil {
		return
	}
	delete(inner, eid)
	if len(inner) == 0 {
		delete(g.adjacency[from], to)
	}
}
