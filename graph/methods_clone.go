package graph

import (
	"sync/atomic"

	"github.com/sgext-go/sgext/spatial"
)

// Clone returns a deep copy of the graph: every vertex, every edge (with an
// independently-owned copy of its EdgePoints slice), and adjacency. IDs are
// preserved verbatim, and the ID generation counters are carried over so
// future AddVertex/AddEdge calls on the clone never collide with the
// source's existing IDs.
//
// Package compare's Diff, ExtendLowInfoGraph and GraftPeninsulas start from
// a Clone so that the graphs they are given stay untouched, mirroring
// core.Graph.Clone.
func (g *SpatialGraph) Clone() *SpatialGraph {
	g.muVert.RLock()
	g.muEdgeAdj.RLock()
	defer g.muVert.RUnlock()
	defer g.muEdgeAdj.RUnlock()

	clone := NewSpatialGraph()
	atomic.StoreUint64(&clone.nextVertexID, atomic.LoadUint64(&g.nextVertexID))
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	for vid, v := range g.vertices {
		clone.vertices[vid] = &Vertex{ID: v.ID, SpatialNode: v.SpatialNode}
		clone.adjacency[vid] = make(map[VertexID]map[EdgeID]struct{})
	}
	for eid, e := range g.edges {
		pts := make([]spatial.Point3, len(e.EdgePoints))
		copy(pts, e.EdgePoints)
		ne := &Edge{ID: eid, From: e.From, To: e.To, SpatialEdge: SpatialEdge{EdgePoints: pts}}
		clone.edges[eid] = ne
		ensureAdjacency(clone, e.From, e.To)
		clone.adjacency[e.From][e.To][eid] = struct{}{}
		if e.From != e.To {
			ensureAdjacency(clone, e.To, e.From)
			clone.adjacency[e.To][e.From][eid] = struct{}{}
		}
	}

	return clone
}
