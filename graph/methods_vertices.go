package graph

import (
	"sort"
	"sync/atomic"

	"github.com/sgext-go/sgext/spatial"
)

// AddVertex creates a new vertex at pos with SpatialNode.ID defaulting to 0
// and returns its graph-assigned VertexID.
// Complexity: O(1) amortized.
func (g *SpatialGraph) AddVertex(pos spatial.Point3) VertexID {
	return g.addNode(SpatialNode{Pos: pos})
}

// AddVertexWithID creates a new vertex at pos carrying the given
// user-assigned SpatialNode.ID (distinct from the returned VertexID).
func (g *SpatialGraph) AddVertexWithID(id int64, pos spatial.Point3) VertexID {
	return g.addNode(SpatialNode{ID: id, Pos: pos})
}

func (g *SpatialGraph) addNode(node SpatialNode) VertexID {
	vid := VertexID(atomic.AddUint64(&g.nextVertexID, 1))

	g.muVert.Lock()
	g.vertices[vid] = &Vertex{ID: vid, SpatialNode: node}
	g.muVert.Unlock()

	g.muEdgeAdj.Lock()
	if g.adjacency[vid] == nil {
		g.adjacency[vid] = make(map[VertexID]map[EdgeID]struct{})
	}
	g.muEdgeAdj.Unlock()

	return vid
}

// HasVertex reports whether vid exists in the graph.
func (g *SpatialGraph) HasVertex(vid VertexID) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[vid]
	return ok
}

// GetVertex returns the Vertex for vid, or ErrVertexNotFound.
// The returned pointer is read-only by convention.
func (g *SpatialGraph) GetVertex(vid VertexID) (*Vertex, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[vid]
	if !ok {
		return nil, ErrVertexNotFound
	}
	return v, nil
}

// SetNodeID overwrites the user-assigned SpatialNode.ID of vid (used by the
// tree labeler and exporters to stamp a generation or sequence number onto
// the node for downstream serialization).
func (g *SpatialGraph) SetNodeID(vid VertexID, id int64) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	v, ok := g.vertices[vid]
	if !ok {
		return ErrVertexNotFound
	}
	v.SpatialNode.ID = id
	return nil
}

// SetVertexPosition overwrites the position of vid in place. Used by
// package transform to rewrite every vertex position when converting
// between index and physical space.
func (g *SpatialGraph) SetVertexPosition(vid VertexID, pos spatial.Point3) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	v, ok := g.vertices[vid]
	if !ok {
		return ErrVertexNotFound
	}
	v.Pos = pos
	return nil
}

// VertexCount returns the number of vertices.
func (g *SpatialGraph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	return len(g.vertices)
}

// Vertices returns all vertex IDs in ascending order (deterministic,
// mirroring core.Graph.Edges' Edge.ID-ascending contract).
func (g *SpatialGraph) Vertices() []VertexID {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]VertexID, 0, len(g.vertices))
	for vid := range g.vertices {
		out = append(out, vid)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// RemoveIsolatedVertex deletes vid. It returns ErrVertexNotFound if absent,
// and refuses with ErrVertexHasIncidentEdges to delete a vertex with
// incident edges — callers must remove those edges first so that adjacency
// bookkeeping never goes stale silently.
func (g *SpatialGraph) RemoveIsolatedVertex(vid VertexID) error {
	if !g.HasVertex(vid) {
		return ErrVertexNotFound
	}
	if g.Degree(vid) > 0 {
		return ErrVertexHasIncidentEdges
	}

	g.muVert.Lock()
	delete(g.vertices, vid)
	g.muVert.Unlock()

	g.muEdgeAdj.Lock()
	delete(g.adjacency, vid)
	g.muEdgeAdj.Unlock()

	return nil
}
