package graph

import (
	"errors"
	"sync"

	"github.com/sgext-go/sgext/spatial"
)

// Sentinel errors for SpatialGraph operations. Callers branch on these with
// errors.Is, never by string comparison.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrEdgeExists indicates AddEdgeUnlessExists found an edge already
	// present for the given endpoints and did not add a duplicate.
	ErrEdgeExists = errors.New("graph: edge already exists")

	// ErrVertexHasIncidentEdges indicates RemoveIsolatedVertex was called on
	// a vertex that still has one or more incident edges.
	ErrVertexHasIncidentEdges = errors.New("graph: vertex has incident edges")
)

// VertexID is the graph-assigned identity of a vertex. It is independent of
// SpatialNode.ID, which is a separate user-assigned integer.
type VertexID uint64

// EdgeID is the graph-assigned identity of an edge.
type EdgeID uint64

// SpatialNode is the payload of a graph vertex: a user-assigned integer id
// (default 0, used for generation labels and export) and a 3-D position.
type SpatialNode struct {
	ID  int64
	Pos spatial.Point3
}

// SpatialEdge is the payload of a graph edge: the ordered polyline of
// interior points traversed from source to target. Direction is not
// semantically meaningful (the graph is undirected); consumers that care
// must orient by comparing endpoint distances to EdgePoints[0].
type SpatialEdge struct {
	EdgePoints []spatial.Point3
}

// Vertex is a graph-owned vertex: its identity plus its SpatialNode payload.
type Vertex struct {
	ID VertexID
	SpatialNode
}

// Edge is a graph-owned edge: its identity, its two endpoints (order is
// arbitrary for an undirected edge), and its SpatialEdge payload.
type Edge struct {
	ID       EdgeID
	From, To VertexID
	SpatialEdge
}

// OtherEndpoint returns the endpoint of e that is not v. It panics if v is
// neither endpoint, which indicates a caller bug (it should only ever be
// called with a vertex known to be incident to e).
func (e *Edge) OtherEndpoint(v VertexID) VertexID {
	switch v {
	case e.From:
		return e.To
	case e.To:
		return e.From
	default:
		panic("graph: OtherEndpoint called with a vertex not incident to the edge")
	}
}

// IsSelfLoop reports whether e connects a vertex to itself.
func (e *Edge) IsSelfLoop() bool {
	return e.From == e.To
}

// SpatialGraph is an undirected multigraph of SpatialNode/SpatialEdge.
// Parallel edges between the same unordered pair are always permitted;
// self-loops are permitted until a reduction pass removes them.
//
// muVert guards vertices; muEdgeAdj guards edges and adjacency, mirroring
// core.Graph's lock split so that vertex existence checks never contend
// with edge/adjacency mutation.
type SpatialGraph struct {
	muVert    sync.RWMutex
	muEdgeAdj sync.RWMutex

	nextVertexID uint64
	nextEdgeID   uint64

	vertices map[VertexID]*Vertex
	edges    map[EdgeID]*Edge

	// adjacency[v][w][eid] mirrors both directions for every undirected
	// edge (v,w), including self-loops (adjacency[v][v][eid]).
	adjacency map[VertexID]map[VertexID]map[EdgeID]struct{}
}

// NewSpatialGraph creates an empty SpatialGraph.
func NewSpatialGraph() *SpatialGraph {
	return &SpatialGraph{
		vertices:  make(map[VertexID]*Vertex),
		edges:     make(map[EdgeID]*Edge),
		adjacency: make(map[VertexID]map[VertexID]map[EdgeID]struct{}),
	}
}
