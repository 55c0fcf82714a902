// Package graph defines SpatialNode and SpatialEdge, the vertex/edge
// payloads of a spatial graph, and SpatialGraph, the undirected multigraph
// that owns them.
//
// SpatialGraph never silently deduplicates parallel edges on AddEdge, and
// self-loops are permitted until a reduction pass (package topology)
// removes them. Vertex and edge identity (VertexID, EdgeID) is assigned by
// the graph itself and is independent of SpatialNode.ID, which is a
// user-assigned integer (default 0) carried through for export and
// generation labeling.
//
// SpatialGraph is adapted from github.com/katalvlaran/lvlath's core.Graph:
// same adjacency-list engine, same RWMutex split between vertex storage and
// edge/adjacency storage, same "collect under read lock, mutate under write
// lock" discipline — generalized from core.Graph's string-keyed, directed/
// weighted generic graph down to an always-undirected, always-multigraph,
// geometry-payload-carrying graph, because the extraction pipeline only
// ever needs that one configuration.
package graph
