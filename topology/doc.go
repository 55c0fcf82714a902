// Package topology rewrites the local anomalies a 26-connectivity lift
// introduces into a freshly lifted graph.SpatialGraph: diagonal "extra
// edges" at branching voxels (RemoveExtraEdges), collapsing degree-2 chains
// into single polyline edges with a self-loop-splitting sweep (Reduce), and
// fusing small cliques of junction voxels that should semantically be one
// node (Merge3/Merge4/Merge2x3). It also detects and removes parallel edges
// (GetParallelEdges/GetEqualParallelEdges/RemoveParallelEdges).
//
// Each rewriting function here either mutates its *graph.SpatialGraph in
// place (RemoveExtraEdges, the merge functions) or leaves it untouched and
// returns a new one built from scratch (Reduce, RemoveParallelEdges).
package topology
