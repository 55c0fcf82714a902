package topology

import (
	"go.uber.org/zap"

	"github.com/sgext-go/sgext/graph"
	"github.com/sgext-go/sgext/logging"
	"github.com/sgext-go/sgext/spatial"
)

// MergeOptions configures the node-merger transforms.
type MergeOptions struct {
	// InPlace, when true (the default), deletes the original clique
	// vertices after rewiring. When false, they are left in the graph as
	// degree-0 isolated vertices — callers that want a stable vertex count
	// across a merge pass set this to false and compact ids themselves.
	InPlace bool

	// Logger receives an Info line naming how many cliques were merged.
	// A nil Logger discards diagnostics.
	Logger *zap.SugaredLogger
}

// MergeOption configures a MergeOptions.
type MergeOption func(*MergeOptions)

// DefaultMergeOptions returns MergeOptions with InPlace=true and a nil
// (discarding) Logger.
func DefaultMergeOptions() MergeOptions {
	return MergeOptions{InPlace: true}
}

// WithInPlace selects whether merged-away vertices are deleted (true) or
// left behind as isolated vertices (false).
func WithInPlace(inPlace bool) MergeOption {
	return func(o *MergeOptions) { o.InPlace = inPlace }
}

// WithLogger attaches a logger to report merge counts through.
func WithLogger(logger *zap.SugaredLogger) MergeOption {
	return func(o *MergeOptions) { o.Logger = logger }
}

// Merge3 fuses triples (a,b,c) of degree-3 vertices that form a clique
// linked by three empty-edge_points edges, replacing each with a single
// vertex at their centroid and rewiring the one external edge each member
// carried. It returns the number of triples merged.
func Merge3(g *graph.SpatialGraph, opts ...MergeOption) int {
	o := DefaultMergeOptions()
	for _, fn := range opts {
		fn(&o)
	}

	merged := make(map[graph.VertexID]bool)
	count := 0
	for {
		triple, ok := findTriple(g, merged)
		if !ok {
			break
		}
		mergeClique(g, triple[:], o.InPlace)
		merged[triple[0]], merged[triple[1]], merged[triple[2]] = true, true, true
		count++
	}
	if count > 0 {
		logging.Safe(o.Logger).Infow("merged 3-cliques", "count", count)
	}
	return count
}

// Merge4 is Merge3 generalized to 4-cliques of degree-4 vertices.
func Merge4(g *graph.SpatialGraph, opts ...MergeOption) int {
	o := DefaultMergeOptions()
	for _, fn := range opts {
		fn(&o)
	}

	merged := make(map[graph.VertexID]bool)
	count := 0
	for {
		quad, ok := findQuad(g, merged)
		if !ok {
			break
		}
		mergeClique(g, quad[:], o.InPlace)
		merged[quad[0]], merged[quad[1]], merged[quad[2]], merged[quad[3]] = true, true, true, true
		count++
	}
	if count > 0 {
		logging.Safe(o.Logger).Infow("merged 4-cliques", "count", count)
	}
	return count
}

// Merge2x3 fuses pairs of degree-3 junctions connected by a single
// empty-edge_points edge, combining their remaining 2+2 external edges.
func Merge2x3(g *graph.SpatialGraph, opts ...MergeOption) int {
	o := DefaultMergeOptions()
	for _, fn := range opts {
		fn(&o)
	}

	merged := make(map[graph.VertexID]bool)
	count := 0
	for {
		pair, ok := findPair(g, merged)
		if !ok {
			break
		}
		mergeClique(g, pair[:], o.InPlace)
		merged[pair[0]], merged[pair[1]] = true, true
		count++
	}
	if count > 0 {
		logging.Safe(o.Logger).Infow("merged 2x3 junction pairs", "count", count)
	}
	return count
}

// singleEmptyEdge reports whether exactly one edge connects u and v and
// that edge's edge_points is empty — the "adjacent junction voxels" link
// merge candidates must share, and simultaneously the abort condition
// ("abort if any additional parallel edge exists") since len(edges)!=1
// fails the check.
func singleEmptyEdge(g *graph.SpatialGraph, u, v graph.VertexID) (graph.EdgeID, bool) {
	edges := g.EdgesBetween(u, v)
	if len(edges) != 1 || len(edges[0].EdgePoints) != 0 {
		return 0, false
	}
	return edges[0].ID, true
}

func findTriple(g *graph.SpatialGraph, merged map[graph.VertexID]bool) ([3]graph.VertexID, bool) {
	for _, a := range g.Vertices() {
		if merged[a] || g.Degree(a) != 3 {
			continue
		}
		for _, b := range g.Neighbors(a) {
			if b <= a || merged[b] || g.Degree(b) != 3 {
				continue
			}
			if _, ok := singleEmptyEdge(g, a, b); !ok {
				continue
			}
			for _, c := range g.Neighbors(b) {
				if c <= b || merged[c] || g.Degree(c) != 3 {
					continue
				}
				if _, ok := singleEmptyEdge(g, b, c); !ok {
					continue
				}
				if _, ok := singleEmptyEdge(g, a, c); !ok {
					continue
				}
				return [3]graph.VertexID{a, b, c}, true
			}
		}
	}
	return [3]graph.VertexID{}, false
}

func findQuad(g *graph.SpatialGraph, merged map[graph.VertexID]bool) ([4]graph.VertexID, bool) {
	for _, a := range g.Vertices() {
		if merged[a] || g.Degree(a) != 4 {
			continue
		}
		for _, b := range g.Neighbors(a) {
			if b <= a || merged[b] || g.Degree(b) != 4 {
				continue
			}
			if _, ok := singleEmptyEdge(g, a, b); !ok {
				continue
			}
			for _, c := range g.Neighbors(b) {
				if c <= b || merged[c] || g.Degree(c) != 4 {
					continue
				}
				if _, ok := singleEmptyEdge(g, b, c); !ok {
					continue
				}
				if _, ok := singleEmptyEdge(g, a, c); !ok {
					continue
				}
				for _, d := range g.Neighbors(c) {
					if d <= c || merged[d] || g.Degree(d) != 4 {
						continue
					}
					if _, ok := singleEmptyEdge(g, c, d); !ok {
						continue
					}
					if _, ok := singleEmptyEdge(g, b, d); !ok {
						continue
					}
					if _, ok := singleEmptyEdge(g, a, d); !ok {
						continue
					}
					return [4]graph.VertexID{a, b, c, d}, true
				}
			}
		}
	}
	return [4]graph.VertexID{}, false
}

func findPair(g *graph.SpatialGraph, merged map[graph.VertexID]bool) ([2]graph.VertexID, bool) {
	for _, a := range g.Vertices() {
		if merged[a] || g.Degree(a) != 3 {
			continue
		}
		for _, b := range g.Neighbors(a) {
			if b <= a || merged[b] || g.Degree(b) != 3 {
				continue
			}
			if _, ok := singleEmptyEdge(g, a, b); ok {
				return [2]graph.VertexID{a, b}, true
			}
		}
	}
	return [2]graph.VertexID{}, false
}

// mergeClique collapses members into one new vertex at their centroid,
// rewiring every edge with exactly one endpoint among members (prepending
// that member's former position to the edge's polyline so the geometry
// stays connected) and dropping every edge fully internal to members. With
// inPlace it also deletes the now-isolated former members.
func mergeClique(g *graph.SpatialGraph, members []graph.VertexID, inPlace bool) {
	memberSet := make(map[graph.VertexID]bool, len(members))
	for _, m := range members {
		memberSet[m] = true
	}

	var centroid spatial.Point3
	for _, m := range members {
		v, err := g.GetVertex(m)
		if err != nil {
			return
		}
		centroid = centroid.Add(v.Pos)
	}
	centroid = centroid.Scale(1.0 / float64(len(members)))
	newVertex := g.AddVertex(centroid)

	toRemove := make(map[graph.EdgeID]bool)
	for _, m := range members {
		v, err := g.GetVertex(m)
		if err != nil {
			continue
		}
		for _, e := range g.IncidentEdges(m) {
			toRemove[e.ID] = true
			other := e.OtherEndpoint(m)
			if memberSet[other] {
				continue
			}
			var pts []spatial.Point3
			var from, to graph.VertexID
			if e.From == m {
				pts = append([]spatial.Point3{v.Pos}, e.EdgePoints...)
				from, to = newVertex, other
			} else {
				pts = append(append([]spatial.Point3{}, e.EdgePoints...), v.Pos)
				from, to = other, newVertex
			}
			_, _ = g.AddEdge(from, to, pts)
		}
	}
	for eid := range toRemove {
		_ = g.RemoveEdge(eid)
	}
	if inPlace {
		for _, m := range members {
			_ = g.RemoveIsolatedVertex(m)
		}
	}
}
