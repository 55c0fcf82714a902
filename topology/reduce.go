package topology

import (
	"go.uber.org/zap"

	"github.com/sgext-go/sgext/graph"
	"github.com/sgext-go/sgext/logging"
	"github.com/sgext-go/sgext/spatial"
)

// reducer carries the shared state of one Reduce call: the output graph
// under construction, the input-to-output vertex mapping (created lazily,
// the first time a junction or end vertex is discovered, per spec), and two
// visitation bookkeeping maps mirroring dfs.dfsWalker's White/Gray/Black
// coloring — here collapsed to the two booleans the iterative walk actually
// needs (there is no recursion stack to distinguish Gray from Black).
type reducer struct {
	in  *graph.SpatialGraph
	out *graph.SpatialGraph

	outID     map[graph.VertexID]graph.VertexID
	startedAt map[graph.VertexID]bool // a degree!=2 vertex whose own incident edges have all been traced
	touched   map[graph.VertexID]bool // any vertex reached by a trace (chain interior or terminus)
	usedEdges map[graph.EdgeID]bool   // edges already consumed by a trace, in either direction
}

// Reduce produces a new graph with no chain (degree-2) vertices: every
// maximal run of degree-2 vertices collapses into one edge whose
// edge_points is the ordered sequence of the collapsed vertices' positions
// (both endpoints excluded). Any cycle that would otherwise collapse to a
// literal self-loop — whether a pure degree-2 ring that never touches a
// junction, or a chain that leaves and returns to the same junction — is
// instead split into two vertices joined by two parallel edges (see
// splitLoop) so the output graph never contains a self-loop.
//
// It returns the reduced graph and the map from input VertexID to output
// VertexID, covering exactly the vertices that survive (every vertex of
// degree != 2, plus the synthetic loop-split vertex for each split cycle,
// which has no input counterpart and so is absent from the map).
//
// logger receives an Info line naming how many pure cycles were split; pass
// nil to discard diagnostics.
func Reduce(g *graph.SpatialGraph, logger *zap.SugaredLogger) (*graph.SpatialGraph, map[graph.VertexID]graph.VertexID) {
	log := logging.Safe(logger)
	r := &reducer{
		in:        g,
		out:       graph.NewSpatialGraph(),
		outID:     make(map[graph.VertexID]graph.VertexID),
		startedAt: make(map[graph.VertexID]bool),
		touched:   make(map[graph.VertexID]bool),
		usedEdges: make(map[graph.EdgeID]bool),
	}

	// Step 2: every degree-1 vertex.
	for _, v := range g.Vertices() {
		if g.Degree(v) == 1 && !r.startedAt[v] {
			r.runFrom(v)
		}
	}
	// Step 3: every degree>2 vertex not yet started.
	for _, v := range g.Vertices() {
		if g.Degree(v) > 2 && !r.startedAt[v] {
			r.runFrom(v)
		}
	}
	// Step 4: self-loop sweep — anything still untouched must lie on a pure
	// degree-2 cycle.
	loopsSplit := 0
	for _, v := range g.Vertices() {
		if g.Degree(v) == 2 && !r.touched[v] {
			r.spliceLoop(v)
			loopsSplit++
		}
	}
	if loopsSplit > 0 {
		log.Infow("split pure degree-2 cycles", "count", loopsSplit)
	}

	return r.out, r.outID
}

// getOut returns the output vertex for input vertex vid, creating one
// (positioned identically to the input vertex) on first reference.
func (r *reducer) getOut(vid graph.VertexID) graph.VertexID {
	if oid, ok := r.outID[vid]; ok {
		return oid
	}
	v, err := r.in.GetVertex(vid)
	if err != nil {
		panic(err)
	}
	oid := r.out.AddVertex(v.Pos)
	r.outID[vid] = oid
	return oid
}

// runFrom traces every incident edge of start (a degree-1 or degree->2
// vertex) into the output graph, then marks start as started so step 3
// never reprocesses it. An edge already consumed by a previous trace (from
// either of its two ends) is skipped — it was already folded into an
// emitted edge or a junction self-loop split.
func (r *reducer) runFrom(start graph.VertexID) {
	r.startedAt[start] = true
	r.touched[start] = true
	for _, e := range r.in.IncidentEdges(start) {
		if r.usedEdges[e.ID] {
			continue
		}
		r.traceRun(start, e.ID)
	}
}

// traceRun follows the chain beginning at start via startEdge until it
// reaches a vertex of degree != 2, then emits one output edge carrying the
// accumulated interior positions. Interior (degree-2) vertices are visited
// at most meaningfully once; re-tracing the same chain from its other end
// is allowed (and expected, see Reduce's step 3) — hasSameLengthEdge below
// suppresses the resulting near-duplicate, and usedEdges above prunes most
// such re-traces before they start.
//
// If the chain loops back to start itself (a cycle hanging off a single
// junction, start's degree otherwise >2), emitting srcOut==dstOut would be
// a literal self-loop edge, which §8's reduced-graph invariant forbids: it
// is split exactly like a pure untouched cycle (splitLoop), inserting a
// vertex at the median interior point and joining it to start with two
// parallel edges instead.
func (r *reducer) traceRun(start graph.VertexID, startEdge graph.EdgeID) {
	srcOut := r.getOut(start)
	r.usedEdges[startEdge] = true

	e, err := r.in.GetEdge(startEdge)
	if err != nil {
		return
	}
	cur := e.OtherEndpoint(start)
	incoming := startEdge
	var pts []spatial.Point3

	for {
		r.touched[cur] = true
		deg := r.in.Degree(cur)
		if deg != 2 {
			if cur == start && len(pts) > 0 {
				splitLoop(r.out, srcOut, pts)
				return
			}
			dstOut := r.getOut(cur)
			if !hasSameLengthEdge(r.out, srcOut, dstOut, len(pts)) {
				_, _ = r.out.AddEdge(srcOut, dstOut, pts)
			}
			return
		}

		v, err := r.in.GetVertex(cur)
		if err != nil {
			return
		}
		pts = append(pts, v.Pos)

		nextEdge, ok := otherIncidentEdge(r.in, cur, incoming)
		if !ok {
			// Dead end mid-chain: shouldn't happen for a well-formed
			// degree-2 vertex, but guards against malformed input.
			return
		}
		r.usedEdges[nextEdge] = true
		ne, err := r.in.GetEdge(nextEdge)
		if err != nil {
			return
		}
		cur = ne.OtherEndpoint(cur)
		incoming = nextEdge
	}
}

// spliceLoop handles a pure degree-2 cycle that step 2/3 never reached: it
// walks the whole ring starting at (and back to) start, then calls
// splitLoop to represent it without a self-loop in the output.
func (r *reducer) spliceLoop(start graph.VertexID) {
	incidents := r.in.IncidentEdges(start)
	if len(incidents) == 0 {
		return
	}
	incoming := incidents[0].ID
	e, err := r.in.GetEdge(incoming)
	if err != nil {
		return
	}
	cur := e.OtherEndpoint(start)

	var pts []spatial.Point3
	for cur != start {
		r.touched[cur] = true
		v, err := r.in.GetVertex(cur)
		if err != nil {
			return
		}
		pts = append(pts, v.Pos)

		nextEdge, ok := otherIncidentEdge(r.in, cur, incoming)
		if !ok {
			return
		}
		ne, err := r.in.GetEdge(nextEdge)
		if err != nil {
			return
		}
		cur = ne.OtherEndpoint(cur)
		incoming = nextEdge
	}
	r.touched[start] = true

	splitLoop(r.out, r.getOut(start), pts)
}

// splitLoop implements loop splitting: given the ordered interior points of
// a closed cycle (the start vertex excluded), it inserts a new vertex at
// the median point, splits the polyline there, and adds two parallel edges
// (the points before the median, and the points after it) between the
// original loop vertex and the new one. This guarantees every cycle is
// representable as two vertices joined by two edges, never a self-loop.
func splitLoop(out *graph.SpatialGraph, loopVertex graph.VertexID, pts []spatial.Point3) {
	mid := len(pts) / 2
	median := pts[mid]
	newVertex := out.AddVertex(median)

	first := append([]spatial.Point3(nil), pts[:mid]...)
	second := append([]spatial.Point3(nil), pts[mid+1:]...)

	_, _ = out.AddEdge(loopVertex, newVertex, first)
	_, _ = out.AddEdge(loopVertex, newVertex, second)
}

// hasSameLengthEdge reports whether an edge already connects u and v in g
// whose edge_points has exactly n entries — the duplicate-edge suppression
// spec.md's chain reducer requires (distinct parallel edges of differing
// lengths are still allowed through).
func hasSameLengthEdge(g *graph.SpatialGraph, u, v graph.VertexID, n int) bool {
	for _, e := range g.EdgesBetween(u, v) {
		if len(e.EdgePoints) == n {
			return true
		}
	}
	return false
}

// otherIncidentEdge returns the incident edge of v other than exclude,
// assuming v has exactly two incident edges (degree 2, no parallel edge to
// a single neighbor counted oddly). Returns ok=false if no such edge
// exists.
func otherIncidentEdge(g *graph.SpatialGraph, v graph.VertexID, exclude graph.EdgeID) (graph.EdgeID, bool) {
	for _, e := range g.IncidentEdges(v) {
		if e.ID != exclude {
			return e.ID, true
		}
	}
	return 0, false
}
