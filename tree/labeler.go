package tree

import (
	"math"

	"github.com/sgext-go/sgext/graph"
	"github.com/sgext-go/sgext/imaging"
	"github.com/sgext-go/sgext/lift"
	"github.com/sgext-go/sgext/logging"
	"github.com/sgext-go/sgext/spatial"
	"github.com/sgext-go/sgext/transform"
)

// Result is the output of Label: the final generation assigned to every
// visited vertex, plus diagnostics that never block the run but let
// callers and tests assert the edge cases spec.md §4.11 calls out.
type Result struct {
	// Generations maps every vertex reached from a root to its generation.
	// Vertices unreachable from any root (in a disconnected graph with a
	// single root) are absent, not zero.
	Generations map[graph.VertexID]int
	// Anomalies flags, with the value 1.0, each degree-1 vertex reached over
	// a short edge (fewer than 20 edge points) whose radius did not drop
	// from its parent's by more than DecreaseRadiusRatio, which usually
	// indicates noise rather than a real generation change.
	Anomalies map[graph.VertexID]float64
	// Roots records which vertex each connected component's BFS started
	// from, in the order visited.
	Roots []graph.VertexID
	// AmbiguousForcedIncreasePasses counts tree edges where the
	// forced-increase-by-angle pass was skipped because no unique root-side
	// sibling was found: the source has no other sibling edge, the tree edge
	// itself is the closest to the root, or two siblings tie in distance
	// from root (a diamond structure).
	AmbiguousForcedIncreasePasses int
}

// Label walks g breadth-first from one root per connected component (or
// opts.Roots, if supplied) and assigns every reachable vertex a generation,
// sampling dist for local radius at vertex and edge-interior positions.
func Label(g *graph.SpatialGraph, dist imaging.DistanceMapImage, opts Options) Result {
	log := logging.Safe(opts.Logger)

	radius := sampleRadiusPerVertex(g, dist, opts.PositionsArePhysical)

	res := Result{
		Generations: make(map[graph.VertexID]int),
		Anomalies:   make(map[graph.VertexID]float64),
	}
	for v, gen := range opts.FixedGenerations {
		res.Generations[v] = gen
	}

	w := &walker{
		g:                g,
		dist:             dist,
		radius:           radius,
		opts:             opts,
		generations:      res.Generations,
		distanceFromRoot: make(map[graph.VertexID]int),
		alreadyIncreased: make(map[graph.VertexID]bool),
		anomalies:        res.Anomalies,
		log:              log,
	}

	roots := opts.Roots
	if len(roots) == 0 {
		roots = pickRoots(g, radius)
	}

	for _, root := range roots {
		if _, ok := w.generations[root]; !ok {
			w.generations[root] = 1
		}
		w.distanceFromRoot[root] = 0
		w.bfs(root)
		res.Roots = append(res.Roots, root)
	}

	res.AmbiguousForcedIncreasePasses = w.ambiguousPasses
	if len(res.Anomalies) > 0 {
		log.Debugw("tree generation labeling flagged anomalies", "count", len(res.Anomalies))
	}
	return res
}

// pickRoots returns one root per connected component: the vertex with the
// largest sampled radius in that component. This supplements the original
// analysis, which only ever picked a single global root and left
// multi-component graphs unhandled; picking per-component roots lets every
// component receive a labeling instead of silently being skipped.
func pickRoots(g *graph.SpatialGraph, radius map[graph.VertexID]float64) []graph.VertexID {
	var roots []graph.VertexID
	for _, comp := range g.ConnectedComponents() {
		best := comp[0]
		bestRadius := radius[best]
		for _, v := range comp[1:] {
			if radius[v] > bestRadius {
				best = v
				bestRadius = radius[v]
			}
		}
		roots = append(roots, best)
	}
	return roots
}

func sampleRadiusPerVertex(g *graph.SpatialGraph, dist imaging.DistanceMapImage, physical bool) map[graph.VertexID]float64 {
	out := make(map[graph.VertexID]float64, len(g.Vertices()))
	for _, vid := range g.Vertices() {
		v, err := g.GetVertex(vid)
		if err != nil {
			continue
		}
		out[vid] = sampleAt(dist, v.Pos, physical)
	}
	return out
}

func sampleAt(dist imaging.DistanceMapImage, p spatial.Point3, physical bool) float64 {
	if physical {
		p = transform.ToIndex(p, dist.Origin(), dist.Spacing(), dist.Direction())
	}
	idx := lift.Index3{X: int(math.Round(p.X)), Y: int(math.Round(p.Y)), Z: int(math.Round(p.Z))}
	return dist.GetValue(idx)
}

// walker carries the per-run mutable state of the BFS tree-edge analysis.
type walker struct {
	g      *graph.SpatialGraph
	dist   imaging.DistanceMapImage
	radius map[graph.VertexID]float64
	opts   Options

	generations      map[graph.VertexID]int
	distanceFromRoot map[graph.VertexID]int
	alreadyIncreased map[graph.VertexID]bool
	anomalies        map[graph.VertexID]float64

	ambiguousPasses int

	log interface {
		Debugw(msg string, kv ...interface{})
	}
}

// bfs walks g from root, visiting each vertex exactly once and treating
// every edge that first discovers a vertex as a tree edge.
func (w *walker) bfs(root graph.VertexID) {
	visited := map[graph.VertexID]bool{root: true}
	queue := []graph.VertexID{root}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, e := range w.g.IncidentEdges(u) {
			if e.IsSelfLoop() {
				continue
			}
			t := e.OtherEndpoint(u)
			if visited[t] {
				continue
			}
			visited[t] = true
			w.treeEdge(u, t, e)
			queue = append(queue, t)
		}
	}
}

// treeEdge implements the per-edge generation-assignment rule: sample
// radius ratios at the endpoints and at the edge midpoint, fold in the
// angle against the sibling branch coming from the root, then assign the
// child's generation and run the forced-increase-by-angle correction.
func (w *walker) treeEdge(source, target graph.VertexID, e *graph.Edge) {
	if _, ok := w.distanceFromRoot[target]; !ok {
		w.distanceFromRoot[target] = w.distanceFromRoot[source] + 1
	}

	if _, fixed := w.generations[target]; fixed {
		w.alreadyIncreased[target] = true
		return
	}

	sourceRadius := w.radius[source]
	targetRadius := w.radius[target]
	decreaseRatio := 1.0
	if sourceRadius != 0 {
		decreaseRatio = 1.0 - targetRadius/sourceRadius
	}

	if decreaseRatio <= w.opts.DecreaseRadiusRatio &&
		len(e.EdgePoints) < 20 &&
		w.g.Degree(target) == 1 {
		w.anomalies[target] = 1.0
	}

	increaseBecauseNodes := decreaseRatio >= w.opts.DecreaseRadiusRatio
	increaseBecauseEndPoint := w.increaseBecauseEndPointAndRadius(target, decreaseRatio)

	edgeVote, edgeVoteDefinite := w.increaseBecauseRadiusOfEdge(source, target, e)

	angle, hasAngle := w.angleAgainstRootEdge(source, e)
	smallAngle := hasAngle && math.Abs(angle) < w.opts.KeepGenerationIfAngleLessThan

	doNotIncrease := false
	if edgeVoteDefinite && !edgeVote && smallAngle {
		doNotIncrease = true
	}
	if !edgeVoteDefinite && smallAngle {
		// Indeterminate edge vote behaves like a definite "false" here: a
		// straight, radius-inconclusive edge with nothing else arguing
		// for a new generation should not start one.
		doNotIncrease = true
	}

	keepSameGeneration := doNotIncrease || !(increaseBecauseNodes || increaseBecauseEndPoint)

	sourceGen := w.generations[source]
	targetGen := sourceGen
	if !keepSameGeneration {
		targetGen = sourceGen + 1
		w.alreadyIncreased[target] = true
	}
	if smallAngle && !keepSameGeneration {
		targetGen--
	}
	w.generations[target] = targetGen

	w.forceIncreaseByAngle(source, e)
}

// increaseBecauseEndPointAndRadius is the much more lenient end-point vote:
// a degree-1 target (a leaf) is judged against a decrease-ratio threshold
// scaled by zero, so it votes to increase on any decrease of radius, however
// small, rather than requiring the same drop an internal vertex needs; an
// unchanged or growing radius does not vote.
// False positives here are cheap — they only ever come from noisy graphs —
// and a missed increase on a real leaf is normally still caught by the
// angle pass, but this vote fires first.
func (w *walker) increaseBecauseEndPointAndRadius(target graph.VertexID, decreaseRatio float64) bool {
	if w.g.Degree(target) != 1 {
		return false
	}
	const decreaseRatioFactorEndPoint = 0.0
	return decreaseRatio > w.opts.DecreaseRadiusRatio*decreaseRatioFactorEndPoint
}

// increaseBecauseRadiusOfEdge samples the radius at the edge's midpoint
// edge-point and compares how far source and target radii each drift from
// it; a large asymmetry suggests two distinct regimes meeting mid-edge
// rather than one smoothly tapering vessel. Returns (vote, ok): ok is false
// when the edge has too few interior points to sample meaningfully.
func (w *walker) increaseBecauseRadiusOfEdge(source, target graph.VertexID, e *graph.Edge) (vote bool, ok bool) {
	const minPoints = 5
	const differencesRatio = 2.0
	if len(e.EdgePoints) < minPoints {
		return false, false
	}
	mid := e.EdgePoints[len(e.EdgePoints)/2]
	midRadius := sampleAt(w.dist, mid, w.opts.PositionsArePhysical)
	sourceRadius := w.radius[source]
	targetRadius := w.radius[target]
	targetDiff := math.Abs(targetRadius - midRadius)
	sourceDiff := math.Abs(sourceRadius - midRadius)
	lo, hi := targetDiff, sourceDiff
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == 0 {
		return hi > 0, true
	}
	return hi/lo > differencesRatio, true
}

// siblingEdges returns every other out-edge of source except e itself,
// excluding any whose target already connects back to e's target (which
// would make the two edges part of a cycle, not sibling branches).
func (w *walker) siblingEdges(source graph.VertexID, e *graph.Edge) []*graph.Edge {
	target := e.OtherEndpoint(source)
	var out []*graph.Edge
	for _, other := range w.g.IncidentEdges(source) {
		if other.ID == e.ID {
			continue
		}
		otherTarget := other.OtherEndpoint(source)
		if w.g.HasEdgeBetween(target, otherTarget) {
			continue
		}
		out = append(out, other)
	}
	return out
}

// indicesWithSmallestDistance returns the indices of dists holding its
// minimum value; more than one entry means a tie.
func indicesWithSmallestDistance(dists []int) []int {
	min := dists[0]
	for _, d := range dists[1:] {
		if d < min {
			min = d
		}
	}
	var idx []int
	for i, d := range dists {
		if d == min {
			idx = append(idx, i)
		}
	}
	return idx
}

// rootSideEdge identifies, among e and its siblings, the single edge whose
// target has the smallest recorded distance from root. Returns ok=false if
// there is a tie (a diamond structure) or e itself is the closest.
func (w *walker) rootSideEdge(source graph.VertexID, e *graph.Edge) (*graph.Edge, bool) {
	siblings := w.siblingEdges(source, e)
	if len(siblings) == 0 {
		return nil, false
	}
	outEdges := append(append([]*graph.Edge{}, siblings...), e)
	dists := make([]int, len(outEdges))
	for i, oe := range outEdges {
		t := oe.OtherEndpoint(source)
		d, ok := w.distanceFromRoot[t]
		if !ok {
			d = math.MaxInt32
		}
		dists[i] = d
	}
	idx := indicesWithSmallestDistance(dists)
	if len(idx) != 1 {
		return nil, false
	}
	closest := outEdges[idx[0]]
	if closest.ID == e.ID {
		return nil, false
	}
	return closest, true
}

// angleAgainstRootEdge computes the angle between e and the sibling edge
// identified as coming from the root, or !ok if that identification is
// ambiguous.
func (w *walker) angleAgainstRootEdge(source graph.VertexID, e *graph.Edge) (float64, bool) {
	rootEdge, ok := w.rootSideEdge(source, e)
	if !ok {
		return 0, false
	}
	return angleBetweenEdges(w.g, source, rootEdge, e, w.opts.NumEdgePointsToComputeAngle), true
}

// forceIncreaseByAngle runs after a tree edge has assigned its child's
// generation: if two or more siblings (excluding the root-side edge) tied
// on the lowest generation among them, and each one's angle to the
// root-side edge exceeds the force-increase threshold, bump every one of
// them once (skipping any already bumped).
func (w *walker) forceIncreaseByAngle(source graph.VertexID, e *graph.Edge) {
	rootEdge, ok := w.rootSideEdge(source, e)
	if !ok {
		w.ambiguousPasses++
		return
	}
	siblings := w.siblingEdges(source, e)
	var candidates []*graph.Edge
	for _, s := range siblings {
		if s.ID != rootEdge.ID {
			candidates = append(candidates, s)
		}
	}
	candidates = append(candidates, e)

	lowest, ok := w.lowestSharedGeneration(source, candidates)
	if !ok {
		return
	}

	for _, c := range candidates {
		t := c.OtherEndpoint(source)
		gen, has := w.generations[t]
		if !has || gen != lowest {
			continue
		}
		angle := angleBetweenEdges(w.g, source, rootEdge, c, w.opts.NumEdgePointsToComputeAngle)
		if angle > w.opts.IncreaseGenerationIfAngleGreaterThan && !w.alreadyIncreased[t] {
			w.generations[t]++
			w.alreadyIncreased[t] = true
		}
	}
}

// lowestSharedGeneration returns the smallest generation value shared by
// two or more of candidates' targets, or !ok if every target's generation
// is populated but none repeats (or some target's generation is missing).
func (w *walker) lowestSharedGeneration(source graph.VertexID, candidates []*graph.Edge) (int, bool) {
	counts := make(map[int]int)
	for _, c := range candidates {
		t := c.OtherEndpoint(source)
		gen, has := w.generations[t]
		if !has {
			return 0, false
		}
		counts[gen]++
	}
	best := -1
	for gen, n := range counts {
		if n > 1 && (best == -1 || gen < best) {
			best = gen
		}
	}
	if best == -1 {
		return 0, false
	}
	return best, true
}

// angleBetweenEdges returns, in degrees, the unsigned angle at source
// between rootEdge and other, preferring an interior edge-point numPoints
// away from source (when the edge has that many) over the raw target
// position, matching the original's "use points closer to source so a long
// smooth bend isn't mistaken for a sharp branch" heuristic.
func angleBetweenEdges(g *graph.SpatialGraph, source graph.VertexID, rootEdge, other *graph.Edge, numPoints int) float64 {
	srcVertex, _ := g.GetVertex(source)
	sourcePos := srcVertex.Pos

	anglePoint := func(edge *graph.Edge) spatial.Point3 {
		target := edge.OtherEndpoint(source)
		tv, _ := g.GetVertex(target)
		p := tv.Pos
		pts := edge.EdgePoints
		if len(pts) < numPoints {
			return p
		}
		first := pts[0]
		if sourcePos.Dist(first) < p.Dist(first) {
			return pts[numPoints-1]
		}
		return pts[len(pts)-numPoints]
	}

	a := anglePoint(rootEdge).Sub(sourcePos)
	b := sourcePos.Sub(anglePoint(other))
	return spatial.Angle(b, a) * 180 / math.Pi
}
