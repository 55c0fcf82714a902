package metrics

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/sgext-go/sgext/graph"
	"github.com/sgext-go/sgext/spatial"
)

// DegreeSequence returns every vertex's degree.
func DegreeSequence(g *graph.SpatialGraph) map[graph.VertexID]int {
	out := make(map[graph.VertexID]int)
	for _, v := range g.Vertices() {
		out[v] = g.Degree(v)
	}
	return out
}

func passesEdgeFilter(g *graph.SpatialGraph, e *graph.Edge, o Options) bool {
	if len(e.EdgePoints) < o.MinEdgePoints {
		return false
	}
	if o.IgnoreEndNodes && (g.Degree(e.From) == 1 || g.Degree(e.To) == 1) {
		return false
	}
	return true
}

// EndToEndDistances returns, for every edge passing the filter, the
// Euclidean distance between its two endpoint positions.
func EndToEndDistances(g *graph.SpatialGraph, opts ...Option) map[graph.EdgeID]float64 {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	out := make(map[graph.EdgeID]float64)
	for _, e := range g.Edges() {
		if !passesEdgeFilter(g, e, o) {
			continue
		}
		from, errF := g.GetVertex(e.From)
		to, errT := g.GetVertex(e.To)
		if errF != nil || errT != nil {
			continue
		}
		out[e.ID] = from.Pos.Dist(to.Pos)
	}
	return out
}

// ContourLengths returns, for every edge passing the filter, the sum of
// consecutive Euclidean distances along [pos(source), edge_points...,
// pos(target)], oriented so the polyline starts at whichever endpoint is
// closer to edge_points[0] (irrelevant, and skipped, when edge_points is
// empty). The per-segment distances are summed with gonum's floats.Sum, a
// plain (uncompensated) sum, rather than a hand-rolled running total.
func ContourLengths(g *graph.SpatialGraph, opts ...Option) map[graph.EdgeID]float64 {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	out := make(map[graph.EdgeID]float64)
	for _, e := range g.Edges() {
		if !passesEdgeFilter(g, e, o) {
			continue
		}
		from, errF := g.GetVertex(e.From)
		to, errT := g.GetVertex(e.To)
		if errF != nil || errT != nil {
			continue
		}

		polyline := make([]spatial.Point3, 0, len(e.EdgePoints)+2)
		if len(e.EdgePoints) > 0 && to.Pos.Dist(e.EdgePoints[0]) < from.Pos.Dist(e.EdgePoints[0]) {
			polyline = append(polyline, to.Pos)
			polyline = append(polyline, e.EdgePoints...)
			polyline = append(polyline, from.Pos)
		} else {
			polyline = append(polyline, from.Pos)
			polyline = append(polyline, e.EdgePoints...)
			polyline = append(polyline, to.Pos)
		}

		segments := make([]float64, 0, len(polyline)-1)
		for i := 1; i < len(polyline); i++ {
			segments = append(segments, polyline[i-1].Dist(polyline[i]))
		}
		out[e.ID] = floats.Sum(segments)
	}
	return out
}

// AngleMeasurement is one ordered pair of out-edges sharing a source vertex,
// with the angle and cosine between their near-v directions.
type AngleMeasurement struct {
	Vertex   graph.VertexID
	E1, E2   graph.EdgeID
	Angle    float64
	Cosine   float64
}

// nearPoint returns the polyline point of e closest to v: the first
// interior point on v's side if edge_points is non-empty, else the
// opposite endpoint's position.
func nearPoint(g *graph.SpatialGraph, e *graph.Edge, v graph.VertexID) (spatial.Point3, bool) {
	if len(e.EdgePoints) > 0 {
		if e.From == v {
			return e.EdgePoints[0], true
		}
		return e.EdgePoints[len(e.EdgePoints)-1], true
	}
	other, err := g.GetVertex(e.OtherEndpoint(v))
	if err != nil {
		return spatial.Point3{}, false
	}
	return other.Pos, true
}

// Angles computes, for every ordered pair of distinct out-edges sharing a
// source vertex, the angle (and cosine) between the directions toward each
// edge's near-v point.
func Angles(g *graph.SpatialGraph, opts ...Option) []AngleMeasurement {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	var out []AngleMeasurement
	for _, v := range g.Vertices() {
		vv, err := g.GetVertex(v)
		if err != nil {
			continue
		}
		edges := g.IncidentEdges(v)
		var qualifying []*graph.Edge
		for _, e := range edges {
			if passesEdgeFilter(g, e, o) {
				qualifying = append(qualifying, e)
			}
		}

		for i, e1 := range qualifying {
			for j, e2 := range qualifying {
				if i == j {
					continue
				}
				sameTarget := e1.OtherEndpoint(v) == e2.OtherEndpoint(v)
				if sameTarget && o.IgnoreParallelEdges {
					continue
				}
				if sameTarget && !o.IgnoreParallelEdges {
					out = append(out, AngleMeasurement{Vertex: v, E1: e1.ID, E2: e2.ID, Angle: 0, Cosine: 1})
					continue
				}
				p1, ok1 := nearPoint(g, e1, v)
				p2, ok2 := nearPoint(g, e2, v)
				if !ok1 || !ok2 {
					continue
				}
				d1 := p1.Sub(vv.Pos)
				d2 := p2.Sub(vv.Pos)
				angle := spatial.Angle(d1, d2)
				out = append(out, AngleMeasurement{Vertex: v, E1: e1.ID, E2: e2.ID, Angle: angle, Cosine: math.Cos(angle)})
			}
		}
	}
	return out
}

// Cosines extracts the cosine of every AngleMeasurement, keyed by
// (vertex, e1, e2) via the same slice order Angles returns.
func Cosines(measurements []AngleMeasurement) []float64 {
	out := make([]float64, len(measurements))
	for i, m := range measurements {
		out[i] = m.Cosine
	}
	return out
}
