package compare

import (
	"github.com/sgext-go/sgext/graph"
	"github.com/sgext-go/sgext/spatial"
)

// Peninsula is a connected subgraph of g1 that touches the rest of the
// combined (g0 ∪ g1) graph at exactly one shared point: TouchVertex, which
// sits at TouchPos. Vertices and Edges list the rest of the subgraph
// (TouchVertex itself is not repeated in Vertices).
type Peninsula struct {
	Vertices    []graph.VertexID
	Edges       []graph.EdgeID
	TouchVertex graph.VertexID
	TouchPos    spatial.Point3
}

// DetectPeninsulas classifies each connected component of g1 as a peninsula
// when exactly one of its vertices lies within radiusTouch of a g0 point
// (spec.md §4.9). Components touching g0 at zero or more-than-one point are
// left out: zero means the component is disjoint from g0 entirely, more
// than one means it is already anchored well enough that grafting would be
// ambiguous.
func (c *Comparator) DetectPeninsulas() []Peninsula {
	var out []Peninsula

	for _, comp := range c.g1.ConnectedComponents() {
		touching := make(map[graph.VertexID]bool)
		for _, v := range comp {
			vtx, err := c.g1.GetVertex(v)
			if err != nil {
				continue
			}
			for _, r := range c.loc.ClosestDescriptorsByRadius(vtx.Pos, c.radiusTouch) {
				for _, d := range r.Descriptors {
					if d.GraphIndex == 0 {
						touching[v] = true
					}
				}
			}
		}
		if len(touching) != 1 {
			continue
		}
		var touch graph.VertexID
		for v := range touching {
			touch = v
		}
		touchVtx, err := c.g1.GetVertex(touch)
		if err != nil {
			continue
		}

		var vertices []graph.VertexID
		for _, v := range comp {
			if v != touch {
				vertices = append(vertices, v)
			}
		}
		seen := make(map[graph.EdgeID]bool)
		var edges []graph.EdgeID
		for _, v := range comp {
			for _, e := range c.g1.IncidentEdges(v) {
				if !seen[e.ID] {
					seen[e.ID] = true
					edges = append(edges, e.ID)
				}
			}
		}

		out = append(out, Peninsula{
			Vertices:    vertices,
			Edges:       edges,
			TouchVertex: touch,
			TouchPos:    touchVtx.Pos,
		})
	}

	return out
}

// GraftPeninsulas re-roots each peninsula at its touch point (reusing the
// matching g0 vertex if one exists there, else creating one) and appends
// the rest of the peninsula's vertices and edges onto a clone of g0.
func (c *Comparator) GraftPeninsulas(peninsulas []Peninsula) *graph.SpatialGraph {
	out := c.g0.Clone()

	for _, p := range peninsulas {
		root, ok := c.matchG0Vertex(p.TouchPos)
		if !ok {
			root = out.AddVertex(p.TouchPos)
		}

		mapping := map[graph.VertexID]graph.VertexID{p.TouchVertex: root}
		for _, v := range p.Vertices {
			vtx, err := c.g1.GetVertex(v)
			if err != nil {
				continue
			}
			mapping[v] = out.AddVertex(vtx.Pos)
		}

		for _, eid := range p.Edges {
			e, err := c.g1.GetEdge(eid)
			if err != nil {
				continue
			}
			from, ok1 := mapping[e.From]
			to, ok2 := mapping[e.To]
			if !ok1 || !ok2 {
				continue
			}
			pts := make([]spatial.Point3, len(e.EdgePoints))
			copy(pts, e.EdgePoints)
			_, _ = out.AddEdge(from, to, pts)
		}
	}

	return out
}
