package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgext-go/sgext/graph"
	"github.com/sgext-go/sgext/metrics"
	"github.com/sgext-go/sgext/spatial"
)

func buildLShape(t *testing.T) (*graph.SpatialGraph, graph.VertexID, graph.EdgeID, graph.EdgeID) {
	t.Helper()
	g := graph.NewSpatialGraph()
	center := g.AddVertex(spatial.NewPoint3(0, 0, 0))
	east := g.AddVertex(spatial.NewPoint3(1, 0, 0))
	north := g.AddVertex(spatial.NewPoint3(0, 1, 0))
	e1, err := g.AddEdge(center, east, nil)
	require.NoError(t, err)
	e2, err := g.AddEdge(center, north, nil)
	require.NoError(t, err)
	return g, center, e1, e2
}

func TestDegreeSequence(t *testing.T) {
	g, center, _, _ := buildLShape(t)
	seq := metrics.DegreeSequence(g)
	assert.Equal(t, 2, seq[center])
}

func TestEndToEndDistances(t *testing.T) {
	g, _, e1, _ := buildLShape(t)
	dists := metrics.EndToEndDistances(g)
	assert.InDelta(t, 1.0, dists[e1], 1e-9)
}

func TestContourLengths_WithInteriorPoints(t *testing.T) {
	g := graph.NewSpatialGraph()
	a := g.AddVertex(spatial.NewPoint3(0, 0, 0))
	b := g.AddVertex(spatial.NewPoint3(2, 0, 0))
	eid, err := g.AddEdge(a, b, []spatial.Point3{spatial.NewPoint3(1, 0, 0)})
	require.NoError(t, err)

	lens := metrics.ContourLengths(g)
	assert.InDelta(t, 2.0, lens[eid], 1e-9)
}

func TestAngles_RightAngleAtCenter(t *testing.T) {
	g, center, e1, e2 := buildLShape(t)
	angles := metrics.Angles(g)
	require.NotEmpty(t, angles)
	found := false
	for _, a := range angles {
		if a.Vertex == center && ((a.E1 == e1 && a.E2 == e2) || (a.E1 == e2 && a.E2 == e1)) {
			assert.InDelta(t, 1.5707963267948966, a.Angle, 1e-6)
			found = true
		}
	}
	assert.True(t, found)
}

func TestSummarize(t *testing.T) {
	s := metrics.Summarize([]float64{1, 2, 3, 4, 5})
	assert.Equal(t, 5, s.Count)
	assert.InDelta(t, 3.0, s.Mean, 1e-9)
	assert.InDelta(t, 1.0, s.Min, 1e-9)
	assert.InDelta(t, 5.0, s.Max, 1e-9)
}

func TestSummarize_Empty(t *testing.T) {
	s := metrics.Summarize(nil)
	assert.Equal(t, 0, s.Count)
}
