package graph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgext-go/sgext/graph"
	"github.com/sgext-go/sgext/spatial"
)

func TestSpatialGraph_AddVertexAddEdge(t *testing.T) {
	g := graph.NewSpatialGraph()
	a := g.AddVertex(spatial.NewPoint3(0, 0, 0))
	b := g.AddVertex(spatial.NewPoint3(1, 0, 0))

	eid, err := g.AddEdge(a, b, nil)
	require.NoError(t, err)
	assert.True(t, g.HasEdgeBetween(a, b))
	assert.True(t, g.HasEdgeBetween(b, a))

	e, err := g.GetEdge(eid)
	require.NoError(t, err)
	assert.Equal(t, a, e.From)
	assert.Equal(t, b, e.To)

	assert.Equal(t, 1, g.Degree(a))
	assert.Equal(t, 1, g.Degree(b))
}

func TestSpatialGraph_ParallelEdgesAllowed(t *testing.T) {
	g := graph.NewSpatialGraph()
	a := g.AddVertex(spatial.NewPoint3(0, 0, 0))
	b := g.AddVertex(spatial.NewPoint3(1, 1, 0))

	_, err1 := g.AddEdge(a, b, []spatial.Point3{spatial.NewPoint3(1, 0, 0)})
	_, err2 := g.AddEdge(a, b, []spatial.Point3{spatial.NewPoint3(0, 1, 0)})
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Len(t, g.EdgesBetween(a, b), 2)
	assert.Equal(t, 2, g.Degree(a))
}

func TestSpatialGraph_SelfLoopDegree(t *testing.T) {
	g := graph.NewSpatialGraph()
	a := g.AddVertex(spatial.NewPoint3(0, 0, 0))
	_, err := g.AddEdge(a, a, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Degree(a))
	assert.True(t, g.IsSelfLoopVertex(a))
}

func TestSpatialGraph_AddEdgeUnlessExists(t *testing.T) {
	g := graph.NewSpatialGraph()
	a := g.AddVertex(spatial.NewPoint3(0, 0, 0))
	b := g.AddVertex(spatial.NewPoint3(1, 0, 0))

	_, err := g.AddEdgeUnlessExists(a, b, nil)
	require.NoError(t, err)

	_, err = g.AddEdgeUnlessExists(b, a, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, graph.ErrEdgeExists))
	assert.Len(t, g.EdgesBetween(a, b), 1)
}

func TestSpatialGraph_RemoveEdgeAndIsolatedVertex(t *testing.T) {
	g := graph.NewSpatialGraph()
	a := g.AddVertex(spatial.NewPoint3(0, 0, 0))
	b := g.AddVertex(spatial.NewPoint3(1, 0, 0))
	eid, _ := g.AddEdge(a, b, nil)

	require.Error(t, g.RemoveIsolatedVertex(a)) // still has incident edge

	require.NoError(t, g.RemoveEdge(eid))
	require.NoError(t, g.RemoveIsolatedVertex(a))
	assert.False(t, g.HasVertex(a))
	assert.Equal(t, 1, g.VertexCount())
}

func TestSpatialGraph_ConnectedComponents(t *testing.T) {
	g := graph.NewSpatialGraph()
	a := g.AddVertex(spatial.NewPoint3(0, 0, 0))
	b := g.AddVertex(spatial.NewPoint3(1, 0, 0))
	c := g.AddVertex(spatial.NewPoint3(10, 10, 10))
	_, _ = g.AddEdge(a, b, nil)
	_ = c

	comps := g.ConnectedComponents()
	require.Len(t, comps, 2)
}

func TestSpatialGraph_Clone(t *testing.T) {
	g := graph.NewSpatialGraph()
	a := g.AddVertex(spatial.NewPoint3(0, 0, 0))
	b := g.AddVertex(spatial.NewPoint3(1, 0, 0))
	_, _ = g.AddEdge(a, b, []spatial.Point3{spatial.NewPoint3(0.5, 0, 0)})

	clone := g.Clone()
	require.NoError(t, clone.RemoveEdge(clone.Edges()[0].ID))

	// mutating the clone must not affect the source
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 0, clone.EdgeCount())
}
