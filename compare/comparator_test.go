package compare_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgext-go/sgext/compare"
	"github.com/sgext-go/sgext/graph"
	"github.com/sgext-go/sgext/spatial"
)

func TestExtendLowInfoGraph_PreservesTopology(t *testing.T) {
	g0 := graph.NewSpatialGraph()
	a0 := g0.AddVertex(spatial.NewPoint3(0, 0, 0))
	b0 := g0.AddVertex(spatial.NewPoint3(10, 0, 0))
	_, err := g0.AddEdge(a0, b0, nil)
	require.NoError(t, err)

	g1 := graph.NewSpatialGraph()
	a1 := g1.AddVertex(spatial.NewPoint3(0, 0, 0))
	b1 := g1.AddVertex(spatial.NewPoint3(10, 0, 0))
	_, err = g1.AddEdge(a1, b1, []spatial.Point3{spatial.NewPoint3(3, 1, 0), spatial.NewPoint3(7, -1, 0)})
	require.NoError(t, err)

	c := compare.NewComparator(g0, g1, 0.01, 0.5)
	extended := c.ExtendLowInfoGraph()

	assert.Equal(t, g0.VertexCount(), extended.VertexCount())
	assert.Equal(t, g0.EdgeCount(), extended.EdgeCount())

	edges := extended.Edges()
	require.Len(t, edges, 1)
	require.Len(t, edges[0].EdgePoints, 2)
	assert.True(t, edges[0].EdgePoints[0].AlmostEqual(spatial.NewPoint3(3, 1, 0), 1e-9))
}

func TestDiff_FlagsSpuriousBranchOffEdgeInteriorPoint(t *testing.T) {
	g0 := graph.NewSpatialGraph()
	a0 := g0.AddVertex(spatial.NewPoint3(0, 0, 0))
	b0 := g0.AddVertex(spatial.NewPoint3(10, 0, 0))
	_, err := g0.AddEdge(a0, b0, []spatial.Point3{spatial.NewPoint3(5, 0, 0)})
	require.NoError(t, err)

	g1 := graph.NewSpatialGraph()
	a1 := g1.AddVertex(spatial.NewPoint3(0, 0, 0))
	mid1 := g1.AddVertex(spatial.NewPoint3(5, 0, 0))
	b1 := g1.AddVertex(spatial.NewPoint3(10, 0, 0))
	_, err = g1.AddEdge(a1, mid1, nil)
	require.NoError(t, err)
	_, err = g1.AddEdge(mid1, b1, nil)
	require.NoError(t, err)
	spur := g1.AddVertex(spatial.NewPoint3(5, 3, 0))
	_, err = g1.AddEdge(mid1, spur, nil)
	require.NoError(t, err)

	c := compare.NewComparator(g0, g1, 0.01, 0.5)
	result := c.Diff()

	assert.Contains(t, result.VerticesToRemove, mid1)
	assert.Equal(t, 3, len(result.EdgesToRemove))
}

func TestDetectPeninsulas_SingleTouchPoint(t *testing.T) {
	g0 := graph.NewSpatialGraph()
	root0 := g0.AddVertex(spatial.NewPoint3(0, 0, 0))
	other0 := g0.AddVertex(spatial.NewPoint3(10, 0, 0))
	_, err := g0.AddEdge(root0, other0, nil)
	require.NoError(t, err)

	g1 := graph.NewSpatialGraph()
	touch := g1.AddVertex(spatial.NewPoint3(0, 0, 0))
	leaf := g1.AddVertex(spatial.NewPoint3(0, 5, 0))
	_, err = g1.AddEdge(touch, leaf, nil)
	require.NoError(t, err)

	c := compare.NewComparator(g0, g1, 0.01, 0.5)
	peninsulas := c.DetectPeninsulas()
	require.Len(t, peninsulas, 1)
	assert.Equal(t, touch, peninsulas[0].TouchVertex)
	assert.Contains(t, peninsulas[0].Vertices, leaf)

	grafted := c.GraftPeninsulas(peninsulas)
	assert.Equal(t, g0.VertexCount()+1, grafted.VertexCount())
	assert.Equal(t, g0.EdgeCount()+1, grafted.EdgeCount())
}
