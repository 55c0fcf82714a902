package topology_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgext-go/sgext/graph"
	"github.com/sgext-go/sgext/spatial"
	"github.com/sgext-go/sgext/topology"
)

func TestGetParallelEdges_UniqueAndAll(t *testing.T) {
	g := graph.NewSpatialGraph()
	a := g.AddVertex(spatial.NewPoint3(0, 0, 0))
	b := g.AddVertex(spatial.NewPoint3(1, 0, 0))
	_, _ = g.AddEdge(a, b, nil)
	_, _ = g.AddEdge(b, a, nil)

	unique := topology.GetParallelEdges(g, true)
	all := topology.GetParallelEdges(g, false)
	assert.Len(t, unique, 1)
	assert.Len(t, all, 2)
}

func TestGetEqualParallelEdges_SortedComparison(t *testing.T) {
	g := graph.NewSpatialGraph()
	a := g.AddVertex(spatial.NewPoint3(0, 0, 0))
	b := g.AddVertex(spatial.NewPoint3(1, 0, 0))
	p1 := spatial.NewPoint3(0.2, 0, 0)
	p2 := spatial.NewPoint3(0.8, 0, 0)

	e1, _ := g.AddEdge(a, b, []spatial.Point3{p1, p2})
	e2, _ := g.AddEdge(a, b, []spatial.Point3{p2, p1}) // reversed order, same set

	pairs := topology.GetParallelEdges(g, true)
	require.Len(t, pairs, 1)
	equal := topology.GetEqualParallelEdges(pairs, g)
	require.Len(t, equal, 1)
	assert.ElementsMatch(t, []graph.EdgeID{equal[0].E, equal[0].F}, []graph.EdgeID{e1, e2})
}

func TestRemoveParallelEdges_KeepsShortestByDefault(t *testing.T) {
	g := graph.NewSpatialGraph()
	a := g.AddVertex(spatial.NewPoint3(0, 0, 0))
	b := g.AddVertex(spatial.NewPoint3(10, 0, 0))
	_, _ = g.AddEdge(a, b, nil) // straight line, contour length 10
	_, _ = g.AddEdge(a, b, []spatial.Point3{spatial.NewPoint3(5, 5, 0)}) // detour, much longer

	out := topology.RemoveParallelEdges(g, false)
	require.Equal(t, 1, out.EdgeCount())
	assert.Empty(t, out.Edges()[0].EdgePoints)
}

func TestRemoveParallelEdges_KeepLarger(t *testing.T) {
	g := graph.NewSpatialGraph()
	a := g.AddVertex(spatial.NewPoint3(0, 0, 0))
	b := g.AddVertex(spatial.NewPoint3(10, 0, 0))
	_, _ = g.AddEdge(a, b, nil)
	_, _ = g.AddEdge(a, b, []spatial.Point3{spatial.NewPoint3(5, 5, 0)})

	out := topology.RemoveParallelEdges(g, true)
	require.Equal(t, 1, out.EdgeCount())
	assert.NotEmpty(t, out.Edges()[0].EdgePoints)
}
