package topology_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgext-go/sgext/graph"
	"github.com/sgext-go/sgext/spatial"
	"github.com/sgext-go/sgext/topology"
)

// A center vertex joined to one axis-aligned neighbor (distance 1) and one
// diagonal neighbor (distance sqrt(2)) that are themselves adjacent to each
// other (distance 1): an unambiguous triangle where the diagonal
// center-edge is strictly longer than the axis one, so the removal choice
// is not a tie.
func TestRemoveExtraEdges_AsymmetricTriangle(t *testing.T) {
	g := graph.NewSpatialGraph()
	center := g.AddVertex(spatial.NewPoint3(0, 0, 0))
	axisNb := g.AddVertex(spatial.NewPoint3(1, 0, 0))
	diagNb := g.AddVertex(spatial.NewPoint3(1, 1, 0))
	thirdNb := g.AddVertex(spatial.NewPoint3(-1, 0, 0)) // keeps center's degree above 2

	_, _ = g.AddEdge(center, axisNb, nil)
	_, _ = g.AddEdge(center, diagNb, nil)
	_, _ = g.AddEdge(axisNb, diagNb, nil)
	_, _ = g.AddEdge(center, thirdNb, nil)

	changed := topology.RemoveExtraEdges(g, nil)
	require.True(t, changed)
	assert.False(t, g.HasEdgeBetween(center, diagNb))
	assert.True(t, g.HasEdgeBetween(center, axisNb))
	assert.True(t, g.HasEdgeBetween(axisNb, diagNb))
	assert.True(t, g.HasEdgeBetween(center, thirdNb))
	assert.Equal(t, 3, g.EdgeCount())
}

func TestRemoveExtraEdges_NoOpWithoutTriangle(t *testing.T) {
	g := graph.NewSpatialGraph()
	a := g.AddVertex(spatial.NewPoint3(0, 0, 0))
	b := g.AddVertex(spatial.NewPoint3(1, 0, 0))
	c := g.AddVertex(spatial.NewPoint3(-1, 0, 0))
	_, _ = g.AddEdge(a, b, nil)
	_, _ = g.AddEdge(a, c, nil)

	changed := topology.RemoveExtraEdges(g, nil)
	assert.False(t, changed)
	assert.Equal(t, 2, g.EdgeCount())
}
