package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgext-go/sgext/graph"
	"github.com/sgext-go/sgext/graphio"
	"github.com/sgext-go/sgext/spatial"
)

func TestRunReduce_CollapsesCollinearChain(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "graph.txt")
	out := filepath.Join(dir, "reduced.txt")

	g := graph.NewSpatialGraph()
	a := g.AddVertex(spatial.NewPoint3(0, 0, 0))
	b := g.AddVertex(spatial.NewPoint3(1, 0, 0))
	c := g.AddVertex(spatial.NewPoint3(2, 0, 0))
	_, err := g.AddEdge(a, b, nil)
	require.NoError(t, err)
	_, err = g.AddEdge(b, c, nil)
	require.NoError(t, err)

	f, err := os.Create(in)
	require.NoError(t, err)
	require.NoError(t, graphio.WriteText(f, g))
	require.NoError(t, f.Close())

	reduceInPath, reduceOutPath = in, out
	reduceMerge, reduceParallel = false, false
	require.NoError(t, runReduce(reduceCmd, nil))

	rf, err := os.Open(out)
	require.NoError(t, err)
	defer rf.Close()

	got, err := graphio.ReadText(rf)
	require.NoError(t, err)
	assert.Equal(t, 2, got.VertexCount())
	assert.Equal(t, 1, got.EdgeCount())
}
