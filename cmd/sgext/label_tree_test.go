package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgext-go/sgext/graph"
	"github.com/sgext-go/sgext/graphio"
	"github.com/sgext-go/sgext/imaging"
	"github.com/sgext-go/sgext/ioformat"
	"github.com/sgext-go/sgext/spatial"
	"github.com/sgext-go/sgext/transform"
)

func TestRunLabelTree_WritesGenerationForEveryVertex(t *testing.T) {
	dir := t.TempDir()
	graphPath := filepath.Join(dir, "graph.txt")
	distPath := filepath.Join(dir, "dist.txt")
	outPath := filepath.Join(dir, "generations.csv")

	g := graph.NewSpatialGraph()
	a := g.AddVertex(spatial.NewPoint3(0, 0, 0))
	b := g.AddVertex(spatial.NewPoint3(1, 0, 0))
	_, err := g.AddEdge(a, b, nil)
	require.NoError(t, err)

	gf, err := os.Create(graphPath)
	require.NoError(t, err)
	require.NoError(t, graphio.WriteText(gf, g))
	require.NoError(t, gf.Close())

	dist := imaging.NewDenseDistanceMapImage(
		imaging.Size3{NX: 2, NY: 1, NZ: 1},
		spatial.NewPoint3(0, 0, 0),
		spatial.NewPoint3(1, 1, 1),
		transform.IdentityDirection(),
	)
	df, err := os.Create(distPath)
	require.NoError(t, err)
	require.NoError(t, imaging.WriteDistanceMapText(df, dist))
	require.NoError(t, df.Close())

	labelTreeGraphPath, labelTreeDistMapPath, labelTreeOutPath = graphPath, distPath, outPath
	labelTreePhysical = false
	labelTreeDecreaseRatio, labelTreeKeepAngle, labelTreeForceAngle = 0.1, 10, 40
	require.NoError(t, runLabelTree(labelTreeCmd, nil))

	of, err := os.Open(outPath)
	require.NoError(t, err)
	defer of.Close()

	got, err := ioformat.ReadVertexIntMap(of)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
