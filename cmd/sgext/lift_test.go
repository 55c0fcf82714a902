package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgext-go/sgext/graphio"
)

func TestRunLift_ProducesConnectedGraph(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "voxels.txt")
	out := filepath.Join(dir, "graph.txt")
	require.NoError(t, os.WriteFile(in, []byte("0 0 0\n1 0 0\n2 0 0\n"), 0o644))

	liftInPath, liftOutPath = in, out
	require.NoError(t, runLift(liftCmd, nil))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()

	g, err := graphio.ReadText(f)
	require.NoError(t, err)
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 2, g.EdgeCount())
}

func TestReadVoxelList_RejectsMalformedLine(t *testing.T) {
	_, err := readVoxelList(strings.NewReader("0 0\n"))
	require.Error(t, err)
}
