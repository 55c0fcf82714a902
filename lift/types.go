package lift

import (
	"errors"

	"github.com/sgext-go/sgext/graph"
	"github.com/sgext-go/sgext/spatial"
)

// Index3 is an integer voxel coordinate in the reference image's index
// space. It is distinct from spatial.Point3 (which is a float coordinate,
// generally in physical space once package transform has run) even though
// the lifter maps one to the other with the identity function.
type Index3 struct {
	X, Y, Z int
}

// ToPoint3 converts an integer index to a Point3 via identity mapping, per
// spec.md §4.1's "Integer voxel coordinates become Point3 with identity
// mapping" rule.
func (idx Index3) ToPoint3() spatial.Point3 {
	return spatial.NewPoint3(float64(idx.X), float64(idx.Y), float64(idx.Z))
}

// VoxelSet is the object lifted into a SpatialGraph: a foreground voxel set
// under 26-6 digital topology (foreground 26-connected, background
// 6-connected). Implementations need not precompute anything beyond what
// Voxels/Neighbors26 require; DenseVoxelSet, the implementation this
// package provides, walks the 26-neighbor offsets directly against its
// voxel set.
type VoxelSet interface {
	// Voxels returns every foreground voxel, in any order. Lift does not
	// assume or require a particular order; VertexID assignment order
	// follows this slice.
	Voxels() []Index3
	// Neighbors26 returns the foreground voxels 26-adjacent to idx. The set
	// exposes both the forward and backward direction of every adjacency
	// (i.e. if b is in Neighbors26(a), a is in Neighbors26(b)); Lift relies
	// on the checked AddEdgeUnlessExists primitive, not on the caller
	// de-duplicating, to only ever add one edge per unordered pair.
	Neighbors26(idx Index3) []Index3
}

// Lift builds a SpatialGraph from vs: one vertex per voxel (with its
// Point3 position set via Index3.ToPoint3), one edge per unordered
// 26-adjacent voxel pair, and no edge_points on any edge (those are only
// introduced by the chain reducer, package topology). It also returns the
// Index3→VertexID mapping, which downstream callers (tests, round-trip
// voxelization checks) use to recover which vertex corresponds to which
// source voxel.
func Lift(vs VoxelSet) (*graph.SpatialGraph, map[Index3]graph.VertexID) {
	g := graph.NewSpatialGraph()
	ids := make(map[Index3]graph.VertexID)

	voxels := vs.Voxels()
	for _, idx := range voxels {
		ids[idx] = g.AddVertex(idx.ToPoint3())
	}

	for _, idx := range voxels {
		u := ids[idx]
		for _, nb := range vs.Neighbors26(idx) {
			v, ok := ids[nb]
			if !ok {
				// Neighbors26 returned something outside the set Voxels()
				// enumerated; skip rather than create a dangling vertex.
				continue
			}
			if _, err := g.AddEdgeUnlessExists(u, v, nil); err != nil && !errors.Is(err, graph.ErrEdgeExists) {
				panic(err)
			}
		}
	}

	return g, ids
}
