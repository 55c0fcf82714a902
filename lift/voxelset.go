package lift

// offsets26 is the full 26-neighborhood offset table (every nonzero vector
// in {-1,0,1}^3), precomputed once at package init the same way
// gridgraph.NewGridGraph precomputes its 4- or 8-direction neighborOffsets
// for a 2-D grid — generalized here to the 3-D, always-26-connected case
// spec.md §4.1 specifies.
var offsets26 = func() [27 - 1][3]int {
	var out [26][3]int
	n := 0
	for dz := -1; dz <= 1; dz++ {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				out[n] = [3]int{dx, dy, dz}
				n++
			}
		}
	}
	return out
}()

// DenseVoxelSet is an in-memory VoxelSet backed by a plain set of Index3
// coordinates, with no reference to any image's shape or metadata. It is
// the VoxelSet used by tests and by any caller that already has an
// explicit foreground voxel list. The module has no image-backed VoxelSet;
// a segmented image has to be turned into a voxel list first.
type DenseVoxelSet struct {
	present map[Index3]struct{}
}

// NewDenseVoxelSet builds a DenseVoxelSet containing exactly the given
// voxels (duplicates collapse).
func NewDenseVoxelSet(voxels []Index3) *DenseVoxelSet {
	set := make(map[Index3]struct{}, len(voxels))
	for _, v := range voxels {
		set[v] = struct{}{}
	}
	return &DenseVoxelSet{present: set}
}

// Voxels returns every foreground voxel; order is the map's iteration
// order, which Lift does not rely on.
func (s *DenseVoxelSet) Voxels() []Index3 {
	out := make([]Index3, 0, len(s.present))
	for v := range s.present {
		out = append(out, v)
	}
	return out
}

// Neighbors26 returns the foreground voxels 26-adjacent to idx.
func (s *DenseVoxelSet) Neighbors26(idx Index3) []Index3 {
	out := make([]Index3, 0, 26)
	for _, d := range offsets26 {
		cand := Index3{X: idx.X + d[0], Y: idx.Y + d[1], Z: idx.Z + d[2]}
		if _, ok := s.present[cand]; ok {
			out = append(out, cand)
		}
	}
	return out
}
