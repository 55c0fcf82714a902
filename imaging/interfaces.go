package imaging

import (
	"github.com/sgext-go/sgext/lift"
	"github.com/sgext-go/sgext/spatial"
	"github.com/sgext-go/sgext/transform"
)

// Size3 is the voxel dimensions of a 3-D image.
type Size3 struct {
	NX, NY, NZ int
}

// Image3D is the metadata surface every reference, label, and distance-map
// image exposes: enough to convert between index space and physical space
// without the caller needing to know the underlying storage.
type Image3D interface {
	Size() Size3
	Origin() spatial.Point3
	Spacing() spatial.Point3
	Direction() transform.Direction
	// IndexToPhysical maps an index-space voxel coordinate to physical
	// space using the image's own origin/spacing/direction.
	IndexToPhysical(idx lift.Index3) spatial.Point3
}

// LabelImage is a read/write integer-labeled image — the voxelizer's output
// type and, via embedding, a valid VoxelSet-adjacent collaborator input.
type LabelImage interface {
	Image3D
	GetPixel(idx lift.Index3) int
	SetPixel(idx lift.Index3, value int)
}

// DistanceMapImage is a read-only scalar image giving a local radius (or
// other distance-transform value) per voxel; the tree-generation labeler
// samples it at vertex and edge-interior positions.
type DistanceMapImage interface {
	Image3D
	GetValue(idx lift.Index3) float64
}
