package imaging

import (
	"github.com/sgext-go/sgext/lift"
	"github.com/sgext-go/sgext/spatial"
	"github.com/sgext-go/sgext/transform"
)

// baseImage holds the metadata common to DenseLabelImage and
// DenseDistanceMapImage, mirroring how lift.DenseVoxelSet factors its
// neighbor-offset bookkeeping out of the connectivity logic it serves.
type baseImage struct {
	size      Size3
	origin    spatial.Point3
	spacing   spatial.Point3
	direction transform.Direction
}

func (b *baseImage) Size() Size3                      { return b.size }
func (b *baseImage) Origin() spatial.Point3            { return b.origin }
func (b *baseImage) Spacing() spatial.Point3           { return b.spacing }
func (b *baseImage) Direction() transform.Direction    { return b.direction }
func (b *baseImage) IndexToPhysical(idx lift.Index3) spatial.Point3 {
	return transform.ToPhysical(idx.ToPoint3(), b.origin, b.spacing, b.direction)
}

func (b *baseImage) linearIndex(idx lift.Index3) (int, bool) {
	if idx.X < 0 || idx.Y < 0 || idx.Z < 0 || idx.X >= b.size.NX || idx.Y >= b.size.NY || idx.Z >= b.size.NZ {
		return 0, false
	}
	return idx.X + b.size.NX*(idx.Y+b.size.NY*idx.Z), true
}

// NewDenseLabelImage builds a zero-initialized LabelImage of the given size
// and metadata.
func NewDenseLabelImage(size Size3, origin, spacing spatial.Point3, direction transform.Direction) *DenseLabelImage {
	return &DenseLabelImage{
		baseImage: baseImage{size: size, origin: origin, spacing: spacing, direction: direction},
		pixels:    make([]int, size.NX*size.NY*size.NZ),
	}
}

// DenseLabelImage is an in-memory LabelImage backed by a flat slice.
type DenseLabelImage struct {
	baseImage
	pixels []int
}

// GetPixel returns the label at idx, or 0 if idx is out of bounds.
func (d *DenseLabelImage) GetPixel(idx lift.Index3) int {
	i, ok := d.linearIndex(idx)
	if !ok {
		return 0
	}
	return d.pixels[i]
}

// SetPixel sets the label at idx; out-of-bounds indices are silently
// ignored, matching SpatialGraph's own "skip rather than panic" convention
// for external-coordinate writes.
func (d *DenseLabelImage) SetPixel(idx lift.Index3, value int) {
	i, ok := d.linearIndex(idx)
	if !ok {
		return
	}
	d.pixels[i] = value
}

// NewDenseDistanceMapImage builds a zero-initialized DistanceMapImage of
// the given size and metadata.
func NewDenseDistanceMapImage(size Size3, origin, spacing spatial.Point3, direction transform.Direction) *DenseDistanceMapImage {
	return &DenseDistanceMapImage{
		baseImage: baseImage{size: size, origin: origin, spacing: spacing, direction: direction},
		values:    make([]float64, size.NX*size.NY*size.NZ),
	}
}

// DenseDistanceMapImage is an in-memory DistanceMapImage backed by a flat
// slice.
type DenseDistanceMapImage struct {
	baseImage
	values []float64
}

// GetValue returns the value at idx, or 0 if idx is out of bounds.
func (d *DenseDistanceMapImage) GetValue(idx lift.Index3) float64 {
	i, ok := d.linearIndex(idx)
	if !ok {
		return 0
	}
	return d.values[i]
}

// SetValue sets the value at idx; out-of-bounds indices are silently
// ignored.
func (d *DenseDistanceMapImage) SetValue(idx lift.Index3, value float64) {
	i, ok := d.linearIndex(idx)
	if !ok {
		return
	}
	d.values[i] = value
}
