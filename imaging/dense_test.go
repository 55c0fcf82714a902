package imaging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sgext-go/sgext/imaging"
	"github.com/sgext-go/sgext/lift"
	"github.com/sgext-go/sgext/spatial"
	"github.com/sgext-go/sgext/transform"
)

func TestDenseLabelImage_GetSetAndBounds(t *testing.T) {
	img := imaging.NewDenseLabelImage(
		imaging.Size3{NX: 4, NY: 4, NZ: 4},
		spatial.NewPoint3(0, 0, 0),
		spatial.NewPoint3(1, 1, 1),
		transform.IdentityDirection(),
	)

	idx := lift.Index3{X: 1, Y: 2, Z: 3}
	assert.Equal(t, 0, img.GetPixel(idx))
	img.SetPixel(idx, 7)
	assert.Equal(t, 7, img.GetPixel(idx))

	// Out of bounds reads return 0, writes are silently dropped.
	oob := lift.Index3{X: 10, Y: 0, Z: 0}
	assert.Equal(t, 0, img.GetPixel(oob))
	img.SetPixel(oob, 9)
	assert.Equal(t, 0, img.GetPixel(oob))
}

func TestDenseDistanceMapImage_IndexToPhysical(t *testing.T) {
	img := imaging.NewDenseDistanceMapImage(
		imaging.Size3{NX: 4, NY: 4, NZ: 4},
		spatial.NewPoint3(10, 0, 0),
		spatial.NewPoint3(2, 2, 2),
		transform.IdentityDirection(),
	)
	img.SetValue(lift.Index3{X: 1, Y: 1, Z: 1}, 3.5)
	assert.Equal(t, 3.5, img.GetValue(lift.Index3{X: 1, Y: 1, Z: 1}))

	phys := img.IndexToPhysical(lift.Index3{X: 1, Y: 0, Z: 0})
	assert.True(t, phys.AlmostEqual(spatial.NewPoint3(12, 0, 0), 1e-9))
}
