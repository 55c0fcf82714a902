package spatial_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sgext-go/sgext/spatial"
)

func TestBoundingBox_FromCorners_Normalizes(t *testing.T) {
	b := spatial.NewBoundingBox(spatial.NewPoint3(5, -1, 2), spatial.NewPoint3(1, 3, -2))
	assert.Equal(t, spatial.NewPoint3(1, -1, -2), b.Ini)
	assert.Equal(t, spatial.NewPoint3(5, 3, 2), b.End)
}

func TestBoundingBox_CenterRadius(t *testing.T) {
	b := spatial.NewBoundingBoxFromCenterRadius(spatial.NewPoint3(0, 0, 0), 2)
	assert.Equal(t, spatial.NewPoint3(-2, -2, -2), b.Ini)
	assert.Equal(t, spatial.NewPoint3(2, 2, 2), b.End)
	assert.Equal(t, spatial.NewPoint3(0, 0, 0), b.Center())
	assert.Equal(t, spatial.NewPoint3(4, 4, 4), b.Size())
}

func TestBoundingBox_CenterHalfSizes(t *testing.T) {
	bRadius := spatial.NewBoundingBoxFromCenterHalfSizes(spatial.NewPoint3(0, 0, 0), spatial.NewPoint3(1, 2, 3), true)
	assert.Equal(t, spatial.NewPoint3(-1, -2, -3), bRadius.Ini)

	bFull := spatial.NewBoundingBoxFromCenterHalfSizes(spatial.NewPoint3(0, 0, 0), spatial.NewPoint3(2, 4, 6), false)
	assert.Equal(t, bRadius.Ini, bFull.Ini)
	assert.Equal(t, bRadius.End, bFull.End)
}

func TestBoundingBox_Contains(t *testing.T) {
	b := spatial.NewBoundingBox(spatial.NewPoint3(0, 0, 0), spatial.NewPoint3(10, 10, 10))
	assert.True(t, b.Contains(spatial.NewPoint3(0, 0, 0)))
	assert.True(t, b.Contains(spatial.NewPoint3(10, 10, 10)))
	assert.True(t, b.Contains(spatial.NewPoint3(5, 5, 5)))
	assert.False(t, b.Contains(spatial.NewPoint3(11, 5, 5)))
}

func TestBoundingBox_ContainsBox_Union(t *testing.T) {
	outer := spatial.NewBoundingBox(spatial.NewPoint3(0, 0, 0), spatial.NewPoint3(10, 10, 10))
	inner := spatial.NewBoundingBox(spatial.NewPoint3(1, 1, 1), spatial.NewPoint3(2, 2, 2))
	disjoint := spatial.NewBoundingBox(spatial.NewPoint3(20, 20, 20), spatial.NewPoint3(21, 21, 21))

	assert.True(t, outer.ContainsBox(inner))
	assert.False(t, outer.ContainsBox(disjoint))

	u := outer.Union(disjoint)
	assert.Equal(t, spatial.NewPoint3(0, 0, 0), u.Ini)
	assert.Equal(t, spatial.NewPoint3(21, 21, 21), u.End)
}

func TestEnclosingBox(t *testing.T) {
	boxes := []spatial.BoundingBox{
		spatial.NewBoundingBox(spatial.NewPoint3(0, 0, 0), spatial.NewPoint3(1, 1, 1)),
		spatial.NewBoundingBox(spatial.NewPoint3(-3, 2, 0), spatial.NewPoint3(-1, 5, 4)),
	}
	enc := spatial.EnclosingBox(boxes)
	assert.Equal(t, spatial.NewPoint3(-3, 0, 0), enc.Ini)
	assert.Equal(t, spatial.NewPoint3(1, 5, 4), enc.End)
}

func TestEnclosingBoxOfPoints(t *testing.T) {
	pts := []spatial.Point3{
		spatial.NewPoint3(1, -2, 3),
		spatial.NewPoint3(-4, 5, -1),
		spatial.NewPoint3(0, 0, 10),
	}
	enc := spatial.EnclosingBoxOfPoints(pts)
	assert.Equal(t, spatial.NewPoint3(-4, -2, -1), enc.Ini)
	assert.Equal(t, spatial.NewPoint3(1, 5, 10), enc.End)
}
