package imaging_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgext-go/sgext/imaging"
	"github.com/sgext-go/sgext/lift"
	"github.com/sgext-go/sgext/spatial"
	"github.com/sgext-go/sgext/transform"
)

func TestReadDistanceMapText_RoundTripsWrittenValues(t *testing.T) {
	src := imaging.NewDenseDistanceMapImage(
		imaging.Size3{NX: 2, NY: 2, NZ: 1},
		spatial.NewPoint3(0, 0, 0),
		spatial.NewPoint3(1, 1, 1),
		transform.IdentityDirection(),
	)
	src.SetValue(lift.Index3{X: 0, Y: 0, Z: 0}, 1)
	src.SetValue(lift.Index3{X: 1, Y: 0, Z: 0}, 2)
	src.SetValue(lift.Index3{X: 0, Y: 1, Z: 0}, 3)
	src.SetValue(lift.Index3{X: 1, Y: 1, Z: 0}, 4)

	text := "2 2 1\n0 0 0\n1 1 1\n1 0 0 0 1 0 0 0 1\n1 2\n3 4\n"
	var written bytes.Buffer
	require.NoError(t, imaging.WriteDistanceMapText(&written, src))
	require.Equal(t, text, written.String())
	got, err := imaging.ReadDistanceMapText(&written)
	require.NoError(t, err)

	assert.Equal(t, 1.0, got.GetValue(lift.Index3{X: 0, Y: 0, Z: 0}))
	assert.Equal(t, 2.0, got.GetValue(lift.Index3{X: 1, Y: 0, Z: 0}))
	assert.Equal(t, 3.0, got.GetValue(lift.Index3{X: 0, Y: 1, Z: 0}))
	assert.Equal(t, 4.0, got.GetValue(lift.Index3{X: 1, Y: 1, Z: 0}))
}

func TestWriteLabelImageText_ThenReadBack(t *testing.T) {
	img := imaging.NewDenseLabelImage(
		imaging.Size3{NX: 2, NY: 1, NZ: 1},
		spatial.NewPoint3(0, 0, 0),
		spatial.NewPoint3(1, 1, 1),
		transform.IdentityDirection(),
	)
	img.SetPixel(lift.Index3{X: 0, Y: 0, Z: 0}, 5)
	img.SetPixel(lift.Index3{X: 1, Y: 0, Z: 0}, 6)

	var buf bytes.Buffer
	require.NoError(t, imaging.WriteLabelImageText(&buf, img))
	assert.Contains(t, buf.String(), "5 6")

	back, err := imaging.ReadDistanceMapText(&buf)
	require.NoError(t, err)
	assert.Equal(t, 5.0, back.GetValue(lift.Index3{X: 0, Y: 0, Z: 0}))
	assert.Equal(t, 6.0, back.GetValue(lift.Index3{X: 1, Y: 0, Z: 0}))
}
