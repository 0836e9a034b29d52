package raster_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvimg/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewPlane_Errors verifies shape validation of the public constructors.
func TestNewPlane_Errors(t *testing.T) {
	cases := []struct {
		name string
		w, h int
	}{
		{"ZeroWidth", 0, 3},
		{"ZeroHeight", 3, 0},
		{"Negative", -1, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := raster.NewPlane(tc.w, tc.h)
			assert.ErrorIs(t, err, raster.ErrInvalidDimensions)
		})
	}
}

func TestFromRows_Errors(t *testing.T) {
	_, err := raster.FromRows(nil)
	assert.ErrorIs(t, err, raster.ErrEmpty)

	_, err = raster.FromRows([][]float64{{}})
	assert.ErrorIs(t, err, raster.ErrEmpty)

	_, err = raster.FromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, raster.ErrNonRectangular)

	_, err = raster.FromRows([][]float64{{1, math.NaN()}})
	assert.ErrorIs(t, err, raster.ErrNaNInf)
}

// TestFromRows_CopiesInput ensures later mutation of the source does not leak in.
func TestFromRows_CopiesInput(t *testing.T) {
	rows := [][]float64{{1, 2, 3}, {4, 5, 6}}
	p, err := raster.FromRows(rows)
	require.NoError(t, err)
	rows[0][0] = 99

	assert.Equal(t, 3, p.Width())
	assert.Equal(t, 2, p.Height())
	v, err := p.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
	v, err = p.At(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)
}

func TestFromPix(t *testing.T) {
	p, err := raster.FromPix(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, p.Rows())

	_, err = raster.FromPix(2, 2, []float64{1, 2, 3})
	assert.ErrorIs(t, err, raster.ErrInvalidDimensions)

	_, err = raster.FromPix(1, 1, []float64{math.Inf(1)})
	assert.ErrorIs(t, err, raster.ErrNaNInf)
}

func TestAtSet(t *testing.T) {
	p, err := raster.NewPlane(3, 2)
	require.NoError(t, err)

	require.NoError(t, p.Set(2, 1, 7.5))
	v, err := p.At(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 7.5, v)

	_, err = p.At(3, 0)
	assert.ErrorIs(t, err, raster.ErrOutOfRange)
	assert.ErrorIs(t, p.Set(0, -1, 1), raster.ErrOutOfRange)
	assert.ErrorIs(t, p.Set(0, 0, math.NaN()), raster.ErrNaNInf)
}

// TestClamped checks the clamp-to-edge border policy at every side and corner.
func TestClamped(t *testing.T) {
	p, err := raster.FromRows([][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	require.NoError(t, err)

	cases := []struct {
		x, y int
		want float64
	}{
		{-1, -1, 1},
		{1, -5, 2},
		{5, 0, 3},
		{-2, 1, 4},
		{1, 1, 5},
		{9, 9, 6},
		{3, 1, 6},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, p.Clamped(tc.x, tc.y), "Clamped(%d,%d)", tc.x, tc.y)
	}
}

func TestCloneIndependent(t *testing.T) {
	p, _ := raster.FromRows([][]float64{{1, 2}})
	q := p.Clone()
	require.NoError(t, q.Set(0, 0, 9))

	v, _ := p.At(0, 0)
	assert.Equal(t, 1.0, v)
	assert.True(t, p.SameShape(q))
}

func TestMinMaxAndString(t *testing.T) {
	p, _ := raster.FromRows([][]float64{{3, -1}, {0, 8}})
	lo, hi := p.MinMax()
	assert.Equal(t, -1.0, lo)
	assert.Equal(t, 8.0, hi)
	assert.Equal(t, "[3, -1]\n[0, 8]\n", p.String())
}

func TestEmpty(t *testing.T) {
	var p *raster.Plane
	assert.True(t, p.Empty())
	assert.False(t, p.SameShape(p))
}
