package canny_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvimg/raster"
	"github.com/stretchr/testify/require"
)

// planeOf builds a plane from literal rows, failing the test on error.
func planeOf(t testing.TB, rows [][]float64) *raster.Plane {
	t.Helper()
	p, err := raster.FromRows(rows)
	require.NoError(t, err)
	return p
}

// filled returns a w×h plane with every sample set to v.
func filled(t testing.TB, w, h int, v float64) *raster.Plane {
	t.Helper()
	p, err := raster.NewPlane(w, h)
	require.NoError(t, err)
	for i := range p.Pix() {
		p.Pix()[i] = v
	}
	return p
}

// squareImage is a 5×5 black plane with a bright 3×3 square in the centre.
func squareImage(t testing.TB) *raster.Plane {
	t.Helper()
	return planeOf(t, [][]float64{
		{0, 0, 0, 0, 0},
		{0, 255, 255, 255, 0},
		{0, 255, 255, 255, 0},
		{0, 255, 255, 255, 0},
		{0, 0, 0, 0, 0},
	})
}

// blocky returns a w×h plane made of 4×4 blocks of random intensity, which
// gives plenty of edges of every orientation.
func blocky(t testing.TB, w, h int, seed int64) *raster.Plane {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	p, err := raster.NewPlane(w, h)
	require.NoError(t, err)
	bw := (w + 3) / 4
	levels := make([]float64, bw*((h+3)/4))
	for i := range levels {
		levels[i] = float64(rng.Intn(256))
	}
	for y := range h {
		for x := range w {
			p.Pix()[y*w+x] = levels[(y/4)*bw+x/4] + float64(rng.Intn(9)) - 4
		}
	}
	return p
}
