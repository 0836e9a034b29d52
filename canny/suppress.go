package canny

import (
	"fmt"

	"github.com/katalvlaran/lvimg/raster"
)

// Suppress thins gradient ridges. An interior pixel keeps its magnitude iff
// it is ≥ both neighbours along its Sector; every other pixel, and the
// whole outermost ring, is exactly 0. The output never exceeds the input
// magnitude at any pixel.
//
// Errors: ErrEmptyInput, ErrDimensionMismatch.
func Suppress(g *GradientField) (*raster.Plane, error) {
	return suppress(g, nil)
}

func suppress(g *GradientField, r raster.Runner) (*raster.Plane, error) {
	if err := g.validate(); err != nil {
		return nil, fmt.Errorf("canny.Suppress: %w", err)
	}

	w, h := g.Width(), g.Height()
	out, err := raster.NewPlane(w, h)
	if err != nil {
		return nil, fmt.Errorf("canny.Suppress: %w", err)
	}
	if w < 3 || h < 3 {
		return out, nil
	}

	mag := g.Magnitude.Pix()
	dst := out.Pix()
	// Rows 1..h-2 are processed; the row range handed to workers is shifted by one.
	raster.ForRows(r, h-2, func(r0, r1 int) {
		for y := r0 + 1; y < r1+1; y++ {
			for x := 1; x < w-1; x++ {
				i := y*w + x
				m := mag[i]
				if m == 0 {
					continue
				}
				dx1, dy1, dx2, dy2 := g.Direction[i].neighbours()
				if m >= mag[i+dy1*w+dx1] && m >= mag[i+dy2*w+dx2] {
					dst[i] = m
				}
			}
		}
	})

	return out, nil
}
