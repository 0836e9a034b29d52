package canny

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvimg/raster"
)

// Gradient applies the Sobel kernels to img and returns the L2 magnitude
// sqrt(gx²+gy²) with the direction atan2(gy, gx) quantized to a Sector.
// Borders use the clamp-to-edge policy, so border magnitudes are finite
// and a uniform image yields exactly zero everywhere.
//
// Errors: ErrEmptyInput.
func Gradient(img *raster.Plane) (*GradientField, error) {
	return gradient(img, nil)
}

func gradient(img *raster.Plane, r raster.Runner) (*GradientField, error) {
	if img.Empty() {
		return nil, fmt.Errorf("canny.Gradient: %w", ErrEmptyInput)
	}
	gx, gy, err := raster.CorrelatePair(img, raster.SobelX(), raster.SobelY(), r)
	if err != nil {
		return nil, fmt.Errorf("canny.Gradient: %w", err)
	}

	// gx is not needed after this stage; its buffer becomes the magnitude.
	mag := gx
	dir := make([]Sector, img.Len())
	w := img.Width()
	raster.ForRows(r, img.Height(), func(y0, y1 int) {
		for i := y0 * w; i < y1*w; i++ {
			x, y := gx.Pix()[i], gy.Pix()[i]
			dir[i] = quantize(x, y)
			mag.Pix()[i] = math.Sqrt(x*x + y*y)
		}
	})

	return &GradientField{Magnitude: mag, Direction: dir}, nil
}

// quantize folds atan2(gy, gx) into [0°, 180°) and picks the nearest of the
// four sectors. Boundaries at 22.5°, 67.5°, 112.5° and 157.5° belong to the
// sector above them.
func quantize(gx, gy float64) Sector {
	deg := math.Atan2(gy, gx) * 180 / math.Pi
	if deg < 0 {
		deg += 180
	}
	switch {
	case deg < 22.5 || deg >= 157.5:
		return Sector0
	case deg < 67.5:
		return Sector45
	case deg < 112.5:
		return Sector90
	default:
		return Sector135
	}
}
