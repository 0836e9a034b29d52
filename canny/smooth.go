package canny

import (
	"fmt"

	"github.com/katalvlaran/lvimg/raster"
)

// Smooth convolves img with a normalized Gaussian of the given sigma.
// The kernel radius is ceil(3σ); rows are filtered first, then columns,
// with clamp-to-edge borders. The result has img's size and range.
//
// Errors: ErrEmptyInput, ErrInvalidParameter.
func Smooth(img *raster.Plane, sigma float64) (*raster.Plane, error) {
	return smooth(img, sigma, nil)
}

func smooth(img *raster.Plane, sigma float64, r raster.Runner) (*raster.Plane, error) {
	if img.Empty() {
		return nil, fmt.Errorf("canny.Smooth: %w", ErrEmptyInput)
	}
	if err := validateSigma(sigma); err != nil {
		return nil, fmt.Errorf("canny.Smooth: %w", err)
	}
	k, err := raster.Gaussian1D(sigma)
	if err != nil {
		return nil, fmt.Errorf("canny.Smooth: %w", err)
	}

	return raster.ConvolveSeparable(img, k, r)
}
