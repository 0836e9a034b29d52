package raster

import (
	"fmt"
	"math"
)

// Kernel1D is an odd-length list of weights centred on index len/2.
type Kernel1D []float64

// Radius returns len(k)/2.
func (k Kernel1D) Radius() int { return len(k) / 2 }

// Validate returns ErrBadKernel unless k has odd length and finite weights.
func (k Kernel1D) Validate() error {
	if len(k) == 0 || len(k)%2 == 0 {
		return fmt.Errorf("kernel length %d: %w", len(k), ErrBadKernel)
	}
	for i, w := range k {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return fmt.Errorf("kernel weight %d: %w", i, ErrBadKernel)
		}
	}

	return nil
}

// GaussianRadius returns ceil(3*sigma), the half-width used by Gaussian1D.
// The kernel therefore covers ±3σ, which holds 99.7% of the mass.
func GaussianRadius(sigma float64) int {
	return int(math.Ceil(3 * sigma))
}

// Gaussian1D builds a normalized Gaussian kernel of radius ceil(3*sigma):
// w[i] = exp(-i²/(2σ²)) for i in [-r, r], scaled so the weights sum to 1.
// sigma must be finite and > 0, otherwise ErrBadKernel.
func Gaussian1D(sigma float64) (Kernel1D, error) {
	if !(sigma > 0) || math.IsInf(sigma, 0) {
		return nil, fmt.Errorf("Gaussian1D(sigma=%v): %w", sigma, ErrBadKernel)
	}
	r := GaussianRadius(sigma)
	k := make(Kernel1D, 2*r+1)
	den := 2 * sigma * sigma
	sum := 0.0
	for i := -r; i <= r; i++ {
		w := math.Exp(-float64(i*i) / den)
		k[i+r] = w
		sum += w
	}
	for i := range k {
		k[i] /= sum
	}

	return k, nil
}

// Kernel3x3 holds 3×3 weights in row-major order; index (dy+1)*3 + (dx+1)
// weighs the sample at offset (dx,dy).
type Kernel3x3 [9]float64

// Transpose returns k with rows and columns swapped.
func (k Kernel3x3) Transpose() Kernel3x3 {
	var t Kernel3x3
	for r := range 3 {
		for c := range 3 {
			t[c*3+r] = k[r*3+c]
		}
	}

	return t
}

// SobelX is the horizontal derivative kernel [[-1,0,1],[-2,0,2],[-1,0,1]].
// Positive response where intensity grows to the right.
func SobelX() Kernel3x3 {
	return Kernel3x3{
		-1, 0, 1,
		-2, 0, 2,
		-1, 0, 1,
	}
}

// SobelY is the transpose of SobelX. Positive response where intensity grows
// downwards (image rows increase downwards).
func SobelY() Kernel3x3 {
	return SobelX().Transpose()
}
