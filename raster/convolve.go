// Package raster - same-size convolution under the clamp-to-edge policy.
//
// Kernels are applied as correlation: the weight at offset i multiplies the
// sample at x+i. For the symmetric Gaussian this equals convolution; for
// Sobel it fixes the sign convention documented on SobelX/SobelY.
//
// Each output row is computed from the input only and written by exactly one
// Runner chunk, so the row loops need no locking.

package raster

import "fmt"

// Runner splits [0, n) into disjoint chunks and runs fn on each, returning
// once every chunk has finished. *workerpool.Pool satisfies it.
type Runner interface {
	ParallelFor(n int, fn func(start, end int))
}

// ForRows runs fn over [0, h) through r, or inline when r is nil.
func ForRows(r Runner, h int, fn func(y0, y1 int)) {
	if r == nil {
		fn(0, h)
		return
	}
	r.ParallelFor(h, fn)
}

// ConvolveSeparable applies k along rows and then along columns.
// Output has p's dimensions; p is not modified.
//
// Complexity: O(W·H·len(k)) time, O(W·H) extra memory.
func ConvolveSeparable(p *Plane, k Kernel1D, r Runner) (*Plane, error) {
	if p.Empty() {
		return nil, ErrNilPlane
	}
	if err := k.Validate(); err != nil {
		return nil, fmt.Errorf("ConvolveSeparable: %w", err)
	}

	rad := k.Radius()
	tmp := newPlaneLike(p)
	ForRows(r, p.h, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			src := p.Row(y)
			dst := tmp.Row(y)
			for x := range p.w {
				acc := 0.0
				for i := -rad; i <= rad; i++ {
					acc += k[i+rad] * src[clampIndex(x+i, p.w)]
				}
				dst[x] = acc
			}
		}
	})

	out := newPlaneLike(p)
	ForRows(r, p.h, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			dst := out.Row(y)
			for x := range p.w {
				acc := 0.0
				for i := -rad; i <= rad; i++ {
					acc += k[i+rad] * tmp.pix[clampIndex(y+i, p.h)*p.w+x]
				}
				dst[x] = acc
			}
		}
	})

	return out, nil
}

// Correlate3x3 applies k around every sample; out-of-plane neighbours follow
// the clamp-to-edge policy.
func Correlate3x3(p *Plane, k Kernel3x3, r Runner) (*Plane, error) {
	if p.Empty() {
		return nil, ErrNilPlane
	}

	out := newPlaneLike(p)
	ForRows(r, p.h, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			correlateRow(p, k, y, out.Row(y))
		}
	})

	return out, nil
}

// correlateRow writes row y of k⋆p into dst.
func correlateRow(p *Plane, k Kernel3x3, y int, dst []float64) {
	rows := [3][]float64{
		p.Row(clampIndex(y-1, p.h)),
		p.Row(y),
		p.Row(clampIndex(y+1, p.h)),
	}
	for x := range p.w {
		xl, xr := clampIndex(x-1, p.w), clampIndex(x+1, p.w)
		acc := 0.0
		for j, row := range rows {
			acc += k[j*3]*row[xl] + k[j*3+1]*row[x] + k[j*3+2]*row[xr]
		}
		dst[x] = acc
	}
}

// CorrelatePair applies two 3×3 kernels in one pass and returns both
// responses. Used by gradient stages that need gx and gy together.
func CorrelatePair(p *Plane, kx, ky Kernel3x3, r Runner) (gx, gy *Plane, err error) {
	if p.Empty() {
		return nil, nil, ErrNilPlane
	}

	gx, gy = newPlaneLike(p), newPlaneLike(p)
	ForRows(r, p.h, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			correlateRow(p, kx, y, gx.Row(y))
			correlateRow(p, ky, y, gy.Row(y))
		}
	})

	return gx, gy, nil
}
