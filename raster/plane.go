// Package raster - Plane storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the index formula y*w + x.
//   - Keep the public surface safe: At/Set return errors instead of panicking.
//   - Expose Row/Pix for hot loops that have already validated their bounds.

package raster

import (
	"fmt"
	"math"
	"strings"
)

const (
	ctxAt  = "At"
	ctxSet = "Set"
)

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// planeErrorf attaches method context and coordinates to a sentinel.
func planeErrorf(method string, x, y int, err error) error {
	return fmt.Errorf("Plane.%s(%d,%d): %w", method, x, y, err)
}

// Plane is a single-channel image stored row-major.
//   - w,h hold dimensions (both > 0 for planes built by public constructors).
//   - pix has length w*h; sample (x,y) lives at pix[y*w+x].
//
// A Plane produced by a pipeline stage is treated as immutable by every
// consumer; stages always allocate a fresh output plane.
type Plane struct {
	w, h int
	pix  []float64
}

var _ fmt.Stringer = (*Plane)(nil)

// NewPlane creates a zero-filled width×height plane.
// Returns ErrInvalidDimensions if width or height ≤ 0.
// Complexity: O(W·H).
func NewPlane(width, height int) (*Plane, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Plane{w: width, h: height, pix: make([]float64, width*height)}, nil
}

// FromRows builds a plane from a rectangular [][]float64, copying the input.
// rows[y][x] becomes sample (x,y).
//
// Errors:
//   - ErrEmpty: no rows or an empty first row.
//   - ErrNonRectangular: differing row lengths.
//   - ErrNaNInf: a non-finite sample.
func FromRows(rows [][]float64) (*Plane, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmpty
	}
	h, w := len(rows), len(rows[0])
	p := &Plane{w: w, h: h, pix: make([]float64, w*h)}
	for y, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		for x, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, planeErrorf("FromRows", x, y, ErrNaNInf)
			}
		}
		copy(p.pix[y*w:(y+1)*w], row)
	}

	return p, nil
}

// FromPix builds a width×height plane from a row-major slice, copying it.
// len(pix) must equal width*height.
func FromPix(width, height int, pix []float64) (*Plane, error) {
	p, err := NewPlane(width, height)
	if err != nil {
		return nil, err
	}
	if len(pix) != width*height {
		return nil, fmt.Errorf("FromPix: len %d for %dx%d: %w", len(pix), width, height, ErrInvalidDimensions)
	}
	for i, v := range pix {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, planeErrorf("FromPix", i%width, i/width, ErrNaNInf)
		}
	}
	copy(p.pix, pix)

	return p, nil
}

// newPlaneLike allocates a zero plane with the shape of p.
// Callers guarantee p is non-nil and well-formed.
func newPlaneLike(p *Plane) *Plane {
	return &Plane{w: p.w, h: p.h, pix: make([]float64, len(p.pix))}
}

// Width returns the number of columns.
func (p *Plane) Width() int { return p.w }

// Height returns the number of rows.
func (p *Plane) Height() int { return p.h }

// Len returns the number of samples (Width*Height).
func (p *Plane) Len() int { return len(p.pix) }

// Empty reports whether p is nil or has no samples.
func (p *Plane) Empty() bool { return p == nil || len(p.pix) == 0 }

// InBounds reports whether (x,y) lies inside the plane.
func (p *Plane) InBounds(x, y int) bool {
	return x >= 0 && x < p.w && y >= 0 && y < p.h
}

// At returns sample (x,y) or ErrOutOfRange.
func (p *Plane) At(x, y int) (float64, error) {
	if !p.InBounds(x, y) {
		return 0, planeErrorf(ctxAt, x, y, ErrOutOfRange)
	}

	return p.pix[y*p.w+x], nil
}

// Set assigns sample (x,y). Non-finite values are rejected with ErrNaNInf.
func (p *Plane) Set(x, y int, v float64) error {
	if !p.InBounds(x, y) {
		return planeErrorf(ctxSet, x, y, ErrOutOfRange)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return planeErrorf(ctxSet, x, y, ErrNaNInf)
	}
	p.pix[y*p.w+x] = v

	return nil
}

// Clamped returns sample (x,y) under the clamp-to-edge border policy:
// coordinates outside the plane are moved to the nearest edge sample.
// It never reads out of bounds.
func (p *Plane) Clamped(x, y int) float64 {
	return p.pix[clampIndex(y, p.h)*p.w+clampIndex(x, p.w)]
}

// clampIndex maps i into [0, n).
func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}

	return i
}

// Row returns the backing slice of row y. The slice aliases the plane;
// callers must not modify a plane they did not allocate.
func (p *Plane) Row(y int) []float64 {
	return p.pix[y*p.w : (y+1)*p.w]
}

// Pix returns the row-major backing slice (aliases the plane).
func (p *Plane) Pix() []float64 { return p.pix }

// Clone returns a deep copy.
func (p *Plane) Clone() *Plane {
	q := newPlaneLike(p)
	copy(q.pix, p.pix)

	return q
}

// Rows returns a freshly allocated [][]float64 copy of the plane.
func (p *Plane) Rows() [][]float64 {
	out := make([][]float64, p.h)
	for y := range p.h {
		out[y] = append([]float64(nil), p.Row(y)...)
	}

	return out
}

// SameShape reports whether p and q are non-nil and have equal dimensions.
func (p *Plane) SameShape(q *Plane) bool {
	return p != nil && q != nil && p.w == q.w && p.h == q.h
}

// MinMax returns the smallest and largest sample.
func (p *Plane) MinMax() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range p.pix {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	return lo, hi
}

// String renders the plane one row per line, e.g. "[0, 1]\n[2, 3]\n".
func (p *Plane) String() string {
	var sb strings.Builder
	for y := range p.h {
		sb.WriteString(_fmtRowOpen)
		for x, v := range p.Row(y) {
			if x > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", v)
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
