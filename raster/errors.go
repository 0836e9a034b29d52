package raster

import "errors"

// Every message is prefixed with "raster: ". Callers add context with
// fmt.Errorf("...: %w", ErrX) and match with errors.Is.
var (
	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("raster: dimensions must be > 0")

	// ErrEmpty indicates a 2-D input with no rows or no columns.
	ErrEmpty = errors.New("raster: input must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("raster: all rows must have the same length")

	// ErrOutOfRange indicates a coordinate outside the plane.
	ErrOutOfRange = errors.New("raster: coordinate out of range")

	// ErrNaNInf signals a NaN or ±Inf sample where finite values are required.
	ErrNaNInf = errors.New("raster: NaN or Inf encountered")

	// ErrBadKernel signals an unusable kernel (even length, empty, non-finite
	// weight) or a non-positive sigma.
	ErrBadKernel = errors.New("raster: invalid kernel")

	// ErrNilPlane indicates that a nil *Plane was passed.
	ErrNilPlane = errors.New("raster: nil plane")
)
