package canny

import "errors"

var (
	// ErrInvalidParameter indicates a sigma or threshold outside its domain.
	// Parameters are never clamped silently.
	ErrInvalidParameter = errors.New("canny: invalid parameter")

	// ErrEmptyInput indicates a nil or zero-size input plane.
	ErrEmptyInput = errors.New("canny: empty input")

	// ErrDimensionMismatch indicates co-indexed arrays of differing sizes.
	// The pipeline never produces it; it guards hand-built GradientFields.
	ErrDimensionMismatch = errors.New("canny: dimension mismatch")
)
