// Package raster provides single-channel intensity planes, small convolution
// kernels and the border policy shared by every image stage in lvimg.
//
// What:
//
//   - Plane: a width×height row-major buffer of float64 samples
//     (0–255 or 0–1; the package does not care which).
//   - Kernel1D: odd-length separable weights (Gaussian1D builds them from sigma).
//   - Kernel3x3: fixed 3×3 weights (SobelX, SobelY).
//   - ConvolveSeparable / Correlate3x3: same-size convolution with a
//     clamp-to-edge border, parallelised over rows through a Runner.
//
// Border policy:
//
//	Every sample outside the plane reads as the nearest in-bounds sample
//	(clamp-to-edge, also called replicate). The policy is fixed for the
//	whole package so smoothing and gradient stages never disagree at the
//	border. A constant plane therefore convolves to a constant plane, and
//	its derivative is exactly zero, borders included.
//
// Complexity:
//
//   - ConvolveSeparable: O(W·H·(2r+1)) time, O(W·H) memory (one scratch plane).
//   - Correlate3x3:      O(W·H·9) time, O(W·H) memory.
//
// Errors:
//
//   - ErrInvalidDimensions: width or height ≤ 0.
//   - ErrEmpty: no rows or no columns in a 2-D input.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrOutOfRange: At/Set outside the plane.
//   - ErrNaNInf: NaN or ±Inf sample.
//   - ErrBadKernel: even-length, empty or non-finite kernel; sigma ≤ 0.
//   - ErrNilPlane: nil *Plane argument.
package raster
