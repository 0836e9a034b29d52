// Package canny implements the Canny edge detector over single-channel
// intensity planes.
//
// Pipeline (each stage allocates a fresh output of the input's size):
//
//  1. Smooth    : separable Gaussian, radius ceil(3σ), clamp-to-edge border.
//  2. Gradient  : Sobel gx/gy, L2 magnitude, direction quantized to
//     0°, 45°, 90° or 135°.
//  3. Suppress  : keep a pixel only if its magnitude is ≥ both neighbours
//     along its gradient sector; the outermost ring is always zero.
//  4. Trace     : hysteresis, where magnitude ≥ high is Strong, low ≤ m < high is
//     Weak; Weak pixels become edges iff 8-connected to a Strong pixel
//     through other Weak pixels.
//
// Each stage is exported on its own (Smooth, Gradient, Suppress, Classify,
// Trace) and chained by Detect / Detector.Run. Detector adds a Runner for
// row-parallel stages and an Observer for per-stage timings.
//
// Direction handling:
//
//	Directions are quantized to four sectors instead of interpolating
//	neighbour magnitudes at the exact angle. This fixes which pixels
//	survive at diagonal boundaries; it is not bit-compatible with
//	detectors that interpolate.
//
// Errors:
//
//   - ErrInvalidParameter: sigma ≤ 0, non-finite parameter, negative
//     threshold or low > high.
//   - ErrEmptyInput: nil or zero-size plane.
//   - ErrDimensionMismatch: a GradientField whose parts disagree in size.
package canny
