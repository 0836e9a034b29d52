// Package filters provides the non-Canny image routines of lvimg: a menu of
// classic 3×3 / 5×5 stock filters and two sharpening methods.
//
// Stock filters are fixed kernels with a scale divisor and an offset
// (BLUR, CONTOUR, DETAIL, EDGE_ENHANCE, EDGE_ENHANCE_MORE, EMBOSS,
// FIND_EDGES, SHARPEN, SMOOTH, SMOOTH_MORE). Each is applied per channel with
// github.com/anthonynsimon/bild/convolution, extending edge pixels at the
// border and keeping alpha. ApplyAll runs the whole menu concurrently.
//
// Sharpening:
//   - UnsharpMask: (1+amount)·img − amount·gaussian(img), skipping pixels
//     whose difference from the blur is below a threshold;
//   - KernelSharpen: the 3×3 kernel [-1 -1 -1; -1 9 -1; -1 -1 -1].
//
// All functions take an image.Image, never modify it, and return a new
// *image.RGBA of the same bounds.
package filters
