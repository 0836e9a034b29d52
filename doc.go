// Package lvimg is a small, pure-Go image processing toolkit built around a
// from-scratch Canny edge detector.
//
// 🚀 What is inside?
//
//	• Canny: Gaussian smoothing, Sobel gradient, non-maximum suppression,
//	  hysteresis with 8-connected tracing, each stage callable on its own
//	• Rasters: float64 intensity planes, 1-D Gaussian & 3×3 kernels,
//	  same-size convolution with clamp-to-edge borders
//	• Grids: 4/8-connected neighbourhoods, multi-source flood, components
//	• Filters: ten classic stock kernels, unsharp mask, kernel sharpening
//	• CLI: imgproc (edge, sharpen, filter, demo, interactive menu)
//
// ✨ Why lvimg?
//
//   - Deterministic: the same input and parameters give the same edges,
//     sequential or parallel
//   - Explicit errors: sentinel errors, no silent clamping of bad parameters
//   - Parallel where it pays: row-parallel stages on a persistent pool
//
// Packages:
//
//	canny/       the four detector stages, Detector, EdgeMap
//	raster/      Plane, kernels, separable & 3×3 convolution
//	gridgraph/   grid connectivity, Flood, ConnectedComponents
//	workerpool/  persistent pool implementing raster.Runner
//	filters/     stock filters and sharpening (bild)
//	imageio/     load/save, luma planes, comparison images
//	cmd/imgproc  the command-line tool
//
// Quick ASCII example (sigma 1, low 10, high 50):
//
//	input        edges
//	. . . . .    . . . . .
//	. █ █ █ .    . # # # .
//	. █ █ █ .    . # . # .
//	. █ █ █ .    . # # # .
//	. . . . .    . . . . .
//
//	go install github.com/katalvlaran/lvimg/cmd/imgproc@latest
package lvimg
