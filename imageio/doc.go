// Package imageio sits at the boundary between files on disk and the
// float planes used by package canny.
//
// Load decodes png, jpeg, gif, bmp, tiff and webp. ToPlane converts any
// image.Image to an 8-bit-scale luma plane (0.299 R + 0.587 G + 0.114 B).
// PlaneToGray and EdgesToGray go the other way for saving. Save picks an
// encoder from the file extension. Compare builds a side-by-side image of an
// input and its result, and DefaultOutputPath reproduces the
// output/<name>_<command><ext> naming of the command-line tool.
package imageio
