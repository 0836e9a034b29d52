package filters_test

import (
	"image"
	"image/color"
)

// uniform returns a w×h opaque gray image.
func uniform(w, h int, v uint8) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{v, v, v, 255})
		}
	}
	return img
}

// step returns a w×h image that is dark (lo) left of x = w/2 and bright (hi)
// from there on.
func step(w, h int, lo, hi uint8) *image.RGBA {
	img := uniform(w, h, lo)
	for y := 0; y < h; y++ {
		for x := w / 2; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{hi, hi, hi, 255})
		}
	}
	return img
}

// gray reads the red channel at (x,y).
func gray(img *image.RGBA, x, y int) uint8 {
	return img.RGBAAt(x, y).R
}
