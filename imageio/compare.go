package imageio

import (
	"image"

	"golang.org/x/image/draw"
)

// Compare places left and right side by side at the height of left,
// scaling right to that height with its aspect ratio kept. With
// maxPanelWidth > 0 a wider left panel shrinks both panels to fit.
func Compare(left, right image.Image, maxPanelWidth int) (*image.RGBA, error) {
	if left == nil || right == nil {
		return nil, ErrNilImage
	}
	lb, rb := left.Bounds(), right.Bounds()
	if lb.Empty() || rb.Empty() {
		return nil, ErrNilImage
	}

	h := lb.Dy()
	if maxPanelWidth > 0 && lb.Dx() > maxPanelWidth {
		h = max(1, lb.Dy()*maxPanelWidth/lb.Dx())
	}
	lw := fitWidth(lb, h)
	rw := fitWidth(rb, h)

	out := image.NewRGBA(image.Rect(0, 0, lw+rw, h))
	place(out, image.Rect(0, 0, lw, h), left)
	place(out, image.Rect(lw, 0, lw+rw, h), right)
	return out, nil
}

// fitWidth is the width of b scaled to height h, rounded, at least 1.
func fitWidth(b image.Rectangle, h int) int {
	return max(1, (b.Dx()*h+b.Dy()/2)/b.Dy())
}

func place(dst *image.RGBA, r image.Rectangle, src image.Image) {
	sb := src.Bounds()
	if sb.Dx() == r.Dx() && sb.Dy() == r.Dy() {
		draw.Copy(dst, r.Min, src, sb, draw.Src, nil)
		return
	}
	draw.ApproxBiLinear.Scale(dst, r, src, sb, draw.Src, nil)
}
