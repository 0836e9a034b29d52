package imageio

import (
	"image"
	"math"

	"github.com/katalvlaran/lvimg/canny"
	"github.com/katalvlaran/lvimg/raster"
)

// Luma weights (ITU-R BT.601).
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

// ToPlane converts img to a single-channel plane on the 0–255 scale.
// The plane origin is img.Bounds().Min.
func ToPlane(img image.Image) (*raster.Plane, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	b := img.Bounds()
	p, err := raster.NewPlane(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}

	pix := p.Pix()
	switch src := img.(type) {
	case *image.Gray:
		for y := 0; y < b.Dy(); y++ {
			row := src.Pix[y*src.Stride : y*src.Stride+b.Dx()]
			for x, v := range row {
				pix[y*b.Dx()+x] = float64(v)
			}
		}
	default:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				r, g, bl, _ := img.At(x, y).RGBA()
				pix[(y-b.Min.Y)*b.Dx()+(x-b.Min.X)] =
					(lumaR*float64(r) + lumaG*float64(g) + lumaB*float64(bl)) / 257
			}
		}
	}

	return p, nil
}

// PlaneToGray maps p to an 8-bit gray image. With stretch the range
// [min,max] of p is spread over 0–255 (useful for gradient planes);
// otherwise samples are rounded and clipped.
func PlaneToGray(p *raster.Plane, stretch bool) (*image.Gray, error) {
	if p.Empty() {
		return nil, ErrNilImage
	}
	w, h := p.Width(), p.Height()
	out := image.NewGray(image.Rect(0, 0, w, h))

	lo, hi := 0.0, 255.0
	if stretch {
		lo, hi = p.MinMax()
	}
	scale := 0.0
	if hi > lo {
		scale = 255 / (hi - lo)
	}

	for y := 0; y < h; y++ {
		row := p.Row(y)
		for x, v := range row {
			if stretch {
				v = (v - lo) * scale
			}
			out.Pix[y*out.Stride+x] = clip(v)
		}
	}
	return out, nil
}

// EdgesToGray renders an edge map: 255 for edges, 0 otherwise.
func EdgesToGray(m *canny.EdgeMap) (*image.Gray, error) {
	if m == nil {
		return nil, ErrNilImage
	}
	out := image.NewGray(image.Rect(0, 0, m.Width(), m.Height()))
	for i, e := range m.Pix() {
		if e {
			out.Pix[i] = 255
		}
	}
	return out, nil
}

func clip(v float64) uint8 {
	switch {
	case v <= 0 || math.IsNaN(v):
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(math.Round(v))
	}
}
