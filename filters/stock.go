package filters

import (
	"context"
	"fmt"
	"image"
	"strings"

	"github.com/anthonynsimon/bild/convolution"
	"golang.org/x/sync/errgroup"
)

// Filter is a stock convolution filter. Weights are row-major Size×Size and
// are divided by Scale; Offset is added to every output channel.
type Filter struct {
	Name    string
	Size    int
	Weights []float64
	Scale   float64
	Offset  float64
}

// Stock filter names, lower-case as accepted on the command line.
const (
	Blur            = "blur"
	Contour         = "contour"
	Detail          = "detail"
	EdgeEnhance     = "edge_enhance"
	EdgeEnhanceMore = "edge_enhance_more"
	Emboss          = "emboss"
	FindEdges       = "find_edges"
	SharpenFilter   = "sharpen"
	Smooth          = "smooth"
	SmoothMore      = "smooth_more"
)

var stock = []Filter{
	{Name: Blur, Size: 5, Scale: 16, Weights: []float64{
		1, 1, 1, 1, 1,
		1, 0, 0, 0, 1,
		1, 0, 0, 0, 1,
		1, 0, 0, 0, 1,
		1, 1, 1, 1, 1,
	}},
	{Name: Contour, Size: 3, Scale: 1, Offset: 255, Weights: []float64{
		-1, -1, -1,
		-1, 8, -1,
		-1, -1, -1,
	}},
	{Name: Detail, Size: 3, Scale: 6, Weights: []float64{
		0, -1, 0,
		-1, 10, -1,
		0, -1, 0,
	}},
	{Name: EdgeEnhance, Size: 3, Scale: 2, Weights: []float64{
		-1, -1, -1,
		-1, 10, -1,
		-1, -1, -1,
	}},
	{Name: EdgeEnhanceMore, Size: 3, Scale: 1, Weights: []float64{
		-1, -1, -1,
		-1, 9, -1,
		-1, -1, -1,
	}},
	{Name: Emboss, Size: 3, Scale: 1, Offset: 128, Weights: []float64{
		-1, 0, 0,
		0, 1, 0,
		0, 0, 0,
	}},
	{Name: FindEdges, Size: 3, Scale: 1, Weights: []float64{
		-1, -1, -1,
		-1, 8, -1,
		-1, -1, -1,
	}},
	{Name: SharpenFilter, Size: 3, Scale: 16, Weights: []float64{
		-2, -2, -2,
		-2, 32, -2,
		-2, -2, -2,
	}},
	{Name: Smooth, Size: 3, Scale: 13, Weights: []float64{
		1, 1, 1,
		1, 5, 1,
		1, 1, 1,
	}},
	{Name: SmoothMore, Size: 5, Scale: 100, Weights: []float64{
		1, 1, 1, 1, 1,
		1, 5, 5, 5, 1,
		1, 5, 44, 5, 1,
		1, 5, 5, 5, 1,
		1, 1, 1, 1, 1,
	}},
}

// Names lists the stock filters in menu order.
func Names() []string {
	names := make([]string, len(stock))
	for i, f := range stock {
		names[i] = f.Name
	}
	return names
}

// Lookup finds a stock filter by name. Matching ignores case and treats
// '-' like '_', so "FIND_EDGES" and "find-edges" both work.
func Lookup(name string) (Filter, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for _, f := range stock {
		if f.Name == key {
			return f, nil
		}
	}
	return Filter{}, fmt.Errorf("%w: %q (known: %s)", ErrUnknownFilter, name, strings.Join(Names(), ", "))
}

// Kernel returns the scaled bild kernel of f.
func (f Filter) Kernel() *convolution.Kernel {
	k := convolution.NewKernel(f.Size, f.Size)
	for i, w := range f.Weights {
		k.Matrix[i] = w / f.Scale
	}
	return k
}

// Apply convolves img with f.
func (f Filter) Apply(img image.Image) *image.RGBA {
	return convolution.Convolve(img, f.Kernel(), &convolution.Options{
		Bias:      f.Offset,
		Wrap:      false,
		KeepAlpha: true,
	})
}

// Apply runs the stock filter called name over img.
func Apply(img image.Image, name string) (*image.RGBA, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	f, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return f.Apply(img), nil
}

// Output is one filtered image produced by ApplyAll.
type Output struct {
	Name  string
	Image *image.RGBA
}

// ApplyAll runs every stock filter over img with at most limit filters in
// flight (limit ≤ 0 means no limit). Outputs are in Names order. The first
// cancellation of ctx stops filters that have not started yet.
func ApplyAll(ctx context.Context, img image.Image, limit int) ([]Output, error) {
	if img == nil {
		return nil, ErrNilImage
	}

	out := make([]Output, len(stock))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, f := range stock {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("filters.ApplyAll %s: %w", f.Name, err)
			}
			out[i] = Output{Name: f.Name, Image: f.Apply(img)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
