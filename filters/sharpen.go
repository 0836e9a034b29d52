package filters

import (
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/convolution"
)

// Sharpening methods.
const (
	MethodUnsharpMask = "unsharp_mask"
	MethodKernel      = "kernel"
	MethodCV2         = "cv2" // alias of MethodKernel
)

// Defaults of UnsharpOptions.
const (
	DefaultKernelSize = 7
	DefaultAmount     = 1.5
	DefaultThreshold  = 10
)

// UnsharpOptions parameterise UnsharpMask.
type UnsharpOptions struct {
	KernelSize int     // odd, ≥ 3
	Amount     float64 // ≥ 0
	Threshold  float64 // ≥ 0, in 8-bit channel units
}

// DefaultUnsharpOptions returns kernel 7, amount 1.5, threshold 10.
func DefaultUnsharpOptions() UnsharpOptions {
	return UnsharpOptions{KernelSize: DefaultKernelSize, Amount: DefaultAmount, Threshold: DefaultThreshold}
}

// Validate checks the options.
func (o UnsharpOptions) Validate() error {
	if o.KernelSize < 3 || o.KernelSize%2 == 0 {
		return fmt.Errorf("kernel size %d must be odd and ≥ 3: %w", o.KernelSize, ErrInvalidParameter)
	}
	if o.Amount < 0 || math.IsNaN(o.Amount) || math.IsInf(o.Amount, 0) {
		return fmt.Errorf("amount %v: %w", o.Amount, ErrInvalidParameter)
	}
	if o.Threshold < 0 || math.IsNaN(o.Threshold) || math.IsInf(o.Threshold, 0) {
		return fmt.Errorf("threshold %v: %w", o.Threshold, ErrInvalidParameter)
	}
	return nil
}

// Sigma is the Gaussian sigma implied by the kernel size:
// 0.3·((k−1)/2 − 1) + 0.8.
func (o UnsharpOptions) Sigma() float64 {
	return 0.3*(float64(o.KernelSize-1)/2-1) + 0.8
}

// Sharpen dispatches on method name.
func Sharpen(img image.Image, method string, o UnsharpOptions) (*image.RGBA, error) {
	switch strings.ToLower(strings.TrimSpace(method)) {
	case MethodUnsharpMask, "":
		return UnsharpMask(img, o)
	case MethodKernel, MethodCV2:
		return KernelSharpen(img)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
}

// UnsharpMask sharpens img by subtracting a Gaussian-blurred copy:
// out = (1+amount)·img − amount·blurred, rounded and clipped to [0,255].
// Channels where |img − blurred| < threshold are left unchanged, which keeps
// flat, noisy regions from being amplified. Alpha is preserved.
func UnsharpMask(img image.Image, o UnsharpOptions) (*image.RGBA, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	if err := o.Validate(); err != nil {
		return nil, fmt.Errorf("filters.UnsharpMask: %w", err)
	}

	src := clone.AsRGBA(img)
	blurred := gaussian(src, o.KernelSize, o.Sigma())
	dst := image.NewRGBA(src.Rect)

	for i := 0; i < len(src.Pix); i += 4 {
		for c := 0; c < 3; c++ {
			v := float64(src.Pix[i+c])
			b := float64(blurred.Pix[i+c])
			if math.Abs(v-b) < o.Threshold {
				dst.Pix[i+c] = src.Pix[i+c]
				continue
			}
			dst.Pix[i+c] = clampByte((1+o.Amount)*v - o.Amount*b)
		}
		dst.Pix[i+3] = src.Pix[i+3]
	}

	return dst, nil
}

var sharpenKernel = &convolution.Kernel{
	Matrix: []float64{
		-1, -1, -1,
		-1, 9, -1,
		-1, -1, -1,
	},
	Width:  3,
	Height: 3,
}

// KernelSharpen convolves img with the 3×3 sharpening kernel.
func KernelSharpen(img image.Image) (*image.RGBA, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	return convolution.Convolve(img, sharpenKernel, &convolution.Options{KeepAlpha: true}), nil
}

// gaussian blurs img with a separable size-tap kernel of the given sigma.
func gaussian(img image.Image, size int, sigma float64) *image.RGBA {
	r := size / 2
	h := convolution.NewKernel(size, 1)
	v := convolution.NewKernel(1, size)
	sum := 0.0
	for i := -r; i <= r; i++ {
		w := math.Exp(-float64(i*i) / (2 * sigma * sigma))
		h.Matrix[i+r] = w
		sum += w
	}
	for i := range h.Matrix {
		h.Matrix[i] /= sum
		v.Matrix[i] = h.Matrix[i]
	}

	opts := &convolution.Options{KeepAlpha: true}
	return convolution.Convolve(convolution.Convolve(img, h, opts), v, opts)
}

func clampByte(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(math.Round(v))
	}
}
