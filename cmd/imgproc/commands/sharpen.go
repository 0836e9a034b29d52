package commands

import (
	"github.com/katalvlaran/lvimg/filters"
	"github.com/katalvlaran/lvimg/imageio"
	"github.com/rs/zerolog/log"
)

// sharpSuffix names default sharpen outputs, <name>_sharp<ext>. The stock
// "sharpen" filter keeps <name>_sharpen<ext>.
const sharpSuffix = "sharp"

// SharpenCmd implements the 'sharpen' command.
type SharpenCmd struct {
	Input            string  `short:"i" required:"" type:"existingfile" help:"Input image."`
	Output           string  `short:"o" help:"Output image (default <output-dir>/<name>_sharp<ext>)."`
	Compare          bool    `help:"Also write <output>_compare.png with input and result side by side."`
	Method           string  `enum:"unsharp_mask,kernel,cv2" default:"unsharp_mask" help:"Sharpening method (${enum})."`
	BlurKernelSize   int     `name:"blur-kernel-size" default:"7" help:"Gaussian kernel size for unsharp mask (odd)."`
	SharpeningAmount float64 `name:"sharpening-amount" default:"1.5" help:"Strength of the unsharp mask."`
	Threshold        float64 `default:"10" help:"Minimum difference from the blur for a pixel to be sharpened."`
}

func (s *SharpenCmd) Run(rt *Runtime) error {
	return rt.track("sharpen", func() error { return s.run(rt) })
}

func (s *SharpenCmd) run(rt *Runtime) error {
	img, _, err := imageio.Load(s.Input)
	if err != nil {
		return err
	}
	log.Info().Str("input", s.Input).Str("method", s.Method).Msg("Starting sharpening")

	result, err := filters.Sharpen(img, s.Method, filters.UnsharpOptions{
		KernelSize: s.BlurKernelSize,
		Amount:     s.SharpeningAmount,
		Threshold:  s.Threshold,
	})
	if err != nil {
		return err
	}

	out := rt.outputPath(s.Output, s.Input, sharpSuffix)
	if err := rt.save(out, img, result, s.Compare); err != nil {
		return err
	}
	log.Info().Str("output", out).Msg("Image sharpening completed")
	return nil
}
