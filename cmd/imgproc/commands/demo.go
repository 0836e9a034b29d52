package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/lvimg/canny"
	"github.com/katalvlaran/lvimg/filters"
	"github.com/rs/zerolog/log"
)

// DemoCmd implements the 'demo' command: every routine over two sample
// images, results in the output directory.
type DemoCmd struct {
	ImagesDir string `name:"images-dir" default:"images" help:"Directory holding the sample images."`
	Sample    string `default:"image.jpg" help:"Sample image for sharpening and filters."`
	Landscape string `default:"background_landscape.png" help:"Sample image for edge detection."`
}

func (d *DemoCmd) Run(rt *Runtime) error {
	sample := filepath.Join(d.ImagesDir, d.Sample)
	landscape := filepath.Join(d.ImagesDir, d.Landscape)
	for _, p := range []string{sample, landscape} {
		if _, err := os.Stat(p); err != nil {
			return fmt.Errorf("sample images not found: %w", err)
		}
	}
	out := func(name string) string { return filepath.Join(rt.outputDir, name) }

	log.Info().Msg("Demo 1/3: edge detection")
	edge := &EdgeCmd{
		Input:         landscape,
		Output:        out("edges.jpg"),
		Method:        "canny",
		Blur:          canny.DefaultSigma,
		LowThreshold:  canny.DefaultLow,
		HighThreshold: canny.DefaultHigh,
	}
	if err := edge.Run(rt); err != nil {
		return err
	}

	log.Info().Msg("Demo 2/3: sharpening")
	for _, method := range []string{filters.MethodUnsharpMask, filters.MethodCV2} {
		s := &SharpenCmd{
			Input:            sample,
			Output:           out("sharpened_" + method + ".jpg"),
			Method:           method,
			BlurKernelSize:   filters.DefaultKernelSize,
			SharpeningAmount: filters.DefaultAmount,
			Threshold:        filters.DefaultThreshold,
		}
		if err := s.Run(rt); err != nil {
			return err
		}
	}

	log.Info().Msg("Demo 3/3: filters")
	single := &FilterCmd{Input: sample, FilterName: filters.FindEdges, Output: out("filter_find_edges.jpg")}
	if err := single.Run(rt); err != nil {
		return err
	}
	if err := (&FilterCmd{Input: sample}).Run(rt); err != nil {
		return err
	}

	fmt.Fprintf(rt.Out, "Demo completed. All processed images saved to %q.\n", rt.outputDir)
	return nil
}
