package commands

import (
	"fmt"

	"github.com/katalvlaran/lvimg/canny"
	"github.com/katalvlaran/lvimg/imageio"
	"github.com/rs/zerolog/log"
)

// EdgeCmd implements the 'edge' command.
type EdgeCmd struct {
	Input         string  `short:"i" required:"" type:"existingfile" help:"Input image."`
	Output        string  `short:"o" help:"Output image (default <output-dir>/<name>_edge<ext>)."`
	Compare       bool    `help:"Also write <output>_compare.png with input and result side by side."`
	Method        string  `enum:"canny" default:"canny" help:"Edge detection method (${enum})."`
	Blur          float64 `default:"1.0" help:"Gaussian blur sigma."`
	LowThreshold  float64 `name:"low-threshold" default:"31" help:"Low hysteresis threshold."`
	HighThreshold float64 `name:"high-threshold" default:"91" help:"High hysteresis threshold."`
}

func (e *EdgeCmd) Run(rt *Runtime) error {
	return rt.track("edge", func() error { return e.run(rt) })
}

func (e *EdgeCmd) run(rt *Runtime) error {
	img, format, err := imageio.Load(e.Input)
	if err != nil {
		return err
	}
	plane, err := imageio.ToPlane(img)
	if err != nil {
		return err
	}
	log.Info().
		Str("input", e.Input).
		Str("format", format).
		Str("method", e.Method).
		Int("width", plane.Width()).
		Int("height", plane.Height()).
		Float64("sigma", e.Blur).
		Float64("low", e.LowThreshold).
		Float64("high", e.HighThreshold).
		Msg("Starting edge detection")

	det := canny.NewDetector(
		canny.WithSigma(e.Blur),
		canny.WithThresholds(e.LowThreshold, e.HighThreshold),
		canny.WithRunner(rt.Runner()),
		canny.WithObserver(rt),
	)
	edges, err := det.Detect(plane)
	if err != nil {
		return fmt.Errorf("edge detection: %w", err)
	}
	rt.Recorder.AddEdgePixels(edges.Count())

	result, err := imageio.EdgesToGray(edges)
	if err != nil {
		return err
	}
	out := rt.outputPath(e.Output, e.Input, "edge")
	if err := rt.save(out, img, result, e.Compare); err != nil {
		return err
	}

	log.Info().
		Str("output", out).
		Int("edge_pixels", edges.Count()).
		Int("segments", len(edges.Segments())).
		Msg("Edge detection completed")
	return nil
}
