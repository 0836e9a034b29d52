package commands

import (
	"context"
	"image"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/katalvlaran/lvimg/imageio"
	"github.com/katalvlaran/lvimg/internal/metrics"
	"github.com/katalvlaran/lvimg/raster"
	"github.com/katalvlaran/lvimg/workerpool"
	"github.com/rs/zerolog/log"
)

// comparePanelWidth caps each half of a --compare image.
const comparePanelWidth = 1024

// Runtime is the state shared by all commands of one process.
type Runtime struct {
	Ctx      context.Context
	In       io.Reader
	Out      io.Writer
	Recorder metrics.Recorder

	workers     int
	outputDir   string
	metricsFile string
	pool        *workerpool.Pool
	prom        *metrics.PrometheusRecorder
}

// NewRuntime builds the runtime from parsed global flags. A worker pool is
// started unless --workers is 1; metrics are recorded only when
// --metrics-file is set.
func NewRuntime(ctx context.Context, c *CLI, in io.Reader, out io.Writer) *Runtime {
	rt := &Runtime{
		Ctx:         ctx,
		In:          in,
		Out:         out,
		Recorder:    metrics.NoopRecorder{},
		workers:     c.Workers,
		outputDir:   c.OutputDir,
		metricsFile: c.MetricsFile,
	}
	if c.Workers != 1 {
		rt.pool = workerpool.New(c.Workers)
		rt.workers = rt.pool.NumWorkers()
	}
	if c.MetricsFile != "" {
		rt.prom = metrics.NewPrometheusRecorder(nil)
		rt.Recorder = rt.prom
	}
	return rt
}

// Runner is what the detector uses for row-parallel stages; nil means
// sequential.
func (rt *Runtime) Runner() raster.Runner {
	if rt.pool == nil {
		return nil
	}
	return rt.pool
}

// Close stops the pool and writes the metrics file, if any.
func (rt *Runtime) Close() error {
	if rt.pool != nil {
		rt.pool.Close()
	}
	if rt.prom == nil {
		return nil
	}
	return metrics.WriteTextfile(rt.metricsFile, rt.prom.Registry())
}

// track times fn and counts its outcome under command.
func (rt *Runtime) track(command string, fn func() error) error {
	start := time.Now()
	err := fn()
	rt.Recorder.ObserveRun(command, time.Since(start))
	if err != nil {
		rt.Recorder.IncResult(command, metrics.ResultFailed)
		return err
	}
	rt.Recorder.IncResult(command, metrics.ResultSuccess)
	return nil
}

// ObserveStage logs a detector stage and forwards it to the recorder.
func (rt *Runtime) ObserveStage(stage string, d time.Duration) {
	log.Debug().Str("stage", stage).Dur("took", d).Msg("Stage finished")
	rt.Recorder.ObserveStage(stage, d)
}

// outputPath resolves where a result goes. Inputs in formats that cannot be
// written (webp) fall back to .png.
func (rt *Runtime) outputPath(explicit, input, command string) string {
	p := imageio.DefaultOutputPath(explicit, input, command, rt.outputDir)
	if explicit == "" && !imageio.Supported(p) {
		p = strings.TrimSuffix(p, filepath.Ext(p)) + ".png"
	}
	return p
}

// save writes result to out, plus a side-by-side file when compare is set.
func (rt *Runtime) save(out string, original, result image.Image, compare bool) error {
	if err := imageio.Save(out, result); err != nil {
		return err
	}
	if !compare {
		return nil
	}
	cmp, err := imageio.Compare(original, result, comparePanelWidth)
	if err != nil {
		return err
	}
	cmpPath := imageio.ComparePath(out)
	if err := imageio.Save(cmpPath, cmp); err != nil {
		return err
	}
	log.Info().Str("path", cmpPath).Msg("Comparison saved")
	return nil
}
