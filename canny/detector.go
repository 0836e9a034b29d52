package canny

import (
	"fmt"
	"time"

	"github.com/katalvlaran/lvimg/raster"
)

// Stage names reported to an Observer.
const (
	StageSmooth   = "smooth"
	StageGradient = "gradient"
	StageSuppress = "suppress"
	StageTrace    = "trace"
)

// Observer receives the wall time of each completed stage.
type Observer interface {
	ObserveStage(stage string, d time.Duration)
}

// Result carries every intermediate product of one Run.
type Result struct {
	Smoothed   *raster.Plane
	Gradient   *GradientField
	Suppressed *raster.Plane
	Labels     *LabelMap
	Edges      *EdgeMap
}

// Detector chains the four stages with fixed Options. A Detector holds no
// per-image state and is safe for concurrent use if its Runner is.
type Detector struct {
	opts     Options
	runner   raster.Runner
	observer Observer
}

// Option configures a Detector.
type Option func(*Detector)

// WithOptions replaces all numeric parameters.
func WithOptions(o Options) Option {
	return func(d *Detector) { d.opts = o }
}

// WithSigma sets the Gaussian sigma.
func WithSigma(sigma float64) Option {
	return func(d *Detector) { d.opts.Sigma = sigma }
}

// WithThresholds sets the hysteresis thresholds.
func WithThresholds(low, high float64) Option {
	return func(d *Detector) {
		d.opts.Low = low
		d.opts.High = high
	}
}

// WithRunner makes row-parallel stages use r.
func WithRunner(r raster.Runner) Option {
	return func(d *Detector) { d.runner = r }
}

// WithObserver reports stage timings to o.
func WithObserver(o Observer) Option {
	return func(d *Detector) { d.observer = o }
}

// NewDetector returns a Detector starting from DefaultOptions.
// Parameters are validated on each Run, not here.
func NewDetector(opts ...Option) *Detector {
	d := &Detector{opts: DefaultOptions()}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Options returns the detector's numeric parameters.
func (d *Detector) Options() Options { return d.opts }

// Detect runs the pipeline and returns only the final edge map.
func (d *Detector) Detect(img *raster.Plane) (*EdgeMap, error) {
	res, err := d.Run(img)
	if err != nil {
		return nil, err
	}
	return res.Edges, nil
}

// Run executes Smooth → Gradient → Suppress → Trace. Parameters and input
// are validated before any stage starts.
func (d *Detector) Run(img *raster.Plane) (*Result, error) {
	if img.Empty() {
		return nil, fmt.Errorf("canny.Detect: %w", ErrEmptyInput)
	}
	if err := d.opts.Validate(); err != nil {
		return nil, fmt.Errorf("canny.Detect: %w", err)
	}

	var (
		res Result
		err error
	)
	start := time.Now()
	if res.Smoothed, err = smooth(img, d.opts.Sigma, d.runner); err != nil {
		return nil, err
	}
	start = d.observe(StageSmooth, start)

	if res.Gradient, err = gradient(res.Smoothed, d.runner); err != nil {
		return nil, err
	}
	start = d.observe(StageGradient, start)

	if res.Suppressed, err = suppress(res.Gradient, d.runner); err != nil {
		return nil, err
	}
	start = d.observe(StageSuppress, start)

	if res.Labels, err = Classify(res.Suppressed, d.opts.Low, d.opts.High); err != nil {
		return nil, err
	}
	if res.Edges, err = res.Labels.Trace(); err != nil {
		return nil, err
	}
	d.observe(StageTrace, start)

	return &res, nil
}

// observe reports the time since start and returns the new start.
func (d *Detector) observe(stage string, start time.Time) time.Time {
	now := time.Now()
	if d.observer != nil {
		d.observer.ObserveStage(stage, now.Sub(start))
	}
	return now
}

// Detect is the one-call form: sequential stages with opts.
func Detect(img *raster.Plane, opts Options) (*EdgeMap, error) {
	return NewDetector(WithOptions(opts)).Detect(img)
}
