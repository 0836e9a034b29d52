package metrics

import (
	"fmt"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "lvimg"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	reg           *prom.Registry
	stageDuration *prom.HistogramVec
	runDuration   *prom.HistogramVec
	edgePixels    prom.Counter
	results       *prom.CounterVec
}

// NewPrometheusRecorder constructs the collectors and registers them on reg
// (a fresh registry when nil).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		reg: reg,
		stageDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Duration of individual edge detection stages",
			Buckets:   prom.ExponentialBuckets(0.0005, 4, 10),
		}, []string{"stage"}),
		runDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Total duration of a command, including I/O",
			Buckets:   prom.DefBuckets,
		}, []string{"command"}),
		edgePixels: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "edge_pixels_total",
			Help:      "Edge pixels produced by the detector",
		}),
		results: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "results_total",
			Help:      "Command results by outcome",
		}, []string{"command", "result"}),
	}
	reg.MustRegister(pr.stageDuration, pr.runDuration, pr.edgePixels, pr.results)
	return pr
}

// Registry returns the registry the collectors live on.
func (p *PrometheusRecorder) Registry() *prom.Registry { return p.reg }

func (p *PrometheusRecorder) ObserveStage(stage string, d time.Duration) {
	if p == nil {
		return
	}
	p.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

func (p *PrometheusRecorder) ObserveRun(command string, d time.Duration) {
	if p == nil {
		return
	}
	p.runDuration.WithLabelValues(command).Observe(d.Seconds())
}

func (p *PrometheusRecorder) AddEdgePixels(n int) {
	if p == nil || n <= 0 {
		return
	}
	p.edgePixels.Add(float64(n))
}

func (p *PrometheusRecorder) IncResult(command string, result ResultLabel) {
	if p == nil {
		return
	}
	p.results.WithLabelValues(command, string(result)).Inc()
}

// WriteTextfile writes everything gathered from g to path in the text
// exposition format. The file is replaced atomically.
func WriteTextfile(path string, g prom.Gatherer) error {
	if err := prom.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}
	return nil
}
