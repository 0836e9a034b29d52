package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.ObserveStage("smooth", time.Millisecond)
	r.ObserveRun("edge", time.Second)
	r.AddEdgePixels(10)
	r.IncResult("edge", ResultSuccess)
}

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.ObserveStage("smooth", 2*time.Millisecond)
	pr.ObserveStage("trace", 3*time.Millisecond)
	pr.ObserveRun("edge", 40*time.Millisecond)
	pr.AddEdgePixels(120)
	pr.AddEdgePixels(-5)
	pr.IncResult("edge", ResultSuccess)
	pr.IncResult("edge", ResultSuccess)
	pr.IncResult("filter", ResultFailed)

	mfs, err := reg.Gather()
	require.NoError(t, err)

	byName := map[string]int{}
	for _, mf := range mfs {
		byName[mf.GetName()] = len(mf.GetMetric())
		switch mf.GetName() {
		case "lvimg_edge_pixels_total":
			assert.Equal(t, 120.0, mf.GetMetric()[0].GetCounter().GetValue())
		case "lvimg_stage_duration_seconds":
			for _, m := range mf.GetMetric() {
				assert.Equal(t, uint64(1), m.GetHistogram().GetSampleCount())
			}
		}
	}
	assert.Equal(t, map[string]int{
		"lvimg_stage_duration_seconds": 2,
		"lvimg_run_duration_seconds":   1,
		"lvimg_edge_pixels_total":      1,
		"lvimg_results_total":          2,
	}, byName)
	assert.Same(t, reg, pr.Registry())
}

func TestPrometheusRecorder_NilSafe(t *testing.T) {
	var pr *PrometheusRecorder
	pr.ObserveStage("smooth", time.Millisecond)
	pr.AddEdgePixels(1)
	pr.IncResult("edge", ResultFailed)
	pr.ObserveRun("edge", time.Millisecond)

	assert.NotNil(t, NewPrometheusRecorder(nil).Registry())
}

func TestWriteTextfile(t *testing.T) {
	pr := NewPrometheusRecorder(nil)
	pr.AddEdgePixels(7)

	path := filepath.Join(t.TempDir(), "lvimg.prom")
	require.NoError(t, WriteTextfile(path, pr.Registry()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "lvimg_edge_pixels_total 7"), string(data))

	err = WriteTextfile(filepath.Join(t.TempDir(), "missing", "x.prom"), pr.Registry())
	assert.Error(t, err)
}
