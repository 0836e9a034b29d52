package metrics

import "time"

// ResultLabel enumerates command outcomes for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultFailed  ResultLabel = "failed"
)

// Recorder defines the hooks used by the CLI and the detector.
type Recorder interface {
	ObserveStage(stage string, d time.Duration)
	ObserveRun(command string, d time.Duration)
	AddEdgePixels(n int)
	IncResult(command string, result ResultLabel)
}

// NoopRecorder is a Recorder that does nothing.
type NoopRecorder struct{}

func (NoopRecorder) ObserveStage(string, time.Duration) {}
func (NoopRecorder) ObserveRun(string, time.Duration)   {}
func (NoopRecorder) AddEdgePixels(int)                  {}
func (NoopRecorder) IncResult(string, ResultLabel)      {}
