// Package metrics records timings and outcomes of lvimg runs.
//
// Components receive a Recorder. NoopRecorder is the default and does
// nothing; PrometheusRecorder registers its collectors on a caller-supplied
// (usually private) registry, and WriteTextfile dumps that registry in the
// Prometheus text exposition format so a one-shot CLI run can leave its
// numbers behind for a node_exporter textfile collector.
//
// A Recorder is also a canny.Observer: its ObserveStage method receives the
// per-stage durations of an edge detection run.
package metrics
