// Package metrics exposes prometheus counters and histograms for podcast runs.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RunsTotal counts finished runs.
	// Labels: status (completed/failed), error_kind (upstream/artifact_io/internal or empty)
	RunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "podcraft_runs_total",
			Help: "Total number of podcast runs by outcome",
		},
		[]string{"status", "error_kind"},
	)

	// RunsInFlight is the number of runs currently executing
	RunsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "podcraft_runs_in_flight",
			Help: "Number of podcast runs currently executing",
		},
	)

	// StageDuration observes how long each pipeline stage takes.
	// Labels: stage (research/script/music/parse/revise/synthesize/mix/publish)
	StageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "podcraft_stage_duration_seconds",
			Help:    "Pipeline stage duration in seconds",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120, 300, 600},
		},
		[]string{"stage"},
	)

	// DroppedTurnsTotal counts unmatched turns dropped while merging host scripts
	DroppedTurnsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "podcraft_merge_dropped_turns_total",
			Help: "Total number of turns dropped because one host had more turns than the other",
		},
	)

	// EpisodeSeconds observes the estimated spoken length of revised scripts
	EpisodeSeconds = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "podcraft_episode_estimated_seconds",
			Help:    "Estimated spoken length of revised scripts in seconds",
			Buckets: prometheus.LinearBuckets(60, 60, 15),
		},
	)
)

// RecordRun records a finished run
func RecordRun(status, errorKind string) {
	RunsTotal.WithLabelValues(status, errorKind).Inc()
}

// RecordStage records the duration of a pipeline stage started at start
func RecordStage(stage string, start time.Time) {
	StageDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
}

// RecordDropped records turns lost in the merge
func RecordDropped(n int) {
	if n > 0 {
		DroppedTurnsTotal.Add(float64(n))
	}
}

// RecordEstimate records the estimated spoken length of a script
func RecordEstimate(seconds float64) {
	EpisodeSeconds.Observe(seconds)
}
