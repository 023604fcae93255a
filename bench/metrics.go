package bench

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomePass  = "pass"
	outcomeFail  = "fail"
	outcomeError = "error"
)

var runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
	Name: "sortbench_runs_total",
	Help: "Benchmark runs by strategy and outcome",
}, []string{"strategy", "outcome"})

var runDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint:gochecknoglobals
	Name:    "sortbench_run_duration_seconds",
	Help:    "Wall time of a single strategy run, excluding verification",
	Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10), //nolint:mnd
}, []string{"strategy"})

var datasetElements = promauto.NewGaugeVec(prometheus.GaugeOpts{ //nolint:gochecknoglobals
	Name: "sortbench_dataset_elements",
	Help: "Size of the most recent dataset by kind",
}, []string{"kind"})

func (r Result) outcome() string {
	switch {
	case r.Err != nil:
		return outcomeError
	case r.Passed():
		return outcomePass
	default:
		return outcomeFail
	}
}
