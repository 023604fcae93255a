package sorting

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK    = "ok"
	outcomeError = "error"
)

var (
	runs = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sort_runs_total",
		Help: "The total number of Sort calls, by strategy and outcome",
	}, []string{"strategy", "outcome"})

	swaps = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sort_swaps_total",
		Help: "The total number of element exchanges performed while sorting",
	}, []string{"strategy"})
)
