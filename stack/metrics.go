package stack

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	growths = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "stack_grow_total",
		Help: "The total number of times a stack replaced its buffer with a larger one",
	}, []string{"stack"})

	growthErrors = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "stack_grow_errors_total",
		Help: "The total number of pushes rejected because the stack could not grow",
	}, []string{"stack"})

	relocated = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "stack_relocated_elements_total",
		Help: "The total number of elements moved into a new buffer during growth",
	}, []string{"stack"})
)
