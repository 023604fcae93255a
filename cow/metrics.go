package cow

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cellsCreated = promauto.NewCounter(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "cow_cells_created_total",
		Help: "The total number of copy-on-write cells created",
	})

	cellsReleased = promauto.NewCounter(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "cow_cells_released_total",
		Help: "The total number of copy-on-write cells whose last owner let go",
	})

	duplications = promauto.NewCounter(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "cow_duplications_total",
		Help: "The total number of values duplicated because a shared cell was mutated",
	})

	duplicationErrors = promauto.NewCounter(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "cow_duplication_errors_total",
		Help: "The total number of failed duplications of shared cells",
	})
)
