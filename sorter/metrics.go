package sorter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sortsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sorter_sorts_total",
		Help: "The total number of sort calls made through an instrumented sorter",
	}, []string{"algorithm"})

	sortErrors = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sorter_errors_total",
		Help: "The total number of sort calls rejected with an error",
	}, []string{"algorithm"})

	sortComparisons = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Name:    "sorter_comparisons",
		Help:    "Comparisons performed per successful sort",
		Buckets: prometheus.ExponentialBuckets(1, 4, 12), //nolint:mnd
	}, []string{"algorithm"})

	sortElements = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Name:    "sorter_elements",
		Help:    "Sequence length per successful sort",
		Buckets: prometheus.ExponentialBuckets(1, 4, 12), //nolint:mnd
	}, []string{"algorithm"})

	sortDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Name:    "sorter_duration_seconds",
		Help:    "Wall time per successful sort",
		Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12), //nolint:mnd
	}, []string{"algorithm"})
)
