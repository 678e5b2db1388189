package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	searchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "jobs",
			Name:      "search_duration_seconds",
			Help:      "Job search latency including the count query.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"sort"},
	)

	searchResults = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "jobs",
			Name:      "search_matches",
			Help:      "Number of postings matching a search before paging.",
			Buckets:   []float64{0, 1, 5, 10, 50, 100, 500, 1000, 5000},
		},
	)

	searchFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "jobs",
			Name:      "search_failures_total",
			Help:      "Rejected or failed job searches by error code.",
		},
		[]string{"code"},
	)

	jobViews = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "jobs",
			Name:      "views_recorded_total",
			Help:      "Detail views recorded against postings.",
		},
	)
)

func ObserveSearch(sort string, total int64, elapsed time.Duration) {
	if sort == "" {
		sort = "latest"
	}
	searchDuration.WithLabelValues(sort).Observe(elapsed.Seconds())
	searchResults.Observe(float64(total))
}

func SearchFailed(code string) {
	searchFailures.WithLabelValues(code).Inc()
}

func ViewRecorded() {
	jobViews.Inc()
}
