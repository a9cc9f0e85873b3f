package notifier

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	histogramRunTime = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "splitwise_slack",
			Subsystem: "run",
			Name:      "histogram_run_time_seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"error"},
	)

	gaugeFetchedExpenses = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "splitwise_slack",
			Subsystem: "run",
			Name:      "fetched_expenses",
		},
	)

	counterPayloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "splitwise_slack",
			Subsystem: "run",
			Name:      "payloads_total",
		},
		[]string{"delivered"},
	)
)

func observeRun(elapsed time.Duration, err bool) {
	histogramRunTime.
		WithLabelValues(strconv.FormatBool(err)).
		Observe(elapsed.Seconds())
}

func observePayloads(count int, delivered bool) {
	counterPayloads.
		WithLabelValues(strconv.FormatBool(delivered)).
		Add(float64(count))
}
