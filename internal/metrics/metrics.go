// file: internal/metrics/metrics.go
// version: 2.0.0
// guid: 9f8e7d6c-5b4a-3210-9fed-cba876543210

package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	comparisons = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fuzzymatch",
		Name:      "comparisons_total",
		Help:      "Total number of scorer invocations by batch operation",
	}, []string{"operation"})
	batchCompleted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fuzzymatch",
		Name:      "batches_completed_total",
		Help:      "Total number of batch calls that returned a result",
	}, []string{"operation"})
	batchFailed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fuzzymatch",
		Name:      "batches_failed_total",
		Help:      "Total number of batch calls aborted by a processor failure",
	}, []string{"operation"})
	batchDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "fuzzymatch",
		Name:      "batch_duration_seconds",
		Help:      "Histogram of batch call durations in seconds by operation",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10), // 100µs up to ~26s
	}, []string{"operation"})
	memoLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fuzzymatch",
		Name:      "memo_lookups_total",
		Help:      "Processed-string memo lookups by result (hit or miss)",
	}, []string{"result"})
)

// Register initializes metrics with the global Prometheus registry (idempotent)
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(comparisons, batchCompleted, batchFailed, batchDuration, memoLookups)
	})
}

// Batch lifecycle helpers
func AddComparisons(op string, n int) { comparisons.WithLabelValues(op).Add(float64(n)) }
func IncBatchCompleted(op string)     { batchCompleted.WithLabelValues(op).Inc() }
func IncBatchFailed(op string)        { batchFailed.WithLabelValues(op).Inc() }
func ObserveBatchDuration(op string, d time.Duration) {
	batchDuration.WithLabelValues(op).Observe(d.Seconds())
}

// AddMemoStats records the hit and miss counts of a finished memo.
func AddMemoStats(hits, misses int64) {
	memoLookups.WithLabelValues("hit").Add(float64(hits))
	memoLookups.WithLabelValues("miss").Add(float64(misses))
}
