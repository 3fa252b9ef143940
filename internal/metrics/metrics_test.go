// file: internal/metrics/metrics_test.go
// version: 2.0.0
// guid: 7a8b9c0d-1e2f-3a4b-5c6d-7e8f9a0b1c2d

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestAddComparisons(t *testing.T) {
	before := testutil.ToFloat64(comparisons.WithLabelValues("test_cdist"))
	AddComparisons("test_cdist", 12)
	assert.Equal(t, before+12, testutil.ToFloat64(comparisons.WithLabelValues("test_cdist")))
}

func TestBatchLifecycle(t *testing.T) {
	op := "test_lifecycle"
	IncBatchCompleted(op)
	IncBatchFailed(op)
	start := time.Now()
	ObserveBatchDuration(op, time.Since(start))

	assert.Equal(t, 1.0, testutil.ToFloat64(batchCompleted.WithLabelValues(op)))
	assert.Equal(t, 1.0, testutil.ToFloat64(batchFailed.WithLabelValues(op)))
	assert.Equal(t, 1, testutil.CollectAndCount(batchDuration, "fuzzymatch_batch_duration_seconds"))
}

func TestAddMemoStats(t *testing.T) {
	hits := testutil.ToFloat64(memoLookups.WithLabelValues("hit"))
	misses := testutil.ToFloat64(memoLookups.WithLabelValues("miss"))
	AddMemoStats(3, 2)
	assert.Equal(t, hits+3, testutil.ToFloat64(memoLookups.WithLabelValues("hit")))
	assert.Equal(t, misses+2, testutil.ToFloat64(memoLookups.WithLabelValues("miss")))
}

func TestRegisterIsIdempotent(t *testing.T) {
	assert.NotPanics(t, func() {
		Register()
		Register()
	})
}
