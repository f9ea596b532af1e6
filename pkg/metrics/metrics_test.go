package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordBatch(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.RecordBatch("facebook", 3, 2, 1)
	m.RecordBatch("facebook", 1, 0, 0)

	assert.Equal(t, 4.0, testutil.ToFloat64(m.RecordsTotal.WithLabelValues("facebook", "saved")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.RecordsTotal.WithLabelValues("facebook", "duplicate")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RecordsTotal.WithLabelValues("facebook", "error")))
}

func TestRecordConflicts(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.RecordBatch("google", 0, 1, 0)
	m.RecordConflicts("google", 2)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RecordsTotal.WithLabelValues("google", "duplicate")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.RecordsTotal.WithLabelValues("google", "conflict")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RecordBatch("google", 1, 1, 1)
		m.RecordConflicts("google", 1)
		m.RecordSyncRun("google", "daily", "success", time.Second)
		m.RecordExternalAPICall("google_ads", "success", time.Second)
		m.RecordExistenceFailure("google")
		m.RecordDelivery("google", "success")
		m.RecordHTTPRequest("GET", "/healthcheck", "200", time.Millisecond)
	})
}
