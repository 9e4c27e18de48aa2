package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordRecompute(t *testing.T) {
	before := testutil.ToFloat64(MilestoneStatusRecomputes.WithLabelValues(OutcomeFailed))

	RecordRecompute(OutcomeFailed)

	after := testutil.ToFloat64(MilestoneStatusRecomputes.WithLabelValues(OutcomeFailed))
	assert.Equal(t, before+1, after)
}

func TestRecordCacheLookup(t *testing.T) {
	before := testutil.ToFloat64(SummaryCacheLookups.WithLabelValues(CacheHit))

	RecordCacheLookup(CacheHit)
	RecordCacheLookup(CacheHit)

	assert.Equal(t, before+2, testutil.ToFloat64(SummaryCacheLookups.WithLabelValues(CacheHit)))
}

func TestRecordHTTPRequest(t *testing.T) {
	RecordHTTPRequest("GET", "/api/overdue", 200, 5*time.Millisecond)

	assert.GreaterOrEqual(t, testutil.CollectAndCount(HTTPRequestDuration), 1)
}

func TestStatusClass(t *testing.T) {
	assert.Equal(t, "2xx", statusClass(201))
	assert.Equal(t, "3xx", statusClass(304))
	assert.Equal(t, "4xx", statusClass(404))
	assert.Equal(t, "5xx", statusClass(503))
}
