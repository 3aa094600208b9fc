package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsSnapshot(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest("/api/jobs", "GET", 200, 2*time.Millisecond)
	m.RecordRequest("/api/jobs", "GET", 200, 4*time.Millisecond)
	m.RecordRequest("/api/jobs/:id", "GET", 404, time.Millisecond)
	m.RecordError("/api/jobs/:id", "GET", "NOT_FOUND")

	snap := m.Snapshot()
	require.Len(t, snap.Requests, 2)
	assert.Equal(t, "/api/jobs/:id|GET|404", snap.Requests[0].Key)
	assert.Equal(t, "/api/jobs|GET|200", snap.Requests[1].Key)
	assert.EqualValues(t, 2, snap.Requests[1].Count)
	assert.InDelta(t, 3.0, snap.Requests[1].AvgLatencyMsec, 0.001)

	require.Len(t, snap.Errors, 1)
	assert.Equal(t, "/api/jobs/:id|GET|NOT_FOUND", snap.Errors[0].Key)
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/", "GET", 200, time.Millisecond)
	m.RecordError("/", "GET", "X")
	snap := m.Snapshot()
	assert.Empty(t, snap.Requests)
	assert.NotNil(t, snap.Errors)
}
