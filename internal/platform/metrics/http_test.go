package metrics

import (
	"strconv"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPMetrics(t *testing.T) {
	m := NewHTTPMetrics()
	require.NotNil(t, m)
	assert.NotNil(t, m.Registry)
	assert.NotNil(t, m.RequestsTotal)
	assert.NotNil(t, m.RequestDuration)
	assert.NotNil(t, m.RequestsInProgress)

	families, err := m.Registry.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestHTTPMetrics_RecordRequest(t *testing.T) {
	tests := []struct {
		name       string
		route      string
		method     string
		statusCode int
		label      string
	}{
		{name: "created", route: "/create-admin-account", method: "POST", statusCode: 201, label: "/create-admin-account"},
		{name: "validation failure", route: "/create-user-account", method: "POST", statusCode: 400, label: "/create-user-account"},
		{name: "unmatched route", route: "", method: "GET", statusCode: 404, label: "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewHTTPMetricsWithRegistry(prometheus.NewRegistry())
			m.RecordRequest(tt.route, tt.method, tt.statusCode, 120*time.Millisecond)

			counter := m.RequestsTotal.WithLabelValues(tt.label, tt.method, strconv.Itoa(tt.statusCode))
			assert.Equal(t, float64(1), testutil.ToFloat64(counter))
			assert.Equal(t, 1, testutil.CollectAndCount(m.RequestDuration))
		})
	}
}

func TestIsHealthCheckEndpoint(t *testing.T) {
	assert.True(t, IsHealthCheckEndpoint("/metrics"))
	assert.True(t, IsHealthCheckEndpoint("/health"))
	assert.False(t, IsHealthCheckEndpoint("/get-user-types"))
}
