package observability

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	req := require.New(t)
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	metrics.IncCheckouts()
	metrics.IncCheckouts()
	metrics.IncCheckins()
	metrics.IncPings()
	metrics.IncDenied()
	metrics.IncHandlerErrors()
	metrics.SetCheckedOut(1)

	req.Equal(2.0, testutil.ToFloat64(metrics.checkouts))
	req.Equal(1.0, testutil.ToFloat64(metrics.checkins))
	req.Equal(1.0, testutil.ToFloat64(metrics.pings))
	req.Equal(1.0, testutil.ToFloat64(metrics.denied))
	req.Equal(1.0, testutil.ToFloat64(metrics.handlerErrors))
	req.Equal(1.0, testutil.ToFloat64(metrics.checkedOut))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var metrics *Metrics
	require.NotPanics(t, func() {
		metrics.IncCheckouts()
		metrics.IncPings()
		metrics.SetCheckedOut(3)
	})
}

func TestMetricsServer_Handler(t *testing.T) {
	req := require.New(t)
	reg := prometheus.NewRegistry()
	NewMetrics(reg).IncPings()

	server := NewMetricsServer("", reg, nil)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	req.Equal(http.StatusOK, rec.Code)
	req.True(strings.Contains(rec.Body.String(), "presence_pings_total 1"))
}
