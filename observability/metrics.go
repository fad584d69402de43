package observability

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "presence"

// Metrics counts tracker activity. A nil *Metrics is a valid no-op recorder.
type Metrics struct {
	checkouts     prometheus.Counter
	checkins      prometheus.Counter
	pings         prometheus.Counter
	denied        prometheus.Counter
	handlerErrors prometheus.Counter
	checkedOut    prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		checkouts: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkouts_total",
			Help:      "Number of successful checkouts.",
		}),
		checkins: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkins_total",
			Help:      "Number of successful check-ins.",
		}),
		pings: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pings_total",
			Help:      "Number of mentions of checked-out users.",
		}),
		denied: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "denied_total",
			Help:      "Number of commands refused for lack of the staff role.",
		}),
		handlerErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "handler_errors_total",
			Help:      "Number of message events whose handling failed.",
		}),
		checkedOut: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "checked_out_users",
			Help:      "Number of users currently checked out.",
		}),
	}
}

func (m *Metrics) IncCheckouts() {
	if m != nil {
		m.checkouts.Inc()
	}
}

func (m *Metrics) IncCheckins() {
	if m != nil {
		m.checkins.Inc()
	}
}

func (m *Metrics) IncPings() {
	if m != nil {
		m.pings.Inc()
	}
}

func (m *Metrics) IncDenied() {
	if m != nil {
		m.denied.Inc()
	}
}

func (m *Metrics) IncHandlerErrors() {
	if m != nil {
		m.handlerErrors.Inc()
	}
}

func (m *Metrics) SetCheckedOut(n int) {
	if m != nil {
		m.checkedOut.Set(float64(n))
	}
}

// MetricsServer exposes /metrics until its context is canceled.
type MetricsServer struct {
	addr     string
	gatherer prometheus.Gatherer
	log      *slog.Logger
}

func NewMetricsServer(addr string, gatherer prometheus.Gatherer, log *slog.Logger) *MetricsServer {
	return &MetricsServer{addr: addr, gatherer: gatherer, log: log}
}

func (s *MetricsServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	return mux
}

func (s *MetricsServer) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.log.Info("Starting metrics server", "address", s.addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err, ok := <-errChan:
		if !ok {
			return nil
		}
		return err
	}
}
