package utils

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the simulation collectors
type Metrics struct {
	Generations *prometheus.CounterVec
	Frontier    *prometheus.HistogramVec
	TrialRate   *prometheus.GaugeVec
}

// NewMetrics creates the collectors and registers them with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Generations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "life_generations_total",
			Help: "Generations advanced, by engine",
		}, []string{"engine"}),
		Frontier: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "life_examined_cells",
			Help:    "Cells evaluated per generation, by engine",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10), // 1 to ~260k
		}, []string{"engine"}),
		TrialRate: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "life_trial_generations_per_second",
			Help: "Throughput of the most recent trial, by engine",
		}, []string{"engine"}),
	}
	reg.MustRegister(m.Generations, m.Frontier, m.TrialRate)
	return m
}

// ObserveStep records one generation
func (m *Metrics) ObserveStep(engine string, examined int) {
	if m == nil {
		return
	}
	m.Generations.WithLabelValues(engine).Inc()
	m.Frontier.WithLabelValues(engine).Observe(float64(examined))
}

// ObserveTrial records a finished trial
func (m *Metrics) ObserveTrial(engine string, r TrialResult) {
	if m == nil {
		return
	}
	m.TrialRate.WithLabelValues(engine).Set(r.GenerationsPerSecond())
}

// ServeMetrics exposes reg on addr under /metrics until ctx is done
func ServeMetrics(ctx context.Context, addr string, reg *prometheus.Registry, logger *slog.Logger) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrapf(err, "[ServeMetrics] failed to listen on %s", addr)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "error", err)
		}
	}()

	logger.Info("serving metrics", "addr", ln.Addr().String())
	return nil
}
