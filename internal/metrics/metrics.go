// Package metrics exports benchmark measurements in the Prometheus format.
package metrics

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

const namespace = "binafft"

// Collector holds the benchmark metrics on a private registry.
type Collector struct {
	registry *prometheus.Registry

	transformSeconds *prometheus.HistogramVec
	mflops           *prometheus.GaugeVec
	verifyErrors     *prometheus.GaugeVec
	verifyFailures   prometheus.Counter
}

// NewCollector creates and registers all metrics.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		transformSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "transform_seconds",
			Help:      "Average wall time of one transform per benchmark size.",
			Buckets:   prometheus.ExponentialBuckets(1e-8, 4, 14),
		}, []string{"size", "direction", "kernel"}),
		mflops: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "mflops",
			Help:      "Throughput as 5·N·log2(N) / t, in millions per second.",
		}, []string{"size", "kernel"}),
		verifyErrors: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "verify_max_error",
			Help:      "Largest round-trip error seen while verifying a size.",
		}, []string{"size"}),
		verifyFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "verify_failures_total",
			Help:      "Verification runs whose error exceeded the tolerance.",
		}),
	}

	c.registry.MustRegister(c.transformSeconds, c.mflops, c.verifyErrors, c.verifyFailures)

	return c
}

// ObserveTransform records the mean duration of one transform.
func (c *Collector) ObserveTransform(n int, direction, kernel string, perOp time.Duration, mflops float64) {
	size := strconv.Itoa(n)
	c.transformSeconds.WithLabelValues(size, direction, kernel).Observe(perOp.Seconds())

	if direction == "forward" {
		c.mflops.WithLabelValues(size, kernel).Set(mflops)
	}
}

// ObserveVerification records the worst error of a verification run.
func (c *Collector) ObserveVerification(n int, maxErr float64, ok bool) {
	c.verifyErrors.WithLabelValues(strconv.Itoa(n)).Set(maxErr)

	if !ok {
		c.verifyFailures.Inc()
	}
}

// Registry exposes the underlying registry for gathering.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is done.
func (c *Collector) Serve(ctx context.Context, addr string, logger zerolog.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	logger.Info().Str("addr", ln.Addr().String()).Msg("serving metrics")

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return err
	}
}
