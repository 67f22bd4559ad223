// Package metrics exports per-frame render statistics to Prometheus.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"orrery/internal/camera"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	registry *prometheus.Registry

	drawList       *prometheus.GaugeVec
	rejected       *prometheus.CounterVec
	activeLights   prometheus.Gauge
	updateDuration prometheus.Histogram
	frames         prometheus.Counter
}

// NewCollector creates a collector with its own registry, so several can
// coexist (e.g. in tests) without clashing on the default one.
func NewCollector() *Collector {
	m := &Collector{
		registry: prometheus.NewRegistry(),
		drawList: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "orrery_draw_list_bodies",
				Help: "Bodies in the last frame's draw list",
			},
			[]string{"class"},
		),
		rejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orrery_bodies_rejected_total",
				Help: "Bodies left out of a draw list",
			},
			[]string{"reason"},
		),
		activeLights: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "orrery_active_lights",
				Help: "Lights active in the last frame",
			},
		),
		updateDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "orrery_update_duration_seconds",
				Help:    "Time spent building the draw list",
				Buckets: prometheus.ExponentialBuckets(25e-6, 2, 12),
			},
		),
		frames: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "orrery_frames_total",
				Help: "Frames observed",
			},
		),
	}

	m.registry.MustRegister(
		m.drawList,
		m.rejected,
		m.activeLights,
		m.updateDuration,
		m.frames,
	)

	return m
}

func (m *Collector) Registry() *prometheus.Registry {
	return m.registry
}

// Observe records one frame's statistics and how long its update took.
func (m *Collector) Observe(stats camera.FrameStats, d time.Duration) {
	m.drawList.WithLabelValues("full").Set(float64(stats.Full))
	m.drawList.WithLabelValues("billboard").Set(float64(stats.Billboards))

	m.rejected.WithLabelValues("excluded").Add(float64(stats.Excluded))
	m.rejected.WithLabelValues("frustum").Add(float64(stats.Culled))
	m.rejected.WithLabelValues("hidden").Add(float64(stats.Hidden))

	m.activeLights.Set(float64(stats.Lights))
	m.updateDuration.Observe(d.Seconds())
	m.frames.Inc()
}

func (m *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is cancelled.
func (m *Collector) Serve(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("metrics listen on %s: %w", addr, err)
	}
	return m.serve(ctx, ln)
}

func (m *Collector) serve(ctx context.Context, ln net.Listener) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	log.Printf("Metrics listening on %s", ln.Addr())

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("metrics shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("metrics server: %w", err)
	}
}
