// The metrics package exports decoder activity as Prometheus metrics.
//
// Every metric carries a "source" label naming the input stream, so one
// program can report several receivers.
package metrics

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/goblimey/go-ssr/ssr/correction"
	"github.com/goblimey/go-ssr/ssr/has"
)

const namespace = "ssr"

// Metrics holds the collectors.  Each Metrics has its own registry, so
// more than one can exist in a process.
type Metrics struct {
	registry *prometheus.Registry

	framesTotal   *prometheus.CounterVec // L6 frames or E6B pages read (by source)
	messagesTotal *prometheus.CounterVec // Messages decoded (by source and kind)
	errorsTotal   *prometheus.CounterVec // Errors (by source and stage)

	maskSatellites *prometheus.GaugeVec // Satellites in the current mask
	maskSignals    *prometheus.GaugeVec // Signals in the current mask
	bits           *prometheus.GaugeVec // Bits spent since the last mask (by source and category)

	hasPages *prometheus.GaugeVec // HAS page totals (by source and result)
}

// New creates a Metrics with its collectors registered.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)
	return &Metrics{
		registry: registry,
		framesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "frames_total",
				Help:      "L6 frames or E6B pages read",
			},
			[]string{"source"},
		),
		messagesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "messages_total",
				Help:      "Correction messages decoded",
			},
			[]string{"source", "kind"},
		),
		errorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "errors_total",
				Help:      "Errors while reading or decoding",
			},
			[]string{"source", "stage"},
		),
		maskSatellites: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "mask_satellites",
				Help:      "Satellites in the current mask",
			},
			[]string{"source"},
		),
		maskSignals: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "mask_signals",
				Help:      "Signals in the current mask",
			},
			[]string{"source"},
		),
		bits: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "bits",
				Help:      "Bits received since the last mask, by category",
			},
			[]string{"source", "category"},
		),
		hasPages: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "has_pages",
				Help:      "HAS pages and messages handled, by result",
			},
			[]string{"source", "result"},
		),
	}
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns an http.Handler that serves the metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// FrameRead counts an L6 frame or E6B page.
func (m *Metrics) FrameRead(source string) {
	m.framesTotal.WithLabelValues(source).Inc()
}

// MessageDecoded counts a decoded message.
func (m *Metrics) MessageDecoded(source string, kind correction.Kind) {
	m.messagesTotal.WithLabelValues(source, string(kind)).Inc()
}

// Error counts an error at the given stage, for example "frame" or
// "decode".
func (m *Metrics) Error(source, stage string) {
	m.errorsTotal.WithLabelValues(source, stage).Inc()
}

// ObserveStatistics sets the mask and bit gauges from decoder statistics.
func (m *Metrics) ObserveStatistics(source string, s correction.Statistics) {
	m.maskSatellites.WithLabelValues(source).Set(float64(s.Satellites))
	m.maskSignals.WithLabelValues(source).Set(float64(s.Signals))
	m.bits.WithLabelValues(source, "satellite").Set(float64(s.SatelliteBits))
	m.bits.WithLabelValues(source, "signal").Set(float64(s.SignalBits))
	m.bits.WithLabelValues(source, "other").Set(float64(s.OtherBits))
	m.bits.WithLabelValues(source, "null").Set(float64(s.NullBits))
}

// ObserveHAS sets the HAS page gauges from the totals kept by a has.Stream.
func (m *Metrics) ObserveHAS(source string, c has.Counts) {
	m.hasPages.WithLabelValues(source, "pages").Set(float64(c.Pages))
	m.hasPages.WithLabelValues(source, "dummy").Set(float64(c.DummyPages))
	m.hasPages.WithLabelValues(source, "bad").Set(float64(c.BadPages))
	m.hasPages.WithLabelValues(source, "crc_error").Set(float64(c.CRCErrors))
	m.hasPages.WithLabelValues(source, "recovered").Set(float64(c.Recovered))
	m.hasPages.WithLabelValues(source, "recovery_failed").Set(float64(c.RecoveryFailures))
	m.hasPages.WithLabelValues(source, "decode_failed").Set(float64(c.DecodeErrors))
}

// Serve serves the metrics at /metrics on addr until ctx is cancelled.
func (m *Metrics) Serve(ctx context.Context, addr string, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Warn("metrics server shutdown", "error", err)
		}
	}()

	logger.Info("Prometheus metrics enabled at /metrics", "address", addr)
	err := server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
