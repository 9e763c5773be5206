// Package metrics expone contadores Prometheus de la operación de bodegas.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jhoicas/Bodegas-api/internal/application/transfer"
)

var _ transfer.MetricsRecorder = (*Recorder)(nil)

// Recorder registra resultados y duraciones de traslados.
type Recorder struct {
	transfersTotal   *prometheus.CounterVec
	transferDuration prometheus.Histogram
}

// NewRecorder registra los colectores en el registry dado (usar
// prometheus.DefaultRegisterer en producción).
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		transfersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bodegas",
			Name:      "transfers_total",
			Help:      "Traslados procesados por resultado.",
		}, []string{"outcome"}),
		transferDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "bodegas",
			Name:      "transfer_duration_seconds",
			Help:      "Duración del procesamiento de un traslado.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

// ObserveTransfer registra un traslado terminado con su resultado.
func (r *Recorder) ObserveTransfer(outcome string, elapsed time.Duration) {
	r.transfersTotal.WithLabelValues(outcome).Inc()
	r.transferDuration.Observe(elapsed.Seconds())
}
