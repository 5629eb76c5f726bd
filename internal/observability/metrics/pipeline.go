package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PipelineMetrics tracks per-document outcomes and model call latency
// for one analyzer run. A nil receiver is a no-op so wiring stays
// optional.
type PipelineMetrics struct {
	registry *prometheus.Registry

	documentsTotal  *prometheus.CounterVec
	llmCallDuration *prometheus.HistogramVec
	inFlight        prometheus.Gauge
}

func NewPipelineMetrics(service string) *PipelineMetrics {
	registry := prometheus.NewRegistry()

	documentsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pdfa",
			Subsystem: "pipeline",
			Name:      "documents_total",
			Help:      "Documents reaching a terminal state, by outcome.",
		},
		[]string{"service", "outcome"},
	)
	llmCallDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "pdfa",
			Subsystem: "pipeline",
			Name:      "llm_call_duration_seconds",
			Help:      "Model call duration in seconds by operation and status.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "operation", "status"},
	)
	inFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "pdfa",
			Subsystem: "pipeline",
			Name:      "documents_in_flight",
			Help:      "Documents currently being analyzed.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)

	registry.MustRegister(documentsTotal, llmCallDuration, inFlight)

	return &PipelineMetrics{
		registry:        registry,
		documentsTotal:  documentsTotal,
		llmCallDuration: llmCallDuration,
		inFlight:        inFlight,
	}
}

func (m *PipelineMetrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *PipelineMetrics) StartDocument() {
	if m == nil {
		return
	}
	m.inFlight.Inc()
}

func (m *PipelineMetrics) FinishDocument(service, outcome string) {
	if m == nil {
		return
	}
	m.inFlight.Dec()
	m.documentsTotal.WithLabelValues(service, outcome).Inc()
}

func (m *PipelineMetrics) ObserveLLMCall(service, operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	m.llmCallDuration.WithLabelValues(service, operation, status).Observe(duration.Seconds())
}
