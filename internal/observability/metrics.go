package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jonathan/writing-highlighter/internal/types"
)

const namespace = "highlighter"

// Metrics holds the Prometheus collectors for annotation runs and HTTP traffic
type Metrics struct {
	annotations        prometheus.Counter
	annotationDuration prometheus.Histogram
	candidates         *prometheus.CounterVec
	spans              prometheus.Counter
	withheld           *prometheus.CounterVec
	httpRequests       *prometheus.CounterVec
	httpDuration       *prometheus.HistogramVec
}

// NewMetrics registers the collectors on reg. A nil reg uses a fresh private registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	return &Metrics{
		annotations: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "annotations_total",
			Help:      "Number of annotation runs completed.",
		}),
		annotationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "annotation_duration_seconds",
			Help:      "Time spent annotating one writing sample.",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}),
		candidates: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evidence_candidates_total",
			Help:      "Evidence candidates kept after ranking, by source.",
		}, []string{"source"}),
		spans: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "annotated_spans_total",
			Help:      "Merged spans rendered into markup.",
		}),
		withheld: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "withheld_fallbacks_total",
			Help:      "Fallback detections computed but not rendered, by category.",
		}, []string{"category"}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served.",
		}, []string{"method", "path", "status"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
}

// ObserveAnnotation records one completed annotation run.
func (m *Metrics) ObserveAnnotation(elapsed time.Duration, spans int) {
	if m == nil {
		return
	}
	m.annotations.Inc()
	m.annotationDuration.Observe(elapsed.Seconds())
	m.spans.Add(float64(spans))
}

// ObserveCandidates counts ranked candidates by source.
func (m *Metrics) ObserveCandidates(candidates []types.EvidenceCandidate) {
	if m == nil {
		return
	}
	for _, c := range candidates {
		m.candidates.WithLabelValues(string(c.Source)).Inc()
	}
}

// ObserveWithheld counts a fallback category whose findings were not rendered.
func (m *Metrics) ObserveWithheld(category string) {
	if m == nil {
		return
	}
	m.withheld.WithLabelValues(category).Inc()
}

// ObserveHTTP records one served request. path should be the route pattern, not the raw URL.
func (m *Metrics) ObserveHTTP(method, path string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}
