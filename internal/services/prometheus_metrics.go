package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	analysisTotal     *prometheus.CounterVec
	analysisDuration  prometheus.Histogram
	anomaliesDetected prometheus.Counter
	reportScore       prometheus.Histogram
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		analysisTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "insight_analysis_total",
				Help: "Total number of insight analyses served",
			},
			[]string{"kind", "status"},
		),
		analysisDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "insight_analysis_duration_milliseconds",
				Help:    "Insight analysis duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		anomaliesDetected: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "insight_anomalies_detected_total",
				Help: "Total number of category anomalies detected",
			},
		),
		reportScore: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "insight_report_score",
				Help:    "Distribution of composite health scores in generated reports",
				Buckets: prometheus.LinearBuckets(0, 10, 11),
			},
		),
	}
}

func (m *PrometheusMetrics) RecordAnalysis(kind, status string, duration time.Duration) {
	m.analysisTotal.WithLabelValues(kind, status).Inc()
	m.analysisDuration.Observe(float64(duration.Milliseconds()))
}

func (m *PrometheusMetrics) RecordAnomalies(count int) {
	m.anomaliesDetected.Add(float64(count))
}

func (m *PrometheusMetrics) RecordReportScore(score int) {
	m.reportScore.Observe(float64(score))
}

// NoopMetrics satisfies MetricsRecorderInterface for tests.
type NoopMetrics struct{}

func (NoopMetrics) RecordAnalysis(kind, status string, duration time.Duration) {}
func (NoopMetrics) RecordAnomalies(count int)                                  {}
func (NoopMetrics) RecordReportScore(score int)                                {}
