package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kirillkom/docintake-eval/internal/core/domain"
)

// EvalMetrics implements ports.RunObserver on a private Prometheus registry.
type EvalMetrics struct {
	registry *prometheus.Registry

	casesTotal     *prometheus.CounterVec
	caseDuration   *prometheus.HistogramVec
	pollIterations prometheus.Histogram
	approvalsTotal prometheus.Counter
	metricMean     *prometheus.GaugeVec
}

func NewEvalMetrics(service string) *EvalMetrics {
	registry := prometheus.NewRegistry()

	casesTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "docintake",
			Subsystem: "eval",
			Name:      "cases_total",
			Help:      "Evaluated cases by outcome.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
		[]string{"outcome"},
	)
	caseDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "docintake",
			Subsystem: "eval",
			Name:      "case_duration_seconds",
			Help:      "End-to-end case duration (upload through terminal read) by outcome.",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 30, 60, 120, 300},
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
		[]string{"outcome"},
	)
	pollIterations := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "docintake",
			Subsystem: "eval",
			Name:      "poll_iterations",
			Help:      "Status reads needed to reach a terminal state.",
			Buckets:   []float64{1, 2, 3, 5, 8, 13, 21, 34, 55},
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	approvalsTotal := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "docintake",
			Subsystem: "eval",
			Name:      "approvals_total",
			Help:      "Auto-approval actions sent during polling.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	metricMean := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "docintake",
			Subsystem: "eval",
			Name:      "metric_mean",
			Help:      "Mean score per metric over the scored cases of the run.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
		[]string{"metric"},
	)

	registry.MustRegister(casesTotal, caseDuration, pollIterations, approvalsTotal, metricMean)

	return &EvalMetrics{
		registry:       registry,
		casesTotal:     casesTotal,
		caseDuration:   caseDuration,
		pollIterations: pollIterations,
		approvalsTotal: approvalsTotal,
		metricMean:     metricMean,
	}
}

func (m *EvalMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *EvalMetrics) CaseFinished(_ string, outcome string, duration time.Duration) {
	m.casesTotal.WithLabelValues(outcome).Inc()
	m.caseDuration.WithLabelValues(outcome).Observe(duration.Seconds())
}

func (m *EvalMetrics) PollFinished(iterations int, approved bool) {
	m.pollIterations.Observe(float64(iterations))
	if approved {
		m.approvalsTotal.Inc()
	}
}

func (m *EvalMetrics) RunFinished(report *domain.RunReport) {
	for name, mean := range report.MetricMeans {
		m.metricMean.WithLabelValues(name).Set(mean)
	}
}
