package segment

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "wordbreak"
	metricsSubsystem = "segment"

	outcomeFound    = "found"
	outcomeNotFound = "not_found"
)

// Metrics holds Prometheus collectors for segmentation searches.
// All operations are safe for concurrent use.
type Metrics struct {
	// SearchesTotal counts searches by outcome (found, not_found).
	SearchesTotal *prometheus.CounterVec

	// BacktracksTotal counts alternatives resumed after dead ends.
	BacktracksTotal prometheus.Counter

	// OracleCallsTotal counts IsWord invocations.
	OracleCallsTotal prometheus.Counter

	// Words observes the number of words in successful segmentations.
	Words prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg creates unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		SearchesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "searches_total",
			Help:      "Segmentation searches by outcome.",
		}, []string{"outcome"}),
		BacktracksTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "backtracks_total",
			Help:      "Alternatives resumed after a dead end.",
		}),
		OracleCallsTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "oracle_calls_total",
			Help:      "Word oracle lookups.",
		}),
		Words: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "words",
			Help:      "Words per successful segmentation.",
			Buckets:   []float64{0, 1, 2, 4, 8, 16, 32, 64},
		}),
	}
}

// observe records one finished search.
func (m *Metrics) observe(res *Result) {
	outcome := outcomeNotFound
	if res.Found {
		outcome = outcomeFound
		m.Words.Observe(float64(len(res.Words)))
	}
	m.SearchesTotal.WithLabelValues(outcome).Inc()
	m.BacktracksTotal.Add(float64(res.Stats.Backtracks))
	m.OracleCallsTotal.Add(float64(res.Stats.OracleCalls))
}
