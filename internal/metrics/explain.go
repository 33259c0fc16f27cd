package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Explain request outcomes.
const (
	ExplainOK            = "ok"
	ExplainInvalidTxID   = "invalid_txid"
	ExplainUpstreamError = "upstream_error"
	ExplainInternalError = "internal_error"
)

var (
	explainRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "txlens7000",
		Subsystem: "explainer",
		Name:      "requests_total",
		Help:      "Count of explain requests by outcome.",
	}, []string{"outcome"})
	explainRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "txlens7000",
		Subsystem: "explainer",
		Name:      "request_duration_seconds",
		Help:      "Duration of explain requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"outcome"})
)

// ObserveExplain records one explain request outcome and duration.
func ObserveExplain(outcome string, started time.Time) {
	explainRequestsTotal.WithLabelValues(outcome).Inc()
	explainRequestDuration.WithLabelValues(outcome).Observe(time.Since(started).Seconds())
}
