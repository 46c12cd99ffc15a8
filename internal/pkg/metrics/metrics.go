package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StoreRequestDuration tracks every call made to the record store
	StoreRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "portal_store_request_duration_seconds",
			Help:    "Duration of record store calls in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"operation", "table", "outcome"},
	)

	// ApplyOutcomes counts campaign applications by result tag
	ApplyOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_apply_outcomes_total",
			Help: "Campaign application attempts by outcome",
		},
		[]string{"outcome"},
	)

	// CompensationOutcomes counts rollback deletes issued by the apply workflow
	CompensationOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_apply_compensations_total",
			Help: "Compensating deletes after a failed applicant link, by result",
		},
		[]string{"result"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "portal_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

func ObserveStoreRequest(operation, table, outcome string, seconds float64) {
	StoreRequestDuration.WithLabelValues(operation, table, outcome).Observe(seconds)
}

func RecordApplyOutcome(outcome string) {
	ApplyOutcomes.WithLabelValues(outcome).Inc()
}

func RecordCompensation(result string) {
	CompensationOutcomes.WithLabelValues(result).Inc()
}
