package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ordersProvisioned = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "wedsite",
			Subsystem: "provisioning",
			Name:      "orders_provisioned_total",
			Help:      "Total number of orders created from purchase events",
		},
	)

	provisioningFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "wedsite",
			Subsystem: "provisioning",
			Name:      "failed_total",
			Help:      "Total number of purchase events that failed to provision",
		},
	)

	provisioningDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "wedsite",
			Subsystem: "provisioning",
			Name:      "dlq_total",
			Help:      "Total number of purchase events written to the DLQ",
		},
	)
)

var (
	generationTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wedsite",
			Subsystem: "generation",
			Name:      "requests_total",
			Help:      "Total number of content generation requests by result",
		},
		[]string{"result"},
	)

	generationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "wedsite",
			Subsystem: "generation",
			Name:      "duration_seconds",
			Help:      "Histogram of content generation durations in seconds",
			// The provider call routinely takes several seconds.
			Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60},
		},
	)

	downloadsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "wedsite",
			Subsystem: "export",
			Name:      "downloads_total",
			Help:      "Total number of site bundle downloads",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		ordersProvisioned,
		provisioningFailed,
		provisioningDLQ,

		generationTotal,
		generationDuration,
		downloadsTotal,
	)
}
