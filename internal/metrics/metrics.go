package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PackagesCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "coliride_packages_created_total",
		Help: "Total number of packages successfully created.",
	})

	RidesCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "coliride_rides_created_total",
		Help: "Total number of rides successfully created.",
	})

	MatchesCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "coliride_matches_created_total",
		Help: "Total number of matches successfully proposed.",
	})

	PaymentsRefundedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "coliride_payments_refunded_total",
		Help: "Total number of payments moved to REFUNDED.",
	})

	UploadsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "coliride_uploads_total",
		Help: "Total number of files stored by the upload handler.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "coliride_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "coliride_http_request_duration_seconds",
		Help:    "HTTP request latency by method and route.",
		Buckets: prometheus.DefBuckets,
	},
		[]string{"method", "route", "status"},
	)

	RideCacheItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "coliride_ride_cache_items",
		Help: "Current number of rides held by the in-memory cache.",
	})
)
