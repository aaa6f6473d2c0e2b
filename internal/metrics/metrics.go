package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// BookingsCreated counts ledger appends by venue type.
	BookingsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stadiums",
			Name:      "bookings_created_total",
			Help:      "The total number of bookings recorded",
		},
		[]string{"venue_type"},
	)

	BookingsCancelled = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "stadiums",
			Name:      "bookings_cancelled_total",
			Help:      "The total number of bookings cancelled",
		},
	)

	// VenueQueries counts catalog listings by category and cache outcome.
	VenueQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stadiums",
			Name:      "venue_queries_total",
			Help:      "The total number of venue listing queries",
		},
		[]string{"category", "cache"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)
