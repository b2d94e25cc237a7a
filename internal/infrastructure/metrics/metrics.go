package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dossier_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dossier_http_request_duration_seconds",
		Help:    "Request latency",
		Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 20},
	}, []string{"method", "route"})

	trackingLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dossier_tracking_lookups_total",
		Help: "Phone tracking lookups by outcome",
	}, []string{"outcome"})

	paymentVerifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dossier_payment_verifications_total",
		Help: "Payment verifications by source and outcome",
	}, []string{"source", "outcome"})
)

// Tracking lookup outcomes.
const (
	TrackingFound       = "found"
	TrackingNotFound    = "not_found"
	TrackingInvalid     = "invalid"
	TrackingRateLimited = "rate_limited"
	TrackingError       = "error"
)

// Verification sources.
const (
	SourceWidget  = "widget"
	SourceVerify  = "verify"
	SourceWebhook = "webhook"
)

func ObserveTrackingLookup(outcome string) {
	trackingLookups.WithLabelValues(outcome).Inc()
}

func ObservePaymentVerification(source, outcome string) {
	paymentVerifications.WithLabelValues(source, outcome).Inc()
}
