package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveTrackingLookup(t *testing.T) {
	before := testutil.ToFloat64(trackingLookups.WithLabelValues(TrackingRateLimited))
	ObserveTrackingLookup(TrackingRateLimited)
	assert.Equal(t, before+1, testutil.ToFloat64(trackingLookups.WithLabelValues(TrackingRateLimited)))
}

func TestObservePaymentVerification(t *testing.T) {
	before := testutil.ToFloat64(paymentVerifications.WithLabelValues(SourceWebhook, "confirmed"))
	ObservePaymentVerification(SourceWebhook, "confirmed")
	ObservePaymentVerification(SourceWebhook, "confirmed")
	assert.Equal(t, before+2, testutil.ToFloat64(paymentVerifications.WithLabelValues(SourceWebhook, "confirmed")))
}
