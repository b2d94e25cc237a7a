package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "company_requests", cfg.Tables.CompanyRequests)
	assert.Equal(t, "service_requests", cfg.Tables.ServiceRequests)
	assert.Equal(t, "payments", cfg.Tables.Payments)
	assert.Equal(t, "XOF", cfg.MercadoPago.Currency)
	assert.Equal(t, 20*time.Second, cfg.MercadoPago.VerifyTimeout)
	assert.Equal(t, int64(10), cfg.Tracking.RateLimit)
	assert.Equal(t, time.Minute, cfg.Tracking.RateWindow)
	assert.False(t, cfg.MockPayments())
	assert.Empty(t, cfg.HTTP.TrustedProxies)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("COMPANY_REQUESTS_TABLE", "entreprises")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "Yes")
	t.Setenv("TRACKING_RATE_WINDOW", "5m")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8,192.168.1.10")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "entreprises", cfg.Tables.CompanyRequests)
	assert.True(t, cfg.MockPayments())
	assert.Equal(t, 5*time.Minute, cfg.Tracking.RateWindow)
	assert.Equal(t, "localhost:6379", cfg.Tracking.RedisAddr)
	assert.Equal(t, []string{"10.0.0.0/8", "192.168.1.10"}, cfg.HTTP.TrustedProxies)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("bad duration", func(t *testing.T) {
		t.Setenv("TRACKING_TIMEOUT", "soon")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("negative limit", func(t *testing.T) {
		t.Setenv("TRACKING_RATE_LIMIT", "-1")
		_, err := Load()
		assert.Error(t, err)
	})
}
