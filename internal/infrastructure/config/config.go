package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is the service configuration, read from the environment.
// Nested keys are looked up with their section prefix first, then bare (APP_PORT, then PORT).
type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"dossier-service"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	// HTTP controls which forwarding headers are believed when resolving the client IP.
	// With no trusted proxies the socket address is used.
	HTTP struct {
		TrustedProxies  []string `envconfig:"TRUSTED_PROXIES"`
		TrustedPlatform string   `envconfig:"TRUSTED_PLATFORM"`
	}

	AWS struct {
		Region          string `envconfig:"AWS_REGION" default:"us-east-1"`
		AccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
		SecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`
		Endpoint        string `envconfig:"DYNAMODB_ENDPOINT"`
	}

	Tables struct {
		CompanyRequests string `envconfig:"COMPANY_REQUESTS_TABLE" default:"company_requests"`
		ServiceRequests string `envconfig:"SERVICE_REQUESTS_TABLE" default:"service_requests"`
		Payments        string `envconfig:"PAYMENTS_TABLE" default:"payments"`
	}

	MercadoPago struct {
		AccessToken   string        `envconfig:"MERCADOPAGO_ACCESS_TOKEN"`
		PublicKey     string        `envconfig:"MERCADOPAGO_PUBLIC_KEY"`
		Mock          string        `envconfig:"PAYMENT_GATEWAY_MOCK"`
		Currency      string        `envconfig:"PAYMENT_CURRENCY" default:"XOF"`
		VerifyTimeout time.Duration `envconfig:"PAYMENT_VERIFY_TIMEOUT" default:"20s"`
	}

	Auth struct {
		JWTSecret string `envconfig:"JWT_SECRET"`
	}

	Tracking struct {
		RedisAddr  string        `envconfig:"REDIS_ADDR"`
		RateLimit  int64         `envconfig:"TRACKING_RATE_LIMIT" default:"10"`
		RateWindow time.Duration `envconfig:"TRACKING_RATE_WINDOW" default:"1m"`
		Timeout    time.Duration `envconfig:"TRACKING_TIMEOUT" default:"20s"`
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if cfg.Tracking.RateLimit < 0 {
		return nil, fmt.Errorf("TRACKING_RATE_LIMIT must not be negative, got %d", cfg.Tracking.RateLimit)
	}

	return &cfg, nil
}

// MockPayments reports whether the payment gateway runs in mock mode.
func (c *Config) MockPayments() bool {
	switch strings.ToLower(strings.TrimSpace(c.MercadoPago.Mock)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.App.Port)
}
