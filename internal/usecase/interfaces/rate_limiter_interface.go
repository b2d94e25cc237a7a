package interfaces

import "context"

// IRateLimiter enforces a request-rate ceiling per caller key.
//
//go:generate mockgen -source=rate_limiter_interface.go -destination=mocks/rate_limiter_mock.go -package=mock_interfaces
type IRateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
