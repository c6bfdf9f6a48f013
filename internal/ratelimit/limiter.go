package ratelimit

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
)

// MetadataKey is the key used to attach an EndpointConfig to a huma
// operation's Metadata.
const MetadataKey = "rateLimit"

// LimitConfig is one request budget over a time window.
type LimitConfig struct {
	Window time.Duration
	Max    int64
}

// EndpointConfig declares the rate limits of one endpoint.
type EndpointConfig struct {
	Limits []LimitConfig

	// Disabled skips rate limiting entirely for this endpoint.
	Disabled bool
}

// ConfigFromOperation extracts the EndpointConfig from operation
// metadata, if present.
func ConfigFromOperation(op *huma.Operation) *EndpointConfig {
	if op == nil || op.Metadata == nil {
		return nil
	}

	cfg, ok := op.Metadata[MetadataKey].(EndpointConfig)
	if !ok {
		return nil
	}

	return &cfg
}

// Store counts requests per key over a window.
type Store interface {
	// Record records a request under key and returns how many requests
	// the current window has seen, including this one.
	Record(ctx context.Context, key string, window time.Duration) (count int64, err error)
}

// Limiter checks a set of limits against a store.
type Limiter struct {
	store Store
}

// NewLimiter creates a limiter over the given store.
func NewLimiter(store Store) *Limiter {
	return &Limiter{store: store}
}

// Allow records a request for key under every limit and reports the
// first limit that is exceeded, or nil when the request is allowed.
func (l *Limiter) Allow(ctx context.Context, key string, limits []LimitConfig) (*LimitConfig, error) {
	for _, limit := range limits {
		storeKey := key + ":" + limit.Window.String()

		count, err := l.store.Record(ctx, storeKey, limit.Window)
		if err != nil {
			return nil, err
		}

		if count > limit.Max {
			exceeded := limit

			return &exceeded, nil
		}
	}

	return nil, nil
}
