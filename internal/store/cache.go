package store

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/serroba/tinyurl/internal/shortener"
)

// CachedMappingStore decorates a mapping store with a Redis read cache.
// It is used in front of the Postgres backend; the Redis backend needs
// no cache since Redis already is the store. Reservation semantics stay
// with the underlying store, the cache is populated only after the store
// has accepted the write.
type CachedMappingStore struct {
	store  shortener.Store
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewCachedMappingStore creates a cache decorator around store.
func NewCachedMappingStore(store shortener.Store, client *redis.Client, ttl time.Duration) *CachedMappingStore {
	return &CachedMappingStore{
		store:  store,
		client: client,
		prefix: "tinycache:",
		ttl:    ttl,
	}
}

func (c *CachedMappingStore) Reserve(ctx context.Context, code shortener.Code, mapping *shortener.Mapping) error {
	if err := c.store.Reserve(ctx, code, mapping); err != nil {
		return err
	}

	// Write-through after the store accepted the reservation. Cache
	// failures are invisible; the store remains authoritative.
	c.cache(ctx, code, mapping)

	return nil
}

func (c *CachedMappingStore) Lookup(ctx context.Context, code shortener.Code) (*shortener.Mapping, error) {
	raw, err := c.client.Get(ctx, c.prefix+string(code)).Result()
	if err == nil {
		if mapping, decodeErr := decodeMapping([]byte(raw)); decodeErr == nil {
			return mapping, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		// Cache unavailable, fall through to the store.
		_ = err
	}

	mapping, err := c.store.Lookup(ctx, code)
	if err != nil {
		return nil, err
	}

	c.cache(ctx, code, mapping)

	return mapping, nil
}

func (c *CachedMappingStore) cache(ctx context.Context, code shortener.Code, mapping *shortener.Mapping) {
	payload, err := encodeMapping(mapping)
	if err != nil {
		return
	}

	_ = c.client.Set(ctx, c.prefix+string(code), payload, c.ttl).Err()
}

// Compile-time check.
var _ shortener.Store = (*CachedMappingStore)(nil)
