package store

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/serroba/tinyurl/internal/shortener"
)

// RedisMappingStore is a Redis implementation of shortener.Store.
// Reservation relies on SETNX, so "key already present" is the only
// collision signal and concurrent allocations can never overwrite each
// other.
type RedisMappingStore struct {
	client *redis.Client
	prefix string // "tiny:" for code->mapping keys
}

// NewRedisMappingStore creates a Redis-backed mapping store.
func NewRedisMappingStore(client *redis.Client) *RedisMappingStore {
	return &RedisMappingStore{
		client: client,
		prefix: "tiny:",
	}
}

func (r *RedisMappingStore) Reserve(ctx context.Context, code shortener.Code, mapping *shortener.Mapping) error {
	payload, err := encodeMapping(mapping)
	if err != nil {
		return err
	}

	ok, err := r.client.SetNX(ctx, r.prefix+string(code), payload, 0).Result()
	if err != nil {
		return err
	}

	if !ok {
		return shortener.ErrCodeTaken
	}

	return nil
}

func (r *RedisMappingStore) Lookup(ctx context.Context, code shortener.Code) (*shortener.Mapping, error) {
	raw, err := r.client.Get(ctx, r.prefix+string(code)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, shortener.ErrNotFound
		}

		return nil, err
	}

	return decodeMapping([]byte(raw))
}

// Compile-time check.
var _ shortener.Store = (*RedisMappingStore)(nil)
