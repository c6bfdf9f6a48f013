package handlers

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/redis/go-redis/v9"
)

// DebugHandler exposes raw key-value access for troubleshooting the
// mapping store. Its routes are registered only when debug mode is
// enabled.
type DebugHandler struct {
	client *redis.Client
}

// NewDebugHandler creates a debug handler over the Redis client.
func NewDebugHandler(client *redis.Client) *DebugHandler {
	return &DebugHandler{client: client}
}

// GetKey reads a raw value from the key-value store.
func (h *DebugHandler) GetKey(ctx context.Context, req *GetKeyRequest) (*GetKeyResponse, error) {
	value, err := h.client.Get(ctx, req.Key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, huma.Error404NotFound("key not found")
		}

		return nil, huma.Error500InternalServerError("failed to read key")
	}

	resp := &GetKeyResponse{}
	resp.Body.Key = req.Key
	resp.Body.Value = value

	return resp, nil
}

// SetKey writes a raw value, reporting the previous value when one
// existed.
func (h *DebugHandler) SetKey(ctx context.Context, req *SetKeyRequest) (*SetKeyResponse, error) {
	previous, err := h.client.Get(ctx, req.Key).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, huma.Error500InternalServerError("failed to read previous value")
	}

	if err := h.client.Set(ctx, req.Key, req.Body.Value, 0).Err(); err != nil {
		return nil, huma.Error500InternalServerError("failed to write key")
	}

	resp := &SetKeyResponse{}
	resp.Body.Accepted = true
	resp.Body.Previous = previous

	return resp, nil
}
