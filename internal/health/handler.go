package health

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// Checker reports whether a dependency is reachable.
type Checker interface {
	Ping(ctx context.Context) error
}

// RedisChecker adapts redis.Client to Checker.
type RedisChecker struct {
	client *redis.Client
}

// NewRedisChecker creates a Redis health checker.
func NewRedisChecker(client *redis.Client) *RedisChecker {
	return &RedisChecker{client: client}
}

func (r *RedisChecker) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// MongoChecker adapts mongo.Client to Checker.
type MongoChecker struct {
	client *mongo.Client
}

// NewMongoChecker creates a MongoDB health checker.
func NewMongoChecker(client *mongo.Client) *MongoChecker {
	return &MongoChecker{client: client}
}

func (m *MongoChecker) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, nil)
}

// Handler handles the readiness endpoint.
type Handler struct {
	redis Checker
	mongo Checker
}

// NewHandler creates a health handler. Either checker may be nil when
// the dependency is not configured.
func NewHandler(redisCheck, mongoCheck Checker) *Handler {
	return &Handler{redis: redisCheck, mongo: mongoCheck}
}

// Response is the readiness check response.
type Response struct {
	Body struct {
		Status string `json:"status"`
		Redis  string `json:"redis,omitempty"`
		Mongo  string `json:"mongo,omitempty"`
	}
}

// Check pings the configured dependencies and degrades the overall
// status when any of them is unreachable.
func (h *Handler) Check(ctx context.Context, _ *struct{}) (*Response, error) {
	resp := &Response{}
	resp.Body.Status = "ok"

	if h.redis != nil {
		resp.Body.Redis = statusOf(h.redis.Ping(ctx))
		if resp.Body.Redis != "healthy" {
			resp.Body.Status = "degraded"
		}
	}

	if h.mongo != nil {
		resp.Body.Mongo = statusOf(h.mongo.Ping(ctx))
		if resp.Body.Mongo != "healthy" {
			resp.Body.Status = "degraded"
		}
	}

	return resp, nil
}

func statusOf(err error) string {
	if err != nil {
		return "unhealthy"
	}

	return "healthy"
}

// RegisterRoutes registers the health check route.
func RegisterRoutes(api huma.API, h *Handler) {
	huma.Get(api, "/health", h.Check)
}
