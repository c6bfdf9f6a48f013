package middleware

import (
	"context"
	"strings"

	"github.com/danielgtaylor/huma/v2"
)

type metaKey struct{}

// RequestMeta holds HTTP request metadata used for rate limiting keys.
type RequestMeta struct {
	ClientIP  string
	UserAgent string
	Referrer  string
}

// ContextWithMeta adds request metadata to the context.
func ContextWithMeta(ctx context.Context, meta RequestMeta) context.Context {
	return context.WithValue(ctx, metaKey{}, meta)
}

// MetaFromContext extracts request metadata from the context.
func MetaFromContext(ctx context.Context) RequestMeta {
	if v, ok := ctx.Value(metaKey{}).(RequestMeta); ok {
		return v
	}

	return RequestMeta{}
}

// CollectMeta is a middleware that records client IP, user agent, and
// referrer on the request context.
func CollectMeta(_ huma.API) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		meta := RequestMeta{
			ClientIP:  clientIP(ctx),
			UserAgent: ctx.Header("User-Agent"),
			Referrer:  ctx.Header("Referer"),
		}

		ctx = huma.WithContext(ctx, ContextWithMeta(ctx.Context(), meta))

		next(ctx)
	}
}

func clientIP(ctx huma.Context) string {
	// X-Forwarded-For may carry a chain; the first entry is the client.
	if xff := ctx.Header("X-Forwarded-For"); xff != "" {
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}

		return strings.TrimSpace(xff)
	}

	if xri := ctx.Header("X-Real-IP"); xri != "" {
		return xri
	}

	host := ctx.Host()
	if idx := strings.LastIndex(host, ":"); idx != -1 {
		return host[:idx]
	}

	return host
}
