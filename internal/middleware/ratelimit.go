package middleware

import (
	"net/http"
	"strconv"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/tinyurl/internal/ratelimit"
	"go.uber.org/zap"
)

// RateLimit enforces the per-endpoint limits declared in operation
// metadata, keyed by client IP. Endpoints without a config pass
// through. Store failures fail open: a broken limiter store must not
// take the service down with it.
func RateLimit(api huma.API, limiter *ratelimit.Limiter, logger *zap.Logger) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		cfg := ratelimit.ConfigFromOperation(ctx.Operation())
		if cfg == nil || cfg.Disabled || len(cfg.Limits) == 0 {
			next(ctx)

			return
		}

		key := MetaFromContext(ctx.Context()).ClientIP
		if key == "" {
			key = "unknown"
		}

		key = ctx.Operation().OperationID + ":" + key

		exceeded, err := limiter.Allow(ctx.Context(), key, cfg.Limits)
		if err != nil {
			logger.Error("rate limit check failed",
				zap.String("operation", ctx.Operation().OperationID),
				zap.Error(err),
			)
			next(ctx)

			return
		}

		if exceeded != nil {
			ctx.SetHeader("Retry-After", strconv.Itoa(int(exceeded.Window.Seconds())))
			_ = huma.WriteErr(api, ctx, http.StatusTooManyRequests, "rate limit exceeded")

			return
		}

		next(ctx)
	}
}
