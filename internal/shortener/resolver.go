package shortener

import (
	"context"

	"go.uber.org/zap"
)

// ClickFunc receives each successful resolution of an owned mapping for
// analytics. The resolver invokes it before returning the redirect
// target; a failure is logged and never affects the redirect.
type ClickFunc func(ctx context.Context, code Code, mapping *Mapping) error

// Resolver turns a short code back into its redirect target.
type Resolver struct {
	store   Store
	onClick ClickFunc
	logger  *zap.Logger
}

// NewResolver creates a resolver. onClick may be nil to disable click
// tracking entirely.
func NewResolver(store Store, onClick ClickFunc, logger *zap.Logger) *Resolver {
	return &Resolver{
		store:   store,
		onClick: onClick,
		logger:  logger,
	}
}

// Resolve returns the long URL stored under code. Absent codes and
// stored values without a long URL yield ErrNotFound. When the mapping
// carries an owner, the click hook fires before Resolve returns.
func (r *Resolver) Resolve(ctx context.Context, code Code) (string, error) {
	mapping, err := r.store.Lookup(ctx, code)
	if err != nil {
		return "", err
	}

	if mapping.LongURL == "" {
		return "", ErrNotFound
	}

	if mapping.UserName != "" && r.onClick != nil {
		if err := r.onClick(ctx, code, mapping); err != nil {
			r.logger.Error("click recording failed",
				zap.String("code", string(code)),
				zap.String("userName", mapping.UserName),
				zap.Error(err),
			)
		}
	}

	return mapping.LongURL, nil
}
