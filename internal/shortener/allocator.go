package shortener

import (
	"context"
	"errors"
)

// DefaultMaxRetries bounds the allocation retry loop.
const DefaultMaxRetries = 3

// Allocator reserves fresh short codes for mappings. Collisions on the
// randomly generated code are handled by retrying with a new candidate,
// up to the retry budget.
type Allocator struct {
	store      Store
	generate   CodeGenerator
	maxRetries int
}

// NewAllocator creates an allocator over the given store and generator.
// A non-positive maxRetries falls back to DefaultMaxRetries.
func NewAllocator(store Store, generate CodeGenerator, maxRetries int) *Allocator {
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}

	return &Allocator{
		store:      store,
		generate:   generate,
		maxRetries: maxRetries,
	}
}

// Allocate generates candidate codes until one is reserved or the retry
// budget is spent, in which case it returns ErrSpaceExhausted. The
// operation is not idempotent: repeated calls with the same mapping
// reserve independent codes. Store failures other than a collision abort
// the loop immediately.
func (a *Allocator) Allocate(ctx context.Context, mapping *Mapping) (Code, error) {
	for attempt := 0; attempt < a.maxRetries; attempt++ {
		code := a.generate()

		err := a.store.Reserve(ctx, code, mapping)
		if err == nil {
			return code, nil
		}

		if errors.Is(err, ErrCodeTaken) {
			continue
		}

		return "", err
	}

	return "", ErrSpaceExhausted
}
