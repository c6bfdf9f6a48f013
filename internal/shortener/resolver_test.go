package shortener_test

import (
	"context"
	"errors"
	"testing"

	"github.com/serroba/tinyurl/internal/shortener"
	"github.com/serroba/tinyurl/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestResolver_Resolve(t *testing.T) {
	t.Run("resolves a stored mapping without firing the click hook", func(t *testing.T) {
		memStore := store.NewMemoryMappingStore()
		require.NoError(t, memStore.Reserve(context.Background(), "abc123",
			&shortener.Mapping{LongURL: "https://example.com"}))

		var hookCalls int

		resolver := shortener.NewResolver(memStore, func(_ context.Context, _ shortener.Code, _ *shortener.Mapping) error {
			hookCalls++

			return nil
		}, zap.NewNop())

		target, err := resolver.Resolve(context.Background(), "abc123")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com", target)
		assert.Zero(t, hookCalls, "ownerless mapping must not trigger click recording")
	})

	t.Run("fires the click hook once for an owned mapping", func(t *testing.T) {
		memStore := store.NewMemoryMappingStore()
		require.NoError(t, memStore.Reserve(context.Background(), "abc123",
			&shortener.Mapping{LongURL: "https://example.com", UserName: "alice"}))

		var (
			hookCalls int
			gotCode   shortener.Code
			gotOwner  string
		)

		resolver := shortener.NewResolver(memStore, func(_ context.Context, code shortener.Code, mapping *shortener.Mapping) error {
			hookCalls++
			gotCode = code
			gotOwner = mapping.UserName

			return nil
		}, zap.NewNop())

		target, err := resolver.Resolve(context.Background(), "abc123")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com", target)
		assert.Equal(t, 1, hookCalls)
		assert.Equal(t, shortener.Code("abc123"), gotCode)
		assert.Equal(t, "alice", gotOwner)
	})

	t.Run("returns ErrNotFound for an unknown code", func(t *testing.T) {
		resolver := shortener.NewResolver(store.NewMemoryMappingStore(), nil, zap.NewNop())

		_, err := resolver.Resolve(context.Background(), "missing")

		require.ErrorIs(t, err, shortener.ErrNotFound)
	})

	t.Run("treats a mapping without a long url as not found", func(t *testing.T) {
		memStore := store.NewMemoryMappingStore()
		require.NoError(t, memStore.Reserve(context.Background(), "empty0",
			&shortener.Mapping{UserName: "alice"}))

		resolver := shortener.NewResolver(memStore, nil, zap.NewNop())

		_, err := resolver.Resolve(context.Background(), "empty0")

		require.ErrorIs(t, err, shortener.ErrNotFound)
	})

	t.Run("click hook failure does not fail the redirect", func(t *testing.T) {
		memStore := store.NewMemoryMappingStore()
		require.NoError(t, memStore.Reserve(context.Background(), "abc123",
			&shortener.Mapping{LongURL: "https://example.com", UserName: "alice"}))

		resolver := shortener.NewResolver(memStore, func(_ context.Context, _ shortener.Code, _ *shortener.Mapping) error {
			return errors.New("analytics down")
		}, zap.NewNop())

		target, err := resolver.Resolve(context.Background(), "abc123")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com", target)
	})

	t.Run("works with a nil click hook", func(t *testing.T) {
		memStore := store.NewMemoryMappingStore()
		require.NoError(t, memStore.Reserve(context.Background(), "abc123",
			&shortener.Mapping{LongURL: "https://example.com", UserName: "alice"}))

		resolver := shortener.NewResolver(memStore, nil, zap.NewNop())

		target, err := resolver.Resolve(context.Background(), "abc123")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com", target)
	})
}
