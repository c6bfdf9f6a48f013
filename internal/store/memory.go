package store

import (
	"context"
	"sync"

	"github.com/serroba/tinyurl/internal/shortener"
)

// MemoryMappingStore is an in-memory implementation of shortener.Store,
// used in tests and for broker-less local runs. Mappings are stored by
// value so a reserved mapping cannot be mutated afterwards.
type MemoryMappingStore struct {
	mu       sync.RWMutex
	mappings map[shortener.Code]shortener.Mapping
}

// NewMemoryMappingStore creates an empty in-memory mapping store.
func NewMemoryMappingStore() *MemoryMappingStore {
	return &MemoryMappingStore{
		mappings: make(map[shortener.Code]shortener.Mapping),
	}
}

func (m *MemoryMappingStore) Reserve(_ context.Context, code shortener.Code, mapping *shortener.Mapping) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.mappings[code]; exists {
		return shortener.ErrCodeTaken
	}

	m.mappings[code] = *mapping

	return nil
}

func (m *MemoryMappingStore) Lookup(_ context.Context, code shortener.Code) (*shortener.Mapping, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	mapping, ok := m.mappings[code]
	if !ok {
		return nil, shortener.ErrNotFound
	}

	return &mapping, nil
}

// Compile-time check.
var _ shortener.Store = (*MemoryMappingStore)(nil)
