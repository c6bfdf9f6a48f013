package store

import (
	"context"
	"sync"

	"github.com/serroba/tinyurl/internal/user"
)

// MemoryUserStore is an in-memory implementation of user.Store for tests
// and broker-less local runs.
type MemoryUserStore struct {
	mu     sync.Mutex
	users  map[string]*user.User
	clicks []user.Click
}

// NewMemoryUserStore creates an empty in-memory user store.
func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{
		users: make(map[string]*user.User),
	}
}

func (m *MemoryUserStore) Insert(_ context.Context, u *user.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.users[u.Name]; exists {
		return user.ErrAlreadyExists
	}

	clone := *u
	m.users[u.Name] = &clone

	return nil
}

func (m *MemoryUserStore) FindByName(_ context.Context, name string) (*user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[name]
	if !ok {
		return nil, user.ErrNotFound
	}

	clone := *u

	return &clone, nil
}

func (m *MemoryUserStore) IncrementAllClicks(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[name]
	if !ok {
		return user.ErrNotFound
	}

	u.AllURLClicks++

	return nil
}

func (m *MemoryUserStore) IncrementCodeClicks(_ context.Context, name, code, month string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[name]
	if !ok {
		return user.ErrNotFound
	}

	if u.Shorts == nil {
		u.Shorts = make(map[string]user.ShortStats)
	}

	stats := u.Shorts[code]
	if stats.Clicks == nil {
		stats.Clicks = make(map[string]int64)
	}

	stats.Clicks[month]++
	u.Shorts[code] = stats

	return nil
}

func (m *MemoryUserStore) AppendClick(_ context.Context, click *user.Click) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.clicks = append(m.clicks, *click)

	return nil
}

func (m *MemoryUserStore) Clicks(_ context.Context, name string) (user.ClickCursor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var matched []user.Click

	for _, click := range m.clicks {
		if click.UserName == name {
			matched = append(matched, click)
		}
	}

	return &sliceClickCursor{clicks: matched}, nil
}

type sliceClickCursor struct {
	clicks []user.Click
	pos    int
}

func (c *sliceClickCursor) Next(_ context.Context) bool {
	if c.pos >= len(c.clicks) {
		return false
	}

	c.pos++

	return true
}

func (c *sliceClickCursor) Click() *user.Click {
	return &c.clicks[c.pos-1]
}

func (c *sliceClickCursor) Err() error { return nil }

func (c *sliceClickCursor) Close(_ context.Context) error { return nil }

// Compile-time check.
var _ user.Store = (*MemoryUserStore)(nil)
