package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/serroba/tinyurl/internal/analytics"
	"github.com/serroba/tinyurl/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var errMock = errors.New("mock error")

// mockUserStore records every write and can fail individual operations.
type mockUserStore struct {
	incrementAllErr  error
	incrementCodeErr error
	appendErr        error

	allIncrements  []string
	codeIncrements [][3]string // name, code, month
	appended       []user.Click
}

func (m *mockUserStore) Insert(_ context.Context, _ *user.User) error { return nil }

func (m *mockUserStore) FindByName(_ context.Context, _ string) (*user.User, error) {
	return nil, user.ErrNotFound
}

func (m *mockUserStore) IncrementAllClicks(_ context.Context, name string) error {
	if m.incrementAllErr != nil {
		return m.incrementAllErr
	}

	m.allIncrements = append(m.allIncrements, name)

	return nil
}

func (m *mockUserStore) IncrementCodeClicks(_ context.Context, name, code, month string) error {
	if m.incrementCodeErr != nil {
		return m.incrementCodeErr
	}

	m.codeIncrements = append(m.codeIncrements, [3]string{name, code, month})

	return nil
}

func (m *mockUserStore) AppendClick(_ context.Context, click *user.Click) error {
	if m.appendErr != nil {
		return m.appendErr
	}

	m.appended = append(m.appended, *click)

	return nil
}

func (m *mockUserStore) Clicks(_ context.Context, _ string) (user.ClickCursor, error) {
	return nil, errMock
}

func (m *mockUserStore) writes() int {
	return len(m.allIncrements) + len(m.codeIncrements) + len(m.appended)
}

func TestRecorder_Record(t *testing.T) {
	clickedAt := time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)

	event := &analytics.ClickEvent{
		UserName:  "alice",
		Code:      "Ab3xQ9",
		LongURL:   "https://example.com",
		ClickedAt: clickedAt,
	}

	t.Run("applies all three writes for an owned click", func(t *testing.T) {
		mock := &mockUserStore{}
		recorder := analytics.NewRecorder(mock, zap.NewNop())

		err := recorder.Record(context.Background(), event)

		require.NoError(t, err)
		assert.Equal(t, []string{"alice"}, mock.allIncrements)
		assert.Equal(t, [][3]string{{"alice", "Ab3xQ9", "2026-08"}}, mock.codeIncrements)
		require.Len(t, mock.appended, 1)
		assert.Equal(t, "alice", mock.appended[0].UserName)
		assert.Equal(t, "Ab3xQ9", mock.appended[0].Code)
		assert.Equal(t, "https://example.com", mock.appended[0].LongURL)
		assert.Equal(t, clickedAt, mock.appended[0].ClickedAt)
	})

	t.Run("ignores events without a user name", func(t *testing.T) {
		mock := &mockUserStore{}
		recorder := analytics.NewRecorder(mock, zap.NewNop())

		err := recorder.Record(context.Background(), &analytics.ClickEvent{
			Code:    "Ab3xQ9",
			LongURL: "https://example.com",
		})

		require.NoError(t, err)
		assert.Zero(t, mock.writes())
	})

	t.Run("counter still incremented when the click append fails", func(t *testing.T) {
		mock := &mockUserStore{appendErr: errMock}
		recorder := analytics.NewRecorder(mock, zap.NewNop())

		err := recorder.Record(context.Background(), event)

		require.ErrorIs(t, err, errMock)
		assert.Equal(t, []string{"alice"}, mock.allIncrements)
		assert.Len(t, mock.codeIncrements, 1)
		assert.Empty(t, mock.appended)
	})

	t.Run("remaining writes attempted when the first fails", func(t *testing.T) {
		mock := &mockUserStore{incrementAllErr: errMock}
		recorder := analytics.NewRecorder(mock, zap.NewNop())

		err := recorder.Record(context.Background(), event)

		require.ErrorIs(t, err, errMock)
		assert.Len(t, mock.codeIncrements, 1)
		assert.Len(t, mock.appended, 1)
	})

	t.Run("stamps a missing click time", func(t *testing.T) {
		mock := &mockUserStore{}
		recorder := analytics.NewRecorder(mock, zap.NewNop())

		err := recorder.Record(context.Background(), &analytics.ClickEvent{
			UserName: "alice",
			Code:     "Ab3xQ9",
			LongURL:  "https://example.com",
		})

		require.NoError(t, err)
		require.Len(t, mock.appended, 1)
		assert.False(t, mock.appended[0].ClickedAt.IsZero())
	})
}
