package analytics_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/serroba/tinyurl/internal/analytics"
	"github.com/serroba/tinyurl/internal/store"
	"github.com/serroba/tinyurl/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockSubscriber struct {
	msgChan chan *message.Message
	mu      sync.Mutex
	closed  bool
}

func newMockSubscriber() *mockSubscriber {
	return &mockSubscriber{msgChan: make(chan *message.Message, 10)}
}

func (m *mockSubscriber) Subscribe(_ context.Context, _ string) (<-chan *message.Message, error) {
	return m.msgChan, nil
}

func (m *mockSubscriber) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.closed {
		m.closed = true
		close(m.msgChan)
	}

	return nil
}

func TestClickConsumer(t *testing.T) {
	t.Run("subscribes to the click topic", func(t *testing.T) {
		users := store.NewMemoryUserStore()
		consumer := analytics.NewClickConsumer(newMockSubscriber(),
			analytics.NewRecorder(users, zap.NewNop()), zap.NewNop())

		assert.Equal(t, analytics.TopicClicks, consumer.Topic())
	})

	t.Run("a consumed event lands in the document store", func(t *testing.T) {
		ctx := context.Background()

		users := store.NewMemoryUserStore()
		require.NoError(t, users.Insert(ctx, &user.User{Name: "bob"}))

		sub := newMockSubscriber()
		consumer := analytics.NewClickConsumer(sub,
			analytics.NewRecorder(users, zap.NewNop()), zap.NewNop())

		require.NoError(t, consumer.Start(ctx))
		defer func() { _ = consumer.Shutdown() }()

		payload, err := json.Marshal(&analytics.ClickEvent{
			UserName:  "bob",
			Code:      "Ab3xQ9",
			LongURL:   "https://example.com",
			ClickedAt: time.Now(),
		})
		require.NoError(t, err)

		msg := message.NewMessage(uuid.NewString(), payload)
		sub.msgChan <- msg

		select {
		case <-msg.Acked():
		case <-msg.Nacked():
			t.Fatal("click event was nacked")
		case <-time.After(time.Second):
			t.Fatal("click event was not processed")
		}

		u, err := users.FindByName(ctx, "bob")
		require.NoError(t, err)
		assert.EqualValues(t, 1, u.AllURLClicks)

		cursor, err := users.Clicks(ctx, "bob")
		require.NoError(t, err)

		count := 0
		for cursor.Next(ctx) {
			count++
		}

		require.NoError(t, cursor.Err())
		require.NoError(t, cursor.Close(ctx))
		assert.Equal(t, 1, count)
	})
}
