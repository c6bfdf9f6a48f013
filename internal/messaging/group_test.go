package messaging_test

import (
	"context"
	"errors"
	"testing"

	"github.com/serroba/tinyurl/internal/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockRunnable struct {
	startErr    error
	shutdownErr error
	started     bool
	stopped     bool
}

func (m *mockRunnable) Start(_ context.Context) error {
	if m.startErr != nil {
		return m.startErr
	}

	m.started = true

	return nil
}

func (m *mockRunnable) Shutdown() error {
	m.stopped = true

	return m.shutdownErr
}

func TestConsumerGroup_Start(t *testing.T) {
	t.Run("starts every consumer", func(t *testing.T) {
		sub := newMockSubscriber()
		group := messaging.NewConsumerGroup(sub, zap.NewNop())

		first := &mockRunnable{}
		second := &mockRunnable{}
		group.Add(first)
		group.Add(second)

		require.NoError(t, group.Start(context.Background()))
		assert.True(t, first.started)
		assert.True(t, second.started)
	})

	t.Run("stops already-started consumers when one fails", func(t *testing.T) {
		sub := newMockSubscriber()
		group := messaging.NewConsumerGroup(sub, zap.NewNop())

		first := &mockRunnable{}
		failing := &mockRunnable{startErr: errors.New("start error")}
		group.Add(first)
		group.Add(failing)

		err := group.Start(context.Background())

		require.Error(t, err)
		assert.True(t, first.stopped)
	})
}

func TestConsumerGroup_Shutdown(t *testing.T) {
	t.Run("stops every consumer and closes the subscriber", func(t *testing.T) {
		sub := newMockSubscriber()
		group := messaging.NewConsumerGroup(sub, zap.NewNop())

		first := &mockRunnable{}
		second := &mockRunnable{}
		group.Add(first)
		group.Add(second)

		require.NoError(t, group.Start(context.Background()))
		require.NoError(t, group.Shutdown())

		assert.True(t, first.stopped)
		assert.True(t, second.stopped)
		assert.True(t, sub.closed)
	})

	t.Run("keeps stopping after the first error and reports it", func(t *testing.T) {
		sub := newMockSubscriber()
		group := messaging.NewConsumerGroup(sub, zap.NewNop())

		failing := &mockRunnable{shutdownErr: errors.New("shutdown error")}
		second := &mockRunnable{}
		group.Add(failing)
		group.Add(second)

		err := group.Shutdown()

		require.Error(t, err)
		assert.True(t, second.stopped)
	})
}
