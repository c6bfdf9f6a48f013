package messaging_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/serroba/tinyurl/internal/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockPublisher struct {
	messages   []*message.Message
	topic      string
	publishErr error
	closeErr   error
	closed     bool
}

func (m *mockPublisher) Publish(topic string, msgs ...*message.Message) error {
	if m.publishErr != nil {
		return m.publishErr
	}

	m.topic = topic
	m.messages = append(m.messages, msgs...)

	return nil
}

func (m *mockPublisher) Close() error {
	m.closed = true

	return m.closeErr
}

type publishTestEvent struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestNewPublishFunc(t *testing.T) {
	t.Run("publishes the marshalled event to the topic", func(t *testing.T) {
		mock := &mockPublisher{}
		publish := messaging.NewPublishFunc[publishTestEvent](mock, "test.topic")

		err := publish(&publishTestEvent{ID: "123", Name: "test"})

		require.NoError(t, err)
		assert.Equal(t, "test.topic", mock.topic)
		require.Len(t, mock.messages, 1)
		assert.NotEmpty(t, mock.messages[0].UUID)

		var decoded publishTestEvent
		require.NoError(t, json.Unmarshal(mock.messages[0].Payload, &decoded))
		assert.Equal(t, "123", decoded.ID)
		assert.Equal(t, "test", decoded.Name)
	})

	t.Run("propagates publish errors", func(t *testing.T) {
		mock := &mockPublisher{publishErr: errors.New("broker down")}
		publish := messaging.NewPublishFunc[publishTestEvent](mock, "test.topic")

		err := publish(&publishTestEvent{ID: "123"})

		assert.Error(t, err)
	})
}

func TestPublisherGroup(t *testing.T) {
	t.Run("exposes the underlying publisher", func(t *testing.T) {
		mock := &mockPublisher{}
		group := messaging.NewPublisherGroup(mock)

		assert.Equal(t, message.Publisher(mock), group.Publisher())
	})

	t.Run("shutdown closes the publisher", func(t *testing.T) {
		mock := &mockPublisher{}
		group := messaging.NewPublisherGroup(mock)

		require.NoError(t, group.Shutdown())
		assert.True(t, mock.closed)
	})

	t.Run("shutdown propagates close errors", func(t *testing.T) {
		mock := &mockPublisher{closeErr: errors.New("close error")}
		group := messaging.NewPublisherGroup(mock)

		assert.Error(t, group.Shutdown())
	})
}
