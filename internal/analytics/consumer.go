package analytics

import (
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/serroba/tinyurl/internal/messaging"
	"go.uber.org/zap"
)

// NewClickConsumer subscribes the recorder to the click topic.
func NewClickConsumer(subscriber message.Subscriber, recorder *Recorder, logger *zap.Logger) *messaging.Consumer[ClickEvent] {
	return messaging.NewConsumer(subscriber, TopicClicks, recorder.Record, logger)
}
