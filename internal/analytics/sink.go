package analytics

import (
	"context"
	"time"

	"github.com/serroba/tinyurl/internal/messaging"
	"github.com/serroba/tinyurl/internal/shortener"
)

// PublishClicks adapts a typed publish function into the resolver's
// click hook. Events are timestamped at resolution time; persistence
// happens in the consumer, so the redirect never waits on the document
// store.
func PublishClicks(publish messaging.Publish[ClickEvent]) shortener.ClickFunc {
	return func(_ context.Context, code shortener.Code, mapping *shortener.Mapping) error {
		return publish(&ClickEvent{
			UserName:  mapping.UserName,
			Code:      string(code),
			LongURL:   mapping.LongURL,
			ClickedAt: time.Now(),
		})
	}
}

// RecordClicks applies click events to the recorder in-process, for
// deployments running without a broker.
func RecordClicks(recorder *Recorder) shortener.ClickFunc {
	return func(ctx context.Context, code shortener.Code, mapping *shortener.Mapping) error {
		return recorder.Record(ctx, &ClickEvent{
			UserName:  mapping.UserName,
			Code:      string(code),
			LongURL:   mapping.LongURL,
			ClickedAt: time.Now(),
		})
	}
}
