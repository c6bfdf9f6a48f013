package analytics

import (
	"context"
	"time"

	"github.com/serroba/tinyurl/internal/user"
	"go.uber.org/zap"
)

// Recorder applies a click event to the document store: the user's
// aggregate counter, the per-code month bucket, and the append-only
// click log. The three writes are independent best-effort operations;
// a failure in one does not roll back the others.
type Recorder struct {
	users  user.Store
	logger *zap.Logger
	now    func() time.Time
}

// NewRecorder creates a recorder over the user store.
func NewRecorder(users user.Store, logger *zap.Logger) *Recorder {
	return &Recorder{
		users:  users,
		logger: logger,
		now:    time.Now,
	}
}

// Record persists the click. Events without a user name are ignored.
// All three writes are attempted regardless of individual failures; the
// first error is returned so a broker-driven caller can nack for
// redelivery.
func (r *Recorder) Record(ctx context.Context, event *ClickEvent) error {
	if event.UserName == "" {
		return nil
	}

	clickedAt := event.ClickedAt
	if clickedAt.IsZero() {
		clickedAt = r.now()
	}

	var firstErr error

	if err := r.users.IncrementAllClicks(ctx, event.UserName); err != nil {
		r.logger.Error("failed to increment aggregate click counter",
			zap.String("userName", event.UserName),
			zap.Error(err),
		)

		firstErr = err
	}

	if err := r.users.IncrementCodeClicks(ctx, event.UserName, event.Code, user.MonthKey(clickedAt)); err != nil {
		r.logger.Error("failed to increment per-code click counter",
			zap.String("userName", event.UserName),
			zap.String("code", event.Code),
			zap.Error(err),
		)

		if firstErr == nil {
			firstErr = err
		}
	}

	click := &user.Click{
		UserName:  event.UserName,
		Code:      event.Code,
		LongURL:   event.LongURL,
		ClickedAt: clickedAt,
	}

	if err := r.users.AppendClick(ctx, click); err != nil {
		r.logger.Error("failed to append click event",
			zap.String("userName", event.UserName),
			zap.String("code", event.Code),
			zap.Error(err),
		)

		if firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
