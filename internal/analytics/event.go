package analytics

import "time"

// TopicClicks carries click events from the redirect path to the
// recorder.
const TopicClicks = "tiny.clicks"

// ClickEvent is emitted for every successful resolution of a short code
// whose mapping carries an owner.
type ClickEvent struct {
	UserName  string    `json:"userName"`
	Code      string    `json:"code"`
	LongURL   string    `json:"longUrl"`
	ClickedAt time.Time `json:"clickedAt"`
}
