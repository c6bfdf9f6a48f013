package user

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when no user exists with the given name.
	ErrNotFound = errors.New("user not found")

	// ErrAlreadyExists is returned when inserting a user whose name is
	// already taken.
	ErrAlreadyExists = errors.New("user already exists")
)

// User aggregates click counters for an account. Counters start at zero
// and are only ever incremented, through the store's atomic increment
// primitives.
type User struct {
	Name         string                `bson:"name"                  json:"name"`
	AllURLClicks int64                 `bson:"allUrlClicks"          json:"allUrlClicks"`
	Shorts       map[string]ShortStats `bson:"shorts,omitempty"      json:"shorts,omitempty"`
}

// ShortStats holds the per-month click counters of one short code.
type ShortStats struct {
	Clicks map[string]int64 `bson:"clicks,omitempty" json:"clicks,omitempty"`
}

// Click is one recorded resolution of an owned short code. Clicks are
// append-only, keyed by (UserName, ClickedAt); they are never updated or
// deleted.
type Click struct {
	UserName  string    `bson:"userName"  json:"userName"`
	Code      string    `bson:"code"      json:"code"`
	LongURL   string    `bson:"longUrl"   json:"longUrl"`
	ClickedAt time.Time `bson:"clickedAt" json:"clickedAt"`
}

// ClickView is the caller-facing projection of a Click.
type ClickView struct {
	Code      string    `json:"code"`
	LongURL   string    `json:"longUrl"`
	ClickedAt time.Time `json:"clickedAt"`
}

// View projects the click for API responses.
func (c *Click) View() ClickView {
	return ClickView{
		Code:      c.Code,
		LongURL:   c.LongURL,
		ClickedAt: c.ClickedAt,
	}
}

// MonthKey buckets a point in time for the per-code counters, as a
// stable "YYYY-MM" string in UTC.
func MonthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}
