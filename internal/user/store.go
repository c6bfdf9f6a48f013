package user

import "context"

// ClickCursor iterates a user's click history lazily, in store-native
// order. Callers must Close it when done.
type ClickCursor interface {
	Next(ctx context.Context) bool
	Click() *Click
	Err() error
	Close(ctx context.Context) error
}

// Store is the document store holding users and their click history.
// The increment operations must be atomic on the store side; callers
// never read-modify-write counters.
type Store interface {
	// Insert creates a user. Returns ErrAlreadyExists when the name is
	// taken.
	Insert(ctx context.Context, u *User) error

	// FindByName returns the first user with the given name, or
	// ErrNotFound.
	FindByName(ctx context.Context, name string) (*User, error)

	// IncrementAllClicks adds one to the user's aggregate counter.
	IncrementAllClicks(ctx context.Context, name string) error

	// IncrementCodeClicks adds one to the (code, month) bucket, creating
	// the nested structure when absent.
	IncrementCodeClicks(ctx context.Context, name, code, month string) error

	// AppendClick appends a click event to the user's history.
	AppendClick(ctx context.Context, click *Click) error

	// Clicks opens a fresh cursor over the user's click history. Each
	// call restarts from the beginning.
	Clicks(ctx context.Context, name string) (ClickCursor, error)
}
