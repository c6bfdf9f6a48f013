package shortener

import (
	"context"
	"errors"
)

// Code is a fixed-length short code drawn from Alphabet.
type Code string

// Mapping is what a short code resolves to. A mapping is immutable once
// reserved: the store enforces first-writer-wins for each code.
type Mapping struct {
	LongURL  string `json:"longUrl"`
	UserName string `json:"userName,omitempty"`
}

var (
	// ErrNotFound is returned when no mapping exists for a code, or the
	// stored value is unusable.
	ErrNotFound = errors.New("short code not found")

	// ErrCodeTaken is returned by Store.Reserve when the code already
	// holds a mapping.
	ErrCodeTaken = errors.New("short code already taken")

	// ErrSpaceExhausted is returned when allocation runs out of retries.
	ErrSpaceExhausted = errors.New("short code space exhausted")
)

// Store is the key-value association from short codes to mappings.
type Store interface {
	// Reserve writes the mapping under code only if the code is free.
	// Returns ErrCodeTaken when another mapping already holds the code.
	Reserve(ctx context.Context, code Code, mapping *Mapping) error

	// Lookup returns the mapping stored under code, or ErrNotFound.
	Lookup(ctx context.Context, code Code) (*Mapping, error)
}
