package store

import (
	"encoding/json"

	"github.com/serroba/tinyurl/internal/shortener"
)

// encodeMapping serializes a mapping to its stored JSON form.
func encodeMapping(mapping *shortener.Mapping) ([]byte, error) {
	return json.Marshal(mapping)
}

// decodeMapping parses a stored mapping value. Malformed payloads and
// payloads without a long URL are reported as a missing code rather than
// surfaced to the redirect path.
func decodeMapping(raw []byte) (*shortener.Mapping, error) {
	var mapping shortener.Mapping
	if err := json.Unmarshal(raw, &mapping); err != nil {
		return nil, shortener.ErrNotFound
	}

	if mapping.LongURL == "" {
		return nil, shortener.ErrNotFound
	}

	return &mapping, nil
}
