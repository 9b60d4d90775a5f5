// Package consent remembers which private metadata requests the user was already asked about.
package consent

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// KeyPrefix is the key under which prompts without a request name are remembered. Named requests
// are stored under KeyPrefix + "." + name.
const KeyPrefix = "exception-reporting.private-metadata-consent"

// ErrNotFound is returned by Store.Get when nothing was recorded under the key.
var ErrNotFound = errors.New("consent: record not found")

// Record tells that the user was shown a consent prompt. Its presence is all that matters, the
// fields are informational.
type Record struct {
	RequestName string    `json:"requestName" msgpack:"requestName"`
	AskedAt     time.Time `json:"askedAt" msgpack:"askedAt"`
}

// Store is a persistent key-value surface for Records. Records never expire.
type Store interface {
	Get(ctx context.Context, key string) (*Record, error)
	Set(ctx context.Context, key string, record Record) error
	Delete(ctx context.Context, key string) error
}

// Key returns the store key for a request name. An empty name maps to the default key.
func Key(requestName string) string {
	if requestName == "" {
		return KeyPrefix
	}
	return KeyPrefix + "." + requestName
}

// Asked tells whether a prompt was already recorded for key.
func Asked(ctx context.Context, s Store, key string) (bool, error) {
	_, err := s.Get(ctx, key)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	return false, err
}
