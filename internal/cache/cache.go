// Package cache provides time-bounded memoization of search results keyed by
// request fingerprints.
package cache

import (
	"context"
	"time"

	"github.com/Wunderbot-Git/alkosto-ai-assistant/internal/domain/search/result"
)

// DefaultTTL is the maximum age at which a cached result is still valid.
const DefaultTTL = 5 * time.Minute

// Stats describes the current cache occupancy.
type Stats struct {
	Entries       int `json:"entries"`
	MaxAgeSeconds int `json:"maxAgeSeconds"`
}

// Cache stores search results by fingerprint. Implementations must be safe
// for concurrent use. Put overwrites unconditionally with a fresh timestamp.
type Cache interface {
	// Get returns the cached result for key, if present and younger than
	// the TTL. Expired entries are treated as absent.
	Get(ctx context.Context, key string) (result.Result, bool, error)
	Put(ctx context.Context, key string, res result.Result) error
	Clear(ctx context.Context) error
	Stats(ctx context.Context) (Stats, error)
	Close()
}
