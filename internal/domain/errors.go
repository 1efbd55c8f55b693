package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrRemoteSearch signals a remote index query failure after all retries.
	ErrRemoteSearch = errors.New("remote search failed")
	// ErrFallbackDisabled signals that degradation to the embedded catalog is off.
	ErrFallbackDisabled = errors.New("fallback disabled")
	// ErrCacheUnavailable signals a cache backend failure.
	ErrCacheUnavailable = errors.New("cache unavailable")
)

// RemoteSearchError wraps ErrRemoteSearch with the number of attempts made
// and the last transport failure.
type RemoteSearchError struct {
	Attempts int
	Err      error
}

func (e *RemoteSearchError) Error() string {
	return fmt.Sprintf("%s after %d attempts: %v", ErrRemoteSearch.Error(), e.Attempts, e.Err)
}

func (e *RemoteSearchError) Unwrap() error { return ErrRemoteSearch }

// NewRemoteSearchError creates a remote search error.
func NewRemoteSearchError(attempts int, err error) error {
	return &RemoteSearchError{Attempts: attempts, Err: err}
}
