package providers

import (
	"errors"
	"fmt"
	"time"
)

// RateLimitError is returned when the upstream kept answering 429 past the
// configured retry ceiling. Persistent rate limiting is surfaced instead of
// looping forever.
type RateLimitError struct {
	Provider string
	Resource string
	Attempts int
	Cooldown time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s: %s rate limited after %d attempts (cooldown %s)",
		e.Provider, e.Resource, e.Attempts, e.Cooldown)
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}

// StatusError captures a non-success, non-429 upstream response. These are
// fatal to the current run; the run is safely re-executable afterwards.
type StatusError struct {
	Provider   string
	Resource   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: %s returned status %d", e.Provider, e.Resource, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s returned status %d: %s", e.Provider, e.Resource, e.StatusCode, e.Body)
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var sErr *StatusError
	if errors.As(err, &sErr) {
		return sErr, true
	}
	return nil, false
}
