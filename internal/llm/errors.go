package llm

import (
	"errors"
	"fmt"
)

var ErrMissingAPIKey = errors.New("api key is required")

// ErrRateLimit indicates the provider rejected the request with a 429.
type ErrRateLimit struct {
	Provider string
	Err      error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("%s rate limited: %v", e.Provider, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrProviderUnavailable covers transport, auth and server-side failures.
type ErrProviderUnavailable struct {
	Provider string
	Err      error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s unavailable: %v", e.Provider, e.Err)
	}
	return e.Provider + " unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }
