package llmprovider

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownProvider indicates the requested provider id is not configured
	ErrUnknownProvider = errors.New("unknown provider")

	// ErrProviderUnavailable indicates the provider is configured without an API key
	ErrProviderUnavailable = errors.New("provider has no API key configured")

	// ErrNoProvidersConfigured indicates the registry is empty
	ErrNoProvidersConfigured = errors.New("no providers configured")
)

// ProviderError wraps provider-specific errors
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
