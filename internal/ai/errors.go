package ai

import (
	"errors"
	"fmt"
)

// Input validation errors, surfaced to the HTTP layer as 422.
var (
	ErrEmptyInput   = errors.New("input must not be empty")
	ErrInputTooLong = errors.New("input exceeds maximum length")
)

// ProviderError classifies a provider failure. Retryable failures
// (timeouts, rate limits, 5xx) are retried with backoff; permanent
// failures (auth errors, malformed requests) abort the provider
// immediately and move on to the next one.
type ProviderError struct {
	Provider  string
	Retryable bool
	err       error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.err)
}

func (e *ProviderError) Unwrap() error {
	return e.err
}

func newTransientError(provider string, err error) error {
	return &ProviderError{Provider: provider, Retryable: true, err: err}
}

func newPermanentError(provider string, err error) error {
	return &ProviderError{Provider: provider, Retryable: false, err: err}
}

// isRetryable reports whether err may succeed on another attempt.
// Unclassified errors count as retryable.
func isRetryable(err error) bool {
	var pErr *ProviderError
	if errors.As(err, &pErr) {
		return pErr.Retryable
	}
	return true
}
