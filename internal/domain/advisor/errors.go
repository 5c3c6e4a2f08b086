package advisor

import (
	"context"
	"errors"
	"fmt"
)

// ErrorKind classifies provider failures.
type ErrorKind string

const (
	KindThrottled ErrorKind = "throttled"
	KindTransient ErrorKind = "transient"
	KindMalformed ErrorKind = "malformed"
)

// ErrEmptyResult is reported when a provider answers without usable content.
var ErrEmptyResult = errors.New("provider returned an empty result")

// ProviderError is the classified failure returned by provider adapters.
type ProviderError struct {
	Provider string
	Kind     ErrorKind
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s failure", e.Provider, e.Kind)
	}
	return fmt.Sprintf("%s: %s failure: %v", e.Provider, e.Kind, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError tags err with the provider name and failure kind.
func NewProviderError(provider string, kind ErrorKind, err error) error {
	return &ProviderError{Provider: provider, Kind: kind, Err: err}
}

// KindOf classifies any error. Unclassified errors count as transient.
func KindOf(err error) ErrorKind {
	var providerErr *ProviderError
	if errors.As(err, &providerErr) {
		return providerErr.Kind
	}
	return KindTransient
}

// IsThrottled reports whether err signals rate limiting or quota exhaustion.
func IsThrottled(err error) bool {
	if err == nil || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return KindOf(err) == KindThrottled
}
