package model

import (
	"errors"
	"fmt"
)

// ErrCancelled reports that the user interrupted the parity judgment.
var ErrCancelled = errors.New("operation cancelled by user")

// InvocationError is the single generic failure category for anything that
// goes wrong while asking the oracle (transport, auth, unusable response).
type InvocationError struct {
	Model string
	Err   error
}

func (e *InvocationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("asking %s", e.Model)
	}
	return e.Err.Error()
}

func (e *InvocationError) Unwrap() error {
	return e.Err
}

// ProviderError wraps a failure reported by an LLM provider so callers can
// inspect the HTTP status when the provider exposes one.
type ProviderError struct {
	Provider   string
	StatusCode int // zero when the provider did not report one
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: HTTP %d: %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
